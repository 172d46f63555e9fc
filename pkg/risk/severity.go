package risk

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity is an ordered risk level: Safe < Moderate < Risky < Harmful.
type Severity int

const (
	Safe Severity = iota
	Moderate
	Risky
	Harmful
)

var severityNames = [...]string{"safe", "moderate", "risky", "harmful"}

func (s Severity) String() string {
	if s < Safe || s > Harmful {
		return fmt.Sprintf("severity(%d)", int(s))
	}
	return severityNames[s]
}

// ParseSeverity accepts the lowercase names produced by String.
func ParseSeverity(v string) (Severity, error) {
	name := strings.ToLower(strings.TrimSpace(v))
	for i, n := range severityNames {
		if n == name {
			return Severity(i), nil
		}
	}
	return Safe, fmt.Errorf("unknown severity %q", v)
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MaxSeverity returns the worst of the given levels, Safe when none are given.
func MaxSeverity(levels ...Severity) Severity {
	worst := Safe
	for _, l := range levels {
		if l > worst {
			worst = l
		}
	}
	return worst
}
