package risk

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v2"
)

type (
	DiseaseRule struct {
		Avoid               []string `yaml:"avoid"`
		Limit               []string `yaml:"limit"`
		Consequence         string   `yaml:"consequence"`
		LongTermConsequence string   `yaml:"long_term_consequence"`
	}

	DrugRule struct {
		Avoid       []string `yaml:"avoid"`
		Limit       []string `yaml:"limit"`
		Consequence string   `yaml:"consequence"`
	}

	// Tables is the serializable form of a knowledge base. It is what
	// LoadKnowledgeBase reads from YAML and what DefaultTables returns.
	Tables struct {
		AllergenGroups       map[string][]string            `yaml:"allergen_groups"`
		Diseases             map[string]DiseaseRule         `yaml:"diseases"`
		DiseaseAliases       map[string]string              `yaml:"disease_aliases"`
		Drugs                map[string]DrugRule            `yaml:"drugs"`
		DrugAliases          map[string]string              `yaml:"drug_aliases"`
		Symptoms             map[string][]string            `yaml:"symptoms"`
		SymptomAliases       map[string]string              `yaml:"symptom_aliases"`
		NutrientThresholds   map[string]float64             `yaml:"nutrient_thresholds"`
		Substitutions        map[string][]string            `yaml:"substitutions"`
		DiseaseSubstitutions map[string]map[string][]string `yaml:"disease_substitutions"`
	}

	// KnowledgeBase is the read-only lookup layer used by every checker.
	// It is safe for concurrent use because nothing mutates it after construction.
	KnowledgeBase struct {
		allergenGroups       map[string][]string
		diseases             map[string]DiseaseRule
		diseaseAliases       map[string]string
		drugs                map[string]DrugRule
		drugAliases          map[string]string
		symptoms             map[string][]string
		symptomAliases       map[string]string
		thresholds           map[string]float64
		substitutions        map[string][]string
		diseaseSubstitutions map[string]map[string][]string
		heuristics           map[string][]Heuristic
	}
)

var (
	defaultKB     *KnowledgeBase
	defaultKBOnce sync.Once
)

// DefaultKnowledgeBase returns the built-in tables and heuristics, built once per process.
func DefaultKnowledgeBase() *KnowledgeBase {
	defaultKBOnce.Do(func() {
		defaultKB = NewKnowledgeBase(DefaultTables(), DefaultHeuristics())
	})
	return defaultKB
}

// NewKnowledgeBase copies the tables with lowercase keys and keywords.
func NewKnowledgeBase(t Tables, heuristics map[string][]Heuristic) *KnowledgeBase {
	kb := &KnowledgeBase{
		allergenGroups:       make(map[string][]string, len(t.AllergenGroups)),
		diseases:             make(map[string]DiseaseRule, len(t.Diseases)),
		diseaseAliases:       lowerAliases(t.DiseaseAliases),
		drugs:                make(map[string]DrugRule, len(t.Drugs)),
		drugAliases:          lowerAliases(t.DrugAliases),
		symptoms:             make(map[string][]string, len(t.Symptoms)),
		symptomAliases:       lowerAliases(t.SymptomAliases),
		thresholds:           make(map[string]float64, len(t.NutrientThresholds)),
		substitutions:        make(map[string][]string, len(t.Substitutions)),
		diseaseSubstitutions: make(map[string]map[string][]string, len(t.DiseaseSubstitutions)),
		heuristics:           make(map[string][]Heuristic, len(heuristics)),
	}

	for name, group := range t.AllergenGroups {
		kb.allergenGroups[normalizeName(name)] = lowerAll(group)
	}
	for name, rule := range t.Diseases {
		kb.diseases[normalizeName(name)] = DiseaseRule{
			Avoid:               lowerAll(rule.Avoid),
			Limit:               lowerAll(rule.Limit),
			Consequence:         rule.Consequence,
			LongTermConsequence: rule.LongTermConsequence,
		}
	}
	for name, rule := range t.Drugs {
		kb.drugs[normalizeName(name)] = DrugRule{
			Avoid:       lowerAll(rule.Avoid),
			Limit:       lowerAll(rule.Limit),
			Consequence: rule.Consequence,
		}
	}
	for name, triggers := range t.Symptoms {
		kb.symptoms[normalizeName(name)] = lowerAll(triggers)
	}
	for nutrient, limit := range t.NutrientThresholds {
		kb.thresholds[normalizeName(nutrient)] = limit
	}
	for term, subs := range t.Substitutions {
		kb.substitutions[normalizeName(term)] = append([]string(nil), subs...)
	}
	for disease, table := range t.DiseaseSubstitutions {
		copied := make(map[string][]string, len(table))
		for term, subs := range table {
			copied[normalizeName(term)] = append([]string(nil), subs...)
		}
		kb.diseaseSubstitutions[normalizeName(disease)] = copied
	}
	for disease, hs := range heuristics {
		kb.heuristics[normalizeName(disease)] = append([]Heuristic(nil), hs...)
	}
	return kb
}

// LoadKnowledgeBase reads a YAML file and overlays its entries on the default
// tables. Keys present in the file replace the built-in entry of the same name.
func LoadKnowledgeBase(path string) (*KnowledgeBase, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}

	var overlay Tables
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return nil, fmt.Errorf("parse knowledge base: %w", err)
	}

	return NewKnowledgeBase(mergeTables(DefaultTables(), overlay), DefaultHeuristics()), nil
}

// AllergenGroup resolves an allergy name to its synonym keywords. Names without a
// group resolve to themselves, so free-text allergies still match literally.
func (kb *KnowledgeBase) AllergenGroup(name string) []string {
	key := normalizeName(name)
	if key == "" {
		return nil
	}
	if group, ok := kb.allergenGroups[key]; ok {
		return group
	}
	return []string{key}
}

func (kb *KnowledgeBase) HasAllergenGroup(name string) bool {
	_, ok := kb.allergenGroups[normalizeName(name)]
	return ok
}

// Disease returns the rule for a disease name and the canonical key it resolved to.
func (kb *KnowledgeBase) Disease(name string) (DiseaseRule, string, bool) {
	key := resolveAlias(normalizeName(name), kb.diseaseAliases)
	rule, ok := kb.diseases[key]
	return rule, key, ok
}

func (kb *KnowledgeBase) Drug(name string) (DrugRule, string, bool) {
	key := resolveAlias(normalizeName(name), kb.drugAliases)
	rule, ok := kb.drugs[key]
	return rule, key, ok
}

func (kb *KnowledgeBase) SymptomTriggers(name string) ([]string, string, bool) {
	key := resolveAlias(normalizeName(name), kb.symptomAliases)
	triggers, ok := kb.symptoms[key]
	return triggers, key, ok
}

// Threshold is the per-100g level above which a nutrient counts as "high".
func (kb *KnowledgeBase) Threshold(nutrient string) (float64, bool) {
	limit, ok := kb.thresholds[normalizeName(nutrient)]
	return limit, ok
}

func (kb *KnowledgeBase) Heuristics(disease string) []Heuristic {
	return kb.heuristics[normalizeName(disease)]
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func resolveAlias(key string, aliases map[string]string) string {
	if canonical, ok := aliases[key]; ok {
		return canonical
	}
	return key
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if n := normalizeName(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func lowerAliases(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for alias, canonical := range in {
		out[normalizeName(alias)] = normalizeName(canonical)
	}
	return out
}

// mergeTables lays overlay over base. Keys are normalized first so an
// override always replaces the built-in entry regardless of case.
func mergeTables(base, overlay Tables) Tables {
	return Tables{
		AllergenGroups:       overlayMap(base.AllergenGroups, overlay.AllergenGroups),
		Diseases:             overlayMap(base.Diseases, overlay.Diseases),
		DiseaseAliases:       overlayMap(base.DiseaseAliases, overlay.DiseaseAliases),
		Drugs:                overlayMap(base.Drugs, overlay.Drugs),
		DrugAliases:          overlayMap(base.DrugAliases, overlay.DrugAliases),
		Symptoms:             overlayMap(base.Symptoms, overlay.Symptoms),
		SymptomAliases:       overlayMap(base.SymptomAliases, overlay.SymptomAliases),
		NutrientThresholds:   overlayMap(base.NutrientThresholds, overlay.NutrientThresholds),
		Substitutions:        overlayMap(base.Substitutions, overlay.Substitutions),
		DiseaseSubstitutions: overlayMap(base.DiseaseSubstitutions, overlay.DiseaseSubstitutions),
	}
}

func overlayMap[V any](base, overlay map[string]V) map[string]V {
	out := make(map[string]V, len(base)+len(overlay))
	for k, v := range base {
		out[normalizeName(k)] = v
	}
	for k, v := range overlay {
		out[normalizeName(k)] = v
	}
	return out
}
