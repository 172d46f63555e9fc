package notification

import (
	"FoodGuard-Backend/domain"
	"FoodGuard-Backend/entities"
	"FoodGuard-Backend/pkg/food"
	"FoodGuard-Backend/pkg/risk"
	"fmt"
	"strings"
	"time"
)

const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityMedium   = "MEDIUM"
	SeverityLow      = "LOW"
)

type (
	AlertFoodItem struct {
		ID         string     `json:"id,omitempty"`
		Name       string     `json:"name"`
		Brand      string     `json:"brand,omitempty"`
		ExpiryDate *time.Time `json:"expiryDate,omitempty"`
	}

	// Alert is the payload handed to every delivery channel.
	Alert struct {
		Type            string          `json:"type"`
		UserID          string          `json:"userId"`
		FoodItemID      string          `json:"foodItemId,omitempty"`
		SeverityLabel   string          `json:"severityLabel"`
		Title           string          `json:"title"`
		Message         string          `json:"message"`
		FoodItems       []AlertFoodItem `json:"foodItems"`
		Recommendations []string        `json:"recommendations"`
		// Channels lists the external channels (sms, whatsapp, push) the user opted into.
		Channels  []string  `json:"channels,omitempty"`
		CreatedAt time.Time `json:"createdAt"`
	}
)

// SeverityLabel maps a verdict level to the label shown to users. Safe has none.
func SeverityLabel(s risk.Severity) string {
	switch s {
	case risk.Harmful:
		return SeverityCritical
	case risk.Risky:
		return SeverityHigh
	case risk.Moderate:
		return SeverityMedium
	}
	return ""
}

// BuildRiskAlert returns nil for a safe verdict.
func BuildRiskAlert(user *entities.User, item *entities.FoodItem, verdict risk.Verdict) *Alert {
	label := SeverityLabel(verdict.OverallRisk)
	if label == "" {
		return nil
	}

	var title string
	switch label {
	case SeverityCritical:
		title = fmt.Sprintf("Critical health alert: %s", item.Name)
	case SeverityHigh:
		title = fmt.Sprintf("Health warning: %s", item.Name)
	default:
		title = fmt.Sprintf("Health notice: %s", item.Name)
	}

	message := risk.Headline(verdict.OverallRisk)
	if found := foundTerms(verdict); len(found) > 0 {
		message = fmt.Sprintf("%s contains %s. %s", item.Name, strings.Join(found, ", "), message)
	}

	return &Alert{
		Type:          domain.NotificationTypeRiskAlert,
		UserID:        user.ID.String(),
		FoodItemID:    item.ID.String(),
		SeverityLabel: label,
		Title:         title,
		Message:       message,
		FoodItems: []AlertFoodItem{{
			ID:         item.ID.String(),
			Name:       item.Name,
			Brand:      item.Brand,
			ExpiryDate: nonZeroTime(item.ExpiryDate),
		}},
		Recommendations: append([]string(nil), verdict.Recommendations...),
	}
}

// BuildExpiryDigest lists expired and soon-to-expire items. It returns nil when
// none of items is expired or expiring within three days.
func BuildExpiryDigest(user *entities.User, items []*entities.FoodItem, now time.Time) *Alert {
	alert := &Alert{
		Type:            domain.NotificationTypeExpiryDigest,
		UserID:          user.ID.String(),
		SeverityLabel:   SeverityLow,
		FoodItems:       []AlertFoodItem{},
		Recommendations: []string{},
	}

	var expired, today, soon int
	for _, item := range items {
		info := food.ComputeExpiry(item.ExpiryDate, now)
		switch info.Status {
		case domain.ExpiryStatusExpired:
			expired++
			alert.Recommendations = append(alert.Recommendations,
				fmt.Sprintf("Discard %s: it expired %d day(s) ago", item.Name, -info.DaysUntilExpiry))
		case domain.ExpiryStatusExpiringToday:
			today++
			alert.Recommendations = append(alert.Recommendations, fmt.Sprintf("Use %s today", item.Name))
		case domain.ExpiryStatusExpiringSoon:
			soon++
			alert.Recommendations = append(alert.Recommendations,
				fmt.Sprintf("Use %s within %d day(s)", item.Name, info.DaysUntilExpiry))
		default:
			continue
		}
		alert.FoodItems = append(alert.FoodItems, AlertFoodItem{
			ID:         item.ID.String(),
			Name:       item.Name,
			Brand:      item.Brand,
			ExpiryDate: nonZeroTime(item.ExpiryDate),
		})
	}

	total := expired + today + soon
	if total == 0 {
		return nil
	}

	switch {
	case expired > 0:
		alert.SeverityLabel = SeverityHigh
	case today > 0:
		alert.SeverityLabel = SeverityMedium
	}
	alert.Title = fmt.Sprintf("%d item(s) in your inventory need attention", total)
	alert.Message = fmt.Sprintf("%d expired, %d expiring today, %d expiring within 3 days.", expired, today, soon)
	return alert
}

// foundTerms collects the distinct matched ingredients across all findings.
func foundTerms(v risk.Verdict) []string {
	seen := map[string]bool{}
	var out []string
	for _, f := range v.All() {
		if f.Found == "" || seen[f.Found] {
			continue
		}
		seen[f.Found] = true
		out = append(out, f.Found)
	}
	return out
}

func nonZeroTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
