package food

import (
	"FoodGuard-Backend/domain"
	"time"
)

type ExpiryInfo struct {
	IsExpired       bool
	DaysUntilExpiry int
	Status          string
}

// ComputeExpiry compares calendar days, so an item expiring later today is
// "expiring-today" regardless of the clock time.
func ComputeExpiry(expiry, now time.Time) ExpiryInfo {
	days := int(day(expiry).Sub(day(now)).Hours() / 24)

	info := ExpiryInfo{DaysUntilExpiry: days, IsExpired: days < 0}
	switch {
	case days < 0:
		info.Status = domain.ExpiryStatusExpired
	case days == 0:
		info.Status = domain.ExpiryStatusExpiringToday
	case days <= 3:
		info.Status = domain.ExpiryStatusExpiringSoon
	case days <= 7:
		info.Status = domain.ExpiryStatusExpiringWeek
	default:
		info.Status = domain.ExpiryStatusSafe
	}
	return info
}

// ExpiryRange turns an expiry tier into the [from, before) expiry_date window
// that selects it. ok is false for unknown tiers.
func ExpiryRange(status string, now time.Time) (from, before *time.Time, ok bool) {
	today := day(now)
	at := func(offset int) *time.Time {
		t := today.AddDate(0, 0, offset)
		return &t
	}

	switch status {
	case domain.ExpiryStatusExpired:
		return nil, at(0), true
	case domain.ExpiryStatusExpiringToday:
		return at(0), at(1), true
	case domain.ExpiryStatusExpiringSoon:
		return at(1), at(4), true
	case domain.ExpiryStatusExpiringWeek:
		return at(4), at(8), true
	case domain.ExpiryStatusSafe:
		return at(8), nil, true
	}
	return nil, nil, false
}

// day drops the clock, keeping the calendar date as seen in t's own location.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
