package domain

import (
	"math"
	"time"
)

// Derived statuses are computed from stored dates on every read and are
// never persisted; callers pass "now" from the injected clock so the values
// cannot go stale and tests can pin time.

type WarrantyStatus string

const (
	WarrantyNone    WarrantyStatus = "no_warranty"
	WarrantyActive  WarrantyStatus = "under_warranty"
	WarrantyExpired WarrantyStatus = "warranty_expired"
)

type RenewalStatus string

const (
	RenewalInactive     RenewalStatus = "inactive"
	RenewalActive       RenewalStatus = "active"
	RenewalExpiringSoon RenewalStatus = "expiring_soon"
	RenewalExpired      RenewalStatus = "expired"
)

const (
	warrantyExpiringSoonDays = 30
	renewalExpiringSoonDays  = 7
)

// DaysUntil returns the number of calendar days from now until deadline,
// using ceiling division so any part of a day counts as a full day.
// Deadlines in the past yield negative values.
func DaysUntil(now, deadline time.Time) int {
	return int(math.Ceil(deadline.Sub(now).Hours() / 24))
}

// ProjectProgress computes the completion percentage of a task set:
// round(100 * closed / total), and 0 for an empty set.
func ProjectProgress(tasks []Task) int {
	if len(tasks) == 0 {
		return 0
	}
	closed := 0
	for _, t := range tasks {
		if t.Closed() {
			closed++
		}
	}
	return ProgressPercent(closed, len(tasks))
}

// ProgressPercent is the counted form of ProjectProgress for callers that
// aggregate in SQL.
func ProgressPercent(closed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(closed) / float64(total)))
}

func (p Product) WarrantyStatus(now time.Time) WarrantyStatus {
	if p.WarrantyExpiryDate == nil {
		return WarrantyNone
	}
	if p.WarrantyExpiryDate.After(now) {
		return WarrantyActive
	}
	return WarrantyExpired
}

// DaysUntilExpiry reports the calendar days until the warranty expires; ok
// is false when the product carries no warranty date.
func (p Product) DaysUntilExpiry(now time.Time) (days int, ok bool) {
	if p.WarrantyExpiryDate == nil {
		return 0, false
	}
	return DaysUntil(now, *p.WarrantyExpiryDate), true
}

// WarrantyExpiringSoon highlights products whose warranty lapses within the
// next 30 days.
func (p Product) WarrantyExpiringSoon(now time.Time) bool {
	days, ok := p.DaysUntilExpiry(now)
	return ok && days > 0 && days <= warrantyExpiringSoonDays
}

func (s Subscription) RenewalStatus(now time.Time) RenewalStatus {
	if !s.IsActive {
		return RenewalInactive
	}
	if s.NextRenewalDate == nil {
		return RenewalActive
	}
	days := DaysUntil(now, *s.NextRenewalDate)
	switch {
	case days < 0:
		return RenewalExpired
	case days <= renewalExpiringSoonDays:
		return RenewalExpiringSoon
	default:
		return RenewalActive
	}
}

// DaysUntilRenewal reports the calendar days until the next renewal; ok is
// false when no renewal date is set.
func (s Subscription) DaysUntilRenewal(now time.Time) (days int, ok bool) {
	if s.NextRenewalDate == nil {
		return 0, false
	}
	return DaysUntil(now, *s.NextRenewalDate), true
}
