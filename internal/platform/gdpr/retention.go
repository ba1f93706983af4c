package gdpr

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Retention state constants.
const (
	RetentionStateActive       = "active"
	RetentionStateExpiringSoon = "expiring_soon"
	RetentionStateExpired      = "expired"
)

// DefaultRetentionDays is the retention period applied when none is
// configured: one year from record creation.
const DefaultRetentionDays = 365

// ExpiryWarningDays is how far ahead of the deadline a record is flagged as
// expiring soon.
const ExpiryWarningDays = 30

// RetentionDeadline computes the date a record's retention period ends.
// Non-positive days fall back to DefaultRetentionDays. Calendar arithmetic:
// the deadline is the same wall-clock time `days` calendar days later.
func RetentionDeadline(createdAt time.Time, days int) time.Time {
	if days <= 0 {
		days = DefaultRetentionDays
	}
	return createdAt.AddDate(0, 0, days)
}

// ClassifyRetention maps a retention deadline to its lifecycle state at the
// given instant. Boundaries close on the earlier state: a deadline exactly
// at now is expired, a deadline exactly ExpiryWarningDays out is
// expiring_soon.
func ClassifyRetention(deadline, now time.Time) string {
	if !deadline.After(now) {
		return RetentionStateExpired
	}
	if !deadline.After(now.AddDate(0, 0, ExpiryWarningDays)) {
		return RetentionStateExpiringSoon
	}
	return RetentionStateActive
}

// RetentionPolicy defines how long data of a specific category is retained.
type RetentionPolicy struct {
	Category      string `json:"category"`
	RetentionDays int    `json:"retention_days"`
	Description   string `json:"description"`
}

// RetentionStatus represents the lifecycle state of a record.
type RetentionStatus struct {
	State         string    `json:"state"` // "active", "expiring_soon", "expired"
	Deadline      time.Time `json:"deadline"`
	DaysRemaining int       `json:"days_remaining"` // negative once expired
	PolicyName    string    `json:"policy_name"`
}

// RetentionSummary holds per-state counts for the compliance dashboard.
type RetentionSummary struct {
	Active       int `json:"active"`
	ExpiringSoon int `json:"expiring_soon"`
	Expired      int `json:"expired"`
}

// DefaultRetentionPolicies returns the retention schedule applied when no
// deployment-specific policies are configured.
//
// GDPR does not fix durations; these reflect the storage-limitation principle
// (Art. 5(1)(e)): hold personal data no longer than its purpose requires, and
// keep the evidence needed to demonstrate compliance.
func DefaultRetentionPolicies() []RetentionPolicy {
	return []RetentionPolicy{
		{
			Category:      "patient_record",
			RetentionDays: 365,
			Description:   "Patient records: one year by default; erase or re-justify after expiry (GDPR Art. 5(1)(e), Art. 17)",
		},
		{
			Category:      "consent_record",
			RetentionDays: 3650, // 10 years
			Description:   "Consent records: kept long-term to demonstrate lawful basis (GDPR Art. 7)",
		},
		{
			Category:      "audit_log",
			RetentionDays: 730, // 2 years
			Description:   "Audit logs: two years for security monitoring and accountability (GDPR Art. 5(1)(f))",
		},
	}
}

// RetentionService evaluates record lifecycle against configured retention
// policies.
type RetentionService struct {
	mu       sync.RWMutex
	policies map[string]RetentionPolicy
	logger   zerolog.Logger
}

// NewRetentionService creates a new RetentionService with the given policies.
func NewRetentionService(policies []RetentionPolicy, logger zerolog.Logger) *RetentionService {
	policyMap := make(map[string]RetentionPolicy, len(policies))
	for _, p := range policies {
		policyMap[p.Category] = p
	}
	return &RetentionService{
		policies: policyMap,
		logger:   logger.With().Str("component", "retention-service").Logger(),
	}
}

// Policy returns the retention policy for a category, or nil if not found.
func (s *RetentionService) Policy(category string) *RetentionPolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.policies[category]
	if !ok {
		return nil
	}
	return &p
}

// AllPolicies returns all configured retention policies.
func (s *RetentionService) AllPolicies() []RetentionPolicy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]RetentionPolicy, 0, len(s.policies))
	for _, p := range s.policies {
		result = append(result, p)
	}
	return result
}

// Deadline computes the retention deadline for a record of the given
// category. Categories without a policy use DefaultRetentionDays: under
// storage limitation every record gets a deadline, never indefinite
// retention.
func (s *RetentionService) Deadline(category string, createdAt time.Time) time.Time {
	s.mu.RLock()
	policy, ok := s.policies[category]
	s.mu.RUnlock()

	if !ok {
		s.logger.Debug().Str("category", category).Msg("no retention policy configured, using default period")
		return RetentionDeadline(createdAt, DefaultRetentionDays)
	}
	return RetentionDeadline(createdAt, policy.RetentionDays)
}

// Check classifies a record's retention state at the given instant and
// reports how many whole days remain before the deadline (negative once
// expired).
func (s *RetentionService) Check(category string, createdAt, now time.Time) RetentionStatus {
	s.mu.RLock()
	policy, ok := s.policies[category]
	s.mu.RUnlock()

	name := category
	days := DefaultRetentionDays
	if ok {
		days = policy.RetentionDays
	} else {
		name = "default"
	}

	deadline := RetentionDeadline(createdAt, days)
	remaining := int(deadline.Sub(now).Hours() / 24)

	return RetentionStatus{
		State:         ClassifyRetention(deadline, now),
		Deadline:      deadline,
		DaysRemaining: remaining,
		PolicyName:    name,
	}
}

// SummarizeRetention counts statuses per lifecycle state.
func SummarizeRetention(statuses []RetentionStatus) RetentionSummary {
	var sum RetentionSummary
	for _, st := range statuses {
		switch st.State {
		case RetentionStateExpired:
			sum.Expired++
		case RetentionStateExpiringSoon:
			sum.ExpiringSoon++
		default:
			sum.Active++
		}
	}
	return sum
}
