package gdpr

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abdullahshafiq-20/RBAC-Management-IS/pkg/pagination"
)

// Audit search page sizes: the compliance console pages through large
// windows, so the caps sit above the package defaults.
const (
	auditDefaultLimit = 100
	auditMaxLimit     = 1000
)

// AuditSearchParams holds filter, pagination, and sort parameters for audit
// trail search. Zero values mean "no filter".
type AuditSearchParams struct {
	UserID    int               `json:"user_id"`
	PatientID int               `json:"patient_id"`
	Action    string            `json:"action"`
	Role      string            `json:"role"`
	StartTime *time.Time        `json:"start_time"`
	EndTime   *time.Time        `json:"end_time"`
	Page      pagination.Params `json:"page"`
	SortBy    string            `json:"sort_by"`
	SortOrder string            `json:"sort_order"`
}

// applyDefaults normalizes search params, applying defaults for limit, sort, etc.
func (p *AuditSearchParams) applyDefaults() {
	p.Page = p.Page.Normalize(auditDefaultLimit, auditMaxLimit)
	if p.SortBy == "" {
		p.SortBy = "timestamp"
	}
	if p.SortOrder == "" {
		p.SortOrder = "desc"
	}
}

// AuditSearchResult contains paginated search results.
type AuditSearchResult struct {
	Events []*AuditEvent `json:"events"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// AuditSummary contains aggregated statistics for audit events.
type AuditSummary struct {
	TotalEvents int            `json:"total_events"`
	ByAction    map[string]int `json:"by_action"`
	ByUser      map[string]int `json:"by_user"`
	ByDay       map[string]int `json:"by_day"` // keyed "2006-01-02"
	TimeRange   struct {
		First time.Time `json:"first"`
		Last  time.Time `json:"last"`
	} `json:"time_range"`
}

// AuditTrail provides concurrency-safe in-memory audit event storage with
// search and aggregation. Every recorded event is also emitted as a
// structured log line, so the trail survives in the log stream even though
// persistence lives outside this layer.
type AuditTrail struct {
	mu     sync.RWMutex
	events []*AuditEvent
	logger zerolog.Logger
}

// NewAuditTrail creates a new empty AuditTrail.
func NewAuditTrail(logger zerolog.Logger) *AuditTrail {
	return &AuditTrail{
		events: make([]*AuditEvent, 0),
		logger: logger.With().Str("component", "audit-trail").Logger(),
	}
}

// Record appends an event to the trail, filling in ID and timestamp when
// unset, and emits it as a structured log line. Thread-safe.
func (t *AuditTrail) Record(e *AuditEvent) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}

	t.mu.Lock()
	t.events = append(t.events, e)
	t.mu.Unlock()

	evt := t.logger.Info().
		Str("event_id", e.ID.String()).
		Str("username", e.Username).
		Str("role", e.Role).
		Str("action", e.Action)
	if e.PatientID != nil {
		evt = evt.Int("patient_id", *e.PatientID)
	}
	if e.Details != "" {
		evt = evt.Str("details", e.Details)
	}
	evt.Msg("audit event")
}

// Len returns the number of recorded events.
func (t *AuditTrail) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.events)
}

// matchEvent returns true if the event matches all non-zero filter criteria.
func matchEvent(e *AuditEvent, params AuditSearchParams) bool {
	if params.UserID != 0 && e.UserID != params.UserID {
		return false
	}
	if params.PatientID != 0 && (e.PatientID == nil || *e.PatientID != params.PatientID) {
		return false
	}
	if params.Action != "" && e.Action != params.Action {
		return false
	}
	if params.Role != "" && e.Role != params.Role {
		return false
	}
	if params.StartTime != nil && e.Timestamp.Before(*params.StartTime) {
		return false
	}
	if params.EndTime != nil && e.Timestamp.After(*params.EndTime) {
		return false
	}
	return true
}

// filterEvents returns the events matching the given params. Caller holds the lock.
func (t *AuditTrail) filterEvents(params AuditSearchParams) []*AuditEvent {
	filtered := make([]*AuditEvent, 0)
	for _, e := range t.events {
		if matchEvent(e, params) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// sortEvents sorts events in place by the given sort parameters.
func sortEvents(events []*AuditEvent, sortBy, sortOrder string) {
	sort.SliceStable(events, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "user":
			less = events[i].Username < events[j].Username
		case "action":
			less = events[i].Action < events[j].Action
		default: // "timestamp"
			less = events[i].Timestamp.Before(events[j].Timestamp)
		}
		if sortOrder == "desc" {
			return !less
		}
		return less
	})
}

// Search filters, sorts, and paginates audit events.
func (t *AuditTrail) Search(params AuditSearchParams) *AuditSearchResult {
	params.applyDefaults()

	t.mu.RLock()
	filtered := t.filterEvents(params)
	t.mu.RUnlock()

	sortEvents(filtered, params.SortBy, params.SortOrder)

	total := len(filtered)
	start, end := params.Page.Bounds(total)

	return &AuditSearchResult{
		Events: filtered[start:end],
		Total:  total,
		Limit:  params.Page.Limit,
		Offset: params.Page.Offset,
	}
}

// Summary computes aggregate statistics for matching events: totals per
// action, per user, and per calendar day, plus the covered time range.
func (t *AuditTrail) Summary(params AuditSearchParams) *AuditSummary {
	t.mu.RLock()
	filtered := t.filterEvents(params)
	t.mu.RUnlock()

	summary := &AuditSummary{
		TotalEvents: len(filtered),
		ByAction:    make(map[string]int),
		ByUser:      make(map[string]int),
		ByDay:       make(map[string]int),
	}

	for i, e := range filtered {
		summary.ByAction[e.Action]++
		summary.ByUser[e.Username]++
		summary.ByDay[e.Timestamp.Format("2006-01-02")]++

		if i == 0 {
			summary.TimeRange.First = e.Timestamp
			summary.TimeRange.Last = e.Timestamp
		} else {
			if e.Timestamp.Before(summary.TimeRange.First) {
				summary.TimeRange.First = e.Timestamp
			}
			if e.Timestamp.After(summary.TimeRange.Last) {
				summary.TimeRange.Last = e.Timestamp
			}
		}
	}

	return summary
}

// GetEvent returns a single audit event by ID, or nil if not found.
func (t *AuditTrail) GetEvent(id uuid.UUID) *AuditEvent {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, e := range t.events {
		if e.ID == id {
			return e
		}
	}
	return nil
}
