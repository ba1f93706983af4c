package gdpr

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Audit action constants. Every event carries exactly one of these.
const (
	ActionLogin     = "login"
	ActionLogout    = "logout"
	ActionAdd       = "add"
	ActionUpdate    = "update"
	ActionView      = "view"
	ActionAnonymize = "anonymize"
	ActionExport    = "export"
	ActionConsent   = "consent"
)

// ValidActions returns the closed set of audit actions.
func ValidActions() []string {
	return []string{
		ActionLogin,
		ActionLogout,
		ActionAdd,
		ActionUpdate,
		ActionView,
		ActionAnonymize,
		ActionExport,
		ActionConsent,
	}
}

// IsValidAction reports whether action is one of the known audit actions.
func IsValidAction(action string) bool {
	for _, a := range ValidActions() {
		if a == action {
			return true
		}
	}
	return false
}

// AuditEvent records one user action against the system. PatientID is nil
// for actions that touch no particular record (login, logout, export).
type AuditEvent struct {
	ID        uuid.UUID `json:"id"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	PatientID *int      `json:"patient_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Message renders the event as a single human-readable log line:
//
//	[2025-01-14 15:30:00] User: drsmith | Action: view | Patient: 42 | Details: ward round
//
// The patient and details segments are omitted when absent.
func (e *AuditEvent) Message() string {
	msg := fmt.Sprintf("[%s] User: %s | Action: %s",
		e.Timestamp.Format("2006-01-02 15:04:05"), e.Username, e.Action)
	if e.PatientID != nil {
		msg += fmt.Sprintf(" | Patient: %d", *e.PatientID)
	}
	if e.Details != "" {
		msg += " | Details: " + e.Details
	}
	return msg
}

// NewLoginEvent creates an AuditEvent for a successful login.
func NewLoginEvent(userID int, username, role string) *AuditEvent {
	return &AuditEvent{
		ID:        uuid.New(),
		UserID:    userID,
		Username:  username,
		Role:      role,
		Action:    ActionLogin,
		Timestamp: time.Now().UTC(),
	}
}

// NewViewEvent creates an AuditEvent for viewing a patient record.
func NewViewEvent(userID int, username, role string, patientID int) *AuditEvent {
	return &AuditEvent{
		ID:        uuid.New(),
		UserID:    userID,
		Username:  username,
		Role:      role,
		Action:    ActionView,
		PatientID: &patientID,
		Timestamp: time.Now().UTC(),
	}
}

// NewAnonymizeEvent creates an AuditEvent for anonymizing a patient record.
func NewAnonymizeEvent(userID int, username, role string, patientID int) *AuditEvent {
	return &AuditEvent{
		ID:        uuid.New(),
		UserID:    userID,
		Username:  username,
		Role:      role,
		Action:    ActionAnonymize,
		PatientID: &patientID,
		Details:   "record anonymized",
		Timestamp: time.Now().UTC(),
	}
}
