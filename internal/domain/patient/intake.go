package patient

import (
	"fmt"
	"time"

	"github.com/hengadev/errsx"

	"github.com/abdullahshafiq-20/RBAC-Management-IS/internal/platform/gdpr"
	"github.com/abdullahshafiq-20/RBAC-Management-IS/pkg/validate"
)

// NewRecordInput carries the intake form fields for a new patient record.
type NewRecordInput struct {
	Name         string
	Contact      string
	Email        string
	DateOfBirth  *time.Time
	Address      string
	Diagnosis    string
	BloodGroup   string
	ConsentGiven bool
}

// Validate checks every intake field and reports all failures at once.
func (in NewRecordInput) Validate() error {
	var errs errsx.Map
	if in.Name == "" {
		errs.Set("name", "name is required")
	}
	switch {
	case in.Contact == "":
		errs.Set("contact", "contact is required")
	case !validate.Contact(in.Contact):
		errs.Set("contact", "contact must be 10 to 15 digits with optional leading +")
	}
	if in.Email != "" && !validate.Email(in.Email) {
		errs.Set("email", "email format is invalid")
	}
	if in.Diagnosis == "" {
		errs.Set("diagnosis", "diagnosis is required")
	}
	switch {
	case in.BloodGroup == "":
		errs.Set("blood_group", "blood group is required")
	case !validate.BloodGroup(in.BloodGroup):
		errs.Set("blood_group", "unknown blood group")
	}
	if !in.ConsentGiven {
		errs.Set("consent", "patient consent is required before intake")
	}
	return errs.AsError()
}

// NewRecord validates and sanitizes the intake input and stamps the
// bookkeeping fields. The record carries no ID until the store assigns one.
func NewRecord(in NewRecordInput, addedBy int, now time.Time, retentionDays int) (Record, error) {
	if err := in.Validate(); err != nil {
		return Record{}, fmt.Errorf("validate intake: %w", err)
	}

	retention := gdpr.RetentionDeadline(now, retentionDays)
	rec := Record{
		Name:          validate.Sanitize(in.Name),
		Contact:       in.Contact,
		Diagnosis:     validate.Sanitize(in.Diagnosis),
		BloodGroup:    in.BloodGroup,
		ConsentGiven:  in.ConsentGiven,
		RetentionDate: &retention,
		DateOfBirth:   copyTime(in.DateOfBirth),
		DateAdded:     now,
		AddedBy:       addedBy,
	}
	if in.Email != "" {
		email := in.Email
		rec.Email = &email
	}
	if in.Address != "" {
		addr := validate.Sanitize(in.Address)
		rec.Address = &addr
	}
	return rec, nil
}
