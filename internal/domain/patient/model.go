// Package patient holds the patient record model and the role-based
// transformations applied before any record leaves the data layer.
package patient

import "time"

// Record maps to the patients table. Optional fields are pointers so the
// model round-trips SQL NULLs without sentinel values.
type Record struct {
	ID                int        `db:"patient_id" json:"id"`
	Name              string     `db:"name" json:"name"`
	Contact           string     `db:"contact" json:"contact"`
	Email             *string    `db:"email" json:"email,omitempty"`
	DateOfBirth       *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Address           *string    `db:"address" json:"address,omitempty"`
	Diagnosis         string     `db:"diagnosis" json:"diagnosis"`
	BloodGroup        string     `db:"blood_group" json:"blood_group"`
	ConsentGiven      bool       `db:"consent_given" json:"consent_given"`
	RetentionDate     *time.Time `db:"data_retention_date" json:"data_retention_date,omitempty"`
	AnonymizedName    *string    `db:"anonymized_name" json:"anonymized_name,omitempty"`
	AnonymizedContact *string    `db:"anonymized_contact" json:"anonymized_contact,omitempty"`
	AnonymizedEmail   *string    `db:"anonymized_email" json:"anonymized_email,omitempty"`
	IsAnonymized      bool       `db:"is_anonymized" json:"is_anonymized"`
	DateAdded         time.Time  `db:"date_added" json:"date_added"`
	AddedBy           int        `db:"added_by" json:"added_by"`
}

// Clone returns a deep copy with fresh pointer cells, so transforming the
// copy never aliases the original.
func (r Record) Clone() Record {
	out := r
	out.Email = copyStr(r.Email)
	out.DateOfBirth = copyTime(r.DateOfBirth)
	out.Address = copyStr(r.Address)
	out.RetentionDate = copyTime(r.RetentionDate)
	out.AnonymizedName = copyStr(r.AnonymizedName)
	out.AnonymizedContact = copyStr(r.AnonymizedContact)
	out.AnonymizedEmail = copyStr(r.AnonymizedEmail)
	return out
}

func copyStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyTime(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
