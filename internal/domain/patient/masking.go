package patient

import (
	"github.com/abdullahshafiq-20/RBAC-Management-IS/internal/platform/auth"
	"github.com/abdullahshafiq-20/RBAC-Management-IS/internal/platform/gdpr"
)

// RestrictedDiagnosis replaces the diagnosis field for roles without
// clinical data access.
const RestrictedDiagnosis = "***RESTRICTED***"

// MaskForRole returns a role-appropriate copy of the record. The input is
// never mutated; callers keep the raw record for audit purposes.
//
// Admins see the record unchanged. Doctors get anonymized identity fields
// with clinical fields intact. Receptionists get identity fields intact
// with clinical and address data withheld. Unknown roles get the most
// restrictive combination.
func MaskForRole(rec Record, role auth.Role) Record {
	out := rec.Clone()
	switch role {
	case auth.RoleAdmin:
		return out
	case auth.RoleDoctor:
		maskForDoctor(&out)
	case auth.RoleReceptionist:
		maskForReceptionist(&out)
	default:
		maskForDoctor(&out)
		maskForReceptionist(&out)
	}
	return out
}

func maskForDoctor(r *Record) {
	if r.AnonymizedName != nil {
		r.Name = *r.AnonymizedName
	} else {
		r.Name = gdpr.AnonymizeName(r.Name, 0)
	}
	r.Contact = gdpr.MaskContact(r.Contact)
	if r.Email != nil {
		if masked := gdpr.MaskEmail(*r.Email); masked != "" {
			r.Email = &masked
		} else {
			r.Email = nil
		}
	}
	// diagnosis and blood group stay intact
}

func maskForReceptionist(r *Record) {
	r.Diagnosis = RestrictedDiagnosis
	if r.Address != nil {
		anon := gdpr.AnonymizeAddress(*r.Address)
		r.Address = &anon
	}
	// identity fields stay intact
}
