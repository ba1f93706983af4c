package patient

import (
	"github.com/abdullahshafiq-20/RBAC-Management-IS/internal/platform/gdpr"
)

// Anonymize returns a copy with the anonymized counterpart fields filled and
// the flag set. The raw identity columns are kept so admins retain full
// access; the role views decide which side a reader sees.
func Anonymize(rec Record) Record {
	out := rec.Clone()

	name := gdpr.AnonymizeName(rec.Name, rec.ID)
	out.AnonymizedName = &name

	contact := gdpr.MaskContact(rec.Contact)
	out.AnonymizedContact = &contact

	out.AnonymizedEmail = nil
	if rec.Email != nil {
		if masked := gdpr.MaskEmail(*rec.Email); masked != "" {
			out.AnonymizedEmail = &masked
		}
	}

	out.IsAnonymized = true
	return out
}
