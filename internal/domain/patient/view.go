package patient

import (
	"github.com/abdullahshafiq-20/RBAC-Management-IS/internal/platform/auth"
)

// FilterForRole returns the subset of records the role may list at all.
// Doctors see only records that have been anonymized; admins and
// receptionists see every record. The result is a fresh slice.
func FilterForRole(recs []Record, role auth.Role) []Record {
	if role != auth.RoleDoctor {
		return append([]Record(nil), recs...)
	}
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		if r.IsAnonymized {
			out = append(out, r)
		}
	}
	return out
}

// ListForRole filters then masks, producing the record list exactly as the
// role's dashboard shows it.
func ListForRole(recs []Record, role auth.Role) []Record {
	filtered := FilterForRole(recs, role)
	out := make([]Record, len(filtered))
	for i, r := range filtered {
		out[i] = MaskForRole(r, role)
	}
	return out
}
