package auth

import (
	"fmt"
	"strings"
)

// Role is the closed set of dashboard roles. The zero value is not valid.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleReceptionist Role = "receptionist"
)

// AllRoles returns every valid role.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleDoctor, RoleReceptionist}
}

// ParseRole parses a role name case-insensitively. Unknown names are an
// error rather than a silent default.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleDoctor:
		return RoleDoctor, nil
	case RoleReceptionist:
		return RoleReceptionist, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleReceptionist:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// CanViewAuditLog reports whether the role may open the audit log viewer.
func (r Role) CanViewAuditLog() bool { return r == RoleAdmin }

// CanAnonymize reports whether the role may anonymize patient records.
func (r Role) CanAnonymize() bool { return r == RoleAdmin }

// CanExport reports whether the role may export record sets.
func (r Role) CanExport() bool { return r == RoleAdmin }

// CanManageRecords reports whether the role may register or edit patient
// records.
func (r Role) CanManageRecords() bool { return r == RoleAdmin || r == RoleReceptionist }

// CanViewClinicalData reports whether the role may see diagnosis and other
// clinical fields. Receptionists handle identity data only.
func (r Role) CanViewClinicalData() bool { return r == RoleAdmin || r == RoleDoctor }
