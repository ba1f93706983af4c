package patient

import (
	"reflect"
	"testing"

	"github.com/abdullahshafiq-20/RBAC-Management-IS/internal/platform/auth"
)

func TestMaskForRole_Admin(t *testing.T) {
	rec := sampleRecord()
	masked := MaskForRole(rec, auth.RoleAdmin)

	if !reflect.DeepEqual(masked, rec) {
		t.Errorf("admin view must be unchanged: got %+v", masked)
	}
	if masked.Email == rec.Email {
		t.Error("admin view must still be a copy, not an alias")
	}
}

func TestMaskForRole_Doctor(t *testing.T) {
	rec := sampleRecord()
	masked := MaskForRole(rec, auth.RoleDoctor)

	if masked.Name != "ANON_6CEA57C2" {
		t.Errorf("expected hash-derived name label, got %q", masked.Name)
	}
	if masked.Contact != "XXX-XXX-4567" {
		t.Errorf("expected masked contact, got %q", masked.Contact)
	}
	if masked.Email == nil || *masked.Email != "j***@email.com" {
		t.Errorf("expected masked email, got %v", masked.Email)
	}
	if masked.Diagnosis != rec.Diagnosis {
		t.Errorf("diagnosis must stay intact for doctors, got %q", masked.Diagnosis)
	}
	if masked.BloodGroup != rec.BloodGroup {
		t.Errorf("blood group must stay intact for doctors, got %q", masked.BloodGroup)
	}
}

func TestMaskForRole_DoctorPrefersStoredLabel(t *testing.T) {
	rec := sampleRecord()
	rec.AnonymizedName = strPtr("ANON_1021")

	masked := MaskForRole(rec, auth.RoleDoctor)
	if masked.Name != "ANON_1021" {
		t.Errorf("expected stored anonymized name, got %q", masked.Name)
	}
}

func TestMaskForRole_DoctorEmailEdgeCases(t *testing.T) {
	rec := sampleRecord()
	rec.Email = nil
	if masked := MaskForRole(rec, auth.RoleDoctor); masked.Email != nil {
		t.Errorf("expected nil email to stay nil, got %v", *masked.Email)
	}

	rec.Email = strPtr("not-an-email")
	if masked := MaskForRole(rec, auth.RoleDoctor); masked.Email != nil {
		t.Errorf("expected unmaskable email to become nil, got %v", *masked.Email)
	}
}

func TestMaskForRole_Receptionist(t *testing.T) {
	rec := sampleRecord()
	masked := MaskForRole(rec, auth.RoleReceptionist)

	if masked.Diagnosis != RestrictedDiagnosis {
		t.Errorf("expected restricted diagnosis, got %q", masked.Diagnosis)
	}
	if masked.Address == nil || *masked.Address != "*****, Karachi" {
		t.Errorf("expected anonymized address, got %v", masked.Address)
	}
	if masked.Name != rec.Name {
		t.Errorf("name must stay intact for receptionists, got %q", masked.Name)
	}
	if masked.Contact != rec.Contact {
		t.Errorf("contact must stay intact for receptionists, got %q", masked.Contact)
	}
	if masked.Email == nil || *masked.Email != *rec.Email {
		t.Errorf("email must stay intact for receptionists, got %v", masked.Email)
	}
}

func TestMaskForRole_ReceptionistNilAddress(t *testing.T) {
	rec := sampleRecord()
	rec.Address = nil
	masked := MaskForRole(rec, auth.RoleReceptionist)
	if masked.Address != nil {
		t.Errorf("expected nil address to stay nil, got %v", *masked.Address)
	}
}

func TestMaskForRole_UnknownRoleMostRestrictive(t *testing.T) {
	rec := sampleRecord()
	masked := MaskForRole(rec, auth.Role("intern"))

	if masked.Name == rec.Name {
		t.Error("unknown role must not see the raw name")
	}
	if masked.Contact != "XXX-XXX-4567" {
		t.Errorf("unknown role must see the masked contact, got %q", masked.Contact)
	}
	if masked.Diagnosis != RestrictedDiagnosis {
		t.Errorf("unknown role must see the restricted diagnosis, got %q", masked.Diagnosis)
	}
	if masked.Address == nil || *masked.Address != "*****, Karachi" {
		t.Errorf("unknown role must see the anonymized address, got %v", masked.Address)
	}
}

func TestMaskForRole_NeverMutatesInput(t *testing.T) {
	for _, role := range []auth.Role{auth.RoleAdmin, auth.RoleDoctor, auth.RoleReceptionist, auth.Role("intern")} {
		t.Run(string(role), func(t *testing.T) {
			rec := sampleRecord()
			before := rec.Clone()
			_ = MaskForRole(rec, role)
			if !reflect.DeepEqual(rec, before) {
				t.Errorf("MaskForRole mutated its input for role %q", role)
			}
		})
	}
}
