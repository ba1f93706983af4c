package patient

import (
	"strings"
	"testing"
	"time"
)

func validInput() NewRecordInput {
	return NewRecordInput{
		Name:         "John Doe",
		Contact:      "+923001234567",
		Email:        "john.doe@email.com",
		Address:      "123 Main St, Karachi",
		Diagnosis:    "Type 2 Diabetes",
		BloodGroup:   "B+",
		ConsentGiven: true,
	}
}

func TestNewRecordInput_ValidateOK(t *testing.T) {
	if err := validInput().Validate(); err != nil {
		t.Errorf("expected valid input to pass, got %v", err)
	}
}

func TestNewRecordInput_ValidateCollectsAllFailures(t *testing.T) {
	err := NewRecordInput{}.Validate()
	if err == nil {
		t.Fatal("expected error for empty input")
	}
	msg := err.Error()
	for _, field := range []string{"name", "contact", "diagnosis", "blood_group", "consent"} {
		if !strings.Contains(msg, field) {
			t.Errorf("expected error to mention %q, got %q", field, msg)
		}
	}
}

func TestNewRecordInput_ValidateFieldFormats(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NewRecordInput)
		field  string
	}{
		{"bad contact format", func(in *NewRecordInput) { in.Contact = "0300-1234567" }, "contact"},
		{"bad email format", func(in *NewRecordInput) { in.Email = "not-an-email" }, "email"},
		{"unknown blood group", func(in *NewRecordInput) { in.BloodGroup = "C+" }, "blood_group"},
		{"missing consent", func(in *NewRecordInput) { in.ConsentGiven = false }, "consent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := in.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error to mention %q, got %q", tt.field, err.Error())
			}
		})
	}
}

func TestNewRecordInput_EmailOptional(t *testing.T) {
	in := validInput()
	in.Email = ""
	if err := in.Validate(); err != nil {
		t.Errorf("expected empty email to be allowed, got %v", err)
	}
}

func TestNewRecord(t *testing.T) {
	now := time.Date(2025, 1, 14, 15, 30, 0, 0, time.UTC)
	rec, err := NewRecord(validInput(), 3, now, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Name != "John Doe" {
		t.Errorf("unexpected name: %q", rec.Name)
	}
	if rec.AddedBy != 3 {
		t.Errorf("expected AddedBy 3, got %d", rec.AddedBy)
	}
	if !rec.DateAdded.Equal(now) {
		t.Errorf("expected DateAdded %v, got %v", now, rec.DateAdded)
	}
	wantRetention := now.AddDate(0, 0, 365)
	if rec.RetentionDate == nil || !rec.RetentionDate.Equal(wantRetention) {
		t.Errorf("expected default retention %v, got %v", wantRetention, rec.RetentionDate)
	}
	if rec.Email == nil || *rec.Email != "john.doe@email.com" {
		t.Errorf("expected email pointer set, got %v", rec.Email)
	}
	if rec.Address == nil || *rec.Address != "123 Main St, Karachi" {
		t.Errorf("expected address pointer set, got %v", rec.Address)
	}
	if rec.IsAnonymized {
		t.Error("fresh record must not be flagged anonymized")
	}
	if rec.ID != 0 {
		t.Errorf("fresh record must carry no ID, got %d", rec.ID)
	}
}

func TestNewRecord_SanitizesFreeText(t *testing.T) {
	now := time.Date(2025, 1, 14, 15, 30, 0, 0, time.UTC)
	in := validInput()
	in.Name = "O'Brien; John"
	in.Diagnosis = `Flu; "severe"`
	in.Address = `12\Backstreet, Lahore`

	rec, err := NewRecord(in, 3, now, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Name != "OBrien John" {
		t.Errorf("expected sanitized name, got %q", rec.Name)
	}
	if rec.Diagnosis != "Flu severe" {
		t.Errorf("expected sanitized diagnosis, got %q", rec.Diagnosis)
	}
	if rec.Address == nil || *rec.Address != "12Backstreet, Lahore" {
		t.Errorf("expected sanitized address, got %v", rec.Address)
	}
}

func TestNewRecord_CustomRetention(t *testing.T) {
	now := time.Date(2025, 1, 14, 15, 30, 0, 0, time.UTC)
	rec, err := NewRecord(validInput(), 3, now, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := now.AddDate(0, 0, 30)
	if rec.RetentionDate == nil || !rec.RetentionDate.Equal(want) {
		t.Errorf("expected retention %v, got %v", want, rec.RetentionDate)
	}
}

func TestNewRecord_InvalidInput(t *testing.T) {
	now := time.Date(2025, 1, 14, 15, 30, 0, 0, time.UTC)
	rec, err := NewRecord(NewRecordInput{}, 3, now, 0)
	if err == nil {
		t.Fatal("expected error for invalid input")
	}
	if rec.ID != 0 || rec.Name != "" {
		t.Errorf("expected zero record on error, got %+v", rec)
	}
}
