package gdpr

import (
	"strings"
	"testing"
)

func TestAnonymizeName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		patientID int
		want      string
	}{
		{"with id", "John Doe", 1021, "ANON_1021"},
		{"id zero-padded", "Jane Smith", 7, "ANON_0007"},
		{"id wider than padding", "Ali Khan", 123456, "ANON_123456"},
		{"empty name", "", 42, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnonymizeName(tt.input, tt.patientID)
			if got != tt.want {
				t.Errorf("AnonymizeName(%q, %d) = %q, want %q", tt.input, tt.patientID, got, tt.want)
			}
		})
	}

	t.Run("same id is stable", func(t *testing.T) {
		a := AnonymizeName("John Doe", 1021)
		b := AnonymizeName("John Doe", 1021)
		if a != b {
			t.Errorf("expected identical labels, got %q and %q", a, b)
		}
	})

	t.Run("hash label without id", func(t *testing.T) {
		got := AnonymizeName("John Doe", 0)
		if !strings.HasPrefix(got, "ANON_") {
			t.Fatalf("expected ANON_ prefix, got %q", got)
		}
		label := strings.TrimPrefix(got, "ANON_")
		if len(label) != 8 {
			t.Errorf("expected 8-char label, got %q", label)
		}
		if label != strings.ToUpper(label) {
			t.Errorf("expected uppercase label, got %q", label)
		}

		// Deterministic per name, distinct across names.
		if again := AnonymizeName("John Doe", 0); again != got {
			t.Errorf("hash label not stable: %q vs %q", got, again)
		}
		if other := AnonymizeName("Jane Smith", 0); other == got {
			t.Errorf("different names should map to different labels, both %q", got)
		}
	})

	t.Run("negative id falls back to hash label", func(t *testing.T) {
		got := AnonymizeName("John Doe", -3)
		if got != AnonymizeName("John Doe", 0) {
			t.Errorf("negative id should behave like no id, got %q", got)
		}
	})
}

func TestMaskContact(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"international number", "+923001234567", "XXX-XXX-4567"},
		{"formatted number", "(555) 867-5309", "XXX-XXX-5309"},
		{"too few digits", "12", "XXX-XXX-XXXX"},
		{"no digits at all", "call me", "XXX-XXX-XXXX"},
		{"exactly four digits", "1234", "XXX-XXX-1234"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskContact(tt.input)
			if got != tt.want {
				t.Errorf("MaskContact(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"typical address", "john.doe@email.com", "j***@email.com"},
		{"two-char local part", "jo@x.com", "j*@x.com"},
		{"one-char local part", "a@b.com", "a*@b.com"},
		{"three-char local part", "abc@b.com", "a***@b.com"},
		{"no at sign", "no-at-sign", ""},
		{"empty local part", "@x.com", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskEmail(tt.input)
			if got != tt.want {
				t.Errorf("MaskEmail(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAnonymizeAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"street and city", "123 Main St, Karachi", "*****, Karachi"},
		{"multiple commas keeps last segment", "House 5, Block B, Lahore", "*****, Lahore"},
		{"no comma", "NoCommaHere", "*****"},
		{"trailing whitespace trimmed", "12 Elm Road,  Islamabad ", "*****, Islamabad"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnonymizeAddress(tt.input)
			if got != tt.want {
				t.Errorf("AnonymizeAddress(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMaskDiagnosis(t *testing.T) {
	tests := []struct {
		name  string
		input string
		level MaskLevel
		want  string
	}{
		{"full mask", "Diabetes mellitus type 2", MaskFull, "***CONFIDENTIAL***"},
		{"partial keeps first word", "Diabetes mellitus type 2", MaskPartial, "Diabetes ***"},
		{"partial single word unchanged", "Hypertension", MaskPartial, "Hypertension"},
		{"unknown level masks fully", "Asthma attack", MaskLevel("redact"), "***CONFIDENTIAL***"},
		{"empty", "", MaskFull, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskDiagnosis(tt.input, tt.level)
			if got != tt.want {
				t.Errorf("MaskDiagnosis(%q, %q) = %q, want %q", tt.input, tt.level, got, tt.want)
			}
		})
	}
}

func TestAnonymousID(t *testing.T) {
	id, err := AnonymousID("")
	if err != nil {
		t.Fatalf("anonymous id: %v", err)
	}
	if !strings.HasPrefix(id, "PATIENT_") {
		t.Errorf("expected default PATIENT_ prefix, got %q", id)
	}
	tail := strings.TrimPrefix(id, "PATIENT_")
	if len(tail) != 8 {
		t.Errorf("expected 8-char random tail, got %q", tail)
	}
	if tail != strings.ToUpper(tail) {
		t.Errorf("expected uppercase tail, got %q", tail)
	}

	custom, err := AnonymousID("DONOR")
	if err != nil {
		t.Fatalf("anonymous id with prefix: %v", err)
	}
	if !strings.HasPrefix(custom, "DONOR_") {
		t.Errorf("expected DONOR_ prefix, got %q", custom)
	}

	other, err := AnonymousID("")
	if err != nil {
		t.Fatalf("second anonymous id: %v", err)
	}
	if other == id {
		t.Errorf("two generated ids should differ, both %q", id)
	}
}
