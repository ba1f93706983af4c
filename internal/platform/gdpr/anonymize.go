package gdpr

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// MaskLevel selects how aggressively MaskDiagnosis redacts.
type MaskLevel string

const (
	// MaskFull replaces the whole diagnosis.
	MaskFull MaskLevel = "full"
	// MaskPartial keeps the first word only.
	MaskPartial MaskLevel = "partial"
)

// AnonymizeName returns a pseudonymous label for a patient name. With a
// positive patientID the label is stable per patient ("ANON_0042"); otherwise
// it is derived from a hash of the name so the same name always maps to the
// same label. Empty input stays empty.
func AnonymizeName(name string, patientID int) string {
	if name == "" {
		return ""
	}
	if patientID > 0 {
		return fmt.Sprintf("ANON_%04d", patientID)
	}
	sum := sha256.Sum256([]byte(name))
	label := strings.ToUpper(hex.EncodeToString(sum[:])[:8])
	return "ANON_" + label
}

// MaskContact hides a phone number, keeping the last four digits when there
// are at least four ("XXX-XXX-4567"). Shorter or digit-free input masks
// completely. Empty input stays empty.
func MaskContact(contact string) string {
	if contact == "" {
		return ""
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, contact)
	if len(digits) >= 4 {
		return "XXX-XXX-" + digits[len(digits)-4:]
	}
	return "XXX-XXX-XXXX"
}

// MaskEmail hides the local part of an email address, keeping the first
// character and the domain: "john.doe@email.com" becomes "j***@email.com",
// "jo@x.com" becomes "j*@x.com". Input without an '@', or with an empty
// local part, is treated as malformed and maps to empty.
func MaskEmail(email string) string {
	if email == "" || !strings.Contains(email, "@") {
		return ""
	}
	parts := strings.Split(email, "@")
	local := []rune(parts[0])
	domain := parts[1]
	if len(local) == 0 {
		return ""
	}
	if len(local) <= 2 {
		return string(local[0]) + "*@" + domain
	}
	return string(local[0]) + "***@" + domain
}

// AnonymizeAddress hides a street address, keeping only the trailing segment
// after the last comma (typically the city): "*****, Karachi". Addresses
// without a comma mask completely. Empty input stays empty.
func AnonymizeAddress(address string) string {
	if address == "" {
		return ""
	}
	parts := strings.Split(address, ",")
	if len(parts) > 1 {
		return "*****, " + strings.TrimSpace(parts[len(parts)-1])
	}
	return "*****"
}

// MaskDiagnosis redacts a diagnosis. MaskFull replaces it entirely;
// MaskPartial keeps the first word. A single-word diagnosis has nothing
// left to trim under partial masking and is returned unchanged. Unknown
// levels mask fully. Empty input stays empty.
func MaskDiagnosis(diagnosis string, level MaskLevel) string {
	if diagnosis == "" {
		return ""
	}
	if level != MaskPartial {
		return "***CONFIDENTIAL***"
	}
	words := strings.Fields(diagnosis)
	if len(words) > 1 {
		return words[0] + " ***"
	}
	return diagnosis
}

// AnonymousID returns a random identifier of the form "PATIENT_3F9A2C41":
// the prefix, an underscore, and eight uppercase hex characters. An empty
// prefix defaults to "PATIENT".
func AnonymousID(prefix string) (string, error) {
	if prefix == "" {
		prefix = "PATIENT"
	}
	buf := make([]byte, 4)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("anonymous id: %w", err)
	}
	return prefix + "_" + strings.ToUpper(hex.EncodeToString(buf)), nil
}
