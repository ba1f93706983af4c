package gdpr

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"
)

// NewConsentID returns a consent record identifier of the form
// "CONSENT_20250114153000_3F9A2C41": a timestamp plus a random tail so two
// consents granted in the same second stay distinct.
func NewConsentID(now time.Time) (string, error) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("consent id: %w", err)
	}
	return "CONSENT_" + now.Format("20060102150405") + "_" + strings.ToUpper(hex.EncodeToString(buf)), nil
}
