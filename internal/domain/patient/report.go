package patient

import (
	"fmt"
	"time"
)

// ReportFilename builds the standardized per-patient report filename, e.g.
// patient_report_42_20250114_153000.pdf. Anonymized exports carry an ANON_
// prefix on the ID so the two report kinds never collide.
func ReportFilename(patientID int, anonymized bool, now time.Time) string {
	ts := now.Format("20060102_150405")
	if anonymized {
		return fmt.Sprintf("patient_report_ANON_%d_%s.pdf", patientID, ts)
	}
	return fmt.Sprintf("patient_report_%d_%s.pdf", patientID, ts)
}
