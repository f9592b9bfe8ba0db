// Package renderer turns portfolio reports into markdown documents.
package renderer

import "fmt"

// percent formats a percentage figure for a table cell.
func percent(v float64) string { return fmt.Sprintf("%.2f%%", v) }

// signedPercent formats a percentage with an explicit sign.
func signedPercent(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}
