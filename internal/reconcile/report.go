package reconcile

import "fmt"

// UnavailableChecksum is reported as the actual checksum of a file whose
// content could not be read.
const UnavailableChecksum = "null"

// Report is the outcome of reconciling a structure document against the
// filesystem.
type Report struct {
	Valid  bool
	Issues []string
}

func newReport() *Report {
	return &Report{Valid: true, Issues: []string{}}
}

func (r *Report) addIssue(format string, args ...any) {
	r.Issues = append(r.Issues, fmt.Sprintf(format, args...))
	r.Valid = false
}
