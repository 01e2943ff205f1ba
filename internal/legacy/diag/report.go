package diag

import "fmt"

// Report collects the fatal errors and warnings produced while decoding one file.
// A Report is owned by a single goroutine; callers merge Reports after fan-in.
type Report struct {
	File     string
	Records  int
	Fatals   []error
	Warnings []Warning
}

// NewReport returns an empty Report for file.
func NewReport(file string) *Report {
	return &Report{File: file}
}

// Fatal records a record-fatal error.
//
// Precondition: err is non-nil.
func (r *Report) Fatal(err error) {
	r.Fatals = append(r.Fatals, err)
}

// Warn records a non-fatal finding at pos.
func (r *Report) Warn(kind Kind, pos Position, format string, args ...any) {
	r.Warnings = append(r.Warnings, Warning{Kind: kind, Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

// Add appends w unchanged.
func (r *Report) Add(w Warning) {
	r.Warnings = append(r.Warnings, w)
}

// HasFatal reports whether any record in the file failed.
func (r *Report) HasFatal() bool {
	return len(r.Fatals) > 0
}

// Merge folds other into r.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Records += other.Records
	r.Fatals = append(r.Fatals, other.Fatals...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Summary aggregates counts across many Reports.
type Summary struct {
	Files    int
	Records  int
	Fatals   int
	Warnings int
}

// Add folds r into the summary.
func (s *Summary) Add(r *Report) {
	if r == nil {
		return
	}
	s.Files++
	s.Records += r.Records
	s.Fatals += len(r.Fatals)
	s.Warnings += len(r.Warnings)
}

// OK reports whether no fatal error occurred.
func (s Summary) OK() bool {
	return s.Fatals == 0
}

func (s Summary) String() string {
	return fmt.Sprintf("%d files, %d records, %d fatal, %d warnings", s.Files, s.Records, s.Fatals, s.Warnings)
}
