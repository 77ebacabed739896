package batch

// maxExitCode is the largest status a process can report.
const maxExitCode = 255

// Outcome counts the failed units of work in a batch.
type Outcome struct {
	Errors int
}

// Fail records one failed unit of work.
func (o *Outcome) Fail() {
	o.Errors++
}

// Add merges the failures of another outcome.
func (o *Outcome) Add(other Outcome) {
	o.Errors += other.Errors
}

// OK reports whether nothing failed.
func (o Outcome) OK() bool {
	return o.Errors == 0
}

// ExitCode returns the failure count clamped to a valid process status.
func (o Outcome) ExitCode() int {
	return min(o.Errors, maxExitCode)
}
