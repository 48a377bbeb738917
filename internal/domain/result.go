package domain

// RunOutcome represents the result of executing and comparing one case
type RunOutcome struct {
	CaseName    string
	Passed      bool
	Actual      string // Captured stdout, carriage returns stripped
	Expected    string // Snapshot contents, empty when HasExpected is false
	HasExpected bool   // Whether the snapshot file could be read
}

// RunSummary holds pass/fail counters for a batch run
type RunSummary struct {
	Passed int
	Failed int
}

// Record adds an outcome to the summary
func (s *RunSummary) Record(outcome RunOutcome) {
	if outcome.Passed {
		s.Passed++
	} else {
		s.Failed++
	}
}

// Total returns the number of recorded outcomes
func (s RunSummary) Total() int {
	return s.Passed + s.Failed
}
