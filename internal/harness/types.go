package harness

// CaseReport holds the derived readings for one epoch case. Every
// field comes from the engine under test, not from the scenario, so
// golden snapshots capture actual conversion behavior.
type CaseReport struct {
	Epoch        int64  `json:"epoch"`
	Nanos        int64  `json:"nanos"`
	UTC          string `json:"utc"`
	Weekday      string `json:"weekday"`
	Month        string `json:"month"`
	ISOWeek      string `json:"iso_week"`
	YearDay      int    `json:"year_day"`
	Leap         bool   `json:"leap"`
	Local        string `json:"local"`
	LocalWeekday string `json:"local_weekday"`
	Offset       string `json:"offset"`
	Daylight     bool   `json:"daylight"`
	Formatted    string `json:"formatted"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass indicates every stated expectation matched.
	Pass bool `json:"pass"`

	// Zone is the resolved zone label for the run.
	Zone string `json:"zone"`

	// Reports holds the derived readings in case order.
	Reports []CaseReport `json:"reports"`

	// Errors lists expectation mismatches. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result for the given zone label.
func NewResult(zone string) *Result {
	return &Result{
		Pass:    true,
		Zone:    zone,
		Reports: []CaseReport{},
		Errors:  []string{},
	}
}

// AddError records a mismatch and marks the result as failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}
