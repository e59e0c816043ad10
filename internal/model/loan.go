package model

// Policy selects how a loan re-amortizes after a capital injection.
type Policy string

const (
	// PolicyNone leaves payment and term untouched.
	PolicyNone Policy = ""
	// PolicyReducePayment recomputes a lower payment over the remaining nominal term.
	PolicyReducePayment Policy = "reduce-payment"
	// PolicyReduceTerm keeps the current payment and shortens the remaining term.
	PolicyReduceTerm Policy = "reduce-term"
)

// Valid reports whether p is one of the known policies.
func (p Policy) Valid() bool {
	switch p {
	case PolicyNone, PolicyReducePayment, PolicyReduceTerm:
		return true
	}
	return false
}

// LoanTerms holds the immutable inputs of a single amortization run.
// The annual rate comes from a rates.Schedule, supplied separately.
type LoanTerms struct {
	Principal  float64
	TermMonths int
}

// Injection is an out-of-schedule extra principal payment. Month is 1-based.
// An injection with Amount 0 but a non-empty Policy only switches the active
// re-amortization policy.
type Injection struct {
	Month  int
	Amount float64
	Policy Policy
}

// MonthRecord is one row of an amortization schedule. Pending is the
// outstanding principal after this month's injection, before the regular
// amortization is subtracted. A terminal record (loan paid off by an
// injection) has Pending, Payment, Interest and Principal all zero.
type MonthRecord struct {
	Month     int
	Rate      float64 // annual rate in force this month, percent
	Pending   float64
	Payment   float64
	Interest  float64
	Principal float64
	Injection float64
}

// Schedule is the ordered month-by-month record of one amortization run.
type Schedule []MonthRecord

// Duration returns the number of months until the loan was settled.
func (s Schedule) Duration() int { return len(s) }

// InitialPayment returns the payment of the first month, 0 for an empty schedule.
func (s Schedule) InitialPayment() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[0].Payment
}

// TotalInterest sums the interest column.
func (s Schedule) TotalInterest() float64 {
	total := 0.0
	for _, r := range s {
		total += r.Interest
	}
	return total
}

// TotalPrincipal sums the regular amortization column, injections excluded.
func (s Schedule) TotalPrincipal() float64 {
	total := 0.0
	for _, r := range s {
		total += r.Principal
	}
	return total
}

// TotalInjected sums the injection column.
func (s Schedule) TotalInjected() float64 {
	total := 0.0
	for _, r := range s {
		total += r.Injection
	}
	return total
}

// TotalPaid is everything handed to the bank: payments plus injections.
func (s Schedule) TotalPaid() float64 {
	total := 0.0
	for _, r := range s {
		total += r.Payment + r.Injection
	}
	return total
}

// SimulationRun tags one schedule with its Monte Carlo trial index and the
// index path that produced it. Runs are independent of each other.
type SimulationRun struct {
	Index    int
	Path     []float64 // monthly index values before spread, nil for fixed runs
	Schedule Schedule
}
