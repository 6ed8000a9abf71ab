package statutory

import "github.com/shopspring/decimal"

// ResidencyClass classifies a worker for contribution purposes.
type ResidencyClass string

const (
	// ResidencyFull - citizens and permanent residents past the grace period
	ResidencyFull ResidencyClass = "full"
	// ResidencyGraduated - permanent residents within the first two years
	ResidencyGraduated ResidencyClass = "graduated"
	// ResidencyExempt - foreign workers / work-permit holders
	ResidencyExempt ResidencyClass = "exempt"
)

func (r ResidencyClass) IsValid() bool {
	switch r {
	case ResidencyFull, ResidencyGraduated, ResidencyExempt:
		return true
	}
	return false
}

// BandRate is one age band's contribution rate pair, in percent.
// MaxAge is inclusive: an employee aged exactly MaxAge falls in this band.
type BandRate struct {
	MaxAge   int
	Employee decimal.Decimal
	Employer decimal.Decimal
}

// BandOpenEnded marks the last band of a class (no upper age limit).
const BandOpenEnded = -1

// RateTable holds contribution rates keyed by residency class. Bands must be
// ordered by ascending MaxAge with the open-ended band last.
type RateTable struct {
	Bands map[ResidencyClass][]BandRate
}

// Ceilings holds the wage caps and the low-wage exemption threshold.
type Ceilings struct {
	// OrdinaryMonthly caps the ordinary wage base per month.
	OrdinaryMonthly decimal.Decimal
	// AdditionalAnnual caps the additional wage base per calendar year.
	AdditionalAnnual decimal.Decimal
	// MinWageThreshold - below this combined base, both contributions are zero.
	MinWageThreshold decimal.Decimal
}

// Input is one contribution computation request.
type Input struct {
	OrdinaryWage   decimal.Decimal
	AdditionalWage decimal.Decimal
	// AdditionalWagePaidThisYear reduces the remaining annual headroom for
	// the additional wage base.
	AdditionalWagePaidThisYear decimal.Decimal
	Age                        int
	Residency                  ResidencyClass
}

// Contribution is the computed pair, rounded to cents.
type Contribution struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
}
