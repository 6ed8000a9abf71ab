package statutory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Compute calculates the employee and employer contributions for one period.
//
// The wage ceilings are applied before rate multiplication: ordinary wage is
// capped at the monthly ceiling, additional wage at the remaining annual
// headroom. If the combined capped base falls below the low-wage threshold,
// both contributions are zero. Each contribution is rounded to cents
// independently, half away from zero.
func Compute(table RateTable, ceilings Ceilings, in Input) (Contribution, error) {
	if !in.Residency.IsValid() {
		return Contribution{}, fmt.Errorf("%w: %q", ErrInvalidResidency, in.Residency)
	}

	rate, err := table.Lookup(in.Residency, in.Age)
	if err != nil {
		return Contribution{}, err
	}

	base := contributionBase(ceilings, in)
	if base.Sign() <= 0 || base.LessThan(ceilings.MinWageThreshold) {
		return Contribution{Employee: decimal.Zero, Employer: decimal.Zero}, nil
	}

	return Contribution{
		Employee: base.Mul(rate.Employee).Div(oneHundred).Round(2),
		Employer: base.Mul(rate.Employer).Div(oneHundred).Round(2),
	}, nil
}

// Lookup finds the rate pair for a residency class and age. An age exactly on
// a band boundary belongs to the lower band.
func (t RateTable) Lookup(residency ResidencyClass, age int) (BandRate, error) {
	bands, ok := t.Bands[residency]
	if !ok || len(bands) == 0 {
		return BandRate{}, fmt.Errorf("%w: class=%s age=%d", ErrRateNotConfigured, residency, age)
	}

	for _, band := range bands {
		if band.MaxAge == BandOpenEnded || age <= band.MaxAge {
			return band, nil
		}
	}

	return BandRate{}, fmt.Errorf("%w: class=%s age=%d", ErrRateNotConfigured, residency, age)
}

// Validate checks the table covers every class it declares with ordered bands.
func (t RateTable) Validate() error {
	if len(t.Bands) == 0 {
		return ErrInvalidRateTable
	}
	for class, bands := range t.Bands {
		if len(bands) == 0 {
			return fmt.Errorf("%w: class %s has no bands", ErrInvalidRateTable, class)
		}
		prev := -1
		for i, band := range bands {
			if band.MaxAge == BandOpenEnded {
				if i != len(bands)-1 {
					return fmt.Errorf("%w: class %s has a non-terminal open-ended band", ErrInvalidRateTable, class)
				}
				continue
			}
			if band.MaxAge <= prev {
				return fmt.Errorf("%w: class %s bands are not in ascending order", ErrInvalidRateTable, class)
			}
			prev = band.MaxAge
		}
		if bands[len(bands)-1].MaxAge != BandOpenEnded {
			return fmt.Errorf("%w: class %s is missing the open-ended band", ErrInvalidRateTable, class)
		}
	}
	return nil
}

func contributionBase(ceilings Ceilings, in Input) decimal.Decimal {
	ordinary := in.OrdinaryWage
	if ordinary.Sign() < 0 {
		ordinary = decimal.Zero
	}
	if ordinary.GreaterThan(ceilings.OrdinaryMonthly) {
		ordinary = ceilings.OrdinaryMonthly
	}

	additional := in.AdditionalWage
	if additional.Sign() < 0 {
		additional = decimal.Zero
	}
	headroom := ceilings.AdditionalAnnual.Sub(in.AdditionalWagePaidThisYear)
	if headroom.Sign() < 0 {
		headroom = decimal.Zero
	}
	if additional.GreaterThan(headroom) {
		additional = headroom
	}

	return ordinary.Add(additional)
}
