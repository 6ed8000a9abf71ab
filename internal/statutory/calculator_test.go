package statutory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() RateTable {
	return RateTable{
		Bands: map[ResidencyClass][]BandRate{
			ResidencyFull: {
				{MaxAge: 55, Employee: decimal.RequireFromString("20"), Employer: decimal.RequireFromString("17")},
				{MaxAge: 60, Employee: decimal.RequireFromString("17"), Employer: decimal.RequireFromString("15.5")},
				{MaxAge: 65, Employee: decimal.RequireFromString("11.5"), Employer: decimal.RequireFromString("12")},
				{MaxAge: 70, Employee: decimal.RequireFromString("7.5"), Employer: decimal.RequireFromString("9")},
				{MaxAge: BandOpenEnded, Employee: decimal.RequireFromString("5"), Employer: decimal.RequireFromString("7.5")},
			},
			ResidencyGraduated: {
				{MaxAge: 55, Employee: decimal.RequireFromString("15"), Employer: decimal.RequireFromString("9")},
				{MaxAge: BandOpenEnded, Employee: decimal.RequireFromString("5"), Employer: decimal.RequireFromString("3.5")},
			},
			ResidencyExempt: {
				{MaxAge: BandOpenEnded, Employee: decimal.Zero, Employer: decimal.Zero},
			},
		},
	}
}

func testCeilings() Ceilings {
	return Ceilings{
		OrdinaryMonthly:  decimal.RequireFromString("6000"),
		AdditionalAnnual: decimal.RequireFromString("102000"),
		MinWageThreshold: decimal.RequireFromString("500"),
	}
}

func TestCompute_FullRateUnderCeiling(t *testing.T) {
	t.Parallel()

	// Age 40 citizen, ordinary 5000, ceiling 6000: full-rate band, no clipping
	got, err := Compute(testTable(), testCeilings(), Input{
		OrdinaryWage: decimal.RequireFromString("5000"),
		Age:          40,
		Residency:    ResidencyFull,
	})

	require.NoError(t, err)
	assert.True(t, got.Employee.Equal(decimal.RequireFromString("1000")), "employee contribution: got %s", got.Employee)
	assert.True(t, got.Employer.Equal(decimal.RequireFromString("850")), "employer contribution: got %s", got.Employer)
}

func TestCompute_AgeBandBoundaries(t *testing.T) {
	t.Parallel()

	table := testTable()
	ceilings := testCeilings()
	wage := decimal.RequireFromString("1000")

	cases := []struct {
		name     string
		age      int
		employee string
	}{
		{"age 55 uses the <=55 band", 55, "200"},
		{"age 56 uses the 55-60 band", 56, "170"},
		{"age 60 uses the 55-60 band", 60, "170"},
		{"age 61 uses the 60-65 band", 61, "115"},
		{"age 65 uses the 60-65 band", 65, "115"},
		{"age 70 uses the 65-70 band", 70, "75"},
		{"age 71 uses the open-ended band", 71, "50"},
		{"age 90 uses the open-ended band", 90, "50"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Compute(table, ceilings, Input{
				OrdinaryWage: wage,
				Age:          tc.age,
				Residency:    ResidencyFull,
			})
			require.NoError(t, err)
			assert.True(t, got.Employee.Equal(decimal.RequireFromString(tc.employee)),
				"age %d: got %s, want %s", tc.age, got.Employee, tc.employee)
		})
	}
}

func TestCompute_OrdinaryCeilingIsMonotonicThenFlat(t *testing.T) {
	t.Parallel()

	table := testTable()
	ceilings := testCeilings()

	atCeiling, err := Compute(table, ceilings, Input{
		OrdinaryWage: decimal.RequireFromString("6000"),
		Age:          40,
		Residency:    ResidencyFull,
	})
	require.NoError(t, err)

	for _, wage := range []string{"6001", "8000", "20000"} {
		aboveCeiling, err := Compute(table, ceilings, Input{
			OrdinaryWage: decimal.RequireFromString(wage),
			Age:          40,
			Residency:    ResidencyFull,
		})
		require.NoError(t, err)
		assert.True(t, aboveCeiling.Employee.Equal(atCeiling.Employee),
			"wage %s above ceiling must not change the employee contribution", wage)
		assert.True(t, aboveCeiling.Employer.Equal(atCeiling.Employer),
			"wage %s above ceiling must not change the employer contribution", wage)
	}
}

func TestCompute_AdditionalWageAnnualHeadroom(t *testing.T) {
	t.Parallel()

	table := testTable()
	ceilings := testCeilings()

	// 101,000 already paid this year leaves 1,000 of headroom.
	got, err := Compute(table, ceilings, Input{
		OrdinaryWage:               decimal.RequireFromString("3000"),
		AdditionalWage:             decimal.RequireFromString("2500"),
		AdditionalWagePaidThisYear: decimal.RequireFromString("101000"),
		Age:                        30,
		Residency:                  ResidencyFull,
	})
	require.NoError(t, err)

	// Base is 3000 + min(2500, 1000) = 4000
	assert.True(t, got.Employee.Equal(decimal.RequireFromString("800")), "got %s", got.Employee)
}

func TestCompute_LowWageThresholdZeroesBoth(t *testing.T) {
	t.Parallel()

	got, err := Compute(testTable(), testCeilings(), Input{
		OrdinaryWage:   decimal.RequireFromString("300"),
		AdditionalWage: decimal.RequireFromString("100"),
		Age:            40,
		Residency:      ResidencyFull,
	})

	require.NoError(t, err)
	assert.True(t, got.Employee.IsZero())
	assert.True(t, got.Employer.IsZero())
}

func TestCompute_ZeroOrNegativeBaseYieldsZero(t *testing.T) {
	t.Parallel()

	for _, wage := range []string{"0", "-100"} {
		got, err := Compute(testTable(), testCeilings(), Input{
			OrdinaryWage: decimal.RequireFromString(wage),
			Age:          40,
			Residency:    ResidencyFull,
		})
		require.NoError(t, err)
		assert.True(t, got.Employee.IsZero(), "wage %s", wage)
		assert.True(t, got.Employer.IsZero(), "wage %s", wage)
	}
}

func TestCompute_ExemptClassContributesNothing(t *testing.T) {
	t.Parallel()

	got, err := Compute(testTable(), testCeilings(), Input{
		OrdinaryWage: decimal.RequireFromString("4500"),
		Age:          35,
		Residency:    ResidencyExempt,
	})

	require.NoError(t, err)
	assert.True(t, got.Employee.IsZero())
	assert.True(t, got.Employer.IsZero())
}

func TestCompute_GraduatedRate(t *testing.T) {
	t.Parallel()

	got, err := Compute(testTable(), testCeilings(), Input{
		OrdinaryWage: decimal.RequireFromString("4000"),
		Age:          30,
		Residency:    ResidencyGraduated,
	})

	require.NoError(t, err)
	assert.True(t, got.Employee.Equal(decimal.RequireFromString("600")), "got %s", got.Employee)
	assert.True(t, got.Employer.Equal(decimal.RequireFromString("360")), "got %s", got.Employer)
}

func TestCompute_RoundsEachContributionIndependently(t *testing.T) {
	t.Parallel()

	table := RateTable{
		Bands: map[ResidencyClass][]BandRate{
			ResidencyFull: {
				{MaxAge: BandOpenEnded, Employee: decimal.RequireFromString("20"), Employer: decimal.RequireFromString("17")},
			},
		},
	}

	// 1234.56 * 20% = 246.912 -> 246.91; * 17% = 209.8752 -> 209.88
	got, err := Compute(table, testCeilings(), Input{
		OrdinaryWage: decimal.RequireFromString("1234.56"),
		Age:          40,
		Residency:    ResidencyFull,
	})

	require.NoError(t, err)
	assert.True(t, got.Employee.Equal(decimal.RequireFromString("246.91")), "got %s", got.Employee)
	assert.True(t, got.Employer.Equal(decimal.RequireFromString("209.88")), "got %s", got.Employer)
}

func TestCompute_MissingRateEntryIsAnError(t *testing.T) {
	t.Parallel()

	table := RateTable{
		Bands: map[ResidencyClass][]BandRate{
			ResidencyFull: {
				{MaxAge: BandOpenEnded, Employee: decimal.RequireFromString("20"), Employer: decimal.RequireFromString("17")},
			},
		},
	}

	_, err := Compute(table, testCeilings(), Input{
		OrdinaryWage: decimal.RequireFromString("4000"),
		Age:          40,
		Residency:    ResidencyGraduated,
	})

	assert.ErrorIs(t, err, ErrRateNotConfigured)
}

func TestCompute_InvalidResidency(t *testing.T) {
	t.Parallel()

	_, err := Compute(testTable(), testCeilings(), Input{
		OrdinaryWage: decimal.RequireFromString("4000"),
		Age:          40,
		Residency:    ResidencyClass("contractor"),
	})

	assert.ErrorIs(t, err, ErrInvalidResidency)
}

func TestRateTable_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, testTable().Validate())

	assert.ErrorIs(t, RateTable{}.Validate(), ErrInvalidRateTable)

	outOfOrder := RateTable{
		Bands: map[ResidencyClass][]BandRate{
			ResidencyFull: {
				{MaxAge: 60},
				{MaxAge: 55},
				{MaxAge: BandOpenEnded},
			},
		},
	}
	assert.ErrorIs(t, outOfOrder.Validate(), ErrInvalidRateTable)

	missingOpenEnded := RateTable{
		Bands: map[ResidencyClass][]BandRate{
			ResidencyFull: {
				{MaxAge: 55},
			},
		},
	}
	assert.ErrorIs(t, missingOpenEnded.Validate(), ErrInvalidRateTable)
}
