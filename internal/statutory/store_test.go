package statutory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ReloadSwapsRates(t *testing.T) {
	t.Parallel()

	store, err := NewStore(testTable(), testCeilings())
	require.NoError(t, err)

	in := Input{
		OrdinaryWage: decimal.RequireFromString("1000"),
		Age:          40,
		Residency:    ResidencyFull,
	}

	before, err := store.Compute(in)
	require.NoError(t, err)
	assert.True(t, before.Employee.Equal(decimal.RequireFromString("200")))

	updated := testTable()
	updated.Bands[ResidencyFull][0].Employee = decimal.RequireFromString("10")
	require.NoError(t, store.Reload(updated, testCeilings()))

	after, err := store.Compute(in)
	require.NoError(t, err)
	assert.True(t, after.Employee.Equal(decimal.RequireFromString("100")))
}

func TestStore_RejectsInvalidTable(t *testing.T) {
	t.Parallel()

	_, err := NewStore(RateTable{}, testCeilings())
	assert.ErrorIs(t, err, ErrInvalidRateTable)

	store, err := NewStore(testTable(), testCeilings())
	require.NoError(t, err)

	assert.ErrorIs(t, store.Reload(RateTable{}, testCeilings()), ErrInvalidRateTable)

	bad := testCeilings()
	bad.OrdinaryMonthly = decimal.RequireFromString("-1")
	assert.ErrorIs(t, store.Reload(testTable(), bad), ErrNegativeCeiling)
}
