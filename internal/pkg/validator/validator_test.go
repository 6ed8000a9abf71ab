package validator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"A987FBC9-4BED-4078-8F07-9141BA07C9F3",
	}
	invalid := []string{"", "not-a-uuid", "123e4567e89b12d3a456426614174000", "123e4567-e89b-12d3-a456-42661417400"}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-06-01"); !ok {
		t.Error("IsValidDate(2026-06-01) = false, want true")
	}
	for _, s := range []string{"", "2026-13-01", "01-06-2026", "2026/06/01"} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	if _, _, ok := IsValidPeriod("2026-06-01", "2026-06-30"); !ok {
		t.Error("IsValidPeriod valid range = false, want true")
	}
	if _, _, ok := IsValidPeriod("2026-06-01", "2026-06-01"); !ok {
		t.Error("IsValidPeriod same-day range = false, want true")
	}
	if _, _, ok := IsValidPeriod("2026-06-30", "2026-06-01"); ok {
		t.Error("IsValidPeriod reversed range = true, want false")
	}
	if _, _, ok := IsValidPeriod("bad", "2026-06-30"); ok {
		t.Error("IsValidPeriod bad start = true, want false")
	}
}

func TestIsNonNegativeAmount(t *testing.T) {
	neg := decimal.NewFromInt(-1)
	zero := decimal.Zero
	pos := decimal.NewFromInt(5)

	if !IsNonNegativeAmount(nil) {
		t.Error("IsNonNegativeAmount(nil) = false, want true")
	}
	if !IsNonNegativeAmount(&zero) || !IsNonNegativeAmount(&pos) {
		t.Error("IsNonNegativeAmount(zero/positive) = false, want true")
	}
	if IsNonNegativeAmount(&neg) {
		t.Error("IsNonNegativeAmount(negative) = true, want false")
	}
}

func TestIsPositiveAmount(t *testing.T) {
	if !IsPositiveAmount(decimal.NewFromFloat(0.01)) {
		t.Error("IsPositiveAmount(0.01) = false, want true")
	}
	if IsPositiveAmount(decimal.Zero) || IsPositiveAmount(decimal.NewFromInt(-1)) {
		t.Error("IsPositiveAmount(zero/negative) = true, want false")
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	if !IsValidEmployeeCode("2026-0042") {
		t.Error("IsValidEmployeeCode(2026-0042) = false, want true")
	}
	for _, s := range []string{"", "20260042", "2026-42", "abcd-efgh"} {
		if IsValidEmployeeCode(s) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"draft", "approved", "finalized"}
	if !IsInSlice("draft", slice) {
		t.Error("IsInSlice(draft) = false, want true")
	}
	if IsInSlice("rejected", slice) {
		t.Error("IsInSlice(rejected) = true, want false")
	}
}
