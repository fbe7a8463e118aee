package validator

import (
	"testing"
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
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-42D3-A456-426614174000",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"",
	}
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

func TestIsValidLeaveTypeCode(t *testing.T) {
	valid := []string{"CL", "SL", "EARNED", "LWP_2025", "A"}
	invalid := []string{"", "casual", "TOO_LONG_CODE", "CL-1", "C L"}
	for _, code := range valid {
		if !IsValidLeaveTypeCode(code) {
			t.Errorf("IsValidLeaveTypeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidLeaveTypeCode(code) {
			t.Errorf("IsValidLeaveTypeCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-03-01"); !ok {
		t.Error(`IsValidDate("2025-03-01") = false, want true`)
	}
	for _, s := range []string{"2025-13-01", "01-03-2025", "2025-03-01T00:00:00Z", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	cases := []struct {
		year, month int
		want        bool
	}{
		{2025, 1, true},
		{2025, 12, true},
		{2025, 0, false},
		{2025, 13, false},
		{2019, 6, false},
	}
	for _, c := range cases {
		if got := IsValidPeriod(c.year, c.month); got != c.want {
			t.Errorf("IsValidPeriod(%d, %d) = %v, want %v", c.year, c.month, got, c.want)
		}
	}
}

func TestIsValidPercent(t *testing.T) {
	for _, p := range []float64{0, 15, 100} {
		if !IsValidPercent(p) {
			t.Errorf("IsValidPercent(%v) = false, want true", p)
		}
	}
	for _, p := range []float64{-1, 100.5} {
		if IsValidPercent(p) {
			t.Errorf("IsValidPercent(%v) = true, want false", p)
		}
	}
}
