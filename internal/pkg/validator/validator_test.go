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

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-06-24"); !ok {
		t.Error("IsValidDate(2025-06-24) = false, want true")
	}
	invalid := []string{"24-06-2025", "2025/06/24", "2025-13-01", "yesterday", ""}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"HYD0001", "DEL6663", "DEL0037"}
	invalid := []string{"hyd0001", "HYD001", "HYD00011", "0001HYD", ""}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidCardNo(t *testing.T) {
	valid := []string{"00000001", "37", "7947"}
	invalid := []string{"", "000000001", "37A", "no-card"}
	for _, card := range valid {
		if !IsValidCardNo(card) {
			t.Errorf("IsValidCardNo(%q) = false, want true", card)
		}
	}
	for _, card := range invalid {
		if IsValidCardNo(card) {
			t.Errorf("IsValidCardNo(%q) = true, want false", card)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	if _, ok := IsValidClockTime("09:30:00"); !ok {
		t.Error("IsValidClockTime(09:30:00) = false, want true")
	}
	invalid := []string{"9:30", "25:00:00", "09:30", ""}
	for _, s := range invalid {
		if _, ok := IsValidClockTime(s); ok {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}
