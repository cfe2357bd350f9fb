package common

import (
	"strings"
	"testing"

	"hit4power/clubhouse/internal/constants"
)

func TestAgeGroupBoundaries(t *testing.T) {
	cases := []struct {
		age  int
		want string
	}{
		{0, "7-9"},
		{7, "7-9"},
		{9, "7-9"},
		{10, "10-12"},
		{12, "10-12"},
		{13, "13-15"},
		{15, "13-15"},
		{16, "16-18"},
		{18, "16-18"},
		{19, "18+"},
		{40, "18+"},
	}

	for _, c := range cases {
		if got := AgeGroup(c.age); got != c.want {
			t.Errorf("AgeGroup(%d) = %q, want %q", c.age, got, c.want)
		}
	}
}

func TestAgeGroupIsTotalPartition(t *testing.T) {
	valid := make(map[string]bool, len(constants.AgeGroups))
	for _, g := range constants.AgeGroups {
		valid[g] = true
	}

	for age := 0; age <= 120; age++ {
		group := AgeGroup(age)
		if !valid[group] {
			t.Fatalf("AgeGroup(%d) = %q, not one of the five buckets", age, group)
		}
	}
}

func TestRandomCodeShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := RandomCode(constants.LoginCodeLength)
		if len(code) != constants.LoginCodeLength {
			t.Fatalf("expected %d digits, got %q", constants.LoginCodeLength, code)
		}
		for _, ch := range code {
			if ch < '0' || ch > '9' {
				t.Fatalf("expected digits only, got %q", code)
			}
		}
	}
}

func TestNewInstructorCodePrefix(t *testing.T) {
	code := NewInstructorCode()
	if !strings.HasPrefix(code, constants.InstructorCodePrefix) {
		t.Errorf("expected prefix %q, got %q", constants.InstructorCodePrefix, code)
	}
	if len(code) != len(constants.InstructorCodePrefix)+constants.LoginCodeLength {
		t.Errorf("unexpected code length: %q", code)
	}
}
