package eligibility

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeAge(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		now   time.Time
		want  int
	}{
		{"birthday already passed this year", date(2000, 1, 1), date(2025, 6, 15), 25},
		{"birthday not yet reached", date(2000, 6, 15), date(2025, 1, 1), 24},
		{"on the birthday itself", date(2000, 6, 15), date(2025, 6, 15), 25},
		{"day before the birthday", date(2000, 6, 15), date(2025, 6, 14), 24},
		{"leap day birth counted from Mar 1", date(2000, 2, 29), date(2024, 3, 1), 24},
		{"leap day birth not yet passed on Feb 28", date(2000, 2, 29), date(2023, 2, 28), 22},
		{"same year", date(2025, 1, 1), date(2025, 6, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeAge(tt.birth, tt.now); got != tt.want {
				t.Errorf("ComputeAge(%s, %s) = %d; want %d",
					tt.birth.Format("2006-01-02"), tt.now.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestComputeAgeDeterministic(t *testing.T) {
	birth := date(2000, 1, 1)
	now := date(2025, 6, 15)
	first := ComputeAge(birth, now)
	for i := 0; i < 3; i++ {
		if got := ComputeAge(birth, now); got != first {
			t.Fatalf("ComputeAge changed between calls: %d then %d", first, got)
		}
	}
}

func TestIsEligible(t *testing.T) {
	tests := []struct {
		age  int
		want bool
	}{
		{17, false},
		{18, true},
		{19, true},
		{0, false},
		{-1, false},
	}

	for _, tt := range tests {
		if got := IsEligible(tt.age); got != tt.want {
			t.Errorf("IsEligible(%d) = %v; want %v", tt.age, got, tt.want)
		}
	}
}
