// Package eligibility holds the donor eligibility arithmetic. Everything here
// is pure and deterministic for fixed inputs.
package eligibility

import "time"

// MinimumDonorAge is the completed-years age required to donate blood.
const MinimumDonorAge = 18

// ComputeAge returns the completed years between birth and now. The birthday
// check compares (month, day) pairs directly, so a Feb 29 birth date is
// counted as passed once the calendar reaches Mar 1 in any year.
func ComputeAge(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	return years
}

// IsEligible reports whether a donor of the given age may donate.
func IsEligible(age int) bool {
	return age >= MinimumDonorAge
}
