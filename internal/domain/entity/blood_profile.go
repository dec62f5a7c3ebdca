package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BloodGroup is the enumerated ABO/Rh tag set accepted at the boundary.
type BloodGroup string

const (
	BloodGroupAPos  BloodGroup = "A+"
	BloodGroupANeg  BloodGroup = "A-"
	BloodGroupBPos  BloodGroup = "B+"
	BloodGroupBNeg  BloodGroup = "B-"
	BloodGroupABPos BloodGroup = "AB+"
	BloodGroupABNeg BloodGroup = "AB-"
	BloodGroupOPos  BloodGroup = "O+"
	BloodGroupONeg  BloodGroup = "O-"
)

// Weight bounds accepted at the boundary, in kilograms.
var (
	MinDonorWeightKg = decimal.NewFromInt(25)
	MaxDonorWeightKg = decimal.NewFromInt(250)
)

// DateLayout is the wire format for dates of birth.
const DateLayout = "2006-01-02"

// BloodProfile holds the donor details attached to the account. Age is never
// stored; it is always derived from DateOfBirth against a reference time.
type BloodProfile struct {
	BloodGroup  BloodGroup      `json:"bloodGroup"`
	DateOfBirth time.Time       `json:"dateOfBirth"`
	Location    string          `json:"location"`
	WeightKg    decimal.Decimal `json:"weight"`
}

// DOBString renders the date of birth in the wire format.
func (p *BloodProfile) DOBString() string {
	return p.DateOfBirth.Format(DateLayout)
}

// RegistrationRecord is the composite blob written under the userData key at
// registration time. It duplicates the discrete keys for backward
// compatibility with readers of the original representation.
type RegistrationRecord struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	BloodGroup string `json:"bloodGroup"`
	Location   string `json:"location"`
	Weight     string `json:"weight"`
	DOB        string `json:"dob"`
	Age        int    `json:"age"`
}
