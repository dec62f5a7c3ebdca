package dto

// BloodDetailsRequest completes registration with the donor's blood profile.
// Weight arrives as a numeric string, matching the wire format of the store.
type BloodDetailsRequest struct {
	BloodGroup  string `json:"blood_group" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	DateOfBirth string `json:"date_of_birth" validate:"required"` // Format: YYYY-MM-DD
	Location    string `json:"location" validate:"required"`
	Weight      string `json:"weight" validate:"required"`
}

// UpdateAccountRequest edits credential fields one by one; empty fields are
// left untouched.
type UpdateAccountRequest struct {
	FullName string `json:"full_name" validate:"omitempty"`
	Email    string `json:"email" validate:"omitempty,donoremail"`
	Password string `json:"password" validate:"omitempty"`
}

type SetAvatarRequest struct {
	ImageRef string `json:"image_ref" validate:"required"`
}

type ProfileResponse struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	BloodGroup   string `json:"blood_group,omitempty"`
	DateOfBirth  string `json:"date_of_birth,omitempty"`
	Age          int    `json:"age,omitempty"`
	Location     string `json:"location,omitempty"`
	Weight       string `json:"weight,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
	Eligible     bool   `json:"eligible"`
}
