package validator

import "testing"

func TestIsPincode(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"411001", true},
		{"000000", true},
		{"12345", false},
		{"1234567", false},
		{"41100a", false},
		{"41 001", false},
		{" 411001", false},
		{"411001 ", false},
		{"", false},
		{"-11001", false},
	}

	for _, tt := range tests {
		if got := IsPincode(tt.in); got != tt.want {
			t.Errorf("IsPincode(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestDonorEmailRule(t *testing.T) {
	v := NewValidator()

	type form struct {
		Email string `validate:"required,donoremail"`
	}

	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"donor+tag@example.co.in", true},
		{"plainaddress", false},
		{"a@b", false},
		{"a b@c.com", false},
		{"", false},
	}

	for _, tt := range tests {
		err := v.Validate(&form{Email: tt.email})
		if tt.valid && err != nil {
			t.Errorf("Validate(%q) = %v; want valid", tt.email, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("Validate(%q) passed; want rejection", tt.email)
		}
	}
}

func TestPincodeRule(t *testing.T) {
	v := NewValidator()

	type form struct {
		Pincode string `validate:"required,pincode"`
	}

	if err := v.Validate(&form{Pincode: "411001"}); err != nil {
		t.Errorf("Validate(411001) = %v; want valid", err)
	}
	if err := v.Validate(&form{Pincode: "411"}); err == nil {
		t.Error("Validate(411) passed; want rejection")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	type form struct {
		Email   string `validate:"required,donoremail"`
		Pincode string `validate:"required,pincode"`
	}

	err := v.Validate(&form{Email: "not-an-email", Pincode: "12"})
	if err == nil {
		t.Fatal("expected validation failure")
	}

	messages := v.FormatValidationErrors(err)
	if messages["Email"] != "Email must be a valid email address" {
		t.Errorf("Email message = %q", messages["Email"])
	}
	if messages["Pincode"] != "Pincode must be a 6-digit PIN code" {
		t.Errorf("Pincode message = %q", messages["Pincode"])
	}
}
