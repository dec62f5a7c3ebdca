package entity

// Account is the single donor account. The source of truth is the flat
// key-value store; this struct is the in-memory projection handed through the
// flows so that no flow reaches into the store by bare key names.
type Account struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// IsComplete reports whether all credential fields are present.
func (a *Account) IsComplete() bool {
	return a.FullName != "" && a.Email != "" && a.Password != ""
}
