// Package validation holds the pure field and record checks for the user-data form.
package validation

import "regexp"

// emailRe is intentionally permissive: local@domain.tld with no whitespace
// and no extra "@". It is not RFC 5322.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Field names, in display order.
const (
	FieldName    = "name"
	FieldAddress = "address"
	FieldEmail   = "email"
	FieldPhone   = "phone"
)

// Fields lists every validated field in display order.
var Fields = []string{FieldName, FieldAddress, FieldEmail, FieldPhone}

var messages = map[string]string{
	FieldName:    "Name is required",
	FieldAddress: "Address is required",
	FieldEmail:   "Invalid email format",
	FieldPhone:   "Phone number should be 10 digits",
}

// Input carries the fields that Validate checks.
type Input struct {
	Name    string
	Address string
	Email   string
	Phone   string
}

// Result holds per-field error flags. A set flag means the field is invalid.
type Result struct {
	Name    bool `json:"name"`
	Address bool `json:"address"`
	Email   bool `json:"email"`
	Phone   bool `json:"phone"`
}

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidPhone reports whether s is exactly 10 ASCII digits.
func IsValidPhone(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Validate checks every field of in.
func Validate(in Input) Result {
	return Result{
		Name:    in.Name == "",
		Address: in.Address == "",
		Email:   !IsValidEmail(in.Email),
		Phone:   !IsValidPhone(in.Phone),
	}
}

// Valid reports whether no flag is set.
func (r Result) Valid() bool {
	return !r.Name && !r.Address && !r.Email && !r.Phone
}

// Invalid returns the flagged field names in display order.
func (r Result) Invalid() []string {
	var out []string
	for _, f := range Fields {
		if r.Flagged(f) {
			out = append(out, f)
		}
	}
	return out
}

// Flagged reports whether field is flagged. Unknown fields are never flagged.
func (r Result) Flagged(field string) bool {
	switch field {
	case FieldName:
		return r.Name
	case FieldAddress:
		return r.Address
	case FieldEmail:
		return r.Email
	case FieldPhone:
		return r.Phone
	default:
		return false
	}
}

// Messages maps each flagged field to its helper text.
func (r Result) Messages() map[string]string {
	out := make(map[string]string)
	for _, f := range r.Invalid() {
		out[f] = messages[f]
	}
	return out
}

// Message returns the helper text for field.
func Message(field string) string {
	return messages[field]
}
