package userdata

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/janisto/widget-playground/internal/validation"
)

// Service errors
var (
	// ErrDuplicate means the submitted draft matches the committed record in every data field.
	ErrDuplicate = errors.New("user already exists")

	// ErrUnknownField means a field edit named a field the profile does not have.
	ErrUnknownField = errors.New("unknown field")
)

// ValidationError reports a submission blocked by field validation.
type ValidationError struct {
	Result validation.Result
}

func (e *ValidationError) Error() string {
	return "invalid fields: " + strings.Join(e.Result.Invalid(), ", ")
}

// Profile is the user-data record. ID is empty until the first successful submission.
type Profile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// SameFields reports whether p and other hold the same name, address, email
// and phone. IDs are ignored.
func (p Profile) SameFields(other Profile) bool {
	return p.Name == other.Name &&
		p.Address == other.Address &&
		p.Email == other.Email &&
		p.Phone == other.Phone
}

// With returns a copy of p with field set to value.
func (p Profile) With(field, value string) (Profile, error) {
	switch field {
	case validation.FieldName:
		p.Name = value
	case validation.FieldAddress:
		p.Address = value
	case validation.FieldEmail:
		p.Email = value
	case validation.FieldPhone:
		p.Phone = value
	default:
		return p, ErrUnknownField
	}
	return p, nil
}

func (p Profile) validationInput() validation.Input {
	return validation.Input{Name: p.Name, Address: p.Address, Email: p.Email, Phone: p.Phone}
}

// IDGenerator issues identifiers for committed records.
//
// Implementations must draw at least 122 bits from a cryptographically
// strong source so that collisions are negligible.
type IDGenerator interface {
	NewID() (string, error)
}

// UUIDGenerator issues random (version 4) UUIDs from crypto/rand.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Compile-time interface check
var _ IDGenerator = UUIDGenerator{}
