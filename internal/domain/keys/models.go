package keys

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PublicKey is a transportable public key: the encoded (exponent, modulus)
// blob plus the email identity it is bound to. Email stays empty until the
// key is published for an identity.
type PublicKey struct {
	Key   string `json:"key" validate:"required,base64"`
	Email string `json:"email" validate:"omitempty,email"`
}

// PrivateKey is the locally held private key: the encoded (exponent, modulus)
// blob plus the set of correspondent emails this key has been used to
// authorize key exchange for. Membership-only semantics; order is irrelevant.
type PrivateKey struct {
	Key    string   `json:"key" validate:"required,base64"`
	Emails []string `json:"email" validate:"omitempty,dive,email"`
}

// Validate for validating PublicKey struct
func (k *PublicKey) Validate() error {
	validate := validator.New()

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// Validate for validating PrivateKey struct
func (k *PrivateKey) Validate() error {
	validate := validator.New()

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// HasCorrespondent reports whether email is in the correspondent set.
func (k *PrivateKey) HasCorrespondent(email string) bool {
	for _, e := range k.Emails {
		if e == email {
			return true
		}
	}
	return false
}

// AddCorrespondent records email in the correspondent set. Duplicates
// collapse; it returns true if the set changed.
func (k *PrivateKey) AddCorrespondent(email string) bool {
	if k.HasCorrespondent(email) {
		return false
	}
	k.Emails = append(k.Emails, email)
	return true
}
