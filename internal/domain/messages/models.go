package messages

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Message is one encrypted message as held by the remote store. Content is
// the base64 encoding of a single ciphertext integer covering the whole
// plaintext. Messages are never persisted locally; they exist only as
// values written to and read from the store.
type Message struct {
	Email           string    `json:"email" validate:"required,email"`
	Content         string    `json:"content" validate:"required,base64"`
	DateTimeCreated time.Time `json:"messageTime"`
}

// Validate for validating Message struct
func (m *Message) Validate() error {
	validate := validator.New()

	err := validate.Struct(m)
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
