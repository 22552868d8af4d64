package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// PutKeyRequest is the body of a PUT /Key/{email} request.
type PutKeyRequest struct {
	Key   string `json:"key" validate:"required,base64"`
	Email string `json:"email" validate:"omitempty,email"`
}

// Validate for validating PutKeyRequest struct
func (r *PutKeyRequest) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
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

// PutMessageRequest is the body of a PUT /Message/{email} request.
type PutMessageRequest struct {
	Email           string    `json:"email" validate:"omitempty,email"`
	Content         string    `json:"content" validate:"required,base64"`
	DateTimeCreated time.Time `json:"messageTime"`
}

// Validate for validating PutMessageRequest struct
func (r *PutMessageRequest) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
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

// KeyResponse is the body of a GET /Key/{email} response.
type KeyResponse struct {
	Key   string `json:"key"`
	Email string `json:"email"`
}

// MessageResponse is the body of a GET /Message/{email} response.
type MessageResponse struct {
	Email           string    `json:"email"`
	Content         string    `json:"content"`
	DateTimeCreated time.Time `json:"messageTime"`
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse defines the structure of informational responses
type InfoResponse struct {
	Message string `json:"message"`
}
