package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultRemoteURL is the store URL used when none is configured.
const DefaultRemoteURL = "http://localhost:8080"

// RemoteSettings holds client-side settings for reaching the remote
// key and message store.
type RemoteSettings struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Validate checks that all fields in RemoteSettings are valid
func (s *RemoteSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RemoteSettings: %w", err)
	}

	return nil
}
