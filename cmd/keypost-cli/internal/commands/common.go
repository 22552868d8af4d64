package commands

import (
	"fmt"
	"os"

	"github.com/theeman05/keypost/internal/infrastructure/remote"
	"github.com/theeman05/keypost/internal/pkg/config"
	"github.com/theeman05/keypost/internal/pkg/logger"
)

// serverURLEnvVar overrides the default store URL when set.
const serverURLEnvVar = "KEYPOST_SERVER_URL"

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// setupDirectory creates the HTTP client for the shared remote store. The
// store URL comes from KEYPOST_SERVER_URL, falling back to the default.
func setupDirectory(loggerInstance logger.Logger) (*remote.HTTPDirectory, error) {
	baseURL := os.Getenv(serverURLEnvVar)
	if baseURL == "" {
		baseURL = config.DefaultRemoteURL
	}

	directory, err := remote.NewHTTPDirectory(&config.RemoteSettings{BaseURL: baseURL}, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create store client: %w", err)
	}

	return directory, nil
}
