package auth

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// GoogleAuthOptions contains options for authenticating with Google Cloud
type GoogleAuthOptions struct {
	// Direct JSON credentials
	CredentialsJSON []byte
	// Path to credentials file
	CredentialsFile string
	// Environment variable holding a credentials file path
	CredentialsEnvVar string
}

// GoogleClientOptions turns explicit credentials into client options.
// With no credentials configured it returns no options, so clients fall
// back to application default credentials.
func GoogleClientOptions(ctx context.Context, opts GoogleAuthOptions) ([]option.ClientOption, error) {
	var credsJSON []byte
	var err error

	// Priority order: Direct JSON > File > Environment var
	if len(opts.CredentialsJSON) > 0 {
		credsJSON = opts.CredentialsJSON
	} else if opts.CredentialsFile != "" {
		credsJSON, err = os.ReadFile(opts.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
	} else if opts.CredentialsEnvVar != "" {
		envPath := os.Getenv(opts.CredentialsEnvVar)
		if envPath != "" {
			credsJSON, err = os.ReadFile(envPath)
			if err != nil {
				return nil, fmt.Errorf("failed to read credentials from env var path: %w", err)
			}
		}
	}

	if len(credsJSON) == 0 {
		return nil, nil
	}

	creds, err := google.CredentialsFromJSON(ctx, credsJSON, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	return []option.ClientOption{option.WithTokenSource(creds.TokenSource)}, nil
}
