package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/kamyuentse/go-pomotodo/internal/config"
	"github.com/kamyuentse/go-pomotodo/pkg/pomotodo"
)

// errNotConfigured is returned when no access token is available.
var errNotConfigured = errors.New("no access token configured: run 'pomotodo login <token>' or set POMOTODO_TOKEN")

// getClient creates a client from the resolved config.
func getClient() (*pomotodo.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return clientFromConfig(cfg)
}

// clientFromConfig builds an API client from a loaded config.
func clientFromConfig(cfg *config.Config) (*pomotodo.Client, error) {
	if cfg.Token == "" {
		return nil, errNotConfigured
	}

	var opts []pomotodo.ClientOption
	if cfg.BaseURL != "" {
		opts = append(opts, pomotodo.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, pomotodo.WithTimeout(cfg.Timeout))
	}

	return pomotodo.NewClient(cfg.Token, opts...)
}

// mapErrorToExitCode maps an error to the appropriate exit code.
func mapErrorToExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, errNotConfigured):
		return ExitNotConfigured
	case pomotodo.IsUnauthorized(err):
		return ExitAuthFailed
	case pomotodo.IsNotFound(err):
		return ExitNotFound
	case pomotodo.IsRateLimited(err), pomotodo.IsServerError(err):
		return ExitServiceError
	}
	return ExitGeneralError
}

// handleError handles an error by printing it and exiting with the
// appropriate code.
func handleError(err error) {
	if err == nil {
		return
	}

	printError(os.Stderr, err, jsonOutput)
	os.Exit(mapErrorToExitCode(err))
}

// parseUUIDArg parses a UUID command argument.
func parseUUIDArg(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid uuid %q: %w", arg, err)
	}
	return id, nil
}

// timeLayouts are the accepted formats for time flags, most specific
// first. Layouts without a zone are interpreted in local time.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTimeFlag parses a --since/--until style flag value.
func parseTimeFlag(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q (use RFC 3339, '2006-01-02 15:04', or '2006-01-02')", s)
}
