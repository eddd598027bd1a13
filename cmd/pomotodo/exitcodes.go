package main

// Exit codes for the CLI
const (
	ExitSuccess       = 0
	ExitGeneralError  = 1
	ExitNotConfigured = 2
	ExitAuthFailed    = 3
	ExitNotFound      = 4
	ExitServiceError  = 5
)
