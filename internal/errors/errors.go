package errors

import "errors"

// Setup errors indicate the wizard could not produce a usable configuration.
var (
	// ErrNoServicesEnabled indicates the operator disabled both services.
	ErrNoServicesEnabled = errors.New("at least one service must be enabled")

	// ErrPromptClosed indicates the input stream ended before the wizard finished.
	ErrPromptClosed = errors.New("input closed before setup completed")
)

// Health check errors surface the standalone check command's verdict.
var (
	// ErrServiceUnhealthy indicates at least one enabled service failed its probe.
	ErrServiceUnhealthy = errors.New("one or more services failed the health check")
)
