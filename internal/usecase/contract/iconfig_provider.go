package usecasecontract

import "time"

// IConfigProvider exposes the configuration values usecases depend on.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetRefreshTokenExpiry() time.Duration
	GetPasswordResetTokenExpiry() time.Duration
	// GetFanoutConcurrency bounds the number of concurrent notification
	// writes during event-creation fan-out.
	GetFanoutConcurrency() int
}
