package usecasecontract

import "time"

// IConfigProvider exposes runtime configuration to the rest of the app.
type IConfigProvider interface {
	GetPort() string
	// GetUpstreamBaseURL returns the provider base URL; empty means no
	// live upstream is configured and the static dataset serves instead.
	GetUpstreamBaseURL() string
	GetUpstreamAPIKey() string
	GetUpstreamTimeout() time.Duration
}
