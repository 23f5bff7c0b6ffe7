// Package constants provides shared constants used throughout champdiff.
// This includes endpoints, timeouts, file permissions and the labels the
// report falls back to when the data source cannot be reached.
package constants

import "time"

// Data Dragon endpoints
const (
	// DefaultVersionsURL lists every published Data Dragon version, newest first
	DefaultVersionsURL = "https://ddragon.leagueoflegends.com/api/versions.json"

	// DefaultCDNURL is the base of the versioned static data tree
	DefaultCDNURL = "https://ddragon.leagueoflegends.com/cdn"

	// ChampionPathFormat is appended to the CDN base: version, then locale
	ChampionPathFormat = "%s/data/%s/champion.json"

	// DataSourceName identifies Data Dragon in errors and logs
	DataSourceName = "ddragon"
)

// DefaultLocale is the locale the comparison report is fetched in
const DefaultLocale = "en_US"

// Timeout constants
const (
	// DefaultHTTPTimeout is the standard timeout for a single Data Dragon request
	DefaultHTTPTimeout = 30 * time.Second

	// MinHTTPTimeout is the smallest accepted request timeout. Anything
	// lower is a unitless number read as nanoseconds.
	MinHTTPTimeout = time.Millisecond

	// ShutdownTimeout bounds cleanup after a failed command
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Report constants
const (
	// UnknownVersion labels a report built without remote data
	UnknownVersion = "unknown"

	// MaxResponseBytes caps a decoded response body. champion.json is
	// roughly 150KB per locale.
	MaxResponseBytes = 16 << 20
)

// Error messages
const (
	// ErrMsgFetchFailed prefixes the diagnostic line printed on a degraded fetch
	ErrMsgFetchFailed = "Error fetching official data"

	// ErrMsgUnsupportedFormat is returned when a command cannot render the requested format
	ErrMsgUnsupportedFormat = "unsupported output format"
)
