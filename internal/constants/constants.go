package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Configuration locations.
const (
	// ConfigDirName is the per-user configuration directory under $HOME.
	ConfigDirName = ".repuestos"

	// ConfigFileName is the configuration file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the configuration file format.
	ConfigFileType = "yml"

	// EnvPrefix prefixes every environment variable read by the CLI.
	EnvPrefix = "REPUESTOS"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout bounds one CLI invocation.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second

	// ReadHeaderTimeout bounds header reads in the development server.
	ReadHeaderTimeout = 5 * time.Second

	// ShutdownTimeout bounds graceful shutdown of the development server.
	ShutdownTimeout = 5 * time.Second
)

// Retry limits. Retries are off unless RetryMax is configured.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Client identification.
const (
	// DefaultUserAgent is sent when the configuration does not override it.
	DefaultUserAgent = "repuestos-go/1.0.0"

	// DefaultDevServerAddr is the listen address of the development server.
	DefaultDevServerAddr = "127.0.0.1:8080"
)

// Output formats.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// None is used when no value is present.
	None = "none"

	// DescriptionDisplayLength is the default length for displaying descriptions.
	DescriptionDisplayLength = 40

	// ConfirmationYes for positive confirmations.
	ConfirmationYes = "yes"
)

// Date format of fecha_venta.
const DateLayout = "2006-01-02"
