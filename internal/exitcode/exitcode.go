// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UsageError indicates a missing or unknown subcommand or stray arguments.
	UsageError = 1

	// ConfigError indicates an unreadable or invalid config file.
	ConfigError = 2

	// StoreError indicates a database I/O or decode failure.
	StoreError = 3

	// InputError indicates standard input closed while prompting.
	InputError = 4
)
