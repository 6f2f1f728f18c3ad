package common

import (
	"flag"
	"fmt"
	"strings"
)

// CommonFlags contains flags that are shared across commands
type CommonFlags struct {
	// Environment and configuration
	EnvFile *string

	// Logging and output
	Silent   *bool
	NoEmojis *bool

	// Help and version
	Version *bool
	Help    *bool
}

// RegisterCommonFlags registers common flags with the default flag set
func RegisterCommonFlags() *CommonFlags {
	return &CommonFlags{
		EnvFile: flag.String("env", ".env", "Environment file path"),

		Silent:   flag.Bool("silent", false, "Enable silent mode (minimal output)"),
		NoEmojis: flag.Bool("no-emojis", false, "Disable emoji output"),

		Version: flag.Bool("version", false, "Show version information"),
		Help:    flag.Bool("help", false, "Show help information"),
	}
}

// FlagValidator collects flag validation failures
type FlagValidator struct {
	errors []string
}

// NewFlagValidator creates a new flag validator
func NewFlagValidator() *FlagValidator {
	return &FlagValidator{}
}

// RequirePositiveInt validates that an int flag is positive
func (v *FlagValidator) RequirePositiveInt(name string, value int) {
	if value <= 0 {
		v.errors = append(v.errors, fmt.Sprintf("-%s must be positive, got %d", name, value))
	}
}

// RequireRate validates that a float flag is within [0, 1]
func (v *FlagValidator) RequireRate(name string, value float64) {
	if value < 0 || value > 1 {
		v.errors = append(v.errors, fmt.Sprintf("-%s must be in [0, 1], got %g", name, value))
	}
}

// Err returns the combined validation error, or nil if all flags passed
func (v *FlagValidator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}
	return fmt.Errorf("invalid flags: %s", strings.Join(v.errors, "; "))
}
