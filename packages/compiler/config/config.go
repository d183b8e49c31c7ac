package config

import (
	"ngnorm-go/packages/compiler/core"
)

// CompilerConfig represents the compiler configuration
type CompilerConfig struct {
	DefaultEncapsulation *core.ViewEncapsulation
	PreserveWhitespaces  bool
}

// NewCompilerConfig creates a new CompilerConfig with optional parameters
func NewCompilerConfig(opts ...CompilerConfigOption) *CompilerConfig {
	config := &CompilerConfig{
		DefaultEncapsulation: core.ViewEncapsulationPtr(core.ViewEncapsulationEmulated),
		PreserveWhitespaces:  PreserveWhitespacesDefault(nil, false),
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// CompilerConfigOption is a function that modifies CompilerConfig
type CompilerConfigOption func(*CompilerConfig)

// WithDefaultEncapsulation sets the default encapsulation
func WithDefaultEncapsulation(encapsulation core.ViewEncapsulation) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.DefaultEncapsulation = core.ViewEncapsulationPtr(encapsulation)
	}
}

// WithPreserveWhitespaces sets whether to preserve whitespaces
func WithPreserveWhitespaces(preserve bool) CompilerConfigOption {
	return func(c *CompilerConfig) {
		c.PreserveWhitespaces = preserve
	}
}

// PreserveWhitespacesDefault returns the default value for preserveWhitespaces
func PreserveWhitespacesDefault(preserveWhitespacesOption *bool, defaultSetting bool) bool {
	if preserveWhitespacesOption == nil {
		return defaultSetting
	}
	return *preserveWhitespacesOption
}
