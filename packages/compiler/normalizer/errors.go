package normalizer

import (
	"fmt"

	"ngnorm-go/packages/compiler/util"
)

// ConfigurationError reports a component that declares neither an inline
// template nor a template URL
type ConfigurationError struct {
	DirectiveName string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("No template specified for component %s", e.DirectiveName)
}

// TemplateParseError reports structural errors in a component template. All
// parser diagnostics are carried so none is lost even though a single error
// is returned.
type TemplateParseError struct {
	DirectiveName string
	Errors        []*util.ParseError
}

// Error implements the error interface
func (e *TemplateParseError) Error() string {
	return "Template parse errors:\n" + util.JoinParseErrors(e.Errors)
}
