package metadata

import (
	"ngnorm-go/packages/compiler/core"
)

// CompileTypeMetadata identifies a directive or component type
type CompileTypeMetadata struct {
	Name      string
	ModuleUrl string
}

// CompileStylesheetMetadata represents one stylesheet with its resolved
// style texts and the URLs of the stylesheets it references
type CompileStylesheetMetadata struct {
	ModuleUrl string
	Styles    []string
	StyleUrls []string
}

// NewCompileStylesheetMetadata creates a new CompileStylesheetMetadata
func NewCompileStylesheetMetadata(moduleUrl string, styles, styleUrls []string) *CompileStylesheetMetadata {
	return &CompileStylesheetMetadata{
		ModuleUrl: moduleUrl,
		Styles:    styles,
		StyleUrls: styleUrls,
	}
}

// CompileTemplateMetadata represents a component's template declaration.
// Before normalization it carries the raw declaration; normalization produces
// a new value with resolved text, absolute URLs and extracted selectors.
type CompileTemplateMetadata struct {
	Encapsulation       *core.ViewEncapsulation
	Template            *string
	TemplateUrl         *string
	IsInline            bool
	Styles              []string
	StyleUrls           []string
	ExternalStylesheets []*CompileStylesheetMetadata
	NgContentSelectors  []string
	PreserveWhitespaces bool
}

// WithExternalStylesheets returns a copy with the external stylesheets set
func (m *CompileTemplateMetadata) WithExternalStylesheets(stylesheets []*CompileStylesheetMetadata) *CompileTemplateMetadata {
	copied := *m
	copied.ExternalStylesheets = stylesheets
	return &copied
}

// CompileDirectiveMetadata represents a directive declaration. Values are
// treated as immutable once constructed; normalization replaces the whole
// metadata value instead of mutating it.
type CompileDirectiveMetadata struct {
	Type        CompileTypeMetadata
	IsComponent bool
	Selector    *string
	Template    *CompileTemplateMetadata
}

// WithTemplate returns a copy of the directive metadata with only the
// template field replaced
func (m *CompileDirectiveMetadata) WithTemplate(template *CompileTemplateMetadata) *CompileDirectiveMetadata {
	copied := *m
	copied.Template = template
	return &copied
}
