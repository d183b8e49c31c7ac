package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"ngnorm-go/packages/compiler/core"
	"ngnorm-go/packages/compiler/metadata"
)

// Manifest is the YAML declaration of the components to normalize
type Manifest struct {
	Components []*ComponentSpec `yaml:"components"`
}

// ComponentSpec declares one directive or component in the manifest
type ComponentSpec struct {
	Name                string   `yaml:"name"`
	ModuleUrl           string   `yaml:"moduleUrl"`
	Directive           bool     `yaml:"directive,omitempty"`
	Selector            string   `yaml:"selector,omitempty"`
	Template            *string  `yaml:"template,omitempty"`
	TemplateUrl         *string  `yaml:"templateUrl,omitempty"`
	Styles              []string `yaml:"styles,omitempty"`
	StyleUrls           []string `yaml:"styleUrls,omitempty"`
	Encapsulation       string   `yaml:"encapsulation,omitempty"`
	PreserveWhitespaces bool     `yaml:"preserveWhitespaces,omitempty"`
}

// LoadManifest reads and parses a manifest file
func LoadManifest(path string) (*Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	manifest := &Manifest{}
	if err := yaml.Unmarshal(content, manifest); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	for i, component := range manifest.Components {
		if component.Name == "" {
			return nil, fmt.Errorf("invalid manifest %s: component %d has no name", path, i)
		}
	}
	return manifest, nil
}

// ToMetadata converts a manifest entry into directive metadata
func (c *ComponentSpec) ToMetadata() (*metadata.CompileDirectiveMetadata, error) {
	directive := &metadata.CompileDirectiveMetadata{
		Type: metadata.CompileTypeMetadata{
			Name:      c.Name,
			ModuleUrl: c.ModuleUrl,
		},
		IsComponent: !c.Directive,
	}
	if c.Selector != "" {
		selector := c.Selector
		directive.Selector = &selector
	}
	if !directive.IsComponent {
		return directive, nil
	}

	template := &metadata.CompileTemplateMetadata{
		Template:            c.Template,
		TemplateUrl:         c.TemplateUrl,
		Styles:              c.Styles,
		StyleUrls:           c.StyleUrls,
		PreserveWhitespaces: c.PreserveWhitespaces,
	}
	if c.Encapsulation != "" {
		encapsulation, err := core.ParseViewEncapsulation(c.Encapsulation)
		if err != nil {
			return nil, fmt.Errorf("component %s: %w", c.Name, err)
		}
		template.Encapsulation = core.ViewEncapsulationPtr(encapsulation)
	}
	directive.Template = template
	return directive, nil
}
