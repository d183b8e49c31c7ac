package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"ngnorm-go/packages/compiler/metadata"
	"ngnorm-go/packages/compiler/ml_parser"
	"ngnorm-go/packages/compiler/normalizer"
	"ngnorm-go/packages/compiler/resource_loader"
	"ngnorm-go/packages/compiler/url_resolver"
)

var (
	outputPath          string
	externalStylesheets bool
	cacheSize           int
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <manifest.yaml>",
	Short: "Normalize every component declared in a manifest",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNormalize(cmd.Context(), args[0])
	},
}

func init() {
	normalizeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write normalized metadata to this file instead of stdout")
	normalizeCmd.Flags().BoolVar(&externalStylesheets, "external-stylesheets", false, "also load referenced stylesheets and inline their content")
	normalizeCmd.Flags().IntVar(&cacheSize, "cache-size", 256, "resource cache size (entries)")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(ctx context.Context, manifestPath string) error {
	logger := newLogger()

	manifest, err := LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	loader, err := resource_loader.NewCachedLoader(newRoutingLoader(filepath.Dir(manifestPath), logger), cacheSize)
	if err != nil {
		return err
	}
	norm := normalizer.NewDirectiveNormalizer(
		loader,
		url_resolver.CreateOfflineCompileUrlResolver(),
		ml_parser.NewHtmlParser(),
		nil,
	)

	results := make([]*metadata.CompileDirectiveMetadata, len(manifest.Components))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, component := range manifest.Components {
		group.Go(func() error {
			directive, err := component.ToMetadata()
			if err != nil {
				return err
			}
			normalized, err := norm.NormalizeDirective(groupCtx, directive)
			if err != nil {
				return fmt.Errorf("%s: %w", component.Name, err)
			}
			if externalStylesheets && normalized.Template != nil {
				template, err := norm.NormalizeExternalStylesheets(groupCtx, normalized.Template)
				if err != nil {
					return fmt.Errorf("%s: %w", component.Name, err)
				}
				normalized = normalized.WithTemplate(template)
			}
			logger.Debug("normalized component", "name", component.Name)
			results[i] = normalized
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	logger.Info("normalization complete", "components", len(results))

	rendered, err := renderResults(results)
	if err != nil {
		return err
	}
	if outputPath != "" {
		return os.WriteFile(outputPath, rendered, 0o644)
	}
	_, err = os.Stdout.Write(rendered)
	return err
}

// normalizedComponent is the output form of a normalized directive
type normalizedComponent struct {
	Name                string                `yaml:"name"`
	ModuleUrl           string                `yaml:"moduleUrl"`
	Directive           bool                  `yaml:"directive,omitempty"`
	TemplateUrl         string                `yaml:"templateUrl,omitempty"`
	Template            string                `yaml:"template,omitempty"`
	Encapsulation       string                `yaml:"encapsulation,omitempty"`
	Styles              []string              `yaml:"styles,omitempty"`
	StyleUrls           []string              `yaml:"styleUrls,omitempty"`
	NgContentSelectors  []string              `yaml:"ngContentSelectors,omitempty"`
	ExternalStylesheets []normalizedStylesheet `yaml:"externalStylesheets,omitempty"`
}

type normalizedStylesheet struct {
	ModuleUrl string   `yaml:"moduleUrl"`
	Styles    []string `yaml:"styles,omitempty"`
	StyleUrls []string `yaml:"styleUrls,omitempty"`
}

func renderResults(results []*metadata.CompileDirectiveMetadata) ([]byte, error) {
	components := make([]normalizedComponent, 0, len(results))
	for _, directive := range results {
		component := normalizedComponent{
			Name:      directive.Type.Name,
			ModuleUrl: directive.Type.ModuleUrl,
			Directive: !directive.IsComponent,
		}
		if template := directive.Template; template != nil {
			if template.TemplateUrl != nil {
				component.TemplateUrl = *template.TemplateUrl
			}
			if template.Template != nil {
				component.Template = *template.Template
			}
			if template.Encapsulation != nil {
				component.Encapsulation = template.Encapsulation.String()
			}
			component.Styles = template.Styles
			component.StyleUrls = template.StyleUrls
			component.NgContentSelectors = template.NgContentSelectors
			for _, stylesheet := range template.ExternalStylesheets {
				component.ExternalStylesheets = append(component.ExternalStylesheets, normalizedStylesheet{
					ModuleUrl: stylesheet.ModuleUrl,
					Styles:    stylesheet.Styles,
					StyleUrls: stylesheet.StyleUrls,
				})
			}
		}
		components = append(components, component)
	}
	return yaml.Marshal(map[string][]normalizedComponent{"components": components})
}

// routingLoader dispatches http(s) URLs to the HTTP loader and everything
// else to the file loader rooted at the manifest directory.
type routingLoader struct {
	file *resource_loader.FileLoader
	http *resource_loader.HttpLoader
}

func newRoutingLoader(root string, logger *log.Logger) *routingLoader {
	return &routingLoader{
		file: resource_loader.NewFileLoader(root),
		http: resource_loader.NewHttpLoader(logger),
	}
}

func (l *routingLoader) Load(ctx context.Context, url string) (string, error) {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return l.http.Load(ctx, url)
	}
	return l.file.Load(ctx, url)
}
