package normalizer

import (
	"context"

	"ngnorm-go/packages/compiler/config"
	"ngnorm-go/packages/compiler/core"
	"ngnorm-go/packages/compiler/css"
	"ngnorm-go/packages/compiler/metadata"
	"ngnorm-go/packages/compiler/ml_parser"
	"ngnorm-go/packages/compiler/resource_loader"
	"ngnorm-go/packages/compiler/url_resolver"
)

// DirectiveNormalizer resolves a component's template declaration into its
// canonical form: template text loaded, style and stylesheet URLs made
// absolute, @imports folded into the style URL list, content projection
// selectors extracted and the encapsulation mode settled.
//
// The normalizer holds no mutable state across calls; one call may run per
// goroutine without locking.
type DirectiveNormalizer struct {
	resourceLoader resource_loader.ResourceLoader
	urlResolver    *url_resolver.UrlResolver
	htmlParser     *ml_parser.HtmlParser
	config         *config.CompilerConfig
}

// NewDirectiveNormalizer creates a new DirectiveNormalizer
func NewDirectiveNormalizer(resourceLoader resource_loader.ResourceLoader, urlResolver *url_resolver.UrlResolver, htmlParser *ml_parser.HtmlParser, cfg *config.CompilerConfig) *DirectiveNormalizer {
	if cfg == nil {
		cfg = config.NewCompilerConfig()
	}
	return &DirectiveNormalizer{
		resourceLoader: resourceLoader,
		urlResolver:    urlResolver,
		htmlParser:     htmlParser,
		config:         cfg,
	}
}

// NormalizeDirective normalizes a directive's template. Non-component
// directives have no template concept and pass through unchanged; components
// get a new metadata value with only the template field replaced.
func (n *DirectiveNormalizer) NormalizeDirective(ctx context.Context, directive *metadata.CompileDirectiveMetadata) (*metadata.CompileDirectiveMetadata, error) {
	if !directive.IsComponent {
		return directive, nil
	}
	template, err := n.NormalizeTemplate(ctx, &directive.Type, directive.Template)
	if err != nil {
		return nil, err
	}
	return directive.WithTemplate(template), nil
}

// NormalizeTemplate normalizes a template declaration. An absent declaration
// is treated as an empty inline template. A declaration with neither inline
// text nor a template URL is a configuration error.
func (n *DirectiveNormalizer) NormalizeTemplate(ctx context.Context, directiveType *metadata.CompileTypeMetadata, template *metadata.CompileTemplateMetadata) (*metadata.CompileTemplateMetadata, error) {
	if template == nil {
		empty := ""
		template = &metadata.CompileTemplateMetadata{
			Template:            &empty,
			PreserveWhitespaces: n.config.PreserveWhitespaces,
		}
	}
	if template.Template != nil {
		return n.NormalizeLoadedTemplate(directiveType, template, *template.Template, directiveType.ModuleUrl, true, template.PreserveWhitespaces)
	}
	if template.TemplateUrl != nil {
		templateAbsUrl := n.urlResolver.Resolve(directiveType.ModuleUrl, *template.TemplateUrl)
		// The only suspension point of a normalization call. Loader
		// failures propagate unwrapped as the call's own failure.
		templateText, err := n.resourceLoader.Load(ctx, templateAbsUrl)
		if err != nil {
			return nil, err
		}
		return n.NormalizeLoadedTemplate(directiveType, template, templateText, templateAbsUrl, false, template.PreserveWhitespaces)
	}
	return nil, &ConfigurationError{DirectiveName: directiveType.Name}
}

// NormalizeLoadedTemplate normalizes template text that has already been
// loaded. templateAbsUrl is the absolute URL the text came from; for inline
// templates it is the directive's own module URL.
func (n *DirectiveNormalizer) NormalizeLoadedTemplate(directiveType *metadata.CompileTypeMetadata, templateMeta *metadata.CompileTemplateMetadata, template, templateAbsUrl string, isInline, preserveWhitespaces bool) (*metadata.CompileTemplateMetadata, error) {
	parseResult := n.htmlParser.Parse(template, directiveType.Name)
	if len(parseResult.Errors) > 0 {
		return nil, &TemplateParseError{DirectiveName: directiveType.Name, Errors: parseResult.Errors}
	}

	visitor := newTemplatePreparseVisitor()
	ml_parser.VisitAll(visitor, parseResult.RootNodes, nil)

	// Styles discovered in the template body come before declared styles.
	styles := make([]string, 0, len(visitor.styles)+len(templateMeta.Styles))
	styles = append(styles, visitor.styles...)
	styles = append(styles, templateMeta.Styles...)

	// Stylesheet links resolve against the template's own URL, declared
	// styleUrls against the directive's module URL.
	var styleUrls []string
	for _, url := range visitor.styleUrls {
		url := url
		if css.IsStyleUrlResolvable(&url) {
			styleUrls = append(styleUrls, n.urlResolver.Resolve(templateAbsUrl, url))
		}
	}
	for _, url := range templateMeta.StyleUrls {
		url := url
		if css.IsStyleUrlResolvable(&url) {
			styleUrls = append(styleUrls, n.urlResolver.Resolve(directiveType.ModuleUrl, url))
		}
	}

	resolvedStyles := make([]string, 0, len(styles))
	for _, style := range styles {
		styleWithImports := css.ExtractStyleUrls(n.urlResolver, templateAbsUrl, style)
		// Import URLs come back already resolved and are appended
		// without going through the resolvable filter again.
		styleUrls = append(styleUrls, styleWithImports.StyleUrls...)
		resolvedStyles = append(resolvedStyles, styleWithImports.Style)
	}

	encapsulation := templateMeta.Encapsulation
	if encapsulation == nil {
		encapsulation = n.config.DefaultEncapsulation
	}
	resolvedEncapsulation := *encapsulation
	if resolvedEncapsulation == core.ViewEncapsulationEmulated && len(resolvedStyles) == 0 && len(styleUrls) == 0 {
		// Emulated scoping with zero style content is pointless.
		resolvedEncapsulation = core.ViewEncapsulationNone
	}

	templateCopy := template
	absUrlCopy := templateAbsUrl
	return &metadata.CompileTemplateMetadata{
		Encapsulation:       &resolvedEncapsulation,
		Template:            &templateCopy,
		TemplateUrl:         &absUrlCopy,
		IsInline:            isInline,
		Styles:              resolvedStyles,
		StyleUrls:           styleUrls,
		NgContentSelectors:  visitor.ngContentSelectors,
		PreserveWhitespaces: preserveWhitespaces,
	}, nil
}

// NormalizeExternalStylesheets loads every stylesheet the normalized
// template references, following imports those stylesheets declare in turn,
// and returns a copy of the metadata carrying the loaded sheets. Cycles in
// the import graph are loaded once.
func (n *DirectiveNormalizer) NormalizeExternalStylesheets(ctx context.Context, templateMeta *metadata.CompileTemplateMetadata) (*metadata.CompileTemplateMetadata, error) {
	loaded := map[string]*metadata.CompileStylesheetMetadata{}
	var order []string
	if err := n.loadMissingExternalStylesheets(ctx, templateMeta.StyleUrls, loaded, &order); err != nil {
		return nil, err
	}
	stylesheets := make([]*metadata.CompileStylesheetMetadata, 0, len(order))
	for _, url := range order {
		stylesheets = append(stylesheets, loaded[url])
	}
	return templateMeta.WithExternalStylesheets(stylesheets), nil
}

func (n *DirectiveNormalizer) loadMissingExternalStylesheets(ctx context.Context, styleUrls []string, loaded map[string]*metadata.CompileStylesheetMetadata, order *[]string) error {
	for _, url := range styleUrls {
		if _, ok := loaded[url]; ok {
			continue
		}
		// Mark before fetching so an import cycle terminates.
		loaded[url] = nil
		styleText, err := n.resourceLoader.Load(ctx, url)
		if err != nil {
			return err
		}
		stylesheet := n.normalizeStylesheet(metadata.NewCompileStylesheetMetadata(url, []string{styleText}, nil))
		loaded[url] = stylesheet
		*order = append(*order, url)
		if err := n.loadMissingExternalStylesheets(ctx, stylesheet.StyleUrls, loaded, order); err != nil {
			return err
		}
	}
	return nil
}

// normalizeStylesheet resolves a stylesheet's URLs against its own module
// URL and extracts its @imports.
func (n *DirectiveNormalizer) normalizeStylesheet(stylesheet *metadata.CompileStylesheetMetadata) *metadata.CompileStylesheetMetadata {
	moduleUrl := stylesheet.ModuleUrl

	var allStyleUrls []string
	for _, url := range stylesheet.StyleUrls {
		url := url
		if css.IsStyleUrlResolvable(&url) {
			allStyleUrls = append(allStyleUrls, n.urlResolver.Resolve(moduleUrl, url))
		}
	}
	allStyles := make([]string, 0, len(stylesheet.Styles))
	for _, style := range stylesheet.Styles {
		styleWithImports := css.ExtractStyleUrls(n.urlResolver, moduleUrl, style)
		allStyleUrls = append(allStyleUrls, styleWithImports.StyleUrls...)
		allStyles = append(allStyles, styleWithImports.Style)
	}
	return metadata.NewCompileStylesheetMetadata(moduleUrl, allStyles, allStyleUrls)
}
