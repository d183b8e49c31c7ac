package css

import (
	"regexp"

	"ngnorm-go/packages/compiler/url_resolver"
)

// Some of the URL handling comes from WebComponents.JS
// https://github.com/webcomponents/webcomponentsjs/blob/master/src/HTMLImports/path.js

var urlWithSchemaRe = regexp.MustCompile(`^([^:/?#]+):`)

// IsStyleUrlResolvable checks if a style URL can be resolved at compile time.
// Absolute paths and URLs with a scheme other than "package" or "asset" are
// left for the runtime loader.
func IsStyleUrlResolvable(url *string) bool {
	if url == nil || len(*url) == 0 || (*url)[0] == '/' {
		return false
	}
	schemeMatch := urlWithSchemaRe.FindStringSubmatch(*url)
	return schemeMatch == nil || schemeMatch[1] == "package" || schemeMatch[1] == "asset"
}

// StyleWithImports is a style text with its @import URLs extracted
type StyleWithImports struct {
	Style     string
	StyleUrls []string
}

// NewStyleWithImports creates a new StyleWithImports
func NewStyleWithImports(style string, styleUrls []string) *StyleWithImports {
	return &StyleWithImports{
		Style:     style,
		StyleUrls: styleUrls,
	}
}

var cssImportRe = regexp.MustCompile(`@import\s+(?:url\()?\s*(?:(?:['"]([^'"]*))|([^;)\s]*))[^;]*;?`)

// ExtractStyleUrls rewrites stylesheet text so that resolvable @import rules
// are removed and returned as absolute URLs. Imports the resolver cannot map
// at compile time stay in the text untouched.
func ExtractStyleUrls(resolver *url_resolver.UrlResolver, baseUrl, cssText string) *StyleWithImports {
	var foundUrls []string

	modifiedCssText := cssImportRe.ReplaceAllStringFunc(cssText, func(m string) string {
		sub := cssImportRe.FindStringSubmatch(m)
		url := sub[1]
		if url == "" {
			url = sub[2]
		}
		if !IsStyleUrlResolvable(&url) {
			// Leave non-resolvable imports in place for the runtime.
			return m
		}
		foundUrls = append(foundUrls, resolver.Resolve(baseUrl, url))
		return ""
	})
	return NewStyleWithImports(modifiedCssText, foundUrls)
}
