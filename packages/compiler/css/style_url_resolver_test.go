package css_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"ngnorm-go/packages/compiler/css"
	"ngnorm-go/packages/compiler/url_resolver"
)

func TestIsStyleUrlResolvable(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("should resolve relative urls", func(t *testing.T) {
		if !css.IsStyleUrlResolvable(strPtr("someUrl.css")) {
			t.Error(`Expected IsStyleUrlResolvable("someUrl.css") to be true`)
		}
	})

	t.Run("should resolve package: urls", func(t *testing.T) {
		if !css.IsStyleUrlResolvable(strPtr("package:someUrl.css")) {
			t.Error(`Expected IsStyleUrlResolvable("package:someUrl.css") to be true`)
		}
	})

	t.Run("should resolve asset: urls", func(t *testing.T) {
		if !css.IsStyleUrlResolvable(strPtr("asset:someUrl.css")) {
			t.Error(`Expected IsStyleUrlResolvable("asset:someUrl.css") to be true`)
		}
	})

	t.Run("should not resolve empty urls", func(t *testing.T) {
		if css.IsStyleUrlResolvable(nil) {
			t.Error("Expected IsStyleUrlResolvable(nil) to be false")
		}
		if css.IsStyleUrlResolvable(strPtr("")) {
			t.Error(`Expected IsStyleUrlResolvable("") to be false`)
		}
	})

	t.Run("should not resolve urls with other schema", func(t *testing.T) {
		if css.IsStyleUrlResolvable(strPtr("http://otherurl")) {
			t.Error(`Expected IsStyleUrlResolvable("http://otherurl") to be false`)
		}
	})

	t.Run("should not resolve urls with absolute paths", func(t *testing.T) {
		if css.IsStyleUrlResolvable(strPtr("/otherurl")) {
			t.Error(`Expected IsStyleUrlResolvable("/otherurl") to be false`)
		}
		if css.IsStyleUrlResolvable(strPtr("//otherurl")) {
			t.Error(`Expected IsStyleUrlResolvable("//otherurl") to be false`)
		}
	})
}

func TestExtractStyleUrls(t *testing.T) {
	resolver := url_resolver.NewUrlResolver(nil)

	extract := func(cssText string) *css.StyleWithImports {
		return css.ExtractStyleUrls(resolver, "http://ng.io/app", cssText)
	}

	t.Run("should extract a quoted import", func(t *testing.T) {
		result := extract(`@import '1.css';body { color: red }`)
		if result.Style != "body { color: red }" {
			t.Errorf("unexpected style: %q", result.Style)
		}
		if diff := cmp.Diff([]string{"http://ng.io/1.css"}, result.StyleUrls); diff != "" {
			t.Errorf("StyleUrls mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should extract a double quoted import", func(t *testing.T) {
		result := extract(`@import "1.css";`)
		if diff := cmp.Diff([]string{"http://ng.io/1.css"}, result.StyleUrls); diff != "" {
			t.Errorf("StyleUrls mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should extract url() imports", func(t *testing.T) {
		result := extract(`@import url('3.css');`)
		if diff := cmp.Diff([]string{"http://ng.io/3.css"}, result.StyleUrls); diff != "" {
			t.Errorf("StyleUrls mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should extract url() imports without quotes", func(t *testing.T) {
		result := extract(`@import url(4.css);`)
		if diff := cmp.Diff([]string{"http://ng.io/4.css"}, result.StyleUrls); diff != "" {
			t.Errorf("StyleUrls mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should extract multiple imports in order", func(t *testing.T) {
		result := extract("@import '1.css';@import '2.css';")
		if diff := cmp.Diff([]string{"http://ng.io/1.css", "http://ng.io/2.css"}, result.StyleUrls); diff != "" {
			t.Errorf("StyleUrls mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should leave absolute non-package imports in place", func(t *testing.T) {
		cssText := `@import 'http://other.io/1.css';`
		result := extract(cssText)
		if result.Style != cssText {
			t.Errorf("style was modified: %q", result.Style)
		}
		if len(result.StyleUrls) != 0 {
			t.Errorf("expected no urls, got %v", result.StyleUrls)
		}
	})
}
