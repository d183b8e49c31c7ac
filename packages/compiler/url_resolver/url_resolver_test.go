package url_resolver_test

import (
	"testing"

	"ngnorm-go/packages/compiler/url_resolver"
)

func TestUrlResolver_Resolve(t *testing.T) {
	resolver := url_resolver.NewUrlResolver(nil)

	expectResolve := func(t *testing.T, base, url, expected string) {
		t.Helper()
		if got := resolver.Resolve(base, url); got != expected {
			t.Errorf("Resolve(%q, %q) = %q, want %q", base, url, got, expected)
		}
	}

	t.Run("relative paths", func(t *testing.T) {
		expectResolve(t, "foo/bar/baz.html", "a.css", "foo/bar/a.css")
		expectResolve(t, "foo/bar/baz.html", "./a.css", "foo/bar/a.css")
		expectResolve(t, "foo/bar/baz.html", "../a.css", "foo/a.css")
		expectResolve(t, "foo/baz.html", "a/b.css", "foo/a/b.css")
	})

	t.Run("absolute paths", func(t *testing.T) {
		expectResolve(t, "foo/bar/baz.html", "/a.css", "/a.css")
		expectResolve(t, "/foo/bar/baz.html", "a.css", "/foo/bar/a.css")
	})

	t.Run("urls with schemes", func(t *testing.T) {
		expectResolve(t, "http://ng.io/foo/bar.html", "a.css", "http://ng.io/foo/a.css")
		expectResolve(t, "http://ng.io/foo/bar.html", "/a.css", "http://ng.io/a.css")
		expectResolve(t, "foo/bar.html", "http://other.io/a.css", "http://other.io/a.css")
	})

	t.Run("empty base", func(t *testing.T) {
		expectResolve(t, "", "a.css", "a.css")
	})

	t.Run("package urls", func(t *testing.T) {
		expectResolve(t, "package:foo/bar.html", "a.css", "package:foo/a.css")
	})
}

func TestUrlResolver_PackagePrefix(t *testing.T) {
	prefix := "/generated"
	resolver := url_resolver.NewUrlResolver(&prefix)

	if got := resolver.Resolve("", "package:some/module/a.css"); got != "/generated/some/module/a.css" {
		t.Errorf("unexpected resolution: %q", got)
	}
}

func TestCreateOfflineCompileUrlResolver(t *testing.T) {
	resolver := url_resolver.CreateOfflineCompileUrlResolver()

	if got := resolver.Resolve("", "package:some/module/a.css"); got != "./some/module/a.css" {
		t.Errorf("unexpected resolution: %q", got)
	}
}
