package templateparser_test

import (
	"testing"

	"ngnorm-go/packages/compiler/ml_parser"
	"ngnorm-go/packages/compiler/templateparser"
)

func preparse(t *testing.T, html string) *templateparser.PreparsedElement {
	t.Helper()
	result := ml_parser.NewHtmlParser().Parse(html, "TestComp")
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected parse errors: %v", result.Errors)
	}
	element, ok := result.RootNodes[0].(*ml_parser.Element)
	if !ok {
		t.Fatalf("expected an element, got %T", result.RootNodes[0])
	}
	return templateparser.PreparseElement(element)
}

func TestPreparseElement(t *testing.T) {
	t.Run("should detect ng-content elements", func(t *testing.T) {
		preparsed := preparse(t, "<ng-content select='a'></ng-content>")
		if preparsed.Type != templateparser.PreparsedElementTypeNgContent {
			t.Errorf("unexpected type: %v", preparsed.Type)
		}
		if preparsed.SelectAttr != "a" {
			t.Errorf("unexpected select attr: %q", preparsed.SelectAttr)
		}
	})

	t.Run("should normalize an absent select attribute to the wildcard", func(t *testing.T) {
		preparsed := preparse(t, "<ng-content></ng-content>")
		if preparsed.SelectAttr != "*" {
			t.Errorf("unexpected select attr: %q", preparsed.SelectAttr)
		}
	})

	t.Run("should normalize an empty select attribute to the wildcard", func(t *testing.T) {
		preparsed := preparse(t, "<ng-content select></ng-content>")
		if preparsed.SelectAttr != "*" {
			t.Errorf("unexpected select attr: %q", preparsed.SelectAttr)
		}
	})

	t.Run("should detect style elements", func(t *testing.T) {
		preparsed := preparse(t, "<style>.a {}</style>")
		if preparsed.Type != templateparser.PreparsedElementTypeStyle {
			t.Errorf("unexpected type: %v", preparsed.Type)
		}
	})

	t.Run("should detect script elements", func(t *testing.T) {
		preparsed := preparse(t, "<script>var a;</script>")
		if preparsed.Type != templateparser.PreparsedElementTypeScript {
			t.Errorf("unexpected type: %v", preparsed.Type)
		}
	})

	t.Run("should detect stylesheet links", func(t *testing.T) {
		preparsed := preparse(t, "<link rel='stylesheet' href='a.css'>")
		if preparsed.Type != templateparser.PreparsedElementTypeStylesheet {
			t.Errorf("unexpected type: %v", preparsed.Type)
		}
		if preparsed.HrefAttr == nil || *preparsed.HrefAttr != "a.css" {
			t.Errorf("unexpected href attr: %v", preparsed.HrefAttr)
		}
	})

	t.Run("should treat links without a stylesheet rel as other elements", func(t *testing.T) {
		preparsed := preparse(t, "<link rel='preload' href='a.js'>")
		if preparsed.Type != templateparser.PreparsedElementTypeOther {
			t.Errorf("unexpected type: %v", preparsed.Type)
		}
	})

	t.Run("should detect ngNonBindable", func(t *testing.T) {
		preparsed := preparse(t, "<div ngNonBindable></div>")
		if !preparsed.NonBindable {
			t.Error("expected NonBindable to be true")
		}
		if preparsed.Type != templateparser.PreparsedElementTypeOther {
			t.Errorf("unexpected type: %v", preparsed.Type)
		}
	})

	t.Run("should extract ngProjectAs", func(t *testing.T) {
		preparsed := preparse(t, `<div ngProjectAs="[a]"></div>`)
		if preparsed.ProjectAs != "[a]" {
			t.Errorf("unexpected projectAs: %q", preparsed.ProjectAs)
		}
	})
}
