package normalizer

import (
	"strings"

	"ngnorm-go/packages/compiler/ml_parser"
	"ngnorm-go/packages/compiler/templateparser"
)

// templatePreparseVisitor walks a parsed template once, collecting content
// projection selectors, inline style text and external stylesheet URLs.
// A fresh visitor is constructed per normalization call; it carries no state
// across calls.
type templatePreparseVisitor struct {
	ngContentSelectors      []string
	styles                  []string
	styleUrls               []string
	ngNonBindableStackCount int
}

func newTemplatePreparseVisitor() *templatePreparseVisitor {
	return &templatePreparseVisitor{}
}

func (v *templatePreparseVisitor) VisitElement(ast *ml_parser.Element, context interface{}) interface{} {
	preparsed := templateparser.PreparseElement(ast)
	switch preparsed.Type {
	case templateparser.PreparsedElementTypeNgContent:
		// Projection markers inside a non-bindable region are plain
		// static content and do not register.
		if v.ngNonBindableStackCount == 0 {
			v.ngContentSelectors = append(v.ngContentSelectors, preparsed.SelectAttr)
		}
	case templateparser.PreparsedElementTypeStyle:
		var textContent strings.Builder
		for _, child := range ast.Children {
			if text, ok := child.(*ml_parser.Text); ok {
				textContent.WriteString(text.Value)
			}
		}
		v.styles = append(v.styles, textContent.String())
	case templateparser.PreparsedElementTypeStylesheet:
		if preparsed.HrefAttr != nil {
			v.styleUrls = append(v.styleUrls, *preparsed.HrefAttr)
		}
	}
	if preparsed.NonBindable {
		v.ngNonBindableStackCount++
		// The decrement must run on every exit path so the counter stays
		// balanced across sibling subtrees.
		defer func() {
			v.ngNonBindableStackCount--
		}()
	}
	ml_parser.VisitAll(v, ast.Children, context)
	return nil
}

func (v *templatePreparseVisitor) VisitAttribute(ast *ml_parser.Attribute, context interface{}) interface{} {
	return nil
}

func (v *templatePreparseVisitor) VisitText(ast *ml_parser.Text, context interface{}) interface{} {
	return nil
}

func (v *templatePreparseVisitor) VisitComment(ast *ml_parser.Comment, context interface{}) interface{} {
	return nil
}
