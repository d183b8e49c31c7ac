package templateparser

import (
	"strings"

	"ngnorm-go/packages/compiler/ml_parser"
)

const NG_CONTENT_SELECT_ATTR = "select"
const LINK_ELEMENT = "link"
const LINK_STYLE_REL_ATTR = "rel"
const LINK_STYLE_HREF_ATTR = "href"
const LINK_STYLE_REL_VALUE = "stylesheet"
const STYLE_ELEMENT = "style"
const SCRIPT_ELEMENT = "script"
const NG_NON_BINDABLE_ATTR = "ngNonBindable"
const NG_PROJECT_AS = "ngProjectAs"

// PreparsedElementType represents the type of a preparsed element
type PreparsedElementType int

const (
	PreparsedElementTypeNgContent PreparsedElementType = iota
	PreparsedElementTypeStyle
	PreparsedElementTypeStylesheet
	PreparsedElementTypeScript
	PreparsedElementTypeOther
)

// PreparsedElement represents a preparsed element
type PreparsedElement struct {
	Type        PreparsedElementType
	SelectAttr  string
	HrefAttr    *string
	NonBindable bool
	ProjectAs   string
}

// PreparseElement classifies an element and extracts its special attributes
func PreparseElement(ast *ml_parser.Element) *PreparsedElement {
	var selectAttr *string
	var hrefAttr *string
	var relAttr *string
	nonBindable := false
	projectAs := ""

	for _, attr := range ast.Attrs {
		value := attr.Value
		switch strings.ToLower(attr.Name) {
		case NG_CONTENT_SELECT_ATTR:
			selectAttr = &value
		case LINK_STYLE_HREF_ATTR:
			hrefAttr = &value
		case LINK_STYLE_REL_ATTR:
			relAttr = &value
		}
		switch attr.Name {
		case NG_NON_BINDABLE_ATTR:
			nonBindable = true
		case NG_PROJECT_AS:
			if len(value) > 0 {
				projectAs = value
			}
		}
	}

	nodeName := strings.ToLower(ast.Name)
	elementType := PreparsedElementTypeOther
	switch {
	case ml_parser.IsNgContent(nodeName):
		elementType = PreparsedElementTypeNgContent
	case nodeName == STYLE_ELEMENT:
		elementType = PreparsedElementTypeStyle
	case nodeName == SCRIPT_ELEMENT:
		elementType = PreparsedElementTypeScript
	case nodeName == LINK_ELEMENT && relAttr != nil && *relAttr == LINK_STYLE_REL_VALUE:
		elementType = PreparsedElementTypeStylesheet
	}

	return &PreparsedElement{
		Type:        elementType,
		SelectAttr:  normalizeNgContentSelect(selectAttr),
		HrefAttr:    hrefAttr,
		NonBindable: nonBindable,
		ProjectAs:   projectAs,
	}
}

// normalizeNgContentSelect defaults an absent or empty select attribute to
// the wildcard selector
func normalizeNgContentSelect(selectAttr *string) string {
	if selectAttr == nil || len(*selectAttr) == 0 {
		return "*"
	}
	return *selectAttr
}
