package ml_parser

import "strings"

// TagContentType represents the content type of a tag
type TagContentType int

const (
	TagContentTypeRAW_TEXT TagContentType = iota
	TagContentTypeESCAPABLE_RAW_TEXT
	TagContentTypePARSABLE_DATA
)

// TagDefinition defines the parsing behavior of an HTML tag
type TagDefinition struct {
	IsVoid       bool
	CanSelfClose bool
	ContentType  TagContentType
}

var voidTagDefinition = &TagDefinition{IsVoid: true, CanSelfClose: true, ContentType: TagContentTypePARSABLE_DATA}
var rawTextTagDefinition = &TagDefinition{ContentType: TagContentTypeRAW_TEXT}
var escapableRawTextTagDefinition = &TagDefinition{ContentType: TagContentTypeESCAPABLE_RAW_TEXT}
var defaultTagDefinition = &TagDefinition{ContentType: TagContentTypePARSABLE_DATA}
var customTagDefinition = &TagDefinition{CanSelfClose: true, ContentType: TagContentTypePARSABLE_DATA}

var tagDefinitions = map[string]*TagDefinition{
	"area":     voidTagDefinition,
	"base":     voidTagDefinition,
	"br":       voidTagDefinition,
	"col":      voidTagDefinition,
	"embed":    voidTagDefinition,
	"hr":       voidTagDefinition,
	"img":      voidTagDefinition,
	"input":    voidTagDefinition,
	"link":     voidTagDefinition,
	"meta":     voidTagDefinition,
	"param":    voidTagDefinition,
	"source":   voidTagDefinition,
	"track":    voidTagDefinition,
	"wbr":      voidTagDefinition,
	"style":    rawTextTagDefinition,
	"script":   rawTextTagDefinition,
	"title":    escapableRawTextTagDefinition,
	"textarea": escapableRawTextTagDefinition,
}

// GetHtmlTagDefinition returns the tag definition for the given tag name.
// Tags containing a dash are treated as custom elements and may self close.
func GetHtmlTagDefinition(tagName string) *TagDefinition {
	if def, ok := tagDefinitions[strings.ToLower(tagName)]; ok {
		return def
	}
	if strings.Contains(tagName, "-") {
		return customTagDefinition
	}
	return defaultTagDefinition
}

// IsNgContent checks if a tag name is ng-content
func IsNgContent(tagName string) bool {
	return strings.ToLower(tagName) == "ng-content"
}

// IsNgContainer checks if a tag name is ng-container
func IsNgContainer(tagName string) bool {
	return strings.ToLower(tagName) == "ng-container"
}

// IsNgTemplate checks if a tag name is ng-template
func IsNgTemplate(tagName string) bool {
	return strings.ToLower(tagName) == "ng-template"
}
