package ml_parser

// HtmlParser parses HTML with the HTML tag definition table
type HtmlParser struct {
	*Parser
}

// NewHtmlParser creates a new HtmlParser
func NewHtmlParser() *HtmlParser {
	return &HtmlParser{
		Parser: NewParser(GetHtmlTagDefinition),
	}
}
