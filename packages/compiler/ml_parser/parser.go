package ml_parser

import (
	"strings"

	"ngnorm-go/packages/compiler/util"
)

// TreeError represents a tree building error
type TreeError struct {
	*util.ParseError
	ElementName *string
}

// NewTreeError creates a new TreeError
func NewTreeError(elementName *string, span *util.ParseSourceSpan, msg string) *TreeError {
	return &TreeError{
		ParseError:  util.NewParseError(span, msg),
		ElementName: elementName,
	}
}

// ParseTreeResult represents the result of parsing a tree
type ParseTreeResult struct {
	RootNodes []Node
	Errors    []*util.ParseError
}

// NewParseTreeResult creates a new ParseTreeResult
func NewParseTreeResult(rootNodes []Node, errors []*util.ParseError) *ParseTreeResult {
	return &ParseTreeResult{
		RootNodes: rootNodes,
		Errors:    errors,
	}
}

// Parser parses HTML source into an AST
type Parser struct {
	GetTagDefinition func(tagName string) *TagDefinition
}

// NewParser creates a new Parser
func NewParser(getTagDefinition func(tagName string) *TagDefinition) *Parser {
	return &Parser{
		GetTagDefinition: getTagDefinition,
	}
}

// Parse parses source code into a ParseTreeResult
func (p *Parser) Parse(source, url string) *ParseTreeResult {
	tokenizeResult := Tokenize(source, url, p.GetTagDefinition)
	treeBuilder := newTreeBuilder(tokenizeResult.Tokens, p.GetTagDefinition)
	treeBuilder.build()

	allErrors := tokenizeResult.Errors
	for _, err := range treeBuilder.errors {
		allErrors = append(allErrors, err.ParseError)
	}
	return NewParseTreeResult(treeBuilder.rootNodes, allErrors)
}

type treeBuilder struct {
	tokens           []*Token
	getTagDefinition func(tagName string) *TagDefinition

	index        int
	elementStack []*Element
	rootNodes    []Node
	errors       []*TreeError
}

func newTreeBuilder(tokens []*Token, getTagDefinition func(tagName string) *TagDefinition) *treeBuilder {
	return &treeBuilder{
		tokens:           tokens,
		getTagDefinition: getTagDefinition,
	}
}

func (tb *treeBuilder) build() {
	for tb.index < len(tb.tokens) {
		token := tb.tokens[tb.index]
		switch token.Type {
		case TokenTypeTAG_OPEN_START:
			tb.consumeStartTag(token)
		case TokenTypeTAG_CLOSE:
			tb.consumeEndTag(token)
			tb.index++
		case TokenTypeTEXT, TokenTypeRAW_TEXT:
			tb.addToParent(NewText(token.Parts[0], token.SourceSpan))
			tb.index++
		case TokenTypeCOMMENT:
			tb.addToParent(NewComment(token.Parts[0], token.SourceSpan))
			tb.index++
		case TokenTypeEOF:
			// Elements left open at EOF are closed implicitly.
			tb.index++
		default:
			tb.index++
		}
	}
}

func (tb *treeBuilder) consumeStartTag(startToken *Token) {
	name := startToken.Parts[0]
	tb.index++

	var attrs []*Attribute
	for tb.index < len(tb.tokens) && tb.tokens[tb.index].Type == TokenTypeATTR {
		attrToken := tb.tokens[tb.index]
		attrs = append(attrs, NewAttribute(attrToken.Parts[0], attrToken.Parts[1], attrToken.SourceSpan))
		tb.index++
	}

	selfClosing := false
	endSpan := startToken.SourceSpan
	if tb.index < len(tb.tokens) {
		endToken := tb.tokens[tb.index]
		switch endToken.Type {
		case TokenTypeTAG_OPEN_END_VOID:
			selfClosing = true
			endSpan = endToken.SourceSpan
			tb.index++
		case TokenTypeTAG_OPEN_END:
			endSpan = endToken.SourceSpan
			tb.index++
		}
	}

	def := tb.getTagDefinition(name)
	if selfClosing && !def.CanSelfClose && !def.IsVoid {
		tb.errors = append(tb.errors, NewTreeError(&name, startToken.SourceSpan,
			`Only void, custom and foreign elements can be self closed "`+name+`"`))
		selfClosing = false
	}

	span := util.NewParseSourceSpan(startToken.SourceSpan.Start, endSpan.End, nil)
	element := NewElement(name, attrs, nil, span, span, nil)
	element.IsSelfClosing = selfClosing
	tb.addToParent(element)
	if !selfClosing && !def.IsVoid {
		tb.elementStack = append(tb.elementStack, element)
	}
}

func (tb *treeBuilder) consumeEndTag(token *Token) {
	name := token.Parts[0]
	if tb.getTagDefinition(name).IsVoid {
		tb.errors = append(tb.errors, NewTreeError(&name, token.SourceSpan,
			`Void elements do not have end tags "`+name+`"`))
		return
	}
	// HTML tag names match case insensitively.
	for i := len(tb.elementStack) - 1; i >= 0; i-- {
		if strings.EqualFold(tb.elementStack[i].Name, name) {
			tb.elementStack[i].EndSourceSpan = token.SourceSpan
			tb.elementStack = tb.elementStack[:i]
			return
		}
	}
	tb.errors = append(tb.errors, NewTreeError(&name, token.SourceSpan,
		`Unexpected closing tag "`+name+`". It may happen when the tag has already been closed by another tag.`))
}

func (tb *treeBuilder) addToParent(node Node) {
	if len(tb.elementStack) > 0 {
		parent := tb.elementStack[len(tb.elementStack)-1]
		parent.Children = append(parent.Children, node)
		return
	}
	tb.rootNodes = append(tb.rootNodes, node)
}
