package ml_parser

import "ngnorm-go/packages/compiler/util"

// TokenType represents the type of a lexer token
type TokenType int

const (
	TokenTypeTAG_OPEN_START TokenType = iota
	TokenTypeTAG_OPEN_END
	TokenTypeTAG_OPEN_END_VOID
	TokenTypeTAG_CLOSE
	TokenTypeATTR
	TokenTypeTEXT
	TokenTypeRAW_TEXT
	TokenTypeCOMMENT
	TokenTypeEOF
)

// Token represents a token in the HTML source
type Token struct {
	Type       TokenType
	Parts      []string
	SourceSpan *util.ParseSourceSpan
}

// NewToken creates a new Token
func NewToken(tokenType TokenType, parts []string, sourceSpan *util.ParseSourceSpan) *Token {
	return &Token{
		Type:       tokenType,
		Parts:      parts,
		SourceSpan: sourceSpan,
	}
}

// TokenizeResult represents the result of tokenization
type TokenizeResult struct {
	Tokens []*Token
	Errors []*util.ParseError
}
