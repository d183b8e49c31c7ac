package ml_parser

import (
	"regexp"
	"strconv"
	"strings"

	"ngnorm-go/packages/compiler/util"
)

// Tokenize tokenizes HTML source into a flat token stream
func Tokenize(source, url string, getTagDefinition func(tagName string) *TagDefinition) *TokenizeResult {
	lexer := newLexer(source, url, getTagDefinition)
	lexer.tokenize()
	return &TokenizeResult{Tokens: lexer.tokens, Errors: lexer.errors}
}

type lexer struct {
	file             *util.ParseSourceFile
	input            string
	getTagDefinition func(tagName string) *TagDefinition

	offset int
	line   int
	col    int

	tokens []*Token
	errors []*util.ParseError
}

func newLexer(source, url string, getTagDefinition func(tagName string) *TagDefinition) *lexer {
	return &lexer{
		file:             util.NewParseSourceFile(source, url),
		input:            source,
		getTagDefinition: getTagDefinition,
	}
}

type cursor struct {
	offset int
	line   int
	col    int
}

func (l *lexer) snapshot() cursor {
	return cursor{offset: l.offset, line: l.line, col: l.col}
}

func (l *lexer) location(c cursor) *util.ParseLocation {
	return util.NewParseLocation(l.file, c.offset, c.line, c.col)
}

func (l *lexer) span(start cursor) *util.ParseSourceSpan {
	return util.NewParseSourceSpan(l.location(start), l.location(l.snapshot()), nil)
}

func (l *lexer) eof() bool {
	return l.offset >= len(l.input)
}

func (l *lexer) peek() byte {
	if l.eof() {
		return 0
	}
	return l.input[l.offset]
}

func (l *lexer) advance() byte {
	ch := l.input[l.offset]
	l.offset++
	if ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return ch
}

func (l *lexer) advanceBy(n int) {
	for i := 0; i < n && !l.eof(); i++ {
		l.advance()
	}
}

func (l *lexer) startsWith(prefix string) bool {
	return strings.HasPrefix(l.input[l.offset:], prefix)
}

func (l *lexer) emit(tokenType TokenType, parts []string, start cursor) {
	l.tokens = append(l.tokens, NewToken(tokenType, parts, l.span(start)))
}

func (l *lexer) reportError(msg string, start cursor) {
	l.errors = append(l.errors, util.NewParseError(l.span(start), msg))
}

func (l *lexer) tokenize() {
	for !l.eof() {
		start := l.snapshot()
		switch {
		case l.startsWith("<!--"):
			l.consumeComment(start)
		case l.startsWith("<!"):
			l.consumeBogusMarkup()
		case l.startsWith("</"):
			l.consumeTagClose(start)
		case l.peek() == '<' && l.offset+1 < len(l.input) && isAsciiLetter(l.input[l.offset+1]):
			l.consumeTagOpen(start)
		default:
			l.consumeText(start)
		}
	}
	l.emit(TokenTypeEOF, nil, l.snapshot())
}

func (l *lexer) consumeComment(start cursor) {
	l.advanceBy(len("<!--"))
	end := strings.Index(l.input[l.offset:], "-->")
	if end == -1 {
		l.reportError(`Unexpected character "EOF"`, start)
		value := l.input[l.offset:]
		l.advanceBy(len(value))
		l.emit(TokenTypeCOMMENT, []string{value}, start)
		return
	}
	value := l.input[l.offset : l.offset+end]
	l.advanceBy(end + len("-->"))
	l.emit(TokenTypeCOMMENT, []string{value}, start)
}

// consumeBogusMarkup skips doctype declarations and CDATA sections,
// which carry no meaning for template normalization.
func (l *lexer) consumeBogusMarkup() {
	for !l.eof() && l.peek() != '>' {
		l.advance()
	}
	if !l.eof() {
		l.advance()
	}
}

func (l *lexer) consumeTagClose(start cursor) {
	l.advanceBy(len("</"))
	l.skipWhitespace()
	name := l.consumeTagName()
	l.skipWhitespace()
	if l.eof() {
		l.reportError(`Unexpected character "EOF"`, start)
		return
	}
	if l.peek() != '>' {
		l.reportError(`Unexpected character "`+string(l.peek())+`"`, l.snapshot())
		for !l.eof() && l.peek() != '>' {
			l.advance()
		}
	}
	if !l.eof() {
		l.advance()
	}
	l.emit(TokenTypeTAG_CLOSE, []string{name}, start)
}

func (l *lexer) consumeTagOpen(start cursor) {
	l.advance() // <
	name := l.consumeTagName()
	l.emit(TokenTypeTAG_OPEN_START, []string{name}, start)

	for {
		l.skipWhitespace()
		if l.eof() {
			l.reportError(`Unexpected character "EOF"`, start)
			return
		}
		if l.startsWith("/>") {
			voidStart := l.snapshot()
			l.advanceBy(2)
			l.emit(TokenTypeTAG_OPEN_END_VOID, nil, voidStart)
			return
		}
		if l.peek() == '>' {
			endStart := l.snapshot()
			l.advance()
			l.emit(TokenTypeTAG_OPEN_END, nil, endStart)
			break
		}
		l.consumeAttribute()
	}

	if def := l.getTagDefinition(name); def.ContentType != TagContentTypePARSABLE_DATA {
		l.consumeRawText(name, def.ContentType == TagContentTypeESCAPABLE_RAW_TEXT)
	}
}

func (l *lexer) consumeTagName() string {
	start := l.offset
	for !l.eof() && isTagNameChar(l.peek()) {
		l.advance()
	}
	return l.input[start:l.offset]
}

func (l *lexer) consumeAttribute() {
	start := l.snapshot()
	nameStart := l.offset
	for !l.eof() && !isAttrNameEnd(l.peek()) {
		l.advance()
	}
	name := l.input[nameStart:l.offset]
	if name == "" {
		// Stray character that can start neither an attribute nor a tag end.
		l.reportError(`Unexpected character "`+string(l.peek())+`"`, start)
		l.advance()
		return
	}
	value := ""
	l.skipWhitespace()
	if !l.eof() && l.peek() == '=' {
		l.advance()
		l.skipWhitespace()
		value = l.consumeAttributeValue()
	}
	l.emit(TokenTypeATTR, []string{name, value}, start)
}

func (l *lexer) consumeAttributeValue() string {
	if l.eof() {
		return ""
	}
	quote := l.peek()
	if quote == '"' || quote == '\'' {
		l.advance()
		start := l.offset
		for !l.eof() && l.peek() != quote {
			l.advance()
		}
		value := l.input[start:l.offset]
		if l.eof() {
			l.reportError(`Unexpected character "EOF"`, l.snapshot())
		} else {
			l.advance()
		}
		return decodeEntities(value)
	}
	start := l.offset
	for !l.eof() && !isWhitespace(l.peek()) && l.peek() != '>' {
		if l.startsWith("/>") {
			break
		}
		l.advance()
	}
	return decodeEntities(l.input[start:l.offset])
}

func (l *lexer) consumeRawText(tagName string, escapable bool) {
	start := l.snapshot()
	closeMarker := "</" + strings.ToLower(tagName)
	idx := indexOfClosingTag(l.input[l.offset:], closeMarker)
	if idx == -1 {
		value := l.input[l.offset:]
		l.advanceBy(len(value))
		l.reportError(`Unexpected character "EOF"`, start)
		l.emitRawText(value, escapable, start)
		return
	}
	value := l.input[l.offset : l.offset+idx]
	l.advanceBy(idx)
	l.emitRawText(value, escapable, start)

	closeStart := l.snapshot()
	l.advanceBy(len("</"))
	name := l.consumeTagName()
	for !l.eof() && l.peek() != '>' {
		l.advance()
	}
	if !l.eof() {
		l.advance()
	}
	l.emit(TokenTypeTAG_CLOSE, []string{name}, closeStart)
}

func (l *lexer) emitRawText(value string, escapable bool, start cursor) {
	if escapable {
		value = decodeEntities(value)
	}
	l.emit(TokenTypeRAW_TEXT, []string{value}, start)
}

// indexOfClosingTag finds the first ASCII case-insensitive occurrence of
// marker followed by whitespace, '>', '/' or EOF, so that "</style" inside
// "</styles" does not match. marker must already be lower case.
func indexOfClosingTag(input, marker string) int {
	for i := 0; i+len(marker) <= len(input); i++ {
		if !equalsIgnoreCase(input[i:i+len(marker)], marker) {
			continue
		}
		next := i + len(marker)
		if next >= len(input) || input[next] == '>' || input[next] == '/' || isWhitespace(input[next]) {
			return i
		}
	}
	return -1
}

func equalsIgnoreCase(s, lower string) bool {
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		if ch != lower[i] {
			return false
		}
	}
	return true
}

func (l *lexer) consumeText(start cursor) {
	textStart := l.offset
	for !l.eof() {
		if l.peek() == '<' {
			rest := l.input[l.offset:]
			if strings.HasPrefix(rest, "</") || strings.HasPrefix(rest, "<!") ||
				(len(rest) > 1 && isAsciiLetter(rest[1])) {
				break
			}
		}
		l.advance()
	}
	value := l.input[textStart:l.offset]
	l.emit(TokenTypeTEXT, []string{decodeEntities(value)}, start)
}

func (l *lexer) skipWhitespace() {
	for !l.eof() && isWhitespace(l.peek()) {
		l.advance()
	}
}

func isAsciiLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\f'
}

func isTagNameChar(ch byte) bool {
	return isAsciiLetter(ch) || (ch >= '0' && ch <= '9') || ch == '-' || ch == ':' || ch == '.' || ch == '_'
}

func isAttrNameEnd(ch byte) bool {
	return isWhitespace(ch) || ch == '=' || ch == '>' || ch == '/' || ch == '\'' || ch == '"'
}

var namedEntities = map[string]string{
	"lt":   "<",
	"gt":   ">",
	"amp":  "&",
	"quot": `"`,
	"apos": "'",
	"nbsp": " ",
}

var entityRe = regexp.MustCompile(`&(#x?[0-9a-fA-F]+|[a-zA-Z]+);`)

func decodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return entityRe.ReplaceAllStringFunc(s, func(m string) string {
		body := m[1 : len(m)-1]
		if body[0] == '#' {
			base := 10
			digits := body[1:]
			if len(digits) > 0 && (digits[0] == 'x' || digits[0] == 'X') {
				base = 16
				digits = digits[1:]
			}
			if code, err := strconv.ParseInt(digits, base, 32); err == nil {
				return string(rune(code))
			}
			return m
		}
		if decoded, ok := namedEntities[body]; ok {
			return decoded
		}
		return m
	})
}
