package sqlfmt

import (
	"strings"
	"unicode"

	"github.com/vegasq/parquetview/viewer"
)

// Lexer tokenizes SQL query strings
type Lexer struct {
	input string
	pos   int
	ch    rune
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar reads the next character
func (l *Lexer) readChar() {
	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = rune(l.input[l.pos])
	}
	l.pos++
}

// peekChar looks at the next character without advancing
func (l *Lexer) peekChar() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return rune(l.input[l.pos])
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readString reads a quoted string literal, preserving the quotes and any
// escape sequences exactly as written. The second return value is false when
// the closing quote is missing.
func (l *Lexer) readString(quote rune) (string, bool) {
	var result strings.Builder
	result.WriteRune(quote)
	l.readChar() // skip opening quote

	for l.ch != quote && l.ch != 0 {
		if l.ch == '\\' {
			result.WriteRune(l.ch)
			l.readChar()
			if l.ch == 0 {
				return result.String(), false
			}
		}
		result.WriteRune(l.ch)
		l.readChar()
	}

	if l.ch != quote {
		return result.String(), false
	}
	result.WriteRune(quote)
	l.readChar() // skip closing quote

	return result.String(), true
}

// readNumber reads a number
func (l *Lexer) readNumber() string {
	var result strings.Builder
	for unicode.IsDigit(l.ch) || l.ch == '.' {
		result.WriteRune(l.ch)
		l.readChar()
	}
	return result.String()
}

// readIdentifier reads an identifier or keyword (including qualified names)
func (l *Lexer) readIdentifier() string {
	var result strings.Builder
	for unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) || l.ch == '_' || l.ch == '.' {
		result.WriteRune(l.ch)
		l.readChar()
	}
	return result.String()
}

// NextToken returns the next token
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	var tok Token

	switch l.ch {
	case 0:
		tok = Token{Type: TokenEOF, Value: ""}
	case '=':
		tok = Token{Type: TokenOperator, Value: "="}
		l.readChar()
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenOperator, Value: "!="}
			l.readChar()
		} else {
			tok = Token{Type: TokenError, Value: "!"}
			l.readChar()
		}
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			tok = Token{Type: TokenOperator, Value: "<="}
			l.readChar()
		case '>':
			l.readChar()
			tok = Token{Type: TokenOperator, Value: "<>"}
			l.readChar()
		default:
			tok = Token{Type: TokenOperator, Value: "<"}
			l.readChar()
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenOperator, Value: ">="}
			l.readChar()
		} else {
			tok = Token{Type: TokenOperator, Value: ">"}
			l.readChar()
		}
	case '\'', '"':
		quote := l.ch
		value, ok := l.readString(quote)
		if !ok {
			tok = Token{Type: TokenError, Value: value}
		} else {
			tok = Token{Type: TokenString, Value: value}
		}
	case '*':
		tok = Token{Type: TokenIdent, Value: "*"}
		l.readChar()
	case '+', '-', '/', '%':
		tok = Token{Type: TokenOperator, Value: string(l.ch)}
		l.readChar()
	case ',':
		tok = Token{Type: TokenComma, Value: ","}
		l.readChar()
	case '(':
		tok = Token{Type: TokenLeftParen, Value: "("}
		l.readChar()
	case ')':
		tok = Token{Type: TokenRightParen, Value: ")"}
		l.readChar()
	case ';':
		tok = Token{Type: TokenSemicolon, Value: ";"}
		l.readChar()
	default:
		if unicode.IsDigit(l.ch) {
			tok = Token{Type: TokenNumber, Value: l.readNumber()}
		} else if unicode.IsLetter(l.ch) || l.ch == '_' {
			value := l.readIdentifier()
			tok = Token{Type: identifierType(value), Value: value}
		} else {
			tok = Token{Type: TokenError, Value: string(l.ch)}
			l.readChar()
		}
	}

	return tok
}

// keywords is the set of reserved words, looked up case-insensitively.
var keywords = map[string]bool{
	"select": true, "from": true, "where": true, "and": true, "or": true,
	"as": true, "group": true, "by": true, "having": true, "order": true,
	"asc": true, "desc": true, "limit": true, "offset": true, "in": true,
	"like": true, "between": true, "is": true, "not": true, "null": true,
	"distinct": true, "case": true, "when": true, "then": true, "else": true,
	"end": true, "over": true, "partition": true, "rows": true, "range": true,
	"with": true, "recursive": true, "exists": true, "join": true,
	"inner": true, "left": true, "right": true, "full": true, "outer": true,
	"cross": true, "on": true, "union": true, "all": true, "true": true,
	"false": true, "values": true, "insert": true, "into": true,
	"update": true, "set": true, "delete": true,
}

// identifierType determines if an identifier is a keyword
func identifierType(ident string) TokenType {
	if keywords[strings.ToLower(ident)] {
		return TokenKeyword
	}
	return TokenIdent
}

// Tokenize returns all tokens from the input, failing on the first byte that
// cannot start a token or on an unterminated string literal.
func Tokenize(input string) ([]Token, error) {
	lexer := NewLexer(input)
	var tokens []Token

	for {
		tok := lexer.NextToken()
		if tok.Type == TokenError {
			if len(tok.Value) > 0 && (tok.Value[0] == '\'' || tok.Value[0] == '"') {
				return nil, viewer.NewError(viewer.KindSQLParse, "unterminated string literal %s", tok.Value)
			}
			return nil, viewer.NewError(viewer.KindSQLParse, "unexpected character %q", tok.Value)
		}
		if tok.Type == TokenEOF {
			break
		}
		tokens = append(tokens, tok)
	}

	return tokens, nil
}
