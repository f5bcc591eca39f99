package sqlfmt

import (
	"strings"

	"github.com/vegasq/parquetview/viewer"
)

// Style selects the rendering layout.
type Style int

const (
	// StyleMinimal renders the statement as a single normalized line.
	StyleMinimal Style = iota
	// StyleBeautify renders the statement across multiple indented lines.
	StyleBeautify
)

// Format re-renders sql in the given style. Keywords are uppercased and
// whitespace is normalized; identifiers and literals are preserved verbatim.
// Input that cannot be tokenized fails with a parse error and no partial
// output.
func Format(sql string, style Style) (string, error) {
	tokens, err := Tokenize(sql)
	if err != nil {
		return "", err
	}
	if len(tokens) == 0 {
		return "", viewer.NewError(viewer.KindSQLParse, "empty statement")
	}

	switch style {
	case StyleMinimal:
		return renderMinimal(tokens), nil
	case StyleBeautify:
		return renderBeautify(tokens), nil
	default:
		return "", viewer.NewError(viewer.KindOperationFailed, "unknown style %d", int(style))
	}
}

// renderMinimal joins the tokens on a single line with canonical spacing.
func renderMinimal(tokens []Token) string {
	var out strings.Builder
	for i, tok := range tokens {
		if i > 0 && needSpace(tokens[i-1], tok) {
			out.WriteByte(' ')
		}
		out.WriteString(renderToken(tok))
	}
	return out.String()
}

// clauseStarters are the keywords that open a new line in beautified output.
var clauseStarters = map[string]bool{
	"select": true, "from": true, "where": true, "group": true,
	"having": true, "order": true, "limit": true, "offset": true,
	"with": true, "union": true, "inner": true, "left": true,
	"right": true, "full": true, "cross": true, "values": true,
	"insert": true, "update": true, "set": true, "delete": true,
}

// joinPredecessors are the keywords after which JOIN continues the clause
// instead of starting one.
var joinPredecessors = map[string]bool{
	"inner": true, "left": true, "right": true, "full": true,
	"outer": true, "cross": true,
}

// renderBeautify lays the statement out one clause per line, with boolean
// connectives indented beneath their clause.
func renderBeautify(tokens []Token) string {
	var out strings.Builder
	depth := 0
	for i, tok := range tokens {
		lower := strings.ToLower(tok.Value)
		switch {
		case i == 0:
			// first token opens the first line
		case tok.Type == TokenKeyword && startsClause(lower, tokens[i-1]):
			out.WriteByte('\n')
			writeIndent(&out, depth)
		case tok.Type == TokenKeyword && (lower == "and" || lower == "or"):
			out.WriteByte('\n')
			writeIndent(&out, depth)
			out.WriteString("  ")
		default:
			if needSpace(tokens[i-1], tok) {
				out.WriteByte(' ')
			}
		}

		if tok.Type == TokenLeftParen {
			depth++
		} else if tok.Type == TokenRightParen && depth > 0 {
			depth--
		}
		out.WriteString(renderToken(tok))
	}
	return out.String()
}

// startsClause reports whether a keyword opens a new clause given the token
// that precedes it.
func startsClause(lower string, prev Token) bool {
	if lower == "join" {
		return !(prev.Type == TokenKeyword && joinPredecessors[strings.ToLower(prev.Value)])
	}
	if !clauseStarters[lower] {
		return false
	}
	// ORDER in "partition by x order by y" and the window keywords stay inline.
	if prev.Type == TokenLeftParen {
		return false
	}
	return true
}

func writeIndent(out *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		out.WriteString("  ")
	}
}

// renderToken returns the canonical text of a token.
func renderToken(tok Token) string {
	if tok.Type == TokenKeyword {
		return strings.ToUpper(tok.Value)
	}
	return tok.Value
}

// needSpace reports whether a space separates two adjacent tokens.
func needSpace(prev, cur Token) bool {
	switch cur.Type {
	case TokenComma, TokenRightParen, TokenSemicolon:
		return false
	case TokenLeftParen:
		// No space in function calls: count(x), upper(name).
		if prev.Type == TokenIdent {
			return false
		}
	}
	if prev.Type == TokenLeftParen {
		return false
	}
	return true
}
