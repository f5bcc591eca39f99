// Package sqlfmt re-formats SQL text with a chosen verbosity style.
//
// It tokenizes the input and re-renders the token stream either as a single
// normalized line or as an indented multi-line layout. Formatting never
// changes the meaning of the statement: identifiers and literals pass through
// verbatim, only whitespace and keyword casing are normalized.
//
// Example usage:
//
//	out, err := sqlfmt.Format("select a from t where x > 1", sqlfmt.StyleBeautify)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out)
package sqlfmt

// TokenType represents the type of a token
type TokenType int

const (
	// TokenKeyword is a reserved SQL word (SELECT, FROM, AND, ...)
	TokenKeyword TokenType = iota
	// TokenIdent is an identifier, qualified name, or *
	TokenIdent
	// TokenNumber is a numeric literal
	TokenNumber
	// TokenString is a quoted string literal, kept with its quotes
	TokenString
	// TokenOperator is a comparison or arithmetic operator
	TokenOperator

	// Delimiters
	TokenComma      // ,
	TokenLeftParen  // (
	TokenRightParen // )
	TokenSemicolon  // ;

	// Special
	TokenEOF
	TokenError
)

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
}
