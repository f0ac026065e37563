package main

import (
	"strings"

	"rpcalc/app/lang"
)

// TokenKind represents the category of a syntax token.
type TokenKind int

const (
	TokenPlain TokenKind = iota
	TokenKeyword
	TokenNumber
	TokenComment
	TokenOperator
	TokenInvalid
)

// Token is a span of text with a syntax category.
type Token struct {
	Text string
	Kind TokenKind
}

// tokenColors maps token kinds to ANSI SGR sequences. Dark-theme oriented.
var tokenColors = map[TokenKind]string{
	TokenKeyword:  "\x1b[34m",   // blue
	TokenNumber:   "\x1b[32m",   // green
	TokenComment:  "\x1b[2m",    // dim
	TokenOperator: "\x1b[1m",    // bold
	TokenInvalid:  "\x1b[4;31m", // underlined red
}

const ansiReset = "\x1b[0m"

// langTokenToHighlight maps a lang.TokenType to a highlight TokenKind.
func langTokenToHighlight(t lang.TokenType) TokenKind {
	switch t {
	case lang.TOKEN_INTEGER, lang.TOKEN_FLOAT:
		return TokenNumber
	case lang.TOKEN_OPERATOR:
		return TokenOperator
	case lang.TOKEN_WORD:
		return TokenKeyword
	case lang.TOKEN_ILLEGAL:
		return TokenInvalid
	default:
		return TokenPlain
	}
}

// Tokenize splits a line into highlighted tokens using the lang lexer.
// Concatenating the Text of the result gives back the line.
func Tokenize(line string) []Token {
	if line == "" {
		return nil
	}
	if strings.HasPrefix(strings.TrimSpace(line), "#") {
		return []Token{{Text: line, Kind: TokenComment}}
	}

	var result []Token
	lastEnd := 0
	for _, lt := range lang.Lex(line) {
		if lt.Type == lang.TOKEN_EOF {
			break
		}
		if lt.Pos > lastEnd {
			result = append(result, Token{Text: line[lastEnd:lt.Pos], Kind: TokenPlain})
		}
		result = append(result, Token{Text: lt.Literal, Kind: langTokenToHighlight(lt.Type)})
		lastEnd = lt.Pos + len(lt.Literal)
	}
	if lastEnd < len(line) {
		result = append(result, Token{Text: line[lastEnd:], Kind: TokenPlain})
	}
	return result
}

// highlight renders line with ANSI colors.
func highlight(line string) string {
	var sb strings.Builder
	for _, tok := range Tokenize(line) {
		c, ok := tokenColors[tok.Kind]
		if !ok {
			sb.WriteString(tok.Text)
			continue
		}
		sb.WriteString(c)
		sb.WriteString(tok.Text)
		sb.WriteString(ansiReset)
	}
	return sb.String()
}
