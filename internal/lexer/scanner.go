// Package lexer turns source text into the token stream the parser
// consumes. It can scan into a slice or stream tokens over a channel so
// parsing can start before scanning finishes.
package lexer

import (
	"fmt"
	"unicode"

	"tsuki/token"
)

type Scanner struct {
	source      string
	start       int
	current     int
	line        int
	column      int
	startLine   int
	startColumn int
	emit        func(token.Token)
	errors      []ScanError
}

type ScanError struct {
	Message  string
	Position token.Position
	Length   int // how many characters it covers
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// ScanTokens scans the whole input and returns the tokens, terminated by
// exactly one EOF token.
func (s *Scanner) ScanTokens() []token.Token {
	var tokens []token.Token
	s.emit = func(tok token.Token) { tokens = append(tokens, tok) }
	s.run()
	return tokens
}

// Stream scans the input and sends each token as it is produced, EOF last,
// then closes the channel. It is meant to run on its own goroutine as the
// producer half of the lex/parse pipeline.
func (s *Scanner) Stream(out chan<- token.Token) {
	s.emit = func(tok token.Token) { out <- tok }
	s.run()
	close(out)
}

// Errors reports the scan errors collected so far. Scanning never aborts;
// unrecognized input is reported and skipped.
func (s *Scanner) Errors() []ScanError {
	return s.errors
}

func (s *Scanner) run() {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
	}
	s.emit(token.Token{
		Type:     token.EOF,
		Position: token.Position{Line: s.line, Column: s.column, Offset: s.current},
	})
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(token.LParen)
	case ')':
		s.addToken(token.RParen)
	case '[':
		s.addToken(token.LBracket)
	case ']':
		s.addToken(token.RBracket)
	case '{':
		s.addToken(token.LBrace)
	case '}':
		s.addToken(token.RBrace)
	case ',':
		s.addToken(token.Comma)
	case '@':
		s.addToken(token.At)
	case '#':
		s.addToken(token.Hash)
	case '?':
		s.addToken(token.Question)

	// Operators with multi-character variants
	case '.':
		s.scanDotOperator()
	case '+':
		s.scanPlusOperator()
	case '-':
		s.scanMinusOperator()
	case '*':
		s.scanStarOperator()
	case '/':
		s.scanSlashOperator()
	case '%':
		s.scanPercentOperator()
	case '=':
		s.scanEqualOperator()
	case '!':
		s.scanBangOperator()
	case '<':
		s.scanLessOperator()
	case '>':
		s.scanGreaterOperator()
	case '&':
		s.scanAmpersandOperator()
	case '|':
		s.scanPipeOperator()
	case ':':
		s.scanColonOperator()
	case '$':
		s.scanDollarOperator()

	// Whitespace (ignored)
	case ' ', '\r', '\t', '\n':

	// String literals
	case '"':
		s.scanString()
	case '`':
		s.scanRawString()

	default:
		s.scanDefault(c)
	}
}

func (s *Scanner) scanDotOperator() {
	if s.peek() == '.' && s.peekNext() == '.' {
		s.advance()
		s.advance()
		s.addToken(token.Ellipsis)
	} else {
		s.addToken(token.Dot)
	}
}

func (s *Scanner) scanPlusOperator() {
	if s.matchNext('+') {
		s.addToken(token.PlusPlus)
	} else if s.matchNext('=') {
		s.addToken(token.PlusEq)
	} else {
		s.addToken(token.Plus)
	}
}

func (s *Scanner) scanMinusOperator() {
	if s.matchNext('-') {
		s.addToken(token.MinusMinus)
	} else if s.matchNext('=') {
		s.addToken(token.MinusEq)
	} else if s.matchNext('>') {
		s.addToken(token.Arrow)
	} else {
		s.addToken(token.Minus)
	}
}

func (s *Scanner) scanStarOperator() {
	if s.matchNext('=') {
		s.addToken(token.MulEq)
	} else {
		s.addToken(token.Mul)
	}
}

func (s *Scanner) scanSlashOperator() {
	if s.matchNext('/') {
		s.scanLineComment()
	} else if s.matchNext('*') {
		s.scanBlockComment()
	} else if s.matchNext('=') {
		s.addToken(token.DivEq)
	} else {
		s.addToken(token.Div)
	}
}

func (s *Scanner) scanPercentOperator() {
	if s.matchNext('=') {
		s.addToken(token.ModEq)
	} else {
		s.addToken(token.Mod)
	}
}

func (s *Scanner) scanEqualOperator() {
	if s.matchNext('=') {
		s.addToken(token.Eq)
	} else {
		s.addToken(token.Assign)
	}
}

func (s *Scanner) scanBangOperator() {
	if s.matchNext('=') {
		s.addToken(token.NotEq)
	} else {
		s.addToken(token.Bang)
	}
}

func (s *Scanner) scanLessOperator() {
	if s.matchNext('=') {
		s.addToken(token.LessEq)
	} else if s.matchNext('|') {
		s.addToken(token.LeftPipe)
	} else if s.matchNext('~') {
		s.addToken(token.CallbackPipe)
	} else {
		s.addToken(token.Less)
	}
}

func (s *Scanner) scanGreaterOperator() {
	if s.matchNext('=') {
		s.addToken(token.GreaterEq)
	} else {
		s.addToken(token.Greater)
	}
}

func (s *Scanner) scanAmpersandOperator() {
	if s.matchNext('&') {
		s.addToken(token.AmpAmp)
	} else {
		s.reportError("unexpected character: '&'")
	}
}

func (s *Scanner) scanPipeOperator() {
	if s.matchNext('>') {
		s.addToken(token.RightPipe)
	} else if s.matchNext('=') {
		s.addToken(token.PipeEq)
	} else if s.matchNext('|') {
		s.addToken(token.PipePipe)
	} else {
		s.reportError("unexpected character: '|'")
	}
}

func (s *Scanner) scanColonOperator() {
	if s.matchNext('=') {
		s.addToken(token.ColonEq)
	} else if isAlpha(s.peek()) {
		s.scanAtom()
	} else {
		s.addToken(token.Colon)
	}
}

func (s *Scanner) scanDollarOperator() {
	if s.matchNext('=') {
		s.addToken(token.DollarEq)
	} else {
		s.addToken(token.Dollar)
	}
}

func (s *Scanner) scanDefault(c byte) {
	if isDigit(c) {
		s.scanNumber()
	} else if isAlpha(c) {
		s.scanIdentifier()
	} else {
		s.reportError(fmt.Sprintf("unexpected character: %q", c))
	}
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	// Identifiers may end in a single '?' or '!', as in cool? or push!
	if s.peek() == '?' || s.peek() == '!' {
		s.advance()
	}
	text := s.source[s.start:s.current]
	if text == "_" {
		s.addToken(token.Underscore)
		return
	}
	if t := token.LookupIdent(text); t != token.Id {
		s.addToken(t)
		return
	}
	s.addLiteral(token.Id, text)
}

// scanAtom is entered after ':' when an identifier character follows; the
// lexeme excludes the leading colon.
func (s *Scanner) scanAtom() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	s.addLiteral(token.Atom, s.source[s.start+1:s.current])
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
		s.addLiteral(token.Float, s.source[s.start:s.current])
		return
	}
	s.addLiteral(token.Int, s.source[s.start:s.current])
}

// scanString reads a double-quoted literal. Escape sequences are kept
// verbatim; a backslash consumes the following character so neither \"
// nor \\ can terminate the literal early.
func (s *Scanner) scanString() {
	for !s.isAtEnd() && s.peek() != '"' {
		if s.peek() == '\\' {
			s.advance()
			if s.isAtEnd() {
				break
			}
		}
		s.advance()
	}
	if s.isAtEnd() {
		s.reportError("unterminated string")
		return
	}
	s.advance()
	s.addLiteral(token.Str, s.source[s.start+1:s.current-1])
}

// scanRawString reads a backtick literal with no escape handling at all,
// the form used with the $ shell operator.
func (s *Scanner) scanRawString() {
	for !s.isAtEnd() && s.peek() != '`' {
		s.advance()
	}
	if s.isAtEnd() {
		s.reportError("unterminated string")
		return
	}
	s.advance()
	s.addLiteral(token.Str, s.source[s.start+1:s.current-1])
}

func (s *Scanner) scanLineComment() {
	for !s.isAtEnd() && s.peek() != '\n' {
		s.advance()
	}
}

func (s *Scanner) scanBlockComment() {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance()
			s.advance()
			return
		}
		s.advance()
	}
	s.reportError("unterminated block comment")
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(t token.Type) {
	s.emit(token.Token{Type: t, Position: s.startPos()})
}

func (s *Scanner) addLiteral(t token.Type, lexeme string) {
	s.emit(token.Token{Type: t, Lexeme: lexeme, Position: s.startPos()})
}

func (s *Scanner) startPos() token.Position {
	return token.Position{Line: s.startLine, Column: s.startColumn, Offset: s.start}
}

func (s *Scanner) reportError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: s.startPos(),
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '_'
}
