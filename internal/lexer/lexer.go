// Package lexer tokenizes Jack source into a lazy, non-restartable
// sequence of token.Token, stripping comments and tracking source lines.
package lexer

import (
	"bufio"
	"io"
	"strings"

	"github.com/libklein/nand2tetris/jackcompiler/internal/token"
)

const eof = rune(-1)

// maxIntConst is the largest integer literal the target VM's 16-bit
// word can represent.
const maxIntConst = 32767

// Lexer turns a byte stream into Jack tokens one at a time. It is not
// safe for concurrent use and, once exhausted, cannot be restarted.
type Lexer struct {
	r    *bufio.Reader
	line int
}

// New wraps r for tokenization, starting at line 1.
func New(r io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(r), line: 1}
}

// Next returns the next token in the stream. ok is false once the
// stream is exhausted (without error); err is non-nil on a lexical
// failure, in which case the Lexer should not be used further.
func (l *Lexer) Next() (tok token.Token, ok bool, err error) {
	for {
		r, atEOF := l.read()
		if atEOF {
			return token.Token{}, false, nil
		}

		switch {
		case isSpace(r):
			continue
		case r == '/':
			consumed, cerr := l.maybeComment()
			if cerr != nil {
				return token.Token{}, false, cerr
			}
			if consumed {
				continue
			}
			return token.Token{Lexeme: "/", Line: l.line, Kind: token.Symbol}, true, nil
		case r == '"':
			return l.lexString()
		case token.IsSymbolByte(byte(r)):
			return token.Token{Lexeme: string(r), Line: l.line, Kind: token.Symbol}, true, nil
		default:
			return l.lexWord(r)
		}
	}
}

// read consumes and returns the next rune, tracking line numbers. It
// reports atEOF=true at end of stream instead of returning an error,
// since Jack source is not required to end with a newline.
func (l *Lexer) read() (r rune, atEOF bool) {
	ch, _, err := l.r.ReadRune()
	if err != nil {
		return eof, true
	}
	if ch == '\n' {
		l.line++
	}
	return ch, false
}

func (l *Lexer) peek() rune {
	ch, _, err := l.r.ReadRune()
	if err != nil {
		return eof
	}
	_ = l.r.UnreadRune()
	return ch
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// maybeComment consumes a line or block comment if the lexer is
// positioned just after a leading '/'. It reports consumed=true when a
// comment (and nothing else) was eaten.
func (l *Lexer) maybeComment() (consumed bool, err error) {
	switch l.peek() {
	case '/':
		l.read() // consume second '/'
		for {
			r, atEOF := l.read()
			if atEOF || r == '\n' {
				return true, nil
			}
		}
	case '*':
		startLine := l.line
		l.read() // consume '*'
		prev := rune(0)
		for {
			r, atEOF := l.read()
			if atEOF {
				return false, &Error{Line: startLine, Msg: "unterminated block comment"}
			}
			if prev == '*' && r == '/' {
				return true, nil
			}
			prev = r
		}
	default:
		return false, nil
	}
}

// lexString scans a string literal; the opening quote has already been
// consumed by Next's dispatch loop.
func (l *Lexer) lexString() (token.Token, bool, error) {
	startLine := l.line
	var sb strings.Builder
	for {
		r, atEOF := l.read()
		if atEOF {
			return token.Token{}, false, &Error{Line: startLine, Msg: "unterminated string constant"}
		}
		if r == '\n' {
			return token.Token{}, false, &Error{Line: startLine, Msg: "string constant may not contain a newline"}
		}
		if r == '"' {
			return token.Token{Lexeme: sb.String(), Line: startLine, Kind: token.StringConst}, true, nil
		}
		sb.WriteRune(r)
	}
}

// lexWord scans a maximal run of non-symbol, non-whitespace characters
// starting with r (already consumed) and classifies it as a keyword,
// integer constant, or identifier.
func (l *Lexer) lexWord(r rune) (token.Token, bool, error) {
	startLine := l.line
	var sb strings.Builder
	sb.WriteRune(r)
	for {
		next := l.peek()
		if next == eof || isSpace(next) || token.IsSymbolByte(byte(next)) {
			break
		}
		ch, _ := l.read()
		sb.WriteRune(ch)
	}

	word := sb.String()
	kind := token.ClassifyWord(word)
	if kind == token.IntConst {
		if n := (token.Token{Lexeme: word}).IntValue(); n < 0 || n > maxIntConst {
			return token.Token{}, false, &Error{Line: startLine, Msg: "integer constant " + word + " out of range 0..32767"}
		}
	}
	return token.Token{Lexeme: word, Line: startLine, Kind: kind}, true, nil
}

// All materializes the lexer's entire output into a slice, as the
// compilation driver needs random access for look-ahead.
func All(l *Lexer) ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, ok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
