package lron

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrNotDocument is returned by Document for values that are not strings.
var ErrNotDocument = errors.New("value is not a document")

// ParseError reports where a document stopped matching the grammar.
type ParseError struct {
	Line     int // 1-based
	Column   int // 1-based, in runes
	Offset   int // byte offset
	Expected []string
}

func (e *ParseError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("lron: parse error at %d:%d", e.Line, e.Column)
	}
	return fmt.Sprintf("lron: parse error at %d:%d: expected %s",
		e.Line, e.Column, strings.Join(e.Expected, ", "))
}

// MaxDepth is the deepest dictionary nesting Parse accepts.
const MaxDepth = 1000

// Parse parses a complete document of the form `name = { ... }`.
func Parse(text string) (*Pair, error) {
	p := &parser{src: text}
	root, ok := p.root()
	if p.tooDeep != nil {
		return nil, p.tooDeep
	}
	if !ok {
		return nil, p.error()
	}
	return root, nil
}

// parser is a backtracking recursive-descent matcher. Every rule restores
// pos when it fails; the furthest failure is kept for error reporting.
type parser struct {
	src string
	pos int

	farthest int
	expected []string

	depth   int
	tooDeep *ParseError
}

func (p *parser) root() (*Pair, bool) {
	p.space()
	key, ok := p.identifier()
	if !ok {
		return nil, false
	}
	p.space()
	if !p.literal("=") {
		return nil, false
	}
	p.space()
	d, ok := p.dict()
	if !ok {
		return nil, false
	}
	p.space()
	if p.pos < len(p.src) {
		return nil, p.fail("end of input")
	}
	return &Pair{Key: key, Value: d}, true
}

func (p *parser) dict() (Dict, bool) {
	if p.tooDeep != nil {
		return nil, false
	}
	start := p.pos
	if !p.literal("{") {
		return nil, false
	}
	if p.depth >= MaxDepth {
		p.tooDeep = p.errorAt(start, []string{fmt.Sprintf("nesting depth <= %d", MaxDepth)})
		p.pos = start
		return nil, false
	}
	p.depth++
	defer func() { p.depth-- }()

	d := Dict{}
	p.space()
	if o, ok := p.object(); ok {
		d = append(d, o)
		for {
			mark := p.pos
			p.space()
			if !p.literal(",") {
				p.pos = mark
				break
			}
			p.space()
			o, ok := p.object()
			if !ok {
				p.pos = mark
				break
			}
			d = append(d, o)
		}
	}
	p.space()
	p.literal(",")
	p.space()
	if !p.literal("}") {
		p.pos = start
		return nil, false
	}
	return d, true
}

func (p *parser) object() (Object, bool) {
	if d, ok := p.dict(); ok {
		return d, true
	}
	if pair, ok := p.pair(); ok {
		return pair, true
	}
	if s, ok := p.str(); ok {
		return Str(s), true
	}
	if z, ok := p.zstr(); ok {
		return ZStr(z), true
	}
	if n, ok := p.integer(); ok {
		return Int(n), true
	}
	return nil, false
}

func (p *parser) pair() (*Pair, bool) {
	start := p.pos
	key, ok := p.identifier()
	if !ok {
		if !p.literal("[") {
			return nil, false
		}
		p.space()
		if key, ok = p.str(); !ok {
			p.pos = start
			return nil, false
		}
		p.space()
		if !p.literal("]") {
			p.pos = start
			return nil, false
		}
	}
	p.space()
	if !p.literal("=") {
		p.pos = start
		return nil, false
	}
	p.space()
	v, ok := p.value()
	if !ok {
		p.pos = start
		return nil, false
	}
	return &Pair{Key: key, Value: v}, true
}

func (p *parser) value() (Value, bool) {
	if n, ok := p.integer(); ok {
		return Int(n), true
	}
	if b, ok := p.boolean(); ok {
		return Bool(b), true
	}
	if f, ok := p.float(); ok {
		return Float(f), true
	}
	if s, ok := p.str(); ok {
		return Str(s), true
	}
	if d, ok := p.dict(); ok {
		return d, true
	}
	if z, ok := p.zstr(); ok {
		return ZStr(z), true
	}
	return nil, false
}

func (p *parser) integer() (int64, bool) {
	start := p.pos
	p.accept("-")
	if p.digits() == 0 {
		p.pos = start
		return 0, p.fail("integer")
	}
	if p.pos < len(p.src) && p.src[p.pos] == '.' {
		p.pos = start
		return 0, p.fail("integer")
	}
	n, err := strconv.ParseInt(p.src[start:p.pos], 10, 64)
	if err != nil {
		p.pos = start
		return 0, p.fail("integer")
	}
	return n, true
}

func (p *parser) float() (float64, bool) {
	start := p.pos
	p.accept("-")
	if p.digits() == 0 || !p.literal(".") || p.digits() == 0 {
		p.pos = start
		return 0, p.fail("floating point")
	}
	f, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		p.pos = start
		return 0, p.fail("floating point")
	}
	return f, true
}

func (p *parser) boolean() (bool, bool) {
	if p.literal("true") {
		return true, true
	}
	if p.literal("false") {
		return false, true
	}
	return false, false
}

func (p *parser) identifier() (string, bool) {
	start := p.pos
	for p.pos < len(p.src) && isIdent(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", p.fail("identifier")
	}
	return p.src[start:p.pos], true
}

// str matches a quoted string. \" stands for a quote and a backslash before
// a newline continues the string on the next line.
func (p *parser) str() (string, bool) {
	start := p.pos
	if !p.literal(`"`) {
		return "", false
	}
	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '"':
			p.pos++
			return b.String(), true
		case c == '\\' && p.pos+1 < len(p.src) && (p.src[p.pos+1] == '"' || p.src[p.pos+1] == '\n'):
			b.WriteByte(p.src[p.pos+1])
			p.pos += 2
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	p.fail(`"\""`)
	p.pos = start
	return "", false
}

func (p *parser) zstr() (string, bool) {
	start := p.pos
	if !p.literal("ZSTR") {
		return "", false
	}
	p.space()
	s, ok := p.str()
	if !ok {
		p.pos = start
		return "", false
	}
	return s, true
}

func (p *parser) digits() int {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	return p.pos - start
}

func (p *parser) space() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

// accept consumes s when present without recording it as expected.
func (p *parser) accept(s string) bool {
	if strings.HasPrefix(p.src[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	return false
}

func (p *parser) literal(s string) bool {
	if strings.HasPrefix(p.src[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	return p.fail(strconv.Quote(s))
}

// fail records what was expected at the current position and returns false.
func (p *parser) fail(expected string) bool {
	if p.pos > p.farthest {
		p.farthest = p.pos
		p.expected = p.expected[:0]
	}
	if p.pos == p.farthest {
		for _, e := range p.expected {
			if e == expected {
				return false
			}
		}
		p.expected = append(p.expected, expected)
	}
	return false
}

func (p *parser) error() *ParseError {
	return p.errorAt(p.farthest, append([]string(nil), p.expected...))
}

func (p *parser) errorAt(offset int, expected []string) *ParseError {
	consumed := p.src[:offset]
	line := strings.Count(consumed, "\n") + 1
	lineStart := strings.LastIndexByte(consumed, '\n') + 1
	return &ParseError{
		Line:     line,
		Column:   utf8.RuneCountInString(consumed[lineStart:]) + 1,
		Offset:   offset,
		Expected: expected,
	}
}

func isIdent(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
