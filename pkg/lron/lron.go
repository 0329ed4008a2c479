package lron

import "fmt"

// Object is an item of a dictionary: Dict, *Pair, Str, ZStr or Int.
type Object interface {
	object()
}

// Value is the right-hand side of a pair: Dict, Str, ZStr, Int, Float or Bool.
type Value interface {
	value()
}

// Dict is an ordered list of objects enclosed in braces.
type Dict []Object

// Str is a quoted string with escapes resolved.
type Str string

// ZStr is a string prefixed with ZSTR, used for localizable text.
type ZStr string

// Int is an integer literal.
type Int int64

// Float is a literal with a decimal point.
type Float float64

// Bool is true or false.
type Bool bool

// Pair binds a key to a value.
type Pair struct {
	Key   string
	Value Value
}

func (Dict) object()  {}
func (*Pair) object() {}
func (Str) object()   {}
func (ZStr) object()  {}
func (Int) object()   {}

func (Dict) value()  {}
func (Str) value()   {}
func (ZStr) value()  {}
func (Int) value()   {}
func (Float) value() {}
func (Bool) value()  {}

func (p *Pair) String() string {
	return fmt.Sprintf("%s = %v", p.Key, p.Value)
}

// Dict returns the pair value when it is a dictionary, nil otherwise.
func (p *Pair) Dict() Dict {
	if d, ok := p.Value.(Dict); ok {
		return d
	}
	return nil
}

// Pairs returns the pairs of the dictionary in order, skipping other items.
func (d Dict) Pairs() []*Pair {
	var pairs []*Pair
	for _, o := range d {
		if p, ok := o.(*Pair); ok {
			pairs = append(pairs, p)
		}
	}
	return pairs
}

// Lookup returns the value of the first pair with the given key.
func (d Dict) Lookup(key string) (Value, bool) {
	for _, o := range d {
		if p, ok := o.(*Pair); ok && p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Numeric is the set of types Number can convert to.
type Numeric interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Number converts an Int or a Float value to N. It reports false for any
// other value.
func Number[N Numeric](v Value) (N, bool) {
	switch n := v.(type) {
	case Int:
		return N(n), true
	case Float:
		return N(n), true
	}
	var zero N
	return zero, false
}

// String returns the text of a Str or ZStr value.
func String(v Value) (string, bool) {
	switch s := v.(type) {
	case Str:
		return string(s), true
	case ZStr:
		return string(s), true
	}
	return "", false
}

// Document parses a string value as a complete document of its own.
func Document(v Value) (*Pair, error) {
	s, ok := String(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a string", ErrNotDocument, v)
	}
	return Parse(s)
}
