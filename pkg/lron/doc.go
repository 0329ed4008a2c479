// Package lron parses the object notation Lightroom uses to store structured
// metadata inside single text columns of its catalog.
//
// The notation looks like a plist or JSON but matches neither:
//
//	name = {
//	    object = {
//	        x = 1.3,
//	        string = "some text",
//	    },
//	    [ "quoted key" ] = ZSTR "localized",
//	    42,
//	}
//
// A document is always a single key bound to a dictionary. Parse returns it as
// a Pair whose Value is a Dict.
//
// # Tree
//
// Dictionary items are Objects: Dict, *Pair, Str, ZStr or Int. The right-hand
// side of a pair is a Value: Dict, Str, ZStr, Int, Float or Bool. Use a type
// switch to walk it:
//
//	root, err := lron.Parse(text)
//	if err != nil {
//	    return err
//	}
//	for _, item := range root.Dict() {
//	    if p, ok := item.(*lron.Pair); ok {
//	        fmt.Println(p.Key, p.Value)
//	    }
//	}
//
// Integers and floats differ only by the presence of a decimal point. When any
// number will do, use Number:
//
//	x, ok := lron.Number[float64](pair.Value)
//
// # Nested documents
//
// Some string values carry a complete document of their own. They are left as
// strings by Parse; call Document on the value when the key is known to hold
// one. Ordinary strings are never reparsed.
//
// # Errors
//
// Parse fails on the first malformed construct with a *ParseError carrying the
// line and column of the furthest position the parser reached and what it
// expected there. There is no partial result.
package lron
