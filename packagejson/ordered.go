/*
Copyright © 2026 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/
package packagejson

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind identifies the JSON shape of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindBool
	KindArray
	KindObject
)

// Entry is a single key/value pair of an Object, in document order.
type Entry struct {
	Key   string
	Value Value
}

// Value is a JSON value from the "exports"/"imports" subtree, decoded
// so that object key order is preserved. encoding/json's map[string]any
// discards key order on Unmarshal, but spec.md §9 requires condition
// precedence to follow insertion order, not any canonical ordering — no
// library in the retrieval pack offers an order-preserving JSON object
// (tidwall/jsonc only strips comments ahead of a normal json.Unmarshal),
// so Value is decoded by hand with a json.Decoder token stream, the
// idiomatic stdlib way to do this.
type Value struct {
	Kind   Kind
	Str    string
	Bool   bool
	Arr    []Value
	Object []Entry
}

// Lookup returns the value for key in an Object, preserving the "first
// match wins" semantics resolution needs when a key legitimately repeats
// (which valid JSON forbids, but defensive lookup still scans in order).
func (v Value) Lookup(key string) (Value, bool) {
	for _, e := range v.Object {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// IsPresent reports whether this Value was actually set (as opposed to
// a zero Value standing in for "absent field").
func (v Value) IsPresent() bool {
	return v.Kind != KindNull || v.Str != "" || v.Arr != nil || v.Object != nil
}

func (v *Value) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	parsed, err := decodeValue(tok, dec)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.Str)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindArray:
		out := make([]json.RawMessage, len(v.Arr))
		for i, item := range v.Arr {
			b, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}
			out[i] = b
		}
		return json.Marshal(out)
	case KindObject:
		var buf []byte
		buf = append(buf, '{')
		for i, e := range v.Object {
			if i > 0 {
				buf = append(buf, ',')
			}
			keyB, err := json.Marshal(e.Key)
			if err != nil {
				return nil, err
			}
			buf = append(buf, keyB...)
			buf = append(buf, ':')
			valB, err := e.Value.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf = append(buf, valB...)
		}
		buf = append(buf, '}')
		return buf, nil
	}
	return []byte("null"), nil
}

// decodeValue interprets a single already-read token, recursing via dec
// for composite values (arrays/objects).
func decodeValue(tok json.Token, dec *json.Decoder) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return Value{Kind: KindNull}, nil
	case bool:
		return Value{Kind: KindBool, Bool: t}, nil
	case string:
		return Value{Kind: KindString, Str: t}, nil
	case json.Number:
		// Numbers are not meaningful in exports/imports trees; preserve
		// as string so round-tripping and error messages stay legible.
		return Value{Kind: KindString, Str: t.String()}, nil
	case json.Delim:
		switch t {
		case '[':
			var arr []Value
			for dec.More() {
				itemTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				item, err := decodeValue(itemTok, dec)
				if err != nil {
					return Value{}, err
				}
				arr = append(arr, item)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return Value{}, err
			}
			return Value{Kind: KindArray, Arr: arr}, nil
		case '{':
			var entries []Entry
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("packagejson: non-string object key %v", keyTok)
				}
				valTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				val, err := decodeValue(valTok, dec)
				if err != nil {
					return Value{}, err
				}
				entries = append(entries, Entry{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return Value{}, err
			}
			return Value{Kind: KindObject, Object: entries}, nil
		}
	}
	return Value{}, fmt.Errorf("packagejson: unexpected token %v", tok)
}
