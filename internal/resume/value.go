package resume

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Kind tags the shape held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Member is a single object entry. Members keep the order the responder wrote them in.
type Member struct {
	Key   string
	Value Value
}

// Value is a decoded JSON value. Unlike map[string]any it remembers object key order,
// which the join rule depends on. Text holds the string for KindString and the literal
// as written for KindNumber. Raw is the document text of a decoded list or map.
type Value struct {
	Kind    Kind
	Text    string
	Bool    bool
	Items   []Value
	Members []Member
	Raw     string
}

// String builds a KindString value.
func String(s string) Value {
	return Value{Kind: KindString, Text: s}
}

// Number builds a KindNumber value from its literal text.
func Number(literal string) Value {
	return Value{Kind: KindNumber, Text: literal}
}

// List builds a KindList value.
func List(items ...Value) Value {
	return Value{Kind: KindList, Items: items}
}

// Map builds a KindMap value. A repeated key overwrites the earlier entry in place.
func Map(members ...Member) Value {
	v := Value{Kind: KindMap}
	for _, m := range members {
		v.set(m.Key, m.Value)
	}
	return v
}

func (v *Value) set(key string, value Value) {
	for i := range v.Members {
		if v.Members[i].Key == key {
			v.Members[i].Value = value
			return
		}
	}
	v.Members = append(v.Members, Member{Key: key, Value: value})
}

// Get looks key up with an exact, case-sensitive match.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindMap {
		return Value{}, false
	}
	for _, m := range v.Members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// GetFold returns the first member whose key matches key ignoring case.
func (v Value) GetFold(key string) (Value, bool) {
	if v.Kind != KindMap {
		return Value{}, false
	}
	for _, m := range v.Members {
		if strings.EqualFold(m.Key, key) {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Truthy reports whether the value would count as present: non-empty strings and
// containers, non-zero numbers and true.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindString:
		return v.Text != ""
	case KindNumber:
		f, err := strconv.ParseFloat(v.Text, 64)
		return err != nil || f != 0
	case KindBool:
		return v.Bool
	case KindList:
		return len(v.Items) > 0
	case KindMap:
		return len(v.Members) > 0
	default:
		return false
	}
}

// Scalar returns the value as a plain Go value for tabular output: string for strings,
// json.Number for numbers, bool, or nil for null. Decoded lists and maps come back as
// their compact document text.
func (v Value) Scalar() any {
	switch v.Kind {
	case KindNull:
		return nil
	case KindString:
		return v.Text
	case KindNumber:
		return json.Number(v.Text)
	case KindBool:
		return v.Bool
	default:
		return string(pretty.Ugly([]byte(v.Raw)))
	}
}

var errInvalidJSON = errors.New("not a single valid json document")

// Decode parses data as exactly one JSON document.
func Decode(data []byte) (Value, error) {
	if !gjson.ValidBytes(data) {
		return Value{}, errInvalidJSON
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

func fromResult(r gjson.Result) Value {
	switch {
	case r.IsObject():
		obj := Value{Kind: KindMap, Raw: r.Raw}
		r.ForEach(func(key, member gjson.Result) bool {
			obj.set(key.Str, fromResult(member))
			return true
		})
		return obj
	case r.IsArray():
		arr := Value{Kind: KindList, Raw: r.Raw, Items: []Value{}}
		r.ForEach(func(_, item gjson.Result) bool {
			arr.Items = append(arr.Items, fromResult(item))
			return true
		})
		return arr
	}

	switch r.Type {
	case gjson.String:
		return String(r.Str)
	case gjson.Number:
		return Number(r.Raw)
	case gjson.True:
		return Value{Kind: KindBool, Bool: true}
	case gjson.False:
		return Value{Kind: KindBool}
	default:
		return Value{Kind: KindNull}
	}
}
