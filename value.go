// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

import (
	"fmt"
	"strconv"
)

// Kind identifies which representation a decoded Value holds.
type Kind int

const (
	// KindNull is a NULL value.
	KindNull Kind = iota
	// KindInt is a signed 64-bit integer.
	KindInt
	// KindUint is an unsigned 64-bit integer.
	KindUint
	// KindFloat is a 64-bit float (4-byte wire floats are widened).
	KindFloat
	// KindString is a text value, already transcoded to UTF-8.
	KindString
	// KindBytes is an opaque raw byte value.
	KindBytes
	// KindDocument is a parsed structured document.
	KindDocument
)

var kindNames = map[Kind]string{
	KindNull:     "NULL",
	KindInt:      "INT",
	KindUint:     "UINT",
	KindFloat:    "FLOAT",
	KindString:   "STRING",
	KindBytes:    "BYTES",
	KindDocument: "DOCUMENT",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", int(k))
}

// Value is one decoded column value. The zero Value is NULL.
//
// Every non-null value retains a textual form: for strings it is the
// decoded text, for raw bytes the payload itself, and for every other kind
// the sentinel-stripped raw bytes as delivered, so a consumer can always
// obtain a textual representation without a second decode pass.
type Value struct {
	kind Kind

	i   int64
	u   uint64
	f   float64
	s   string
	b   []byte
	doc interface{}

	// raw textual form, see type comment
	raw string
}

// Null returns the NULL value.
func Null() Value { return Value{} }

// NewInt returns a signed integer Value.
func NewInt(v int64) Value {
	return Value{kind: KindInt, i: v, raw: strconv.FormatInt(v, 10)}
}

// NewUint returns an unsigned integer Value.
func NewUint(v uint64) Value {
	return Value{kind: KindUint, u: v, raw: strconv.FormatUint(v, 10)}
}

// NewFloat returns a float Value.
func NewFloat(v float64) Value {
	return Value{kind: KindFloat, f: v, raw: strconv.FormatFloat(v, 'g', -1, 64)}
}

// NewString returns a text Value.
func NewString(v string) Value {
	return Value{kind: KindString, s: v}
}

// NewBytes returns a raw byte Value.
func NewBytes(v []byte) Value {
	return Value{kind: KindBytes, b: v}
}

// NewDocument returns a document Value holding the parsed document and its
// textual source form.
func NewDocument(doc interface{}, text string) Value {
	return Value{kind: KindDocument, doc: doc, raw: text}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is NULL.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int returns the signed integer representation. Valid for KindInt.
func (v Value) Int() int64 { return v.i }

// Uint returns the unsigned integer representation. Valid for KindUint.
func (v Value) Uint() uint64 { return v.u }

// Float returns the float representation. Valid for KindFloat.
func (v Value) Float() float64 { return v.f }

// Str returns the text representation. Valid for KindString.
func (v Value) Str() string { return v.s }

// Bytes returns the raw byte representation. Valid for KindBytes.
func (v Value) Bytes() []byte { return v.b }

// Document returns the parsed document. Valid for KindDocument.
func (v Value) Document() interface{} { return v.doc }

// Text returns the value's textual form. NULL yields the empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindString:
		return v.s
	case KindBytes:
		return string(v.b)
	default:
		return v.raw
	}
}

// String renders the value with its kind name prefixed, for debugging.
func (v Value) String() string {
	if v.kind == KindNull {
		return "NULL"
	}
	return fmt.Sprintf("%v: %s", v.kind, v.Text())
}

// equalValue reports semantic equality of two values. Byte and document
// values compare by textual form.
func equalValue(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindInt:
		return a.i == b.i
	case KindUint:
		return a.u == b.u
	case KindFloat:
		return a.f == b.f
	default:
		return a.Text() == b.Text()
	}
}
