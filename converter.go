// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
)

/*
Decoding raw field bytes
========================

decodeValue converts the raw bytes of one field into a typed Value, guided
by the column's format descriptor. Every concrete value arrives with one
trailing sentinel byte that is a framing artifact, not part of the logical
value; it is stripped here, never by the row assembler. A zero-size buffer
denotes NULL (the assembler only produces one for a field the transport
reported as NULL).

Decoding is deterministic and side-effect free; memoization per (row,
column) lives in the Row, not here.
*/

// decodeValue converts raw field bytes into a typed Value per the column
// format. Unrecognized column types degrade to a raw byte value, never to
// an error.
func decodeValue(raw []byte, col *ColumnMetadata) (Value, error) {
	if len(raw) == 0 {
		return Null(), nil
	}

	// trailing sentinel byte is not part of the data
	payload := raw[: len(raw)-1 : len(raw)-1]

	switch fd := col.Format().(type) {
	case StringFormat:
		return decodeString(payload, fd)
	case IntegerFormat:
		return decodeInteger(payload, fd)
	case FloatFormat:
		return decodeFloat(payload, fd)
	case DocumentFormat:
		return decodeDocument(payload)
	default:
		// DatetimeFormat, GeometryFormat, XMLFormat and RawFormat all
		// retain raw bytes
		return NewBytes(payload), nil
	}
}

func decodeString(payload []byte, fd StringFormat) (Value, error) {
	if fd.enc == nil {
		return NewString(string(payload)), nil
	}
	decoded, err := fd.enc.NewDecoder().Bytes(payload)
	if err != nil {
		return Null(), errMalformedField(TypeString,
			fmt.Sprintf("collation %d: %v", fd.Collation, err))
	}
	return NewString(string(decoded)), nil
}

func decodeInteger(payload []byte, fd IntegerFormat) (Value, error) {
	if len(payload) == 0 {
		if fd.Unsigned {
			return withRawForm(NewUint(0), payload), nil
		}
		return withRawForm(NewInt(0), payload), nil
	}
	u, n := binary.Uvarint(payload)
	if n != len(payload) {
		return Null(), errMalformedField(TypeInteger,
			fmt.Sprintf("%d of %d varint bytes consumed", n, len(payload)))
	}
	if fd.Unsigned {
		return withRawForm(NewUint(u), payload), nil
	}
	// zigzag layout for signed integers
	i := int64(u>>1) ^ -int64(u&1)
	return withRawForm(NewInt(i), payload), nil
}

func decodeFloat(payload []byte, fd FloatFormat) (Value, error) {
	switch len(payload) {
	case 0:
		return withRawForm(NewFloat(0), payload), nil
	case 4:
		bits := binary.LittleEndian.Uint32(payload)
		return withRawForm(NewFloat(float64(math.Float32frombits(bits))), payload), nil
	case 8:
		bits := binary.LittleEndian.Uint64(payload)
		return withRawForm(NewFloat(math.Float64frombits(bits)), payload), nil
	default:
		return Null(), errMalformedField(TypeFloat,
			fmt.Sprintf("%d byte payload", len(payload)))
	}
}

func decodeDocument(payload []byte) (Value, error) {
	var doc interface{}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return Null(), errMalformedField(TypeDocument, err.Error())
	}
	return NewDocument(doc, string(payload)), nil
}

// withRawForm replaces the value's textual form with the sentinel-stripped
// raw bytes as delivered. Only applied to kinds that are neither raw
// bytes, string nor NULL.
func withRawForm(v Value, payload []byte) Value {
	v.raw = string(payload)
	return v
}

// encodeInt, encodeUint and encodeFloat produce the wire layout decoded
// above, without the trailing sentinel. The result layer never sends them
// to a server; they exist for building detached rows and test fixtures.

func encodeInt(v int64) []byte {
	u := uint64(v<<1) ^ uint64(v>>63)
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(buf, u)
	return buf[:n]
}

func encodeUint(v uint64) []byte {
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(buf, v)
	return buf[:n]
}

func encodeFloat(v float64, double bool) []byte {
	if double {
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
		return buf
	}
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(v)))
	return buf
}
