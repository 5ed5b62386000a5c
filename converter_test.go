// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestDecodeSignedIntegerRoundTrip(t *testing.T) {
	col := testColumn(TypeInteger, FormatInfo{}, 0)
	for _, v := range []int64{0, 1, -1, 63, -64, 300, -300, 1 << 40, -(1 << 40), 9223372036854775807, -9223372036854775808} {
		val, err := decodeValue(withSentinel(encodeInt(v)), col)
		require.NoError(t, err)
		assert.Equal(t, KindInt, val.Kind())
		assert.Equal(t, v, val.Int())
	}
}

func TestDecodeUnsignedIntegerRoundTrip(t *testing.T) {
	col := testColumn(TypeInteger, FormatInfo{Unsigned: true}, 0)
	for _, v := range []uint64{0, 1, 127, 128, 1 << 20, 18446744073709551615} {
		val, err := decodeValue(withSentinel(encodeUint(v)), col)
		require.NoError(t, err)
		assert.Equal(t, KindUint, val.Kind())
		assert.Equal(t, v, val.Uint())
	}
}

func TestDecodeFloatRoundTrip(t *testing.T) {
	double := testColumn(TypeFloat, FormatInfo{Double: true}, 0)
	for _, v := range []float64{0, 1.5, -2.25, 3.141592653589793} {
		val, err := decodeValue(withSentinel(encodeFloat(v, true)), double)
		require.NoError(t, err)
		assert.Equal(t, KindFloat, val.Kind())
		assert.Equal(t, v, val.Float())
	}

	single := testColumn(TypeFloat, FormatInfo{}, 0)
	val, err := decodeValue(withSentinel(encodeFloat(1.5, false)), single)
	require.NoError(t, err)
	assert.Equal(t, 1.5, val.Float())
}

func TestDecodeNumericTextForm(t *testing.T) {
	col := testColumn(TypeInteger, FormatInfo{}, 0)
	payload := encodeInt(-300)
	val, err := decodeValue(withSentinel(payload), col)
	require.NoError(t, err)
	// numeric values retain the sentinel-stripped raw bytes as text form
	assert.Equal(t, string(payload), val.Text())

	again, err := decodeValue(withSentinel(payload), col)
	require.NoError(t, err)
	assert.Equal(t, val.Text(), again.Text())
}

func TestDecodeStringUTF8(t *testing.T) {
	col := testColumn(TypeString, FormatInfo{}, 255)
	val, err := decodeValue(withSentinel([]byte("héllo wörld")), col)
	require.NoError(t, err)
	assert.Equal(t, KindString, val.Kind())
	assert.Equal(t, "héllo wörld", val.Str())
	assert.Equal(t, "héllo wörld", val.Text())
}

func TestDecodeStringLatin1(t *testing.T) {
	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte("café"))
	require.NoError(t, err)

	col := testColumn(TypeString, FormatInfo{}, 8)
	val, err := decodeValue(withSentinel(encoded), col)
	require.NoError(t, err)
	assert.Equal(t, "café", val.Str())
}

func TestDecodeStringUTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	encoded, err := enc.NewEncoder().Bytes([]byte("data"))
	require.NoError(t, err)

	col := testColumn(TypeString, FormatInfo{}, 54)
	val, err := decodeValue(withSentinel(encoded), col)
	require.NoError(t, err)
	assert.Equal(t, "data", val.Str())
}

func TestDecodeDocument(t *testing.T) {
	col := testColumn(TypeDocument, FormatInfo{}, 0)
	val, err := decodeValue(withSentinel([]byte(`{"name":"box","qty":3}`)), col)
	require.NoError(t, err)
	assert.Equal(t, KindDocument, val.Kind())

	doc, ok := val.Document().(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "box", doc["name"])
	assert.Equal(t, float64(3), doc["qty"])
	assert.Equal(t, `{"name":"box","qty":3}`, val.Text())
}

func TestDecodeUndecodedTypesRetainRawBytes(t *testing.T) {
	payload := []byte{0x07, 0xe8, 0x01, 0x15}
	for _, typ := range []DataType{TypeDatetime, TypeGeometry, TypeXML, TypeBytes} {
		col := testColumn(typ, FormatInfo{}, 0)
		val, err := decodeValue(withSentinel(payload), col)
		require.NoError(t, err)
		assert.Equal(t, KindBytes, val.Kind(), typ.String())
		assert.Equal(t, payload, val.Bytes(), typ.String())
	}
}

func TestDecodeUnknownTypeFallsBackToRaw(t *testing.T) {
	col := testColumn(DataType(99), FormatInfo{}, 0)
	require.IsType(t, RawFormat{}, col.Format())

	val, err := decodeValue(withSentinel([]byte{0xde, 0xad}), col)
	require.NoError(t, err)
	assert.Equal(t, KindBytes, val.Kind())
	assert.Equal(t, []byte{0xde, 0xad}, val.Bytes())
}

func TestDecodeEmptyBufferIsNull(t *testing.T) {
	col := testColumn(TypeString, FormatInfo{}, 0)
	val, err := decodeValue(nil, col)
	require.NoError(t, err)
	assert.True(t, val.IsNull())
}

func TestDecodeSentinelOnlyYieldsEmptyValue(t *testing.T) {
	// a lone sentinel byte is an empty value, not NULL
	col := testColumn(TypeString, FormatInfo{}, 0)
	val, err := decodeValue([]byte{sentinelByte}, col)
	require.NoError(t, err)
	assert.False(t, val.IsNull())
	assert.Equal(t, "", val.Str())

	raw := testColumn(TypeBytes, FormatInfo{}, 0)
	val, err = decodeValue([]byte{sentinelByte}, raw)
	require.NoError(t, err)
	assert.False(t, val.IsNull())
	assert.Len(t, val.Bytes(), 0)
}

func TestDecodeMalformedInteger(t *testing.T) {
	col := testColumn(TypeInteger, FormatInfo{}, 0)
	// truncated varint: continuation bit set with nothing following
	_, err := decodeValue(withSentinel([]byte{0x80}), col)
	var xe *XError
	require.ErrorAs(t, err, &xe)
	assert.Equal(t, ErrCodeMalformedField, xe.Number)
}

func TestDecodeMalformedFloat(t *testing.T) {
	col := testColumn(TypeFloat, FormatInfo{}, 0)
	_, err := decodeValue(withSentinel([]byte{1, 2, 3}), col)
	var xe *XError
	require.ErrorAs(t, err, &xe)
	assert.Equal(t, ErrCodeMalformedField, xe.Number)
}

func TestDecodeEmptyNumericPayloads(t *testing.T) {
	intCol := testColumn(TypeInteger, FormatInfo{}, 0)
	val, err := decodeValue([]byte{sentinelByte}, intCol)
	require.NoError(t, err)
	assert.Equal(t, int64(0), val.Int())

	floatCol := testColumn(TypeFloat, FormatInfo{Double: true}, 0)
	val, err = decodeValue([]byte{sentinelByte}, floatCol)
	require.NoError(t, err)
	assert.Equal(t, float64(0), val.Float())
}
