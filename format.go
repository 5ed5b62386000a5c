// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

import (
	"golang.org/x/text/encoding"
)

/*
Handling per-column encoding formats
====================================

The transport reports, for each result column, a wire type tag and a raw
encoding description (FormatInfo). During metadata construction exactly one
FormatDescriptor is built per column, matching the column's declared type.
The descriptor bundles whatever the decoder needs to interpret raw field
bytes of that type: the resolved character encoding for strings, signedness
for integers, precision for floats. Types that are never decoded (datetime,
geometry, XML) carry descriptors with no decode capability, and any
unrecognized type tag falls back to the raw bytes descriptor so that every
column index always has a descriptor.
*/

// FormatInfo is the raw, type-agnostic encoding description reported by the
// transport for one column. Only the fields relevant to the column's type
// are meaningful.
type FormatInfo struct {
	// Unsigned reports whether integer values use the unsigned layout.
	Unsigned bool
	// Double reports whether float values are 8-byte double precision.
	Double bool
	// PadWidth is the width raw byte values are right-padded to, or 0.
	PadWidth uint64
}

// FormatDescriptor is the encoding-specific decode capability bundle for
// one wire type. The dynamic type always matches the column's declared
// DataType.
type FormatDescriptor interface {
	Type() DataType
}

// StringFormat describes a text column. The character encoding is resolved
// from the column collation once, at metadata construction.
type StringFormat struct {
	Collation uint64
	enc       encoding.Encoding // nil means the payload is already UTF-8
}

// Type implements FormatDescriptor.
func (StringFormat) Type() DataType { return TypeString }

// IntegerFormat describes a variable-length integer column. Signed values
// use the zigzag layout, unsigned values the plain varint layout.
type IntegerFormat struct {
	Unsigned bool
}

// Type implements FormatDescriptor.
func (IntegerFormat) Type() DataType { return TypeInteger }

// FloatFormat describes an IEEE-754 little-endian float column, 4 or 8
// bytes wide.
type FloatFormat struct {
	Double bool
}

// Type implements FormatDescriptor.
func (FloatFormat) Type() DataType { return TypeFloat }

// DocumentFormat describes a structured document column.
type DocumentFormat struct{}

// Type implements FormatDescriptor.
func (DocumentFormat) Type() DataType { return TypeDocument }

// DatetimeFormat carries no decode capability; temporal values are not
// decoded and retain their raw bytes.
type DatetimeFormat struct{}

// Type implements FormatDescriptor.
func (DatetimeFormat) Type() DataType { return TypeDatetime }

// GeometryFormat carries no decode capability; geometry values use an
// unspecified server-internal representation.
type GeometryFormat struct{}

// Type implements FormatDescriptor.
func (GeometryFormat) Type() DataType { return TypeGeometry }

// XMLFormat carries no decode capability.
type XMLFormat struct{}

// Type implements FormatDescriptor.
func (XMLFormat) Type() DataType { return TypeXML }

// RawFormat describes a raw bytes column. It is also the fallback
// descriptor for unrecognized type tags.
type RawFormat struct {
	PadWidth uint64
}

// Type implements FormatDescriptor.
func (RawFormat) Type() DataType { return TypeBytes }

// newFormatDescriptor selects the descriptor variant matching the declared
// column type. Unrecognized tags get the raw bytes descriptor.
func newFormatDescriptor(typ DataType, fi FormatInfo, collation uint64) FormatDescriptor {
	switch typ {
	case TypeString:
		return StringFormat{Collation: collation, enc: collationEncoding(collation)}
	case TypeInteger:
		return IntegerFormat{Unsigned: fi.Unsigned}
	case TypeFloat:
		return FloatFormat{Double: fi.Double}
	case TypeDocument:
		return DocumentFormat{}
	case TypeDatetime:
		return DatetimeFormat{}
	case TypeGeometry:
		return GeometryFormat{}
	case TypeXML:
		return XMLFormat{}
	case TypeBytes:
		return RawFormat{PadWidth: fi.PadWidth}
	default:
		logger.Debugf("unrecognized wire type %v, using raw bytes format", typ)
		return RawFormat{PadWidth: fi.PadWidth}
	}
}
