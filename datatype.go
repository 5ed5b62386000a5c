// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

import "fmt"

// DataType is the server-declared wire type of a result column.
type DataType byte

const (
	// TypeBytes is the raw bytes datatype. It also serves as the
	// fallback representation for any unrecognized wire type.
	TypeBytes DataType = iota
	// TypeString is a text datatype, encoded per the column collation.
	TypeString
	// TypeInteger is a variable-length integer datatype.
	TypeInteger
	// TypeFloat is an IEEE-754 floating point datatype.
	TypeFloat
	// TypeDocument is a structured document datatype.
	TypeDocument
	// TypeDatetime is a temporal datatype, delivered as raw bytes.
	TypeDatetime
	// TypeGeometry is a geometry datatype, delivered as raw bytes.
	TypeGeometry
	// TypeXML is an XML datatype, delivered as raw bytes.
	TypeXML
)

var typeNames = map[DataType]string{
	TypeBytes:    "BYTES",
	TypeString:   "STRING",
	TypeInteger:  "INTEGER",
	TypeFloat:    "FLOAT",
	TypeDocument: "DOCUMENT",
	TypeDatetime: "DATETIME",
	TypeGeometry: "GEOMETRY",
	TypeXML:      "XML",
}

func (t DataType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", byte(t))
}
