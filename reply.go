// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

/*
Transport boundary
==================

The transport/protocol layer produces already-framed, per-column byte
fields; this package never touches the network. Two handles cross the
boundary.

A Reply gives access to one server reply as a whole: readiness, the chain
of result sets it carries, statement-level counters and the diagnostic
entries accumulated while executing the statement.

A RowSource is opened per result set. It exposes the result's column
metadata and a push-based row streaming entry point: FetchRows drives the
RowProcessor callbacks for up to limit rows, synchronously, in arrival
order. All Wait methods block until the server data is available; a
returned error is treated as fatal by this layer and never retried.
*/

// Reply gives access to one server reply. The cursor keeps its Reply (and
// through it the owning session/transport) referenced for as long as the
// cursor lives, so late metadata or diagnostics reads stay valid after
// earlier rows were consumed.
type Reply interface {
	// Wait blocks until the server response is ready.
	Wait() error

	// HasMoreResults reports whether another result set is pending in
	// this reply.
	HasMoreResults() bool

	// OpenRowSource opens a row source for the next pending result set.
	OpenRowSource() (RowSource, error)

	// AffectedRows returns the number of rows affected by the statement.
	AffectedRows() int64

	// LastInsertID returns the last value generated for an
	// auto-increment column, if any.
	LastInsertID() int64

	// GeneratedIDs returns the ids of documents generated by the
	// statement, in generation order.
	GeneratedIDs() []string

	// EntryCount returns the number of diagnostic entries of the given
	// severity reported for this reply.
	EntryCount(sev Severity) int

	// Entries enumerates all diagnostic entries reported for this reply.
	Entries() []DiagnosticEntry
}

// RowSource is a per-result-set handle providing column metadata and row
// streaming.
type RowSource interface {
	// Wait blocks until the result's metadata is available.
	Wait() error

	// ColumnCount returns the server-reported column count.
	ColumnCount() int

	// ColumnType returns the wire type tag of the column at index.
	ColumnType(index int) DataType

	// ColumnFormat returns the raw encoding description of the column
	// at index.
	ColumnFormat(index int) FormatInfo

	// ColumnInfo returns the descriptive attributes of the column at
	// index.
	ColumnInfo(index int) ColumnInfo

	// FetchRows synchronously streams up to limit rows into proc, in
	// arrival order. A limit of 0 means all remaining rows. When the
	// result has no further rows, EndOfData is signaled exactly once.
	FetchRows(proc RowProcessor, limit int) error
}

// ColumnInfo is the descriptive column information reported by the
// transport alongside type and format.
type ColumnInfo struct {
	Name       string
	Label      string
	TableName  string
	TableLabel string
	SchemaName string
	Length     uint32
	Decimals   uint16
	Collation  uint64
}

// RowProcessor consumes the field-stream events of one result, in this
// exact order: RowBegin, then per column either FieldBegin followed by any
// number of FieldData chunks and a FieldEnd, or a single FieldNull; then
// RowEnd. After the last row of the result, EndOfData.
//
// FieldBegin and FieldData return the suggested maximum number of bytes
// the source should push per FieldData call. It only paces delivery, never
// bounds the total field size.
type RowProcessor interface {
	// RowBegin starts a new row. Returning false tells the source the
	// consumer wants no further rows.
	RowBegin(rowIndex int64) bool
	FieldBegin(col int, sizeHint int) int
	FieldData(col int, chunk []byte) int
	FieldEnd(col int)
	FieldNull(col int)
	RowEnd(rowIndex int64)
	EndOfData()
}
