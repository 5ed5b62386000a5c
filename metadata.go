// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

/*
Result meta-data
================

Meta-data for result columns is read once from the RowSource, when the
cursor enters a new result set, and stored in a ResultMetadata instance.
That instance is shared, read-only, between the cursor and every Row
fetched from the result; inside a Row it guides decoding of raw field
bytes. Nothing mutates a ResultMetadata after construction, which is what
makes the sharing safe without synchronization.
*/

// ColumnMetadata holds the type, format and descriptive information of a
// single result column. Read-only after metadata construction.
type ColumnMetadata struct {
	typ    DataType
	format FormatDescriptor

	name       string
	label      string
	tableName  string
	tableLabel string
	schemaName string

	length    uint32
	decimals  uint16
	collation uint64
	padded    bool
}

// Type returns the column's declared wire type tag.
func (c *ColumnMetadata) Type() DataType { return c.typ }

// Format returns the column's format descriptor. Its variant always
// matches the declared wire type, with raw bytes standing in for
// unrecognized tags.
func (c *ColumnMetadata) Format() FormatDescriptor { return c.format }

// Name returns the column's original name.
func (c *ColumnMetadata) Name() string { return c.name }

// Label returns the column's display label (alias, or name if not aliased).
func (c *ColumnMetadata) Label() string { return c.label }

// TableName returns the original name of the owning table.
func (c *ColumnMetadata) TableName() string { return c.tableName }

// TableLabel returns the display label of the owning table.
func (c *ColumnMetadata) TableLabel() string { return c.tableLabel }

// SchemaName returns the name of the owning schema.
func (c *ColumnMetadata) SchemaName() string { return c.schemaName }

// Length returns the column's declared length.
func (c *ColumnMetadata) Length() uint32 { return c.length }

// Decimals returns the column's declared decimal digit count.
func (c *ColumnMetadata) Decimals() uint16 { return c.decimals }

// Collation returns the column's collation id.
func (c *ColumnMetadata) Collation() uint64 { return c.collation }

// Padded reports whether raw byte values are right-padded to the declared
// length.
func (c *ColumnMetadata) Padded() bool { return c.padded }

// ResultMetadata is the ordered column metadata of one result set.
// Immutable once built; shared read-only by the cursor and all rows
// decoded from the result.
type ResultMetadata struct {
	cols []ColumnMetadata
}

// newResultMetadata builds the metadata for one result set from the
// information reported by the row source. Every index 0..count-1 gets an
// entry; unrecognized type tags keep their tag but fall back to the raw
// bytes format descriptor.
func newResultMetadata(src RowSource) *ResultMetadata {
	count := src.ColumnCount()
	cols := make([]ColumnMetadata, count)
	for pos := 0; pos < count; pos++ {
		typ := src.ColumnType(pos)
		fi := src.ColumnFormat(pos)
		ci := src.ColumnInfo(pos)

		col := &cols[pos]
		col.typ = typ
		col.format = newFormatDescriptor(typ, fi, ci.Collation)
		col.name = ci.Name
		col.label = ci.Label
		col.tableName = ci.TableName
		col.tableLabel = ci.TableLabel
		col.schemaName = ci.SchemaName
		col.length = ci.Length
		col.decimals = ci.Decimals
		col.collation = ci.Collation

		if typ == TypeBytes && fi.PadWidth > 0 {
			col.padded = true
		}
	}
	return &ResultMetadata{cols: cols}
}

// ColumnCount returns the number of columns in the result.
func (m *ResultMetadata) ColumnCount() int {
	return len(m.cols)
}

// Column returns the metadata of the column at pos.
func (m *ResultMetadata) Column(pos int) (*ColumnMetadata, error) {
	if pos < 0 || pos >= len(m.cols) {
		return nil, errColumnOutOfRange(pos, len(m.cols))
	}
	return &m.cols[pos], nil
}
