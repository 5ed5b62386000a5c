// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

/*
Row data
========

Raw row data is assembled from the field-stream events the transport
pushes while a result is read (see RowProcessor in reply.go). Each non-null
field accumulates into a FieldBuffer; a column index absent from the RawRow
map is the sole NULL representation. Completed rows move into the cursor's
row cache, where the pull interface picks them up.

A Row wraps one RawRow together with the shared result metadata and
converts raw bytes to typed values lazily, memoizing each column on first
access.
*/

// defaultChunkHint is the suggested maximum number of bytes the transport
// should push per FieldData call. It paces delivery only and never bounds
// the total field size.
const defaultChunkHint = 1024

// FieldBuffer accumulates the raw bytes of one field. A field may arrive
// in multiple chunks.
type FieldBuffer struct {
	buf []byte
}

// Append adds a chunk of raw bytes to the buffer.
func (b *FieldBuffer) Append(data []byte) {
	b.buf = append(b.buf, data...)
}

// Size returns the number of bytes accumulated so far.
func (b *FieldBuffer) Size() int {
	return len(b.buf)
}

// Bytes returns the accumulated raw bytes.
func (b *FieldBuffer) Bytes() []byte {
	return b.buf
}

// RawRow is the as-received, undecoded form of one row, keyed by column
// index. A missing index means that column's value is NULL.
type RawRow map[int]*FieldBuffer

// RowFilter is a client-side predicate applied to each completed raw row
// during assembly. Rows for which it returns false never enter the cache.
type RowFilter func(RawRow) bool

// rowAssembler consumes the field-stream events of one result and turns
// them into RawRow instances appended to the cache.
type rowAssembler struct {
	cache     *rowCache
	filter    RowFilter
	chunkHint int

	row RawRow
	// eof is set once EndOfData was signaled for the current result
	eof bool
}

func newRowAssembler(cache *rowCache, chunkHint int) *rowAssembler {
	if chunkHint <= 0 {
		chunkHint = defaultChunkHint
	}
	return &rowAssembler{cache: cache, chunkHint: chunkHint}
}

// reset prepares the assembler for a new result set.
func (a *rowAssembler) reset() {
	a.row = nil
	a.eof = false
}

// RowBegin implements RowProcessor.
func (a *rowAssembler) RowBegin(rowIndex int64) bool {
	a.row = make(RawRow)
	return true
}

// FieldBegin implements RowProcessor.
func (a *rowAssembler) FieldBegin(col int, sizeHint int) int {
	a.row[col] = &FieldBuffer{}
	return a.chunkHint
}

// FieldData implements RowProcessor.
func (a *rowAssembler) FieldData(col int, chunk []byte) int {
	a.row[col].Append(chunk)
	return a.chunkHint
}

// FieldEnd implements RowProcessor.
func (a *rowAssembler) FieldEnd(col int) {}

// FieldNull implements RowProcessor. The column index stays absent from
// the row, which is the NULL representation.
func (a *rowAssembler) FieldNull(col int) {}

// RowEnd implements RowProcessor. The completed row moves into the cache
// unless the row filter rejects it.
func (a *rowAssembler) RowEnd(rowIndex int64) {
	row := a.row
	a.row = nil
	if row == nil {
		return
	}
	if a.filter != nil && !a.filter(row) {
		logger.Tracef("row %d filtered out", rowIndex)
		return
	}
	a.cache.add(row)
}

// EndOfData implements RowProcessor.
func (a *rowAssembler) EndOfData() {
	a.eof = true
}

// Row is a decode-on-access view over one raw row. Values convert lazily
// and each column decodes at most once per Row instance.
//
// A Row may also be created detached from any result via NewRow; such a
// row holds only values stored with Set and its column count reflects the
// highest index set plus one.
type Row struct {
	data RawRow
	meta *ResultMetadata

	vals map[int]Value
	// colCount tracks the width of a detached row
	colCount int
}

// NewRow creates an empty detached row, not backed by any result set.
func NewRow() *Row {
	return &Row{vals: make(map[int]Value)}
}

func newRow(data RawRow, meta *ResultMetadata) *Row {
	return &Row{data: data, meta: meta, vals: make(map[int]Value)}
}

// ColumnCount returns the row's column count: the shared metadata's count
// for a result row, the highest set index plus one for a detached row.
func (r *Row) ColumnCount() int {
	if r.meta != nil {
		return r.meta.ColumnCount()
	}
	return r.colCount
}

// GetBytes returns the raw stored bytes of the column at pos. A NULL
// column yields empty bytes, never an error; an index at or past the
// column count yields ErrCodeColumnOutOfRange.
func (r *Row) GetBytes(pos int) ([]byte, error) {
	if err := r.checkRange(pos); err != nil {
		return nil, err
	}
	buf, ok := r.data[pos]
	if !ok {
		// empty bytes indicate a null value
		return nil, nil
	}
	return buf.Bytes(), nil
}

// Get returns the decoded value of the column at pos, converting on first
// access and returning the memoized value afterwards.
func (r *Row) Get(pos int) (Value, error) {
	if err := r.checkRange(pos); err != nil {
		return Null(), err
	}
	if val, ok := r.vals[pos]; ok {
		return val, nil
	}
	if r.meta == nil {
		// detached row without a stored value
		return Null(), errColumnOutOfRange(pos, r.colCount)
	}
	col, err := r.meta.Column(pos)
	if err != nil {
		return Null(), err
	}
	buf := r.data[pos]
	var val Value
	if buf == nil || buf.Size() == 0 {
		val = Null()
	} else {
		val, err = decodeValue(buf.Bytes(), col)
		if err != nil {
			return Null(), err
		}
	}
	r.vals[pos] = val
	return val, nil
}

// Set stores a pre-decoded value at pos. Intended for detached rows, e.g.
// rows synthesized by the user for later write operations.
func (r *Row) Set(pos int, val Value) {
	r.vals[pos] = val
	r.colCount = intMax(r.colCount, pos+1)
}

func (r *Row) checkRange(pos int) error {
	if pos < 0 {
		return errColumnOutOfRange(pos, r.ColumnCount())
	}
	if r.meta != nil && pos >= r.meta.ColumnCount() {
		return errColumnOutOfRange(pos, r.meta.ColumnCount())
	}
	return nil
}
