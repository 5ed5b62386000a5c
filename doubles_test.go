// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

// Scripted in-memory stand-ins for the transport collaborator. They
// deliver pre-built results through the real field-stream protocol,
// sentinel byte and chunked delivery included, and count calls so tests
// can verify laziness contracts.

// sentinelByte terminates every concrete field value on the wire.
const sentinelByte = 0x00

type fakeColumn struct {
	typ    DataType
	format FormatInfo
	info   ColumnInfo
}

// fakeResult scripts one result set. Each row lists per-column payloads
// without the sentinel byte; a nil payload means NULL.
type fakeResult struct {
	cols []fakeColumn
	rows [][][]byte
}

type fakeRowSource struct {
	res     fakeResult
	next    int
	eofSent bool

	waitErr  error
	fetchErr error

	waitCalls  int
	fetchCalls int
}

func (s *fakeRowSource) Wait() error { s.waitCalls++; return s.waitErr }

func (s *fakeRowSource) ColumnCount() int { return len(s.res.cols) }

func (s *fakeRowSource) ColumnType(index int) DataType { return s.res.cols[index].typ }

func (s *fakeRowSource) ColumnFormat(index int) FormatInfo { return s.res.cols[index].format }

func (s *fakeRowSource) ColumnInfo(index int) ColumnInfo { return s.res.cols[index].info }

func (s *fakeRowSource) FetchRows(proc RowProcessor, limit int) error {
	s.fetchCalls++
	if s.fetchErr != nil {
		return s.fetchErr
	}
	delivered := 0
	for s.next < len(s.res.rows) && (limit == 0 || delivered < limit) {
		row := s.res.rows[s.next]
		if !proc.RowBegin(int64(s.next)) {
			break
		}
		for col, payload := range row {
			if payload == nil {
				proc.FieldNull(col)
				continue
			}
			wire := make([]byte, 0, len(payload)+1)
			wire = append(wire, payload...)
			wire = append(wire, sentinelByte)
			hint := proc.FieldBegin(col, len(wire))
			for off := 0; off < len(wire); {
				n := intMin(hint, len(wire)-off)
				hint = proc.FieldData(col, wire[off:off+n])
				off += n
			}
			proc.FieldEnd(col)
		}
		proc.RowEnd(int64(s.next))
		s.next++
		delivered++
	}
	if s.next >= len(s.res.rows) && !s.eofSent {
		proc.EndOfData()
		s.eofSent = true
	}
	return nil
}

type fakeReply struct {
	results []*fakeRowSource
	pos     int

	entries      []DiagnosticEntry
	affectedRows int64
	lastInsertID int64
	generatedIDs []string

	waitErr error
	openErr error

	waitCalls    int
	openCalls    int
	entriesCalls int
}

func newFakeReply(results ...fakeResult) *fakeReply {
	r := &fakeReply{}
	for i := range results {
		r.results = append(r.results, &fakeRowSource{res: results[i]})
	}
	return r
}

func (r *fakeReply) Wait() error { r.waitCalls++; return r.waitErr }

func (r *fakeReply) HasMoreResults() bool { return r.pos < len(r.results) }

func (r *fakeReply) OpenRowSource() (RowSource, error) {
	r.openCalls++
	if r.openErr != nil {
		return nil, r.openErr
	}
	src := r.results[r.pos]
	r.pos++
	return src, nil
}

func (r *fakeReply) AffectedRows() int64 { return r.affectedRows }

func (r *fakeReply) LastInsertID() int64 { return r.lastInsertID }

func (r *fakeReply) GeneratedIDs() []string { return r.generatedIDs }

func (r *fakeReply) EntryCount(sev Severity) int {
	n := 0
	for _, e := range r.entries {
		if e.Severity == sev {
			n++
		}
	}
	return n
}

func (r *fakeReply) Entries() []DiagnosticEntry {
	r.entriesCalls++
	return r.entries
}

// stringColumns builds n plain UTF-8 string columns.
func stringColumns(names ...string) []fakeColumn {
	cols := make([]fakeColumn, len(names))
	for i, name := range names {
		cols[i] = fakeColumn{
			typ:  TypeString,
			info: ColumnInfo{Name: name, Label: name},
		}
	}
	return cols
}

// testColumn builds standalone column metadata for decoder tests.
func testColumn(typ DataType, fi FormatInfo, collation uint64) *ColumnMetadata {
	return &ColumnMetadata{
		typ:       typ,
		format:    newFormatDescriptor(typ, fi, collation),
		collation: collation,
	}
}

// withSentinel appends the trailing sentinel byte to a logical payload.
func withSentinel(payload []byte) []byte {
	return append(append([]byte{}, payload...), sentinelByte)
}
