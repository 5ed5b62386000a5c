// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

/*
Result cursor
=============

A Cursor gives access to one server reply. It reports reply information
such as affected row counts, and when the reply carries row data it builds
the result metadata, streams raw rows into the row cache and hands them
out through the pull interface. A reply may carry multiple result sets;
NextResult advances through them.

Everything is synchronous and single-threaded: whenever the cursor needs
more data it blocks on the transport collaborator. The suspension points
are reply readiness at construction, row source readiness when entering a
result, and row delivery when the cache runs empty. Callers needing
parallel consumption must serialize access externally.
*/

// Cursor drives the lifecycle of the results carried by one server reply.
type Cursor struct {
	reply Reply
	src   RowSource
	meta  *ResultMetadata

	cache rowCache
	asm   *rowAssembler
	diag  diagnosticArena

	prefetchRows int
	// pendingRows is true while the row source still has undelivered rows
	pendingRows bool
	done        bool
}

// NewCursor binds a cursor to a server reply and blocks until the reply is
// ready. If the reply already carries error entries no result set is ever
// opened; the cursor heads straight for completion while its diagnostics
// stay accessible. The cursor keeps the reply referenced for its whole
// lifetime so the owning transport outlives every row decoded from it.
func NewCursor(reply Reply, config *ClientConfig) (*Cursor, error) {
	if reply == nil {
		return nil, ErrEmptyResult
	}
	cfg := config.withDefaults()

	c := &Cursor{
		reply:        reply,
		prefetchRows: cfg.PrefetchRows,
	}
	c.asm = newRowAssembler(&c.cache, cfg.FieldChunkSize)

	if err := reply.Wait(); err != nil {
		return nil, errTransportFailure(err)
	}
	if reply.EntryCount(SeverityError) > 0 {
		logger.Debugf("reply carries %d error entries, skipping result fetch",
			reply.EntryCount(SeverityError))
		c.done = true
	}
	return c, nil
}

// SetRowFilter installs a client-side predicate applied to each received
// raw row. Rows it rejects never enter the cache and are invisible to
// GetRow, Store and Count.
func (c *Cursor) SetRowFilter(filter RowFilter) {
	c.asm.filter = filter
}

// NextResult prepares the next result of the reply for reading. It must be
// called before any row access, and again after consuming one result to
// see whether more results are pending. Rows of the current result that
// were not consumed are drained and ignored. Returns false once the reply
// is entirely consumed; the prepared result need not carry row data, which
// HasData reports.
func (c *Cursor) NextResult() (bool, error) {
	if c.reply == nil {
		return false, ErrEmptyResult
	}
	if c.done {
		return false, nil
	}
	if c.pendingRows {
		// discard semantics: drain the remaining rows, never abort the
		// transport
		if err := c.fetchBatch(0); err != nil {
			return false, err
		}
	}
	c.src = nil
	c.meta = nil
	c.cache.clear()

	if !c.reply.HasMoreResults() {
		c.done = true
		return false, nil
	}

	src, err := c.reply.OpenRowSource()
	if err != nil {
		return false, errTransportFailure(err)
	}
	if err = src.Wait(); err != nil {
		return false, errTransportFailure(err)
	}

	c.src = src
	c.meta = newResultMetadata(src)
	c.asm.reset()
	c.pendingRows = true

	// initial prefetch; a result with no rows reports HasData false
	// right away
	if err = c.loadCache(c.prefetchRows); err != nil {
		return false, err
	}
	return true, nil
}

// HasData reports whether the current result has more rows to fetch,
// cached or still pending delivery.
func (c *Cursor) HasData() bool {
	return c.cache.unconsumed() || c.pendingRows
}

// GetRow fetches the next row of the current result, loading a batch into
// the cache when it runs empty. Returns a nil row once the current result
// is exhausted; it never crosses into a following result. Returns
// ErrNoResultSet when the current result carries no row data at all.
func (c *Cursor) GetRow() (*Row, error) {
	if c.reply == nil {
		return nil, ErrEmptyResult
	}
	if c.src == nil {
		return nil, ErrNoResultSet
	}
	if raw, ok := c.cache.pop(); ok {
		return newRow(raw, c.meta), nil
	}
	if err := c.loadCache(c.prefetchRows); err != nil {
		return nil, err
	}
	if raw, ok := c.cache.pop(); ok {
		return newRow(raw, c.meta), nil
	}
	return nil, nil
}

// Store drains all remaining rows of the current result into the cache.
func (c *Cursor) Store() error {
	if c.reply == nil {
		return ErrEmptyResult
	}
	for c.pendingRows {
		if err := c.fetchBatch(0); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the total number of rows delivered for the current
// result, already consumed rows included. It implies Store.
func (c *Cursor) Count() (int, error) {
	if err := c.Store(); err != nil {
		return 0, err
	}
	return c.cache.size(), nil
}

// loadCache ensures some unconsumed rows are cached, loading batches of at
// most prefetch rows (0 means all remaining) until the cache grows or the
// result is exhausted.
func (c *Cursor) loadCache(prefetch int) error {
	if c.cache.unconsumed() {
		return nil
	}
	before := c.cache.size()
	for c.pendingRows && c.cache.size() == before {
		if err := c.fetchBatch(prefetch); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cursor) fetchBatch(limit int) error {
	if err := c.src.FetchRows(c.asm, limit); err != nil {
		return errTransportFailure(err)
	}
	c.pendingRows = !c.asm.eof
	return nil
}

// Metadata returns the shared metadata of the current result, or nil when
// no result is prepared.
func (c *Cursor) Metadata() *ResultMetadata {
	return c.meta
}

// ColumnCount returns the column count of the current result.
func (c *Cursor) ColumnCount() (int, error) {
	if c.reply == nil {
		return 0, ErrEmptyResult
	}
	if c.src == nil || c.meta == nil {
		return 0, ErrNoResultSet
	}
	return c.meta.ColumnCount(), nil
}

// Column returns the metadata of the current result's column at pos.
func (c *Cursor) Column(pos int) (*ColumnMetadata, error) {
	if c.reply == nil {
		return nil, ErrEmptyResult
	}
	if c.src == nil || c.meta == nil {
		return nil, ErrNoResultSet
	}
	return c.meta.Column(pos)
}

// AffectedRows returns the number of rows affected by the statement.
func (c *Cursor) AffectedRows() (int64, error) {
	if c.reply == nil {
		return 0, ErrEmptyResult
	}
	c.diag.load(c.reply)
	return c.diag.affectedRows, nil
}

// AutoIncrementValue returns the last value generated for an
// auto-increment column.
func (c *Cursor) AutoIncrementValue() (int64, error) {
	if c.reply == nil {
		return 0, ErrEmptyResult
	}
	c.diag.load(c.reply)
	return c.diag.lastInsertID, nil
}

// GeneratedIDs returns the ids of documents generated by the statement.
func (c *Cursor) GeneratedIDs() ([]string, error) {
	if c.reply == nil {
		return nil, ErrEmptyResult
	}
	c.diag.load(c.reply)
	return c.diag.generatedIDs, nil
}

// WarningCount returns the number of warning entries the server reported.
func (c *Cursor) WarningCount() (int, error) {
	if c.reply == nil {
		return 0, ErrEmptyResult
	}
	c.diag.load(c.reply)
	return c.diag.count(SeverityWarning), nil
}

// Diagnostics returns all diagnostic entries the server reported, loading
// them from the reply on first request.
func (c *Cursor) Diagnostics() ([]DiagnosticEntry, error) {
	if c.reply == nil {
		return nil, ErrEmptyResult
	}
	c.diag.load(c.reply)
	return c.diag.entries, nil
}

// ClearDiagnostics drops the locally stored diagnostics; the next request
// pulls them from the reply again.
func (c *Cursor) ClearDiagnostics() {
	c.diag.clear()
}
