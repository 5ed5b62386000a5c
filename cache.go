// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

// rowCache buffers raw rows of the current result so that pull-paced
// consumption is decoupled from push-paced arrival. Rows append at the
// tail; the read position advances as rows are handed out. Consumed rows
// stay in the cache so that Count sees every row delivered for the result,
// whether or not it was already fetched.
type rowCache struct {
	rows []RawRow
	next int
}

// add appends a completed row at the tail.
func (c *rowCache) add(row RawRow) {
	c.rows = append(c.rows, row)
}

// pop returns the row at the read position and advances it. The second
// return is false when every cached row was already consumed.
func (c *rowCache) pop() (RawRow, bool) {
	if c.next >= len(c.rows) {
		return nil, false
	}
	row := c.rows[c.next]
	// detach the handed-out row; it is owned by the consumer now
	c.rows[c.next] = nil
	c.next++
	return row, true
}

// unconsumed reports whether rows remain past the read position.
func (c *rowCache) unconsumed() bool {
	return c.next < len(c.rows)
}

// size returns the total number of rows cached for the result, consumed
// ones included.
func (c *rowCache) size() int {
	return len(c.rows)
}

// clear drops all cached rows and resets the read position.
func (c *rowCache) clear() {
	c.rows = nil
	c.next = 0
}
