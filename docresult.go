// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

import "encoding/json"

// DocResult is a convenience view over a result whose rows each carry a
// single raw-byte column holding one structured document. It decodes the
// documents on the fly while iterating.
type DocResult struct {
	cur     *Cursor
	row     *Row
	atFront bool
}

// NewDocResult wraps a cursor whose current result delivers one document
// per row and fetches the first row.
func NewDocResult(cur *Cursor) (*DocResult, error) {
	row, err := cur.GetRow()
	if err != nil {
		return nil, err
	}
	return &DocResult{cur: cur, row: row, atFront: true}, nil
}

// First returns the first document of the result. Returns ErrNoResultSet
// when the result holds no documents.
func (d *DocResult) First() (interface{}, error) {
	if d.row == nil {
		return nil, ErrNoResultSet
	}
	return d.decode()
}

// Next returns the next document, or nil once the result is exhausted.
// The first call yields the same document as First.
func (d *DocResult) Next() (interface{}, error) {
	if d.atFront {
		d.atFront = false
	} else {
		row, err := d.cur.GetRow()
		if err != nil {
			return nil, err
		}
		d.row = row
	}
	if d.row == nil {
		return nil, nil
	}
	return d.decode()
}

func (d *DocResult) decode() (interface{}, error) {
	raw, err := d.row.GetBytes(0)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	// strip the trailing sentinel byte before handing off to the codec
	var doc interface{}
	if err := json.Unmarshal(raw[:len(raw)-1], &doc); err != nil {
		return nil, errMalformedField(TypeDocument, err.Error())
	}
	return doc, nil
}
