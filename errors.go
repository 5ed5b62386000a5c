// Copyright (c) 2023-2024 GoXDB Project. All right reserved.

package xresult

import (
	"fmt"
)

// XError is an error type including result-layer specific information.
type XError struct {
	Number      int
	SQLState    string
	Message     string
	MessageArgs []interface{}
}

func (e *XError) Error() string {
	message := e.Message
	if len(e.MessageArgs) > 0 {
		message = fmt.Sprintf(e.Message, e.MessageArgs...)
	}
	return fmt.Sprintf("%06d (%s): %s", e.Number, e.SQLState, message)
}

const (
	// result

	// ErrCodeEmptyResult is an error code for the case where no server reply is bound yet.
	ErrCodeEmptyResult = 263000
	// ErrCodeNoResultSet is an error code for the case where the current result carries no row data.
	ErrCodeNoResultSet = 263001
	// ErrCodeColumnOutOfRange is an error code for a column index at or past the column count.
	ErrCodeColumnOutOfRange = 263002
	// ErrCodeMalformedField is an error code for field bytes that do not match the column format.
	ErrCodeMalformedField = 263003
	// ErrCodeTransportFailure is an error code for a failure reported by the transport while waiting for data.
	ErrCodeTransportFailure = 263004
)

const (
	// SQLStateNoData is the SQLSTATE for missing result data.
	SQLStateNoData = "02000"
	// SQLStateDataException is the SQLSTATE for malformed field data.
	SQLStateDataException = "22000"
	// SQLStateNumericValueOutOfRange is the SQLSTATE for out-of-range numeric values and indices.
	SQLStateNumericValueOutOfRange = "22003"
	// SQLStateConnectionFailure is the SQLSTATE for transport-level failures.
	SQLStateConnectionFailure = "08006"
)

const (
	errMsgColumnOutOfRange = "column index %v is out of range. column count: %v"
	errMsgTransportFailure = "transport failure: %v"
	errMsgMalformedField   = "malformed %v field: %v"
)

var (
	// preformatted errors

	// ErrEmptyResult is returned if result information is requested before a reply is bound.
	ErrEmptyResult = &XError{
		Number:   ErrCodeEmptyResult,
		SQLState: SQLStateNoData,
		Message:  "empty result",
	}
	// ErrNoResultSet is returned if row data is requested from a result that carries none.
	ErrNoResultSet = &XError{
		Number:   ErrCodeNoResultSet,
		SQLState: SQLStateNoData,
		Message:  "no result set",
	}
)

func errColumnOutOfRange(col, count int) *XError {
	return &XError{
		Number:      ErrCodeColumnOutOfRange,
		SQLState:    SQLStateNumericValueOutOfRange,
		Message:     errMsgColumnOutOfRange,
		MessageArgs: []interface{}{col, count},
	}
}

func errTransportFailure(err error) *XError {
	return &XError{
		Number:      ErrCodeTransportFailure,
		SQLState:    SQLStateConnectionFailure,
		Message:     errMsgTransportFailure,
		MessageArgs: []interface{}{err},
	}
}

func errMalformedField(typ DataType, detail string) *XError {
	return &XError{
		Number:      ErrCodeMalformedField,
		SQLState:    SQLStateDataException,
		Message:     errMsgMalformedField,
		MessageArgs: []interface{}{typ, detail},
	}
}
