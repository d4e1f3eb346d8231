package models

import "errors"

var (
	// ErrMemberNotFound means no roster row matched a name query.
	ErrMemberNotFound = errors.New("member not found")
	// ErrFieldNotFound means a field label matched no header column.
	ErrFieldNotFound = errors.New("field not found")
	// ErrEmptyStore means the roster has no member rows.
	ErrEmptyStore = errors.New("no data found")
	// ErrStoreWrite wraps any failure writing to the backing sheet.
	ErrStoreWrite = errors.New("store write failed")
	// ErrMalformedAmount means a money value could not be parsed.
	ErrMalformedAmount = errors.New("malformed amount")
)
