package errors

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrAlreadyScanned      = errors.New("already scanned")
	ErrEmptyTrackingNumber = errors.New("empty tracking number")
	ErrDuplicateInBatch    = errors.New("duplicate in batch")
	ErrNoOrderIDs          = errors.New("no order ids provided")
)
