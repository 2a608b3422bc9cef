package index

import "errors"

var (
	ErrInvalidArgument = errors.New("index: rank and dimension must be >= 0")
	ErrNotImplemented  = errors.New("index: record generation not implemented")
	ErrSizeOverflow    = errors.New("index: size computation overflow")
	ErrBadRecordSet    = errors.New("index: record set is inconsistent")
)
