package repository

import "errors"

var (
	ErrDisconnected  = errors.New("database not connected")
	ErrBadInsertedID = errors.New("unexpected inserted id type")
)
