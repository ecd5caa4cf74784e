package service

import "errors"

var (
	ErrInvalidPatientRecord = errors.New("invalid patient record")
	ErrComposeFailed        = errors.New("cannot compose kafka message")
)
