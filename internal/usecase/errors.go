package usecase

import "errors"

var (
	ErrInternal               = errors.New("Internal error")
	ErrUnauthorized           = errors.New("Unauthorized")
	ErrInvalidInput           = errors.New("Invalid input")
	ErrEmployeeNotFound       = errors.New("Employee not found")
	ErrPositionNotFound       = errors.New("Position not found")
	ErrTrackNotFound          = errors.New("Career track not found")
	ErrInvalidRequirementData = errors.New("Invalid requirement data")
)
