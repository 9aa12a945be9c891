package otp

import "errors"

var (
	// ErrCodeAlreadyConsumed is returned when a consumption write finds the
	// code already claimed by a concurrent verification
	ErrCodeAlreadyConsumed = errors.New("code already consumed")
)
