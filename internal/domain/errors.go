package domain

import "errors"

var (
	ErrInvalidToken        = errors.New("invalid token")
	ErrTimingsUnavailable  = errors.New("timings unavailable")
	ErrCityNotFound        = errors.New("city not found")
	ErrLocationUnavailable = errors.New("location unavailable")
)
