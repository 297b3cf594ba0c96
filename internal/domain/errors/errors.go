package errors

import "errors"

var (
	ErrSourceUnavailable   = errors.New("source unavailable")
	ErrCompetitionNotFound = errors.New("competition not found")
	ErrUnknownCompetition  = errors.New("unknown competition")
	ErrMissingCompetition  = errors.New("competition is required")
	ErrInvalidDate         = errors.New("invalid date")
	ErrMalformedTimestamp  = errors.New("malformed timestamp")
)
