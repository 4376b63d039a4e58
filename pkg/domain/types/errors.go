package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrInvalidOption is returned when a flag or input value can not be used
	ErrInvalidOption = goerr.New("invalid option")

	// ErrUnexpectedStatus is returned for a non-2xx response when status check is enabled
	ErrUnexpectedStatus = goerr.New("unexpected HTTP status")

	// ErrIllegalArchivePath is returned when an archive entry resolves outside of the destination
	ErrIllegalArchivePath = goerr.New("illegal file path of zip")
)
