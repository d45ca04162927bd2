package core

import "errors"

var (
	// ErrFileNotFound reports that the resolver exhausted all candidates.
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidFileType reports a path that exists but fails acceptance.
	ErrInvalidFileType = errors.New("invalid file type")
	// ErrInvalidArgument reports a contract violation by the caller.
	ErrInvalidArgument = errors.New("invalid argument")
)
