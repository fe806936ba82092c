package bfformatter

import "errors"

var (
	// ErrNoSource indicates neither a literal source string nor a source
	// file was provided to New.
	ErrNoSource = errors.New("bfformatter: either Source or SourceFile must be provided")
	// ErrFraction indicates a whitespace fraction outside the interval [0, 1).
	ErrFraction = errors.New("bfformatter: whitespace fraction must be in the interval [0, 1)")
	// ErrImage indicates the template image could not be decoded or has no
	// pixels to sample.
	ErrImage = errors.New("bfformatter: unusable image")
)
