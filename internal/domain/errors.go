package domain

import "errors"

var (
	// ErrNotFound signals a missing record.
	ErrNotFound = errors.New("string not found")
	// ErrAlreadyExists signals that a record with the same content hash is already stored.
	ErrAlreadyExists = errors.New("string already exists")
	// ErrValidation signals malformed or missing input.
	ErrValidation = errors.New("validation failed")
	// ErrValueNotString signals that the submitted value has the wrong JSON type.
	ErrValueNotString = errors.New("value must be a string")
	// ErrUnparseableQuery signals that no natural-language cue was recognized.
	ErrUnparseableQuery = errors.New("could not parse natural language query")
)
