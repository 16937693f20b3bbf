package model

import "fmt"

// FetchError tags a content fetch failure (network error, bad status,
// timeout). It is the only error surfaced to callers of the pipeline,
// and only through the report's error field.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// OracleError tags a generative oracle failure (unavailable,
// unauthenticated, timeout, empty response). Always recoverable: the
// caller degrades to the next stage.
type OracleError struct {
	Provider string
	Err      error
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("oracle %s: %v", e.Provider, e.Err)
}

func (e *OracleError) Unwrap() error { return e.Err }

// LookupError tags a knowledge lookup failure (no results, page fetch
// failure). Always recoverable.
type LookupError struct {
	Op    string // "search" or "fetch"
	Query string
	Err   error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("knowledge %s %q: %v", e.Op, e.Query, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// ParseError tags malformed structured oracle output. Recovered via
// regex extraction inside the verifier; never surfaced.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse oracle output: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
