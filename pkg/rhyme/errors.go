package rhyme

import "fmt"

// NetworkError is returned when the rhyme service cannot be reached or
// answers with a non-2xx status.
type NetworkError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("rhyme lookup %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("rhyme lookup %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError is returned when the rhyme service response is not the
// expected JSON array.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rhyme lookup %s: malformed response: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
