package fetch

import "fmt"

// FetchError is a transport-level failure: a failed request, a non-2xx
// status, an undecodable body, or a result shorter than the advertised
// record count. Fatal to the whole fetch; nothing is retried.
type FetchError struct {
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("fetch error (status %d)", e.Status)
	case e.Status != 0:
		return fmt.Sprintf("fetch error (status %d): %v", e.Status, e.Err)
	default:
		return fmt.Sprintf("fetch error: %v", e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ProtocolError means the endpoint answered but the response lacks a field
// the DataTables protocol requires. The raw body is kept for diagnostics.
type ProtocolError struct {
	Missing string
	Body    string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("response missing %q, body was: %s", e.Missing, e.Body)
}
