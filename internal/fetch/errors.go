package fetch

import "fmt"

type ErrorKind string

const (
	KindTimeout          ErrorKind = "timeout"
	KindNonTextBody      ErrorKind = "non_text_body"
	KindEmptyBody        ErrorKind = "empty_body"
	KindWrongContentType ErrorKind = "wrong_content_type"
	KindTransport        ErrorKind = "transport_error"
)

// FetchError is returned once every attempt for a URL has failed. Err is the
// error of the last attempt.
type FetchError struct {
	Kind     ErrorKind
	URL      string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %s after %d attempts: %v", e.URL, e.Kind, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type attemptError struct {
	kind ErrorKind
	err  error
}

func (e *attemptError) Error() string {
	return e.err.Error()
}

func (e *attemptError) Unwrap() error {
	return e.err
}
