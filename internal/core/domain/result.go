package domain

import "encoding/json"

// GenericErrorMessage is reported when a failure carries no message of its own.
const GenericErrorMessage = "Something went wrong"

// Result is the outcome of a service call: either data or an error message, never both.
type Result[T any] struct {
	data T
	err  string
	ok   bool
}

// Ok returns a successful result.
func Ok[T any](data T) Result[T] {
	return Result[T]{data: data, ok: true}
}

// Fail returns a failed result. An empty message is replaced by GenericErrorMessage.
func Fail[T any](msg string) Result[T] {
	if msg == "" {
		msg = GenericErrorMessage
	}
	return Result[T]{err: msg}
}

// Success reports whether the result carries data.
func (r Result[T]) Success() bool { return r.ok }

// Data returns the payload and whether the result succeeded.
func (r Result[T]) Data() (T, bool) { return r.data, r.ok }

// Err returns the failure message, or "" on success.
func (r Result[T]) Err() string {
	if r.ok {
		return ""
	}
	if r.err == "" {
		return GenericErrorMessage
	}
	return r.err
}

// Payload returns the data as an untyped value, nil on failure.
func (r Result[T]) Payload() any {
	if !r.ok {
		return nil
	}
	return r.data
}

type resultJSON struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MarshalJSON renders the result as {success, data?, error?}.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{Success: r.ok, Data: r.Payload(), Error: r.Err()})
}

// Envelope is implemented by every Result regardless of its payload type.
type Envelope interface {
	Success() bool
	Err() string
	Payload() any
}

// Locator is implemented by payloads that point at a result file.
type Locator interface {
	Locator() string
}

// LocatorOf returns the result file locator of an envelope, if any.
func LocatorOf(e Envelope) string {
	if e == nil {
		return ""
	}
	if l, ok := e.Payload().(Locator); ok {
		return l.Locator()
	}
	return ""
}
