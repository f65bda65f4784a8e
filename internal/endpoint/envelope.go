package endpoint

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Validator is implemented by payloads that can reject a syntactically valid
// but incomplete body.
type Validator interface {
	Validate() error
}

// envelope is the {"data": ...} wrapper common to both services.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// Decode parses an envelope and returns its data field as T.
// Every failure is a *DecodeError.
func Decode[T any](body []byte) (T, error) {
	var zero T

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return zero, &DecodeError{Err: err}
	}
	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return zero, &DecodeError{Err: errors.New(`missing "data" field`)}
	}

	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return zero, &DecodeError{Err: fmt.Errorf(`field "data": %w`, err)}
	}
	if v, ok := any(&out).(Validator); ok {
		if err := v.Validate(); err != nil {
			return zero, &DecodeError{Err: err}
		}
	}
	return out, nil
}
