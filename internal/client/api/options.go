package api

import (
	"encoding/json"
	"fmt"
)

// Options is a normalized request descriptor: method, headers and the
// serialized body. It carries no connection state and performs no I/O.
type Options struct {
	Method  string
	Headers map[string]string
	Body    []byte
}

// RequestOptions builds the descriptor for an API call. Content-Type is
// always JSON; the Authorization header is set iff a token is present.
// body may be nil for body-less requests. Pure function, no side effects.
func RequestOptions(method, token string, body any) (Options, error) {
	headers := map[string]string{"Content-Type": "application/json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	opts := Options{Method: method, Headers: headers}

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return Options{}, fmt.Errorf("serializing request body: %w", err)
		}
		opts.Body = data
	}
	return opts, nil
}
