package fira

import "fmt"

// IntegrationError is returned when FIRA answers with a non-success status
// or the request never completes. StatusCode is 0 for transport failures.
type IntegrationError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *IntegrationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fira %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("fira %s: status %d, body: %s", e.Op, e.StatusCode, e.Body)
}

func (e *IntegrationError) Unwrap() error {
	return e.Err
}
