package entrez

import "fmt"

// TransportError is a network or API failure talking to Entrez.
type TransportError struct {
	Util string // the E-utility that failed, e.g. "esearch.fcgi"
	Err  error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("entrez %s: %v", e.Util, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error { return e.Err }
