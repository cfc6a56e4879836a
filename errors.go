package adyen_soap_recurring

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInstrumentMissing is returned by StoreToken when neither a card nor an ELV account is given.
var ErrInstrumentMissing = errors.New("adyen_soap_recurring: the required parameter 'card' or 'elv' is missing")

// MissingParameterError is returned before any request is built when a required parameter is absent.
type MissingParameterError struct {
	// Path is the missing key, dotted for nested groups (e.g. "shopper.reference").
	Path string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("adyen_soap_recurring: the required parameter '%s' is missing", e.Path)
}

// HTTPError is returned when the service responds with a non-2xx HTTP status and no SOAP fault.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
	Headers    http.Header
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("adyen_soap_recurring http error %d (%s): %s", e.StatusCode, e.Status, e.Body)
}

// SOAPFault represents a SOAP fault returned by the service.
type SOAPFault struct {
	Action      string
	FaultCode   string
	FaultString string
	RawBody     []byte
}

func (e *SOAPFault) Error() string {
	return fmt.Sprintf("adyen_soap_recurring soap fault on %s [%s]: %s", e.Action, e.FaultCode, e.FaultString)
}
