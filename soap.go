package adyen_soap_recurring

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	soapNS = "http://schemas.xmlsoap.org/soap/envelope/"
	xsdNS  = "http://www.w3.org/2001/XMLSchema"
	xsiNS  = "http://www.w3.org/2001/XMLSchema-instance"
)

// envelopeLayout wraps an operation body. Bodies declare their own namespaces.
const envelopeLayout = `<?xml version="1.0" encoding="UTF-8"?>
<soap:Envelope xmlns:soap="` + soapNS + `" xmlns:xsd="` + xsdNS + `" xmlns:xsi="` + xsiNS + `">
  <soap:Body>
%s
  </soap:Body>
</soap:Envelope>`

// Reply is the raw content of a successful SOAP exchange.
type Reply struct {
	HTTPStatus int
	Body       []byte
}

// Transport performs a single SOAP call.
//
// Invoke returns an error for network failures, SOAP faults (*SOAPFault) and
// non-2xx replies (*HTTPError); callers only ever parse a returned Reply.
type Transport interface {
	Invoke(ctx context.Context, action, body string) (*Reply, error)
}

// soapTransport is the HTTP implementation of Transport.
type soapTransport struct {
	endpoint   string
	username   string
	password   string
	httpClient *http.Client

	// signer is set when request bodies are signed.
	signer *tls.Certificate
}

func newSOAPTransport(cfg Config) (*soapTransport, error) {
	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}

	t := &soapTransport{
		endpoint: cfg.EndpointURL(),
		username: cfg.Username,
		password: cfg.Password,
	}

	if cfg.P12Path != "" {
		cert, err := loadClientCertificate(cfg.P12Path, cfg.P12Password)
		if err != nil {
			return nil, fmt.Errorf("adyen_soap_recurring: failed to load client certificate: %w", err)
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
		if cfg.SignRequests {
			t.signer = &cert
		}
	}

	t.httpClient = &http.Client{
		Timeout:   cfg.timeout(),
		Transport: &http.Transport{TLSClientConfig: tlsConfig},
	}
	return t, nil
}

// Invoke posts the enveloped body with the given SOAPAction.
func (t *soapTransport) Invoke(ctx context.Context, action, body string) (*Reply, error) {
	payload := wrapEnvelope(body)

	if t.signer != nil {
		signed, err := signEnvelope(payload, *t.signer)
		if err != nil {
			return nil, fmt.Errorf("adyen_soap_recurring: sign %s request: %w", action, err)
		}
		payload = signed
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("adyen_soap_recurring: create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "text/xml; charset=UTF-8")
	httpReq.Header.Set("SOAPAction", action)
	httpReq.SetBasicAuth(t.username, t.password)

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("adyen_soap_recurring: send %s request: %w", action, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("adyen_soap_recurring: read %s response: %w", action, err)
	}

	if fault := parseFault(respBody); fault != nil {
		fault.Action = action
		fault.RawBody = respBody
		return nil, fault
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       respBody,
			Headers:    resp.Header,
		}
	}

	return &Reply{HTTPStatus: resp.StatusCode, Body: respBody}, nil
}

func wrapEnvelope(body string) []byte {
	return []byte(fmt.Sprintf(envelopeLayout, body))
}

// ============================================
// SOAP Response Structures
// ============================================

type soapResponseEnvelope struct {
	XMLName xml.Name         `xml:"Envelope"`
	Body    soapResponseBody `xml:"Body"`
}

type soapResponseBody struct {
	Fault *soapFaultBody `xml:"Fault"`
}

type soapFaultBody struct {
	FaultCode   string `xml:"faultcode"`
	FaultString string `xml:"faultstring"`
}

// parseFault returns nil unless body is a SOAP envelope carrying a Fault.
func parseFault(body []byte) *SOAPFault {
	var env soapResponseEnvelope
	if err := xml.Unmarshal(body, &env); err != nil || env.Body.Fault == nil {
		return nil
	}
	return &SOAPFault{
		FaultCode:   strings.TrimSpace(env.Body.Fault.FaultCode),
		FaultString: strings.TrimSpace(env.Body.Fault.FaultString),
	}
}
