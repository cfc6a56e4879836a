package adyen_soap_recurring

import (
	"crypto/tls"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	pkcs12 "software.sslmate.com/src/go-pkcs12"
)

// loadClientCertificate loads the client certificate used for mutual TLS and,
// optionally, for signing request bodies. Files ending in .pem hold the
// certificate chain and the private key; anything else is read as P12/PFX.
func loadClientCertificate(path, password string) (tls.Certificate, error) {
	path = expandHome(path)

	if strings.EqualFold(filepath.Ext(path), ".pem") {
		cert, err := tls.LoadX509KeyPair(path, path)
		if err != nil {
			return tls.Certificate{}, fmt.Errorf("load PEM key pair %s: %w", path, err)
		}
		return cert, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("read P12 file %s: %w", path, err)
	}
	return decodeP12(data, password)
}

// decodeP12 returns the leaf certificate followed by its CA chain, with the private key.
func decodeP12(data []byte, password string) (tls.Certificate, error) {
	privateKey, leaf, caCerts, err := pkcs12.DecodeChain(data, password)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("decode P12 certificate: %w", err)
	}

	chain := make([][]byte, 0, 1+len(caCerts))
	chain = append(chain, leaf.Raw)
	for _, c := range caCerts {
		chain = append(chain, c.Raw)
	}

	return tls.Certificate{
		Certificate: chain,
		PrivateKey:  privateKey,
		Leaf:        leaf,
	}, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
