package clickhouse

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/pkg/errors"
)

// TLSSettings names the PEM files used to secure a connection. CertFile and
// KeyFile together enable client certificate auth, CAFile pins the server's
// certificate authority. Any combination may be left empty.
type TLSSettings struct {
	CAFile   string
	CertFile string
	KeyFile  string
}

func (t TLSSettings) enabled() bool {
	return t.CAFile != "" || t.CertFile != "" || t.KeyFile != ""
}

// GetTLSConfig creates a TLS config for connecting to clickhouse, optionally
// over mTLS.
//
// Example usage:
//
// tls, err := GetTLSConfig(settings)
//
//	if err != nil {
//			return err
//	}
func GetTLSConfig(settings TLSSettings) (*tls.Config, error) {
	config := &tls.Config{MinVersion: tls.VersionTLS12}

	if settings.CertFile != "" || settings.KeyFile != "" {
		cert, err := tls.LoadX509KeyPair(settings.CertFile, settings.KeyFile)
		if err != nil {
			return nil, errors.Wrap(err, "Unable to load certfile/keyfile")
		}
		config.Certificates = []tls.Certificate{cert}
	}

	if settings.CAFile != "" {
		caCert, err := os.ReadFile(settings.CAFile)
		if err != nil {
			return nil, errors.Wrap(err, "Unable to load CAfile")
		}

		caCertPool := x509.NewCertPool()
		caCertPool.AppendCertsFromPEM(caCert)
		config.RootCAs = caCertPool
	}

	return config, nil
}
