package adapter

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/pcvolkmer/dnpm-kafka-rest-proxy/internal/config"
	"github.com/youmark/pkcs8"
)

const encryptedPKCS8BlockType = "ENCRYPTED PRIVATE KEY"

// loadTLSConfig builds the broker TLS configuration. The system CA pool is
// always trusted; CAFile adds to it. A client certificate is loaded when
// CertFile and KeyFile are set. An encrypted key, either PKCS#8
// (ENCRYPTED PRIVATE KEY) or legacy RFC 1423 (Proc-Type 4,ENCRYPTED), is
// decrypted with KeyPassword.
func loadTLSConfig(cfg config.SSL) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}

	rootCAs, err := x509.SystemCertPool()
	if err != nil {
		rootCAs = x509.NewCertPool()
	}

	if cfg.CAFile != "" {
		caPEM, err := os.ReadFile(cfg.CAFile)
		if err != nil {
			return nil, fmt.Errorf("%w: read CA file %s: %w", ErrInvalidTLSMaterial, cfg.CAFile, err)
		}
		if !rootCAs.AppendCertsFromPEM(caPEM) {
			return nil, fmt.Errorf("%w: no PEM certificates in %s", ErrInvalidTLSMaterial, cfg.CAFile)
		}
	}
	tlsConfig.RootCAs = rootCAs

	if cfg.CertFile == "" && cfg.KeyFile == "" {
		return tlsConfig, nil
	}

	cert, err := loadClientCertificate(cfg)
	if err != nil {
		return nil, err
	}
	tlsConfig.Certificates = []tls.Certificate{cert}

	return tlsConfig, nil
}

func loadClientCertificate(cfg config.SSL) (tls.Certificate, error) {
	certPEM, err := os.ReadFile(cfg.CertFile)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("%w: read cert file %s: %w", ErrInvalidTLSMaterial, cfg.CertFile, err)
	}

	keyPEM, err := os.ReadFile(cfg.KeyFile)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("%w: read key file %s: %w", ErrInvalidTLSMaterial, cfg.KeyFile, err)
	}

	if cfg.KeyPassword != "" {
		keyPEM, err = decryptKey(keyPEM, cfg.KeyPassword)
		if err != nil {
			return tls.Certificate{}, fmt.Errorf("%w: key file %s: %w", ErrInvalidTLSMaterial, cfg.KeyFile, err)
		}
	}

	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("%w: %w", ErrInvalidTLSMaterial, err)
	}

	return cert, nil
}

// decryptKey returns keyPEM with its first private key block decrypted.
// Unencrypted keys are returned unchanged.
func decryptKey(keyPEM []byte, password string) ([]byte, error) {
	block, _ := pem.Decode(keyPEM)
	if block == nil {
		return nil, fmt.Errorf("no PEM data")
	}

	if block.Type == encryptedPKCS8BlockType {
		return decryptPKCS8Key(block.Bytes, password)
	}

	//nolint:staticcheck // RFC 1423 encryption only
	if !x509.IsEncryptedPEMBlock(block) {
		return keyPEM, nil
	}

	//nolint:staticcheck
	der, err := x509.DecryptPEMBlock(block, []byte(password))
	if err != nil {
		return nil, fmt.Errorf("decrypt private key: %w", err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: block.Type, Bytes: der}), nil
}

// decryptPKCS8Key decrypts an ENCRYPTED PRIVATE KEY block and re-encodes the
// key as an unencrypted PKCS#8 PRIVATE KEY block.
func decryptPKCS8Key(der []byte, password string) ([]byte, error) {
	key, err := pkcs8.ParsePKCS8PrivateKey(der, []byte(password))
	if err != nil {
		return nil, fmt.Errorf("decrypt PKCS#8 private key: %w", err)
	}

	plain, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("encode PKCS#8 private key: %w", err)
	}

	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: plain}), nil
}
