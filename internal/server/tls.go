package server

import (
	"crypto/tls"

	"golang.org/x/crypto/acme/autocert"
)

// tlsConfig builds an autocert-backed TLS configuration for the websocket
// endpoint. Certificates are fetched on demand and cached on disk.
func tlsConfig(domain, cacheDir string) *tls.Config {
	manager := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		HostPolicy: autocert.HostWhitelist(domain),
		Cache:      autocert.DirCache(cacheDir),
	}
	cfg := manager.TLSConfig()
	cfg.MinVersion = tls.VersionTLS12
	return cfg
}
