package pokeapi

import (
	"net"
	"net/http"
	"time"
)

type Config struct {
	BaseURL string

	// Timeout bounds a whole request including the body read. A context
	// deadline can still cut it shorter.
	Timeout time.Duration

	DialTimeout     time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration
	MaxIdleConns    int
}

// DefaultConfig points at the public PokeAPI with conservative timeouts.
func DefaultConfig() Config {
	return Config{
		BaseURL:         "https://pokeapi.co/api/v2/",
		Timeout:         15 * time.Second,
		DialTimeout:     5 * time.Second,
		TLSHandshake:    5 * time.Second,
		ResponseHeader:  10 * time.Second,
		IdleConnTimeout: 90 * time.Second,
		MaxIdleConns:    10,
	}
}

func newHTTPClient(cfg Config) *http.Client {
	dialer := &net.Dialer{Timeout: cfg.DialTimeout}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		MaxIdleConns:          cfg.MaxIdleConns,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}
