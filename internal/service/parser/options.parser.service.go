package parser

import (
	"net/http"
	"time"
)

const (
	DefaultParseURL      = "http://localhost:8000/api/parse"
	DefaultHealthURL     = "http://localhost:8000/api/health"
	DefaultTimeout       = 1 * time.Minute
	DefaultHealthTimeout = 5 * time.Second

	// FileField is the multipart field the backend reads the PDF from.
	FileField = "file"
)

type Options struct {
	ParseURL      string
	HealthURL     string
	Timeout       time.Duration
	HealthTimeout time.Duration

	// Client overrides the HTTP client built from Timeout.
	Client *http.Client
}

func DefaultOptions() *Options {
	return &Options{
		ParseURL:      DefaultParseURL,
		HealthURL:     DefaultHealthURL,
		Timeout:       DefaultTimeout,
		HealthTimeout: DefaultHealthTimeout,
	}
}
