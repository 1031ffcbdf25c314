package parser

import (
	"context"
	"extrato-gateway/internal/common/enum"
	types "extrato-gateway/internal/common/type"
	"extrato-gateway/internal/pkg/helper"
	"extrato-gateway/internal/pkg/logger"
	"extrato-gateway/internal/service/parser/model"
	"fmt"
	"net/http"
)

type Service struct {
	opts *Options
}

//go:generate mockgen -destination=mocks/mock_parser.go -package=mocks -source=parser.service.go IService
type IService interface {
	Parse(ctx context.Context, file *types.BufferedFile) (*model.ParseResponse, error)
	Health(ctx context.Context) model.HealthResponse
}

func NewService(opts *Options) IService {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.ParseURL == "" {
		opts.ParseURL = DefaultParseURL
	}
	if opts.HealthURL == "" {
		opts.HealthURL = DefaultHealthURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.HealthTimeout <= 0 {
		opts.HealthTimeout = DefaultHealthTimeout
	}
	return &Service{opts: opts}
}

// Parse sends one file to the backend as the only part of a new multipart body.
// A non-2xx answer is returned as *BackendError; anything else that goes wrong wraps ErrUnavailable.
func (s *Service) Parse(ctx context.Context, file *types.BufferedFile) (*model.ParseResponse, error) {
	resp, err := helper.HTTPRequest(
		&helper.HTTPRequestPayload{
			Method: enum.POST,
			URL:    s.opts.ParseURL,
			Body: map[string]*types.BufferedFile{
				FileField: file,
			},
		},
		&helper.HTTPRequestConfig{
			Ctx: ctx,
			Headers: http.Header{
				"Content-Type": []string{enum.MultipartForm.ToString()},
				"Accept":       []string{enum.ApplicationJSON.ToString()},
			},
			Timeout: s.opts.Timeout,
			Client:  s.opts.Client,
		},
	)
	if err != nil {
		if !helper.IsRequestError(err) {
			logger.Error.Printf("building parser request for %q: %v", file.OriginalName, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if !resp.OK() {
		backendErr := &BackendError{StatusCode: resp.StatusCode, Unreadable: resp.ReadErr != nil}
		if !backendErr.Unreadable {
			var body model.ErrorResponse
			if err := helper.ByteToStruct(resp.Raw, &body); err == nil {
				backendErr.Detail = detailString(body.Detail)
			}
		}
		logger.Debug.Printf("parser rejected %q: %v", file.OriginalName, backendErr)
		return nil, backendErr
	}

	if resp.ReadErr != nil {
		return nil, fmt.Errorf("%w: reading response for %q: %w", ErrUnavailable, file.OriginalName, resp.ReadErr)
	}

	var parsed model.ParseResponse
	if err := helper.ByteToStruct(resp.Raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decoding response for %q: %w", ErrUnavailable, file.OriginalName, err)
	}

	return &parsed, nil
}

// Health probes the backend's own health endpoint. Any answer below 500 counts as reachable.
func (s *Service) Health(ctx context.Context) model.HealthResponse {
	out := model.HealthResponse{URL: s.opts.HealthURL}

	resp, err := helper.HTTPRequest(
		&helper.HTTPRequestPayload{
			Method: enum.GET,
			URL:    s.opts.HealthURL,
		},
		&helper.HTTPRequestConfig{
			Ctx:     ctx,
			Timeout: s.opts.HealthTimeout,
		},
	)
	if err != nil {
		out.Note = "parser health request could not be built"
		if helper.IsRequestError(err) {
			out.Note = "parser not running or not reachable"
		}
		logger.Warning.Printf("parser health check failed: %v", err)
		return out
	}

	out.Status = resp.StatusCode
	out.Reachable = resp.StatusCode < http.StatusInternalServerError
	if !out.Reachable {
		out.Note = "parser answered with a server error"
	}
	return out
}
