package helper

import (
	"bytes"
	"context"
	"errors"
	"extrato-gateway/internal/common/enum"
	_type "extrato-gateway/internal/common/type"
	"extrato-gateway/internal/pkg/logger"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"time"
)

const defaultHTTPTimeout = 1 * time.Minute

type HTTPAPIResponse struct {
	StatusCode int         `json:"status_code"`
	Headers    http.Header `json:"headers"`

	// Raw is the undecoded body. ReadErr is set when the body could not be read;
	// the status line is still valid in that case.
	Raw     []byte `json:"-"`
	ReadErr error  `json:"-"`
}

func (r *HTTPAPIResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type HTTPRequestPayload struct {
	Method enum.HTTPMethodEnum
	URL    string
	Body   interface{}
}

type HTTPRequestConfig struct {
	Ctx     context.Context
	Headers http.Header
	Timeout time.Duration
	Client  *http.Client
}

// RequestError is returned when the request was built but no response came back.
// HTTP error statuses are not RequestErrors.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func IsRequestError(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}

func HTTPRequest(
	payload *HTTPRequestPayload,
	config *HTTPRequestConfig,
) (*HTTPAPIResponse, error) {
	if config == nil {
		config = &HTTPRequestConfig{}
	}
	if config.Ctx == nil {
		config.Ctx = context.Background()
	}
	if config.Headers == nil {
		config.Headers = http.Header{}
	}

	requestBody, err := handleRequestBody(payload, config)
	if err != nil {
		return nil, err
	}

	req, client, err := prepareRequest(payload, requestBody, config)
	if err != nil {
		return nil, err
	}
	return executeRequest(req, client)
}

func handleRequestBody(payload *HTTPRequestPayload, config *HTTPRequestConfig) (io.Reader, error) {
	if payload.Method == enum.GET || payload.Body == nil {
		return nil, nil
	}

	switch config.Headers.Get("Content-Type") {
	case enum.MultipartForm.ToString():
		requestBody, ct, err := createMultipartBody(payload.Body)
		if err != nil {
			return nil, err
		}
		config.Headers.Set("Content-Type", ct)
		return requestBody, nil
	default:
		return nil, errors.New("unsupported content type")
	}
}

func prepareRequest(payload *HTTPRequestPayload, body io.Reader, config *HTTPRequestConfig) (*http.Request, *http.Client, error) {
	req, err := http.NewRequestWithContext(config.Ctx, payload.Method.ToString(), payload.URL, body)
	if err != nil {
		return nil, nil, err
	}

	for key, values := range config.Headers {
		req.Header[key] = append(req.Header[key], values...)
	}

	client := config.Client
	if client == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return req, client, nil
}

func executeRequest(req *http.Request, client *http.Client) (*HTTPAPIResponse, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, &RequestError{URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	out := &HTTPAPIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
	}

	out.Raw, out.ReadErr = io.ReadAll(resp.Body)
	if out.ReadErr != nil {
		logger.Warning.Printf("reading response body from %s: %v", req.URL, out.ReadErr)
	}

	return out, nil
}

// createMultipartBody writes every buffered file of body as a file part named after its key.
func createMultipartBody(body interface{}) (io.Reader, string, error) {
	formData, ok := body.(map[string]*_type.BufferedFile)
	if !ok {
		return nil, "", errors.New("body must be a map[string]*BufferedFile for multipart/form-data content type")
	}
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(formData))
	for key := range formData {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if formData[key] == nil {
			return nil, "", fmt.Errorf("multipart field %q has no file", key)
		}
		if err := writeFilePart(writer, key, formData[key]); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}

func writeFilePart(writer *multipart.Writer, field string, file *_type.BufferedFile) error {
	mimeType := file.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	part, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": []string{fmt.Sprintf(`form-data; name=%q; filename=%q`, field, file.OriginalName)},
		"Content-Type":        []string{mimeType},
	})
	if err != nil {
		return err
	}
	_, err = part.Write(file.Buffer)
	return err
}
