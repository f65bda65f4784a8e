package endpoint

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxErrorBody caps how much of a failed response is kept for the error.
const maxErrorBody = 512

// Client turns Request descriptors into HTTP calls.
type Client struct {
	http *http.Client
}

// New creates a Client. A nil httpClient gets a default with a timeout
// generous enough for image uploads.
func New(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{http: httpClient}
}

// Do executes req and returns the raw body of a 2xx response.
// Any other status, or a failure to get a response at all, is returned as a
// *TransportError and the body is not interpreted. onProgress, if non-nil,
// is called as the request body streams out.
func (c *Client) Do(ctx context.Context, req *Request, onProgress ProgressFunc) ([]byte, error) {
	rawURL, err := req.URL()
	if err != nil {
		return nil, err
	}

	var body io.Reader
	size := int64(len(req.Body))
	if req.Body != nil {
		body = NewProgressReader(bytes.NewReader(req.Body), size, onProgress)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, rawURL, body)
	if err != nil {
		return nil, err
	}
	if req.Body != nil {
		httpReq.ContentLength = size
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: redact(req), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(req, resp); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: redact(req), StatusCode: resp.StatusCode, Err: err}
	}
	return data, nil
}

// checkStatus returns a *TransportError for non-2xx responses.
func checkStatus(req *Request, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &TransportError{
		Method:     req.Method,
		URL:        redact(req),
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(snippet)),
		Err:        statusSentinel(resp.StatusCode),
	}
}

// redact returns the request URL without its query, which carries the
// signing parameters.
func redact(req *Request) string {
	return strings.TrimRight(req.BaseURL, "/") + req.Path
}
