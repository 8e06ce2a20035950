//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
)

// HTTPClient drives the router in-process with an optional bearer token.
type HTTPClient struct {
	handler http.Handler
	token   string
}

func NewHTTPClient(handler http.Handler, token string) *HTTPClient {
	return &HTTPClient{handler: handler, token: token}
}

type Request struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// DecodeJSON unmarshals the response body into v.
func (r *Response) DecodeJSON(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

func (c *HTTPClient) Do(req Request) (*Response, error) {
	var bodyReader io.Reader
	if req.Body != nil {
		if buf, ok := req.Body.(*bytes.Buffer); ok {
			bodyReader = buf
		} else {
			bodyBytes, err := json.Marshal(req.Body)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal request body: %v", err)
			}
			bodyReader = bytes.NewReader(bodyBytes)
		}
	}

	httpReq, err := http.NewRequest(req.Method, req.Path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	if req.Headers == nil || req.Headers["Content-Type"] == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, httpReq)

	bodyBytes, err := io.ReadAll(w.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %v", err)
	}
	return &Response{StatusCode: w.Code, Body: bodyBytes, Headers: w.Header()}, nil
}

func (c *HTTPClient) GET(path string) (*Response, error) {
	return c.Do(Request{Method: http.MethodGet, Path: path})
}

func (c *HTTPClient) POST(path string, body interface{}) (*Response, error) {
	return c.Do(Request{Method: http.MethodPost, Path: path, Body: body})
}

func (c *HTTPClient) PATCH(path string, body interface{}) (*Response, error) {
	return c.Do(Request{Method: http.MethodPatch, Path: path, Body: body})
}

func (c *HTTPClient) DELETE(path string) (*Response, error) {
	return c.Do(Request{Method: http.MethodDelete, Path: path})
}

// POSTFile sends a multipart form with one file part named field.
func (c *HTTPClient) POSTFile(path, field, filename string, content []byte, formData map[string]string) (*Response, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range formData {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %v", key, err)
		}
	}
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("failed to write file part: %v", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %v", err)
	}

	return c.Do(Request{
		Method:  http.MethodPost,
		Path:    path,
		Headers: map[string]string{"Content-Type": writer.FormDataContentType()},
		Body:    body,
	})
}
