package fastpix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Payload is a JSON request body.
type Payload map[string]any

var supportedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPatch:  true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

// Do sends a single request to the API and returns the decoded JSON body.
//
// GET and DELETE send query as the query string; POST, PATCH and PUT send
// body as JSON. Only 200 and 201 count as success. Every failure after
// method validation is an *APIError.
func (c *Client) Do(ctx context.Context, method, endpoint string, body Payload, query url.Values) (any, error) {
	if !supportedMethods[method] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}

	requestURL := c.baseURL + endpoint

	var reader io.Reader
	switch method {
	case http.MethodGet, http.MethodDelete:
		if len(query) > 0 {
			requestURL += "?" + query.Encode()
		}
	default:
		if body != nil {
			data, err := json.Marshal(body)
			if err != nil {
				return nil, &APIError{Message: "failed to encode request body", Err: err}
			}
			reader = bytes.NewReader(data)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, &APIError{Err: err}
	}
	req.Header = c.headers.Clone()

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("method", method).
			Str("endpoint", endpoint).
			Msg("FastPix request failed")
		return nil, &APIError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "failed to read response body", Err: err}
	}

	c.logger.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("FastPix API request")

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var result any
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       string(raw),
			Message:    "failed to decode response body",
			Err:        err,
		}
	}

	return result, nil
}
