package network

import (
	"bytes"
	"context"
	"encoding/json"
	"github.com/objectsync/objectsync/pkg/contracts/iresponse"
	"io"
	"net/http"
)

// Send issues one HTTP exchange and folds every failure mode into the
// response envelope. Transport failures are marked temporary; server errors
// carry whatever classification the status code and body give.
func Send(ctx context.Context, client *http.Client, URL string, method string, data []byte, headers map[string]string) *iresponse.Response {
	var req *http.Request
	var err error

	if data != nil {
		req, err = http.NewRequestWithContext(ctx, method, URL, bytes.NewBuffer(data))
	} else {
		req, err = http.NewRequestWithContext(ctx, method, URL, nil)
	}

	if err != nil {
		return &iresponse.Response{
			HttpStatus:       0,
			Explanation:      "failed to craft request",
			ErrorExplanation: err.Error(),
			Error:            true,
			Success:          false,
			Data:             nil,
		}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "objectsync")

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)

	if err != nil {
		return &iresponse.Response{
			HttpStatus:       0,
			Explanation:      "failed to reach the server",
			ErrorExplanation: err.Error(),
			Error:            true,
			Success:          false,
			Temporary:        true,
			Data:             nil,
		}
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return &iresponse.Response{
			HttpStatus:       resp.StatusCode,
			Explanation:      "invalid response from the server",
			ErrorExplanation: err.Error(),
			Error:            true,
			Success:          false,
			Temporary:        true,
			Data:             nil,
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &iresponse.Response{
			HttpStatus: resp.StatusCode,
			Success:    true,
			Data:       body,
		}
	}

	response := &iresponse.Response{
		HttpStatus: resp.StatusCode,
		Error:      true,
		Success:    false,
		Temporary:  Temporary(resp.StatusCode),
		Data:       body,
	}

	var envelope struct {
		Code  int    `json:"code"`
		Error string `json:"error"`
	}

	if err = json.Unmarshal(body, &envelope); err == nil {
		response.Code = envelope.Code
		response.ErrorExplanation = envelope.Error
	} else {
		response.ErrorExplanation = string(body)
	}

	return response
}

// Raw issues an exchange without envelope handling.
func Raw(ctx context.Context, client *http.Client, URL string, method string, data interface{}) (*http.Response, error) {
	var req *http.Request
	var err error

	if data != nil {
		var marshaled []byte

		switch v := data.(type) {
		case string:
			marshaled = []byte(v)
		case []byte:
			marshaled = v
		default:
			marshaled, err = json.Marshal(v)

			if err != nil {
				return nil, err
			}
		}

		req, err = http.NewRequestWithContext(ctx, method, URL, bytes.NewBuffer(marshaled))
	} else {
		req, err = http.NewRequestWithContext(ctx, method, URL, nil)
	}

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	return client.Do(req)
}

// Temporary reports whether a status code marks a failure worth retrying.
func Temporary(status int) bool {
	return status >= http.StatusInternalServerError || status == http.StatusTooManyRequests
}
