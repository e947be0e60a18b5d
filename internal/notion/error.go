package notion

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error represents a Notion API error response.
type Error struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.Message != "" {
		return fmt.Sprintf("notion: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}

	if e.Code != "" {
		return fmt.Sprintf("notion: %d %s", e.StatusCode, e.Code)
	}

	return fmt.Sprintf("notion: %d", e.StatusCode)
}

// IsNotFound reports whether err is a Notion "object not found" response.
func IsNotFound(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusNotFound || apiErr.Code == "object_not_found"
}

func parseError(res *http.Response) error {
	data, _ := io.ReadAll(res.Body)
	errRes := &Error{StatusCode: res.StatusCode}
	if len(data) > 0 {
		_ = json.Unmarshal(data, errRes)
	}

	if errRes.Message == "" && errRes.Code == "" {
		errRes.Message = string(data)
	}

	return errRes
}
