package apiclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// descriptionField tolerates the backend sending "description" either as a
// plain string or as an array of strings; only the first element matters.
type descriptionField string

func (d *descriptionField) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*d = descriptionField(single)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		if len(list) > 0 {
			*d = descriptionField(list[0])
		}
		return nil
	}

	// Unknown shape; leave the field empty and let the fallbacks apply.
	*d = ""
	return nil
}

// errorDetail is the nested "error" object some endpoints wrap their
// failures in.
type errorDetail struct {
	Description descriptionField `json:"description"`
	Message     string           `json:"message"`
}

// errorEnvelope covers every known failure body the backend produces:
//
//	{ "error": { "description": ["..."], "message": "..." } }
//	{ "description": "...", "message": "..." }
//	{ "error_description": "..." }
//
// Fields are probed in that priority order.
type errorEnvelope struct {
	Error            *errorDetail     `json:"error"`
	Description      descriptionField `json:"description"`
	Message          string           `json:"message"`
	ErrorDescription string           `json:"error_description"`
}

// newRequestError reads the response body of a failed call and extracts the
// most specific human-readable message available.
func newRequestError(resp *http.Response) *RequestError {
	message := fmt.Sprintf("request failed with status: %d", resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	if err != nil || len(raw) == 0 {
		return &RequestError{Status: resp.StatusCode, Message: message}
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		// Not JSON; a non-empty plain-text body still beats the generic
		// status message.
		if text := strings.TrimSpace(string(raw)); text != "" {
			message = text
		}
		return &RequestError{Status: resp.StatusCode, Message: message}
	}

	detail := errorDetail{Description: envelope.Description, Message: envelope.Message}
	if envelope.Error != nil {
		detail = *envelope.Error
	}

	switch {
	case detail.Description != "":
		message = string(detail.Description)
	case detail.Message != "":
		message = detail.Message
	case envelope.Message != "":
		message = envelope.Message
	case envelope.ErrorDescription != "":
		message = envelope.ErrorDescription
	}

	return &RequestError{Status: resp.StatusCode, Message: message}
}
