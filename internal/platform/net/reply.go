package net

import (
	"net/http"

	perr "interviewcoach/internal/platform/errors"
)

// Wire is the envelope every JSON response is wrapped in. Success carries Data;
// failure carries Code, Error and Field
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func envelope(status int, reqID string) Wire {
	return Wire{StatusCode: status, Status: http.StatusText(status), RequestID: reqID}
}

// Success wraps data under status
func Success(status int, data any, reqID string) Wire {
	w := envelope(status, reqID)
	w.Data = data
	return w
}

// Failure renders err with the status its code maps to; a nil err is a bare 200
func Failure(err error, reqID string) Wire {
	status, pe := perr.HTTP(err)
	w := envelope(status, reqID)
	w.Code, w.Error, w.Field = pe.Code, pe.Message, pe.Field
	return w
}
