package responder

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/querybase/servekit/jsonutil"
)

// DecodeJSON parses the request body into the provided value. On failure it
// returns an AppError carrying the decoder's own status and message, so the
// caller can hand it straight to WriteAppError.
func DecodeJSON(req *http.Request, v any) *AppError {
	if req == nil || req.Body == nil {
		return NewJSONRejection(http.StatusBadRequest, "request body is required", nil)
	}

	if ct := req.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || !isJSONMediaType(mediaType) {
			return NewJSONRejection(
				http.StatusUnsupportedMediaType,
				"Expected request with `Content-Type: application/json`",
				err,
			)
		}
	}

	if err := jsonutil.Decode(req.Body, v); err != nil {
		if errors.Is(err, io.EOF) {
			return NewJSONRejection(http.StatusBadRequest, "request body is required", io.ErrUnexpectedEOF)
		}
		return NewJSONRejection(
			http.StatusBadRequest,
			"Failed to parse the request body as JSON: "+err.Error(),
			err,
		)
	}
	return nil
}

// ReadRequestBody parses the request body into the provided value and, when
// the content is malformed, writes the JSON error envelope itself. It
// returns false if the request has already been answered.
func (r *Responder) ReadRequestBody(w http.ResponseWriter, req *http.Request, v any) bool {
	if appErr := DecodeJSON(req, v); appErr != nil {
		r.WriteAppError(w, req, appErr)
		return false
	}
	return true
}

func isJSONMediaType(mediaType string) bool {
	if mediaType == jsonContentType {
		return true
	}
	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}
