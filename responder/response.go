package responder

import (
	"log/slog"
	"net/http"

	"github.com/querybase/servekit/jsonutil"
)

// WriteAppError renders the error envelope as a JSON response. Server faults
// are attached to the request so the observability middleware logs them once;
// client faults are surfaced to the caller only, with a debug-level record
// for local diagnosis.
func (r *Responder) WriteAppError(w http.ResponseWriter, req *http.Request, appErr *AppError) {
	if appErr == nil {
		return
	}

	if appErr.ClientFault() {
		r.logger().LogAttrs(requestContext(req), slog.LevelDebug, "rejected client request",
			slog.Int("status", appErr.Status),
			slog.String("message", appErr.Message),
		)
	} else {
		Attach(req, appErr)
	}

	r.respondWithJSON(w, appErr.Status, ErrorBody{Message: appErr.Message})
}

// HandleError converts an arbitrary handler error into the envelope and
// writes it. The configured classifier decides the status; unclassified
// errors become internal server faults.
func (r *Responder) HandleError(w http.ResponseWriter, req *http.Request, err error) {
	if err == nil {
		return
	}

	if appErr, ok := err.(*AppError); ok {
		r.WriteAppError(w, req, appErr)
		return
	}

	if status, handled := r.classifyError(err); handled {
		r.WriteAppError(w, req, NewAppError(status, err.Error(), err))
		return
	}

	r.WriteAppError(w, req, NewInternal(err))
}

// RespondWithJSON serialises the provided value and writes it to the
// response using the supplied status code.
func (r *Responder) RespondWithJSON(w http.ResponseWriter, req *http.Request, status int, v any) {
	r.respondWithJSON(w, status, v)
}

func (r *Responder) respondWithJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}

	body, err := r.marshalPayload(payload)
	if err != nil {
		r.logger().Error("failed to encode response", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		r.logger().Error("failed to write response", "error", err)
	}
}

func (r *Responder) marshalPayload(payload any) ([]byte, error) {
	data, err := jsonutil.Marshal(payload)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return data, nil
}
