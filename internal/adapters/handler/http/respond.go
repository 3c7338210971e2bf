package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/lunchvote/internal/core/domain"
)

type messageResponse struct {
	Message string `json:"message"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

type ruleResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageResponse{Message: message})
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// writeError maps service errors to a status code and body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation    *domain.ValidationError
		notAcceptable *domain.NotAcceptableError
		rule          *domain.RuleError
		fields        fieldErrors
	)

	switch {
	case errors.As(err, &fields):
		writeJSON(w, http.StatusBadRequest, fields)
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, map[string][]string{validation.Field: {validation.Message}})
	case errors.As(err, &notAcceptable):
		writeDetail(w, http.StatusNotAcceptable, notAcceptable.Message)
	case errors.As(err, &rule):
		status := http.StatusBadRequest
		if domain.IsNotFound(rule) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ruleResponse{Error: rule.Message})
	case errors.Is(err, domain.ErrNoMenusToday):
		writeMessage(w, http.StatusNotFound, err.Error())
	case domain.IsNotFound(err):
		writeDetail(w, http.StatusNotFound, "Not found.")
	case errors.Is(err, domain.ErrPermissionDenied):
		writeDetail(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		writeDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
	case errors.Is(err, domain.ErrInvalidCredential):
		writeDetail(w, http.StatusUnauthorized, "No active account found with the given credentials")
	case errors.Is(err, domain.ErrTokenInvalid):
		writeDetail(w, http.StatusUnauthorized, err.Error())
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		writeDetail(w, http.StatusInternalServerError, "A server error occurred.")
	}
}

// decodeJSON reads the request body into v. An empty body leaves v zeroed. A
// value of the wrong type is reported under its field; other malformed bodies
// under non_field_errors.
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field[strings.LastIndexByte(typeErr.Field, '.')+1:]
		return domain.NewValidationError(field, typeMessage(typeErr.Type.Kind(), typeErr.Value))
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return domain.NewValidationError("non_field_errors", "JSON parse error - "+syntaxErr.Error())
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return domain.NewValidationError("non_field_errors", "JSON parse error - unexpected end of input")
	}
	return domain.NewValidationError("non_field_errors", "JSON parse error - invalid request body")
}

func typeMessage(kind reflect.Kind, got string) string {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.String:
		return "Not a valid string."
	case reflect.Bool:
		return "Must be a valid boolean."
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("Expected a list of items but got type %q.", got)
	}
	return "Invalid value."
}

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}
