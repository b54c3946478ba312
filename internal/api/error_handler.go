package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fittrack/training-api/internal/api/metrics"
	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/infrastructure/logsink"
	"github.com/fittrack/training-api/internal/pkg/i18n"
)

// errorResponse is the canonical envelope for all error responses.
// Details is present only for validation failures.
type errorResponse struct {
	Data    struct{}           `json:"data"`
	Message string             `json:"message"`
	Details []domain.FieldError `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns the single terminal error handler:
//   - *domain.AppError renders its own status and message; 5xx statuses
//     get a generic localized message instead, never the internal detail.
//   - echo's own errors (router 404, bind failures) pass through with
//     their code.
//   - anything else is an unexpected failure: 500 with a generic
//     localized message.
//
// Only server-class (5xx) failures are logged and appended to the durable
// error-log sink; client errors are never persisted.
func NewHTTPErrorHandler(log zerolog.Logger, bundle *i18n.Bundle, sink *logsink.Sink) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		lang := c.Request().Header.Get("language")
		status, resp := resolveError(err, lang, bundle)

		metrics.HTTPErrorsTotal.WithLabelValues(strconv.Itoa(status)).Inc()

		if status >= http.StatusInternalServerError {
			now := time.Now()
			detail := serverDetail(err)

			log.Error().
				Int("status", status).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg(detail)

			if sink != nil {
				if appendErr := sink.Append(now, status, detail); appendErr != nil {
					log.Error().Err(appendErr).Msg("error log append failed")
				}
			}
		}

		_ = c.JSON(status, resp)
	}
}

func resolveError(err error, lang string, bundle *i18n.Bundle) (int, errorResponse) {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case domain.KindAuth, domain.KindNotFound, domain.KindConflict:
			return appErr.Status, errorResponse{Message: appErr.Message}
		case domain.KindValidation:
			return appErr.Status, errorResponse{Message: appErr.Message, Details: appErr.Details}
		case domain.KindUnexpected:
			return appErr.Status, errorResponse{Message: bundle.Message(lang, i18n.KeyInternalServerError)}
		}
		// Unknown kind is a programming defect; treat as server-class.
		return http.StatusInternalServerError, errorResponse{Message: bundle.Message(lang, i18n.KeyInternalServerError)}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			return httpErr.Code, errorResponse{Message: bundle.Message(lang, i18n.KeyInternalServerError)}
		}
		return httpErr.Code, errorResponse{Message: fmt.Sprintf("%v", httpErr.Message)}
	}

	return http.StatusInternalServerError, errorResponse{Message: bundle.Message(lang, i18n.KeyUnexpectedError)}
}

// serverDetail is what gets logged and persisted for 5xx failures: the
// wrapped cause when present, the error text otherwise.
func serverDetail(err error) string {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		if cause := appErr.Unwrap(); cause != nil {
			return cause.Error()
		}
	}
	return err.Error()
}
