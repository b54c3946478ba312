package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fittrack/training-api/internal/core/ports"
)

// envelope is the uniform success response: {data, message}.
type envelope struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// pagedEnvelope extends the envelope with pagination metadata for list
// endpoints.
type pagedEnvelope struct {
	Data       any              `json:"data"`
	Pagination ports.Pagination `json:"pagination"`
	Message    string           `json:"message"`
}

func respond(c echo.Context, status int, data any, message string) error {
	if data == nil {
		data = struct{}{}
	}
	return c.JSON(status, envelope{Data: data, Message: message})
}
