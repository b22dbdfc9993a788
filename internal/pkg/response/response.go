// Package response writes the JSON envelope shared by every endpoint:
// {"status": <http status>, "message": <text>, "data": <payload>}.
package response

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
)

type Envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

const (
	MessageOK                  = "ok"
	MessageInternalServerError = "internal server error"
)

func Success(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data)
}

func Error(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data)
}

func write(c fiber.Ctx, status int, message string, data interface{}) error {
	if status < 100 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = DefaultMessage(status)
	}
	return c.Status(status).JSON(Envelope{Status: status, Message: message, Data: data})
}

// DefaultMessage is the lower-cased reason phrase of status, "ok" for 200.
func DefaultMessage(status int) string {
	if status == fiber.StatusOK {
		return MessageOK
	}
	if text := http.StatusText(status); text != "" {
		return strings.ToLower(text)
	}
	return "error"
}
