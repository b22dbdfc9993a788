package middleware

import (
	"errors"
	"fmt"
	"log"

	"jobhunt/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError is what handlers return; the error middleware renders it as the
// response envelope. Message and Data of 5xx errors never reach the client.
type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered | rid=%s path=%s err=%v", c.GetRespHeader(HeaderRequestID), c.Path(), r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		appErr := toAppError(err)
		if appErr.StatusCode >= fiber.StatusInternalServerError {
			m.logger.Printf("HTTP error | rid=%s path=%s status=%d err=%v", c.GetRespHeader(HeaderRequestID), c.Path(), appErr.StatusCode, err)
			return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
		}
		return response.Error(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}
}

// toAppError normalises handler errors. Fiber errors keep their code and
// message; anything else is a 500.
func toAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.StatusCode > 0 {
		return appErr
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code > 0 {
		return &AppError{StatusCode: fiberErr.Code, Message: fiberErr.Message, Cause: err}
	}

	return &AppError{StatusCode: fiber.StatusInternalServerError, Cause: fmt.Errorf("unhandled: %w", err)}
}
