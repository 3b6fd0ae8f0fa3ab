package apperr

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ErrorResponse is the error envelope returned by every endpoint.
type ErrorResponse struct {
	Error struct {
		Code    string       `json:"code"`
		Message string       `json:"message"`
		Details []FieldError `json:"details,omitempty"`
	} `json:"error"`
}

// Respond writes err to the client. Internal failures are logged and replaced
// with a generic message so storage detail never leaks.
func Respond(c *gin.Context, logger *zap.SugaredLogger, err error) {
	appErr, ok := As(err)
	if !ok || appErr.Kind == KindInternal {
		logger.Errorw("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		write(c, ErrInternal, nil)
		return
	}
	write(c, appErr, nil)
}

// Abort writes a classified error without logging it.
func Abort(c *gin.Context, appErr *Error) {
	write(c, appErr, nil)
}

// RespondBindError answers a request whose body or parameters failed to bind.
func RespondBindError(c *gin.Context, err error) {
	write(c, ErrInvalidRequest, fieldErrors(err))
}

func write(c *gin.Context, appErr *Error, details []FieldError) {
	resp := ErrorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	resp.Error.Details = details
	c.AbortWithStatusJSON(appErr.Kind.Status(), resp)
}

func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Field:  strings.ToLower(fe.Field()),
			Reason: reason(fe),
		})
	}
	return details
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "uuid":
		return "must be a valid id"
	default:
		return "is invalid"
	}
}
