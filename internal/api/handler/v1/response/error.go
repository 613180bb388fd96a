package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

// Err is the uniform error envelope. Fields carries per-field validation
// violations when the failure came from request validation.
type Err struct {
	StatusCode int               `json:"-"`
	Message    string            `json:"error"`
	Fields     map[string]string `json:"fields,omitempty"`
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}

// ErrBadRequest maps malformed input to 400. Ozzo validation errors are
// unpacked into the field-violation map.
func ErrBadRequest(err error) *Err {
	out := &Err{
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
	}

	var violations validation.Errors
	if errors, ok := err.(validation.Errors); ok {
		violations = errors
	}
	if len(violations) > 0 {
		out.Message = "validation failed"
		out.Fields = make(map[string]string, len(violations))
		for field, fieldErr := range violations {
			out.Fields[field] = fieldErr.Error()
		}
	}

	return out
}

// ErrUnauthorized is the single response for a missing, malformed or invalid
// bearer token; callers cannot distinguish which.
func ErrUnauthorized() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    "invalid or missing token",
	}
}

func ErrWrongCredentials() *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    "invalid email or password",
	}
}

func ErrForbidden() *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Message:    "admin access required",
	}
}

func ErrNotFound(resource string) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Message:    resource + " not found",
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		StatusCode: http.StatusConflict,
		Message:    err.Error(),
	}
}

// ErrInternalServerError logs the wrapped cause server-side and returns a
// generic message, never the internals.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    "something went wrong",
	}
}
