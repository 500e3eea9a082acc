package httperr

import (
	"net/http"

	"lending-core/internal/domain/availability"
	"lending-core/internal/pkg/errs"
	"lending-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// ConflictDetail is the body detail of a 409.
type ConflictDetail struct {
	Conflicts []queries.ConflictView `json:"conflicts"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps err by its failure kind. Conflicts carry the blocking holdings;
// unknown errors are hidden behind a 500.
func Abort(c *gin.Context, err error) {
	var conflictErr *availability.ConflictError
	if errs.As(err, &conflictErr) {
		AbortWithError(c, http.StatusConflict, err, conflictErr.Error(),
			ConflictDetail{Conflicts: queries.NewConflictViews(conflictErr.Conflicts)})
		return
	}

	switch errs.KindOf(err) {
	case errs.ErrValidation:
		AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.ErrNotFound:
		AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errs.ErrUnauthorized:
		AbortWithError(c, http.StatusForbidden, err, err.Error(), nil)
	case errs.ErrConflict:
		AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// Warnings renders non-fatal errors for a success body.
func Warnings(warnings []error) []string {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, w.Error())
	}
	return out
}
