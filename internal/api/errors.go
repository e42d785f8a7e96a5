package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/logger"
)

// RenderError writes err as a JSON error response, choosing the HTTP status
// from the error's kind. Taxonomy errors keep their message; anything else is
// hidden behind a generic 500.
func RenderError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	code := apperrors.CodeOf(err)

	status := statusForKind(kind)
	if status == http.StatusInternalServerError {
		logger.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(status, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(status, ErrorResponse{Error: err.Error(), Code: string(code)})
}

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case apperrors.KindNotApplicable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
