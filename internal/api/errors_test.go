package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/DanielaCaiceros/innataStudio-sub001/internal/apperrors"
	"github.com/DanielaCaiceros/innataStudio-sub001/internal/logger"
)

func TestRenderError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Init()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"validation maps to 400", apperrors.ErrWrongWeek, http.StatusBadRequest, "wrong_week"},
		{"conflict maps to 409", apperrors.ErrDuplicateWeek, http.StatusConflict, "duplicate_week"},
		{"not found maps to 404", apperrors.ErrNotFound, http.StatusNotFound, "not_found"},
		{"not applicable maps to 422", apperrors.ErrNotUnlimitedWeek, http.StatusUnprocessableEntity, "not_unlimited_week"},
		{"unknown maps to 500 and hides cause", errors.New("pq: relation missing"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/test", nil)

			RenderError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
