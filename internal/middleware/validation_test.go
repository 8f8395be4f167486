package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campushub/internal/app/models/dto"
)

func postJSON(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/", handler, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestValidateBodyAcceptsPlanRequestWithoutName(t *testing.T) {
	rec := postJSON(t, ValidateBody[dto.GenerateStudyPlanRequest](), `{"courseId": 1}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestValidateBodyRejectsMalformedJSON(t *testing.T) {
	rec := postJSON(t, ValidateBody[dto.GenerateStudyPlanRequest](), `{"courseId": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateBodyRejectsMissingRequiredField(t *testing.T) {
	rec := postJSON(t, ValidateBody[dto.UpdateStudyTaskRequest](), `{"actualHours": 2.5}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), string(dto.ErrorCodeValidationFailed))
}
