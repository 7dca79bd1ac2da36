package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"job-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	render := func(setID bool, write func(c *gin.Context)) Response {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if setID {
			c.Set(string(domain.KeyRequestID), "req-42")
		}
		write(c)

		var body Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return body
	}

	t.Run("Should echo the request id on success", func(t *testing.T) {
		body := render(true, func(c *gin.Context) { Success(c, http.StatusOK, "ok", gin.H{"n": 1}) })
		assert.True(t, body.Success)
		assert.Equal(t, "req-42", body.RequestID)
		assert.Nil(t, body.Error)
	})

	t.Run("Should echo the request id on error", func(t *testing.T) {
		body := render(true, func(c *gin.Context) { Error(c, http.StatusNotFound, "Post not found", nil) })
		assert.False(t, body.Success)
		assert.Equal(t, "Post not found", body.Message)
		assert.Equal(t, "req-42", body.RequestID)
	})

	t.Run("Should leave the id empty without the middleware", func(t *testing.T) {
		body := render(false, func(c *gin.Context) { Success(c, http.StatusOK, "ok", nil) })
		assert.Empty(t, body.RequestID)
	})
}
