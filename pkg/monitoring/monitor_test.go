package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAttemptResult(t *testing.T) {
	yes, no := true, false
	assert.Equal(t, "review", AttemptResult(nil))
	assert.Equal(t, "correct", AttemptResult(&yes))
	assert.Equal(t, "incorrect", AttemptResult(&no))
}

func TestMetricsMiddlewareCountsByRoute(t *testing.T) {
	Init()
	Init()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/api/questions", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	before := testutil.ToFloat64(RequestCounter.WithLabelValues(http.MethodGet, "/api/questions", "404"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/questions", nil))
	after := testutil.ToFloat64(RequestCounter.WithLabelValues(http.MethodGet, "/api/questions", "404"))

	assert.Equal(t, before+1, after)
}
