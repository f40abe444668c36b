package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/geo_risk_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestObserveAssessment(t *testing.T) {
	rec := New()

	rec.ObserveAssessment(models.RiskHigh)
	rec.ObserveAssessment(models.RiskHigh)
	rec.ObserveAssessment(models.RiskLow)

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.assessmentsTotal.WithLabelValues("HIGH")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.assessmentsTotal.WithLabelValues("LOW")))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.assessmentsTotal.WithLabelValues("MODERATE")))
}

func TestSetMountedViews(t *testing.T) {
	rec := New()

	rec.SetMountedViews(3)

	assert.Equal(t, 3.0, testutil.ToFloat64(rec.viewsMounted))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := New()
	router := gin.New()
	router.Use(rec.Middleware())
	router.GET("/views/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", rec.Handler())

	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/views/"+id, nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.httpRequestsTotal.WithLabelValues("GET", "/views/:id", "200")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "georisk_http_requests_total")
}
