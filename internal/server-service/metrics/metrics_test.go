package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObservePing(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObservePing(PingResultUp, 10*time.Millisecond)
	m.ObservePing(PingResultUp, 20*time.Millisecond)
	m.ObservePing(PingResultError, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PingResults.WithLabelValues(PingResultUp)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.PingResults.WithLabelValues(PingResultDown)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PingResults.WithLabelValues(PingResultError)))
}

func TestMetrics_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/servers/:id", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/servers/1", nil)
		r.ServeHTTP(w, req)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/servers/:id", "404")))
}

func TestHandler(t *testing.T) {
	reg := NewRegistry()
	m := NewMetrics(reg)
	m.ObservePing(PingResultDown, time.Second)

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `server_manager_ping_results_total{result="down"} 1`)
}
