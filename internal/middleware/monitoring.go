package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loja_http_requests_total",
			Help: "Total de requisições HTTP",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "loja_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	pedidoOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loja_pedido_operations_total",
			Help: "Total de operações sobre pedidos",
		},
		[]string{"operation", "status"},
	)
)

// Prometheus coleta métricas de requisição por rota.
func Prometheus() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
	}
}

// RecordPedidoOperation registra o desfecho de uma operação sobre pedidos.
func RecordPedidoOperation(operation string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	pedidoOperations.WithLabelValues(operation, status).Inc()
}
