package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/qlkp/reciclaje-api/internal/infrastructure/metrics"
)

// MetricsMiddleware registra contador y latencia por ruta. Usa la plantilla de
// la ruta (/api/materials/:id) y no el path crudo para acotar la cardinalidad.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path
		method := c.Method()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		metrics.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		metrics.HTTPDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		return err
	}
}
