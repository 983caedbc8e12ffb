package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness for load balancers and orchestration probes.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
