package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleHealth godoc
// @Summary Health check
// @Description Returns OK when the service is up.
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func handleHealth(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
