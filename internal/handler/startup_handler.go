package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Startup is a plain-text liveness probe.
func Startup(c *gin.Context) {
	c.String(http.StatusOK, "The board service is up and running. Go ahead!")
}
