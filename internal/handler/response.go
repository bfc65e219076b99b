package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Wire error codes. Success responses always carry error = 0; failures carry
// the code plus a human-readable msg. These are part of the client contract.
const (
	CodeOK        = 0
	CodeNotFound  = 1  // board or user does not exist
	CodeBadParam  = -1 // malformed, missing or out-of-range field
	CodeConflict  = -2 // per-owner board-name uniqueness violated
	CodeBadMethod = -3 // unsupported verb on a known path
	CodeInternal  = -4 // storage or other unexpected failure
)

// respondOK sends {"error": 0, ...data}.
func respondOK(c *gin.Context, data gin.H) {
	payload := gin.H{"error": CodeOK}
	for k, v := range data {
		payload[k] = v
	}
	c.JSON(http.StatusOK, payload)
}

// respondError sends {"error": code, "msg": message} with the given status.
func respondError(c *gin.Context, status, code int, msg string) {
	c.JSON(status, gin.H{"error": code, "msg": msg})
}

// BadMethod is the NoMethod handler for verbs the routing table does not map.
func BadMethod(c *gin.Context) {
	respondError(c, http.StatusMethodNotAllowed, CodeBadMethod, "Bad method")
}

// NotFound is the NoRoute handler.
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, CodeNotFound, "Not found")
}
