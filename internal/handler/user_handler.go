package handler

import (
	"errors"
	"net/http"

	"gridboard/internal/service"
	"gridboard/internal/validation"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc     service.BoardServiceInterface
	queries service.BoardQueriesInterface
}

func NewUserHandler(svc service.BoardServiceInterface, queries service.BoardQueriesInterface) *UserHandler {
	return &UserHandler{
		svc:     svc,
		queries: queries,
	}
}

// GetBoards lists the named user's boards, newest write first.
func (h *UserHandler) GetBoards(c *gin.Context) {
	name, err := validation.UserName(c.Param("name"))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadParam, err.Error())
		return
	}

	result, err := h.queries.ListForUser(c.Request.Context(), name)
	if errors.Is(err, service.ErrUserNotFound) {
		respondError(c, http.StatusNotFound, CodeNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, CodeInternal, "Failed to retrieve boards")
		return
	}
	respondOK(c, gin.H{
		"userName": result.UserName,
		"boards":   result.Boards,
	})
}

// DeleteBoards removes every board the named user owns. The user row itself
// is kept; a later GET resolves the user with an empty boards list.
func (h *UserHandler) DeleteBoards(c *gin.Context) {
	name, err := validation.UserName(c.Param("name"))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadParam, err.Error())
		return
	}

	err = h.svc.DeleteAllForUser(c.Request.Context(), name)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		respondError(c, http.StatusNotFound, CodeNotFound, "User not found")
	case err != nil:
		respondError(c, http.StatusInternalServerError, CodeInternal, "Failed to delete boards")
	default:
		respondOK(c, gin.H{})
	}
}
