package handler

import (
	"errors"
	"net/http"

	"gridboard/internal/service"
	"gridboard/internal/validation"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	svc     service.BoardServiceInterface
	queries service.BoardQueriesInterface
}

func NewBoardHandler(svc service.BoardServiceInterface, queries service.BoardQueriesInterface) *BoardHandler {
	return &BoardHandler{
		svc:     svc,
		queries: queries,
	}
}

// GetAll lists every board as a summary projection, newest write first.
func (h *BoardHandler) GetAll(c *gin.Context) {
	boards, err := h.queries.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, CodeInternal, "Failed to retrieve boards")
		return
	}
	respondOK(c, gin.H{"boards": boards})
}

// Create is the upsert endpoint: a board is identified by (userName,
// boardName), never by a client-supplied id. isCreate reports which branch
// was taken.
func (h *BoardHandler) Create(c *gin.Context) {
	state, name, userName, ok := bindBoardPayload(c)
	if !ok {
		return
	}

	created, err := h.svc.CreateOrUpdate(c.Request.Context(), state, name, userName)
	if err != nil {
		respondError(c, http.StatusInternalServerError, CodeInternal, "Failed to save board")
		return
	}
	respondOK(c, gin.H{"isCreate": created})
}

// GetByID returns the detail projection, including the full 2500-character
// state.
func (h *BoardHandler) GetByID(c *gin.Context) {
	id, err := validation.ID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadParam, err.Error())
		return
	}

	detail, err := h.queries.Detail(c.Request.Context(), id)
	if errors.Is(err, service.ErrBoardNotFound) {
		respondError(c, http.StatusNotFound, CodeNotFound, "Board not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, CodeInternal, "Failed to retrieve board")
		return
	}
	respondOK(c, gin.H{
		"board":     detail.Board,
		"boardName": detail.BoardName,
		"userName":  detail.UserName,
	})
}

// Update replaces a board's owner, name and state. A collision with a
// different board of the target user is a conflict, not an overwrite.
func (h *BoardHandler) Update(c *gin.Context) {
	id, err := validation.ID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadParam, err.Error())
		return
	}

	state, name, userName, ok := bindBoardPayload(c)
	if !ok {
		return
	}

	err = h.svc.Replace(c.Request.Context(), id, state, name, userName)
	switch {
	case errors.Is(err, service.ErrBoardNotFound):
		respondError(c, http.StatusNotFound, CodeNotFound, "Board not found")
	case errors.Is(err, service.ErrNameConflict):
		respondError(c, http.StatusBadRequest, CodeConflict, "Unique constraint failed")
	case err != nil:
		respondError(c, http.StatusInternalServerError, CodeInternal, "Failed to update board")
	default:
		respondOK(c, gin.H{})
	}
}

func (h *BoardHandler) Delete(c *gin.Context) {
	id, err := validation.ID(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadParam, err.Error())
		return
	}

	err = h.svc.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrBoardNotFound):
		respondError(c, http.StatusNotFound, CodeNotFound, "Board not found")
	case err != nil:
		respondError(c, http.StatusInternalServerError, CodeInternal, "Failed to delete board")
	default:
		respondOK(c, gin.H{})
	}
}

// bindBoardPayload decodes and validates the shared write payload. On failure
// the 400 response has already been written.
func bindBoardPayload(c *gin.Context) (state, name, userName string, ok bool) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, CodeBadParam, "Bad request body")
		return "", "", "", false
	}

	state, name, userName, err := validation.BoardPayload(body)
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadParam, err.Error())
		return "", "", "", false
	}
	return state, name, userName, true
}
