package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/langschool/contentapi/internal/auth"
	"github.com/langschool/contentapi/internal/dto"
	"github.com/langschool/contentapi/internal/services"
)

// ProgressController records learner progress. Learners see and write only
// their own rows; administrators may act for anyone.
type ProgressController struct {
	progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{progress: progress}
}

// Record handles POST /api/UserProgress
func (pc *ProgressController) Record(c *gin.Context) {
	var req dto.CreateUserProgressRequest
	if !bindJSON(c, &req) {
		return
	}
	row, err := pc.progress.Record(c.Request.Context(), auth.GetActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, row)
}

// Get handles GET /api/UserProgress/:id
func (pc *ProgressController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	row, err := pc.progress.Get(c.Request.Context(), auth.GetActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// Delete handles DELETE /api/UserProgress/:id
func (pc *ProgressController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := pc.progress.Delete(c.Request.Context(), auth.GetActor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ForUser handles GET /api/UserProgress/user/:userId
func (pc *ProgressController) ForUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	rows, err := pc.progress.ForUser(c.Request.Context(), auth.GetActor(c), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, rows)
}

// RecordWord handles POST /api/UserProgress/words
func (pc *ProgressController) RecordWord(c *gin.Context) {
	var req dto.RecordWordAnswerRequest
	if !bindJSON(c, &req) {
		return
	}
	row, err := pc.progress.RecordWordAnswer(c.Request.Context(), auth.GetActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// WordsForUser handles GET /api/UserProgress/user/:userId/words
func (pc *ProgressController) WordsForUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	rows, err := pc.progress.WordsForUser(c.Request.Context(), auth.GetActor(c), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondList(c, rows)
}
