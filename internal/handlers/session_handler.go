package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"adaptive-quiz-service/internal/service"
)

type SessionHandler struct {
	Service *service.SessionService
}

func NewSessionHandler(s *service.SessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

// StartQuiz starts an adaptive quiz session against a generated bank.
func (h *SessionHandler) StartQuiz(c *gin.Context) {
	var req struct {
		QuizID       string `json:"quiz_id" binding:"required"`
		NumQuestions int    `json:"num_questions" binding:"omitempty,min=5,max=10"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	if req.NumQuestions == 0 {
		req.NumQuestions = 10
	}

	result, err := h.Service.StartQuiz(req.QuizID, req.NumQuestions)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SubmitAnswer grades an answer and returns the next question.
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	var req struct {
		SessionID  string `json:"session_id" binding:"required"`
		QuestionID string `json:"question_id" binding:"required"`
		// Answer is not required: a blank submission grades as incorrect.
		Answer string `json:"answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid answer format",
			"details": err.Error(),
		})
		return
	}

	result, err := h.Service.SubmitAnswer(req.SessionID, req.QuestionID, req.Answer)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetSession returns a snapshot of the session state.
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetStats returns the session's aggregate statistics.
func (h *SessionHandler) GetStats(c *gin.Context) {
	stats, err := h.Service.GetStats(c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// LearningStats exposes the adaptive agents' learned state for analysis.
func (h *SessionHandler) LearningStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.LearningStats())
}

func (h *SessionHandler) renderError(c *gin.Context, err error) {
	switch {
	case service.NotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSessionComplete):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
