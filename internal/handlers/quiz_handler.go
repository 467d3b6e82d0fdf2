package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"adaptive-quiz-service/internal/models"
	"adaptive-quiz-service/internal/service"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

// GenerateBank creates a question bank. The request either carries
// already-generated question drafts or asks the generator collaborator to
// produce them from the indexed corpus.
func (h *QuizHandler) GenerateBank(c *gin.Context) {
	var req struct {
		Questions    []models.QuestionDraft `json:"questions"`
		NumQuestions int                    `json:"num_questions"`
		Topic        string                 `json:"topic"`
		DocumentID   string                 `json:"document_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	var (
		result *models.BankResult
		err    error
	)
	if len(req.Questions) > 0 {
		result, err = h.Service.GenerateBank(c.Request.Context(), req.Questions)
	} else {
		if req.NumQuestions == 0 {
			req.NumQuestions = 50
		}
		result, err = h.Service.GenerateBankFromCorpus(c.Request.Context(), req.NumQuestions, req.Topic, req.DocumentID)
	}
	if err != nil {
		if errors.Is(err, service.ErrGenerationFailed) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// BankInfo reports a stored bank's difficulty composition.
func (h *QuizHandler) BankInfo(c *gin.Context) {
	info, err := h.Service.BankInfo(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}
