package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adaptive-quiz-service/internal/models"
	"adaptive-quiz-service/internal/repository"
	"adaptive-quiz-service/internal/selection"
)

// BankGenerator is the external LLM collaborator that produces question
// drafts from an indexed content corpus. Generation is the one long-running
// external call in this service; the generator owns its own timeout policy.
type BankGenerator interface {
	GenerateQuestionBank(ctx context.Context, numQuestions int, topic, documentID string) ([]models.QuestionDraft, error)
}

// QuizService owns question bank creation and lookup.
type QuizService struct {
	Banks     *repository.BankRepository
	Generator BankGenerator

	log *slog.Logger
}

func NewQuizService(banks *repository.BankRepository, generator BankGenerator, log *slog.Logger) *QuizService {
	if log == nil {
		log = slog.Default()
	}
	return &QuizService{Banks: banks, Generator: generator, log: log}
}

// GenerateBank stores a bank built from already-generated drafts. Malformed
// drafts are defensively defaulted rather than rejected, and flagged in the
// log for observability.
func (s *QuizService) GenerateBank(ctx context.Context, drafts []models.QuestionDraft) (*models.BankResult, error) {
	if len(drafts) == 0 {
		return nil, fmt.Errorf("%w: empty question bank", ErrGenerationFailed)
	}

	questions := make([]models.Question, 0, len(drafts))
	for i, draft := range drafts {
		q, defaulted := draft.Sanitize(i)
		if defaulted {
			s.log.Warn("malformed question draft defaulted",
				"question_id", q.ID,
				"index", i,
			)
		}
		questions = append(questions, q)
	}

	bank := &models.QuestionBank{
		ID:        uuid.NewString(),
		Questions: questions,
		CreatedAt: time.Now(),
	}
	s.Banks.Save(bank)

	s.log.Info("generated question bank",
		"quiz_id", bank.ID,
		"questions", len(bank.Questions),
	)
	return &models.BankResult{QuestionBank: bank.Questions, QuizID: bank.ID}, nil
}

// GenerateBankFromCorpus asks the generator collaborator for drafts and
// stores the resulting bank.
func (s *QuizService) GenerateBankFromCorpus(ctx context.Context, numQuestions int, topic, documentID string) (*models.BankResult, error) {
	if s.Generator == nil {
		return nil, fmt.Errorf("%w: no generator configured", ErrGenerationFailed)
	}

	drafts, err := s.Generator.GenerateQuestionBank(ctx, numQuestions, topic, documentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return s.GenerateBank(ctx, drafts)
}

// BankInfo summarizes a stored bank's difficulty composition.
func (s *QuizService) BankInfo(quizID string) (*models.BankInfo, error) {
	bank, err := s.Banks.FindByID(quizID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBankNotFound, quizID)
	}
	return &models.BankInfo{
		QuizID:                 bank.ID,
		TotalQuestions:         len(bank.Questions),
		DifficultyDistribution: selection.Distribution(bank),
	}, nil
}
