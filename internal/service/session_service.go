package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"adaptive-quiz-service/internal/adaptive"
	"adaptive-quiz-service/internal/models"
	"adaptive-quiz-service/internal/repository"
	"adaptive-quiz-service/internal/selection"
)

// SessionService drives quiz sessions: it grades answers, asks the adaptive
// manager for the next difficulty and the selector for the next question, and
// keeps the session's bookkeeping consistent. Thompson Sampling is the
// default-active auxiliary agent.
const useThompsonSampling = true

type SessionService struct {
	Sessions *repository.SessionRepository
	Banks    *repository.BankRepository

	adaptiveManager *adaptive.Manager
	selector        *selection.Selector
	log             *slog.Logger
}

func NewSessionService(
	sessions *repository.SessionRepository,
	banks *repository.BankRepository,
	manager *adaptive.Manager,
	selector *selection.Selector,
	log *slog.Logger,
) *SessionService {
	if manager == nil {
		manager = adaptive.NewManager(nil, nil, log)
	}
	if selector == nil {
		selector = selection.NewSelector(nil)
	}
	if log == nil {
		log = slog.Default()
	}
	return &SessionService{
		Sessions:        sessions,
		Banks:           banks,
		adaptiveManager: manager,
		selector:        selector,
		log:             log,
	}
}

// StartQuiz creates a session against a stored bank, seeded at medium
// difficulty, and draws the first question. A non-positive target count or an
// empty bank completes the session immediately.
func (s *SessionService) StartQuiz(quizID string, targetCount int) (*models.StartResult, error) {
	bank, err := s.Banks.FindByID(quizID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBankNotFound, quizID)
	}

	session := models.NewQuizSession(uuid.NewString(), quizID, targetCount)

	var first *models.Question
	if targetCount <= 0 {
		session.IsComplete = true
	} else {
		first = s.selector.Next(bank, session.CurrentDifficulty, nil)
		if first == nil {
			session.IsComplete = true
		} else {
			session.MarkServed(first.ID)
		}
	}

	s.Sessions.Create(session)

	s.log.Info("started quiz session",
		"session_id", session.ID,
		"quiz_id", quizID,
		"num_questions", targetCount,
	)
	return &models.StartResult{
		Question:          first,
		SessionID:         session.ID,
		CurrentDifficulty: session.CurrentDifficulty,
	}, nil
}

// SubmitAnswer grades one answer and advances the session: record the
// outcome, update the learning agents, step the difficulty, and draw the next
// question. The session's lock is held for the whole mutation.
func (s *SessionService) SubmitAnswer(sessionID, questionID, answer string) (*models.AnswerResult, error) {
	var result *models.AnswerResult

	err := s.Sessions.Update(sessionID, func(session *models.QuizSession) error {
		if session.IsComplete {
			return ErrSessionComplete
		}

		bank, err := s.Banks.FindByID(session.QuizID)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrBankNotFound, session.QuizID)
		}
		question := bank.FindQuestion(questionID)
		if question == nil {
			return fmt.Errorf("%w: %s", ErrQuestionNotFound, questionID)
		}

		isCorrect := question.Grade(answer)

		// Reward uses the difficulty the question was served at, which
		// is the session's difficulty before it advances below.
		servedDifficulty := session.CurrentDifficulty
		reward := s.adaptiveManager.Reward(isCorrect, servedDifficulty)

		session.Answers = append(session.Answers, models.AnswerRecord{
			QuestionID:       questionID,
			SubmittedAnswer:  answer,
			IsCorrect:        isCorrect,
			DifficultyAtTime: servedDifficulty,
			Reward:           reward,
		})
		session.PushOutcome(isCorrect)
		session.QuestionsAnswered++
		session.TotalReward += reward
		if isCorrect {
			session.CorrectAnswers++
		}

		trend := s.adaptiveManager.PerformanceTrend(session.History)
		s.adaptiveManager.UpdateLearning(servedDifficulty, servedDifficulty, trend, reward, useThompsonSampling)

		isComplete := session.QuestionsAnswered >= session.TargetCount

		var nextQuestion *models.Question
		var nextDifficulty *adaptive.DifficultyLevel
		if !isComplete {
			next := s.adaptiveManager.SelectNextDifficulty(servedDifficulty, trend, isCorrect, useThompsonSampling)
			session.CurrentDifficulty = next

			nextQuestion = s.selector.Next(bank, next, session.ServedSet())
			if nextQuestion == nil {
				// Bank exhausted: the session ends early.
				isComplete = true
			} else {
				session.MarkServed(nextQuestion.ID)
				nextDifficulty = &next
			}
		}
		if isComplete {
			session.IsComplete = true
		}

		result = &models.AnswerResult{
			IsCorrect:      isCorrect,
			CorrectAnswer:  question.CorrectAnswer,
			Explanation:    question.Explanation,
			Reward:         reward,
			NextQuestion:   nextQuestion,
			NextDifficulty: nextDifficulty,
			IsComplete:     isComplete,
			Stats:          s.statsLocked(session),
		}

		s.log.Info("answer submitted",
			"session_id", sessionID,
			"question_id", questionID,
			"is_correct", isCorrect,
			"reward", reward,
			"trend", trend,
			"is_complete", isComplete,
		)
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
		}
		return nil, err
	}
	return result, nil
}

// GetStats reports the session's aggregate statistics.
func (s *SessionService) GetStats(sessionID string) (*models.SessionStats, error) {
	var stats models.SessionStats
	err := s.Sessions.View(sessionID, func(session *models.QuizSession) {
		stats = s.statsLocked(session)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return &stats, nil
}

// GetSession returns a copy of the session's current state.
func (s *SessionService) GetSession(sessionID string) (*models.QuizSession, error) {
	var snapshot models.QuizSession
	err := s.Sessions.View(sessionID, func(session *models.QuizSession) {
		snapshot = *session
		snapshot.Answers = append([]models.AnswerRecord(nil), session.Answers...)
		snapshot.History = append([]bool(nil), session.History...)
		snapshot.ServedIDs = append([]string(nil), session.ServedIDs...)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return &snapshot, nil
}

// LearningStats snapshots the adaptive agents' learned state.
func (s *SessionService) LearningStats() adaptive.LearningStats {
	return s.adaptiveManager.LearningStats()
}

// statsLocked computes statistics for a session whose lock is held.
func (s *SessionService) statsLocked(session *models.QuizSession) models.SessionStats {
	accuracy := 0.0
	if session.QuestionsAnswered > 0 {
		accuracy = float64(session.CorrectAnswers) / float64(session.QuestionsAnswered) * 100
	}

	distribution := make(map[adaptive.DifficultyLevel]int, 3)
	for _, ans := range session.Answers {
		distribution[ans.DifficultyAtTime]++
	}

	return models.SessionStats{
		TotalQuestions:         session.TargetCount,
		QuestionsAnswered:      session.QuestionsAnswered,
		CorrectAnswers:         session.CorrectAnswers,
		Accuracy:               round2(accuracy),
		TotalReward:            round2(session.TotalReward),
		DifficultyDistribution: distribution,
		PerformanceTrend:       s.adaptiveManager.PerformanceTrend(session.History),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
