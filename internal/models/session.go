package models

import (
	"time"

	"adaptive-quiz-service/internal/adaptive"
)

// HistoryLimit bounds the rolling correctness window kept per session. The
// trend calculation only ever inspects the most recent few outcomes.
const HistoryLimit = 10

// AnswerRecord is one submitted answer. Appended, never mutated, ordered by
// submission time.
type AnswerRecord struct {
	QuestionID       string                   `json:"question_id"`
	SubmittedAnswer  string                   `json:"submitted_answer"`
	IsCorrect        bool                     `json:"is_correct"`
	DifficultyAtTime adaptive.DifficultyLevel `json:"difficulty_at_time"`
	Reward           float64                  `json:"reward"`
}

// QuizSession is one learner's attempt at a quiz drawn from a bank. All
// mutation is serialized by the session store's per-session lock.
type QuizSession struct {
	ID                string                   `json:"session_id"`
	QuizID            string                   `json:"quiz_id"`
	TargetCount       int                      `json:"num_questions"`
	QuestionsAnswered int                      `json:"questions_answered"`
	CorrectAnswers    int                      `json:"correct_answers"`
	Answers           []AnswerRecord           `json:"answers"`
	History           []bool                   `json:"performance_history"`
	ServedIDs         []string                 `json:"served_question_ids"`
	CurrentDifficulty adaptive.DifficultyLevel `json:"current_difficulty"`
	TotalReward       float64                  `json:"total_reward"`
	StartedAt         time.Time                `json:"started_at"`
	IsComplete        bool                     `json:"is_complete"`
}

// NewQuizSession creates a session seeded at medium difficulty.
func NewQuizSession(id, quizID string, targetCount int) *QuizSession {
	return &QuizSession{
		ID:                id,
		QuizID:            quizID,
		TargetCount:       targetCount,
		Answers:           []AnswerRecord{},
		History:           []bool{},
		ServedIDs:         []string{},
		CurrentDifficulty: adaptive.DifficultyMedium,
		StartedAt:         time.Now(),
	}
}

// PushOutcome appends a correctness outcome to the rolling history, trimming
// it to HistoryLimit.
func (s *QuizSession) PushOutcome(correct bool) {
	s.History = append(s.History, correct)
	if len(s.History) > HistoryLimit {
		s.History = s.History[len(s.History)-HistoryLimit:]
	}
}

// MarkServed records a question id as served so it is never drawn again in
// this session.
func (s *QuizSession) MarkServed(questionID string) {
	s.ServedIDs = append(s.ServedIDs, questionID)
}

// ServedSet returns the served ids as a lookup set.
func (s *QuizSession) ServedSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.ServedIDs))
	for _, id := range s.ServedIDs {
		set[id] = struct{}{}
	}
	return set
}
