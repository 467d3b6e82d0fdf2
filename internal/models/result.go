package models

import "adaptive-quiz-service/internal/adaptive"

// SessionStats are the aggregate statistics a session exposes at any point.
type SessionStats struct {
	TotalQuestions         int                              `json:"total_questions"`
	QuestionsAnswered      int                              `json:"questions_answered"`
	CorrectAnswers         int                              `json:"correct_answers"`
	Accuracy               float64                          `json:"accuracy"`
	TotalReward            float64                          `json:"total_reward"`
	DifficultyDistribution map[adaptive.DifficultyLevel]int `json:"difficulty_distribution"`
	PerformanceTrend       adaptive.Trend                   `json:"performance_trend"`
}

// AnswerResult is returned by every answer submission.
type AnswerResult struct {
	IsCorrect      bool                      `json:"is_correct"`
	CorrectAnswer  string                    `json:"correct_answer"`
	Explanation    string                    `json:"explanation"`
	Reward         float64                   `json:"reward"`
	NextQuestion   *Question                 `json:"next_question"`
	NextDifficulty *adaptive.DifficultyLevel `json:"next_difficulty"`
	IsComplete     bool                      `json:"is_complete"`
	Stats          SessionStats              `json:"stats"`
}

// StartResult is returned when a quiz session starts.
type StartResult struct {
	Question          *Question                `json:"question"`
	SessionID         string                   `json:"session_id"`
	CurrentDifficulty adaptive.DifficultyLevel `json:"current_difficulty"`
}

// BankResult is returned when a question bank is generated.
type BankResult struct {
	QuestionBank []Question `json:"question_bank"`
	QuizID       string     `json:"quiz_id"`
}

// BankInfo summarizes a stored bank's composition.
type BankInfo struct {
	QuizID                 string                           `json:"quiz_id"`
	TotalQuestions         int                              `json:"total_questions"`
	DifficultyDistribution map[adaptive.DifficultyLevel]int `json:"difficulty_distribution"`
}
