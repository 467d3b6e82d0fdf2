package models

import (
	"fmt"
	"strings"

	"adaptive-quiz-service/internal/adaptive"
)

// Option is one labeled choice of a multiple-choice question.
type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Question is an immutable record owned by its bank; never mutated after
// generation.
type Question struct {
	ID            string                   `json:"question_id"`
	Difficulty    adaptive.DifficultyLevel `json:"difficulty"`
	Prompt        string                   `json:"question"`
	Options       []Option                 `json:"options"`
	CorrectAnswer string                   `json:"correct_answer"`
	Explanation   string                   `json:"explanation"`
	Hint          string                   `json:"hint"`
}

// QuestionDraft is a question as produced by the external generator
// collaborator, before validation and id assignment.
type QuestionDraft struct {
	ID            string   `json:"question_id"`
	Difficulty    string   `json:"difficulty"`
	Prompt        string   `json:"question"`
	Options       []Option `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Hint          string   `json:"hint"`
}

// Sanitize turns a draft into a Question, defaulting malformed fields instead
// of failing so one bad record cannot abort a whole bank. idx is the draft's
// position, used for fallback id assignment. The returned flag reports whether
// any field had to be defaulted.
func (d QuestionDraft) Sanitize(idx int) (Question, bool) {
	defaulted := false

	q := Question{
		ID:            strings.TrimSpace(d.ID),
		Prompt:        strings.TrimSpace(d.Prompt),
		Options:       d.Options,
		CorrectAnswer: strings.TrimSpace(d.CorrectAnswer),
		Explanation:   d.Explanation,
		Hint:          d.Hint,
	}

	if q.ID == "" {
		q.ID = fmt.Sprintf("q%d", idx+1)
		defaulted = true
	}
	difficulty, ok := adaptive.ParseDifficulty(strings.ToLower(strings.TrimSpace(d.Difficulty)))
	if !ok {
		difficulty = adaptive.DifficultyMedium
		defaulted = true
	}
	q.Difficulty = difficulty
	if q.Options == nil {
		q.Options = []Option{}
		defaulted = true
	}
	if q.CorrectAnswer == "" {
		defaulted = true
	}
	return q, defaulted
}

// Grade compares a submitted answer against the correct answer label. The
// comparison is case and whitespace insensitive and also accepts the text of
// the option whose label matches the correct label, so both "B" and
// "B) Paris" pass when the correct answer is B.
func (q *Question) Grade(submitted string) bool {
	answer := normalizeAnswer(submitted)
	correct := normalizeAnswer(q.CorrectAnswer)
	if answer == "" || correct == "" {
		return false
	}
	if answer == correct {
		return true
	}

	for _, opt := range q.Options {
		label := normalizeAnswer(opt.Label)
		full := normalizeAnswer(fmt.Sprintf("%s) %s", opt.Label, opt.Text))
		text := normalizeAnswer(opt.Text)

		if answer == label || answer == text || answer == full ||
			strings.HasPrefix(full, answer) || strings.Contains(full, answer) {
			return label == correct
		}
	}
	return false
}

func normalizeAnswer(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
