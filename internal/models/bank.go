package models

import "time"

// QuestionBank is a generated, immutable pool of questions identified by a
// quiz id. Banks are never mutated after creation, so concurrent reads need
// no locking.
type QuestionBank struct {
	ID        string     `json:"quiz_id"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"created_at"`
}

// FindQuestion returns the question with the given id, or nil.
func (b *QuestionBank) FindQuestion(id string) *Question {
	for i := range b.Questions {
		if b.Questions[i].ID == id {
			return &b.Questions[i]
		}
	}
	return nil
}
