package selection

import (
	"math/rand"
	"sync"
	"time"

	"adaptive-quiz-service/internal/adaptive"
	"adaptive-quiz-service/internal/models"
)

// Selector serves non-repeating questions of a requested difficulty out of an
// immutable bank, with fallback across difficulties before giving up.
type Selector struct {
	// mu serializes draws: one selector is shared by all sessions and
	// rand.Rand is not safe for concurrent use.
	mu   sync.Mutex
	rand *rand.Rand
}

// NewSelector creates a selector with its own random source. Pass a seeded
// source in tests to control selection; nil falls back to a time seed.
func NewSelector(r *rand.Rand) *Selector {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{rand: r}
}

// Next picks a uniformly random question of the requested difficulty that is
// not in excluded. If that pool is empty it falls back to any unexcluded
// question regardless of difficulty; nil means the bank is exhausted.
func (s *Selector) Next(
	bank *models.QuestionBank,
	difficulty adaptive.DifficultyLevel,
	excluded map[string]struct{},
) *models.Question {
	candidates := s.filter(bank, difficulty, excluded)
	if len(candidates) == 0 {
		// Fallback: any unexcluded question.
		candidates = s.filter(bank, "", excluded)
	}
	if len(candidates) == 0 {
		return nil
	}

	s.mu.Lock()
	idx := s.rand.Intn(len(candidates))
	s.mu.Unlock()
	return candidates[idx]
}

func (s *Selector) filter(
	bank *models.QuestionBank,
	difficulty adaptive.DifficultyLevel,
	excluded map[string]struct{},
) []*models.Question {
	var out []*models.Question
	for i := range bank.Questions {
		q := &bank.Questions[i]
		if _, skip := excluded[q.ID]; skip {
			continue
		}
		if difficulty != "" && q.Difficulty != difficulty {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Distribution counts a bank's questions per difficulty level.
func Distribution(bank *models.QuestionBank) map[adaptive.DifficultyLevel]int {
	counts := make(map[adaptive.DifficultyLevel]int, 3)
	for i := range bank.Questions {
		counts[bank.Questions[i].Difficulty]++
	}
	return counts
}

// Remaining counts the unexcluded questions per difficulty level.
func Remaining(bank *models.QuestionBank, excluded map[string]struct{}) map[adaptive.DifficultyLevel]int {
	counts := make(map[adaptive.DifficultyLevel]int, 3)
	for i := range bank.Questions {
		q := &bank.Questions[i]
		if _, skip := excluded[q.ID]; skip {
			continue
		}
		counts[q.Difficulty]++
	}
	return counts
}
