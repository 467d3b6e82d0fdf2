package selection

import (
	"math/rand"
	"testing"

	"adaptive-quiz-service/internal/adaptive"
	"adaptive-quiz-service/internal/models"
)

func testBank() *models.QuestionBank {
	mk := func(id string, d adaptive.DifficultyLevel) models.Question {
		return models.Question{ID: id, Difficulty: d, CorrectAnswer: "A"}
	}
	return &models.QuestionBank{
		ID: "bank-1",
		Questions: []models.Question{
			mk("q1", adaptive.DifficultyLow),
			mk("q2", adaptive.DifficultyLow),
			mk("q3", adaptive.DifficultyMedium),
			mk("q4", adaptive.DifficultyMedium),
			mk("q5", adaptive.DifficultyHard),
			mk("q6", adaptive.DifficultyHard),
		},
	}
}

func seededSelector() *Selector {
	return NewSelector(rand.New(rand.NewSource(42)))
}

func TestNextMatchesRequestedDifficulty(t *testing.T) {
	s := seededSelector()
	bank := testBank()

	for i := 0; i < 20; i++ {
		q := s.Next(bank, adaptive.DifficultyMedium, nil)
		if q == nil {
			t.Fatal("expected a question")
		}
		if q.Difficulty != adaptive.DifficultyMedium {
			t.Fatalf("expected a medium question, got %s (%s)", q.Difficulty, q.ID)
		}
	}
}

func TestNextSkipsExcluded(t *testing.T) {
	s := seededSelector()
	bank := testBank()

	excluded := map[string]struct{}{"q3": {}}
	for i := 0; i < 20; i++ {
		q := s.Next(bank, adaptive.DifficultyMedium, excluded)
		if q == nil {
			t.Fatal("expected q4 to remain")
		}
		if q.ID != "q4" {
			t.Fatalf("expected q4, got %s", q.ID)
		}
	}
}

func TestNextFallsBackAcrossDifficulties(t *testing.T) {
	s := seededSelector()
	bank := testBank()

	// Both hard questions excluded: the draw must fall back to some other
	// unexcluded question.
	excluded := map[string]struct{}{"q5": {}, "q6": {}}
	q := s.Next(bank, adaptive.DifficultyHard, excluded)
	if q == nil {
		t.Fatal("expected a fallback question")
	}
	if _, ok := excluded[q.ID]; ok {
		t.Fatalf("fallback served an excluded question: %s", q.ID)
	}
}

func TestNextReturnsNilWhenExhausted(t *testing.T) {
	s := seededSelector()
	bank := testBank()

	excluded := make(map[string]struct{})
	for _, q := range bank.Questions {
		excluded[q.ID] = struct{}{}
	}
	if q := s.Next(bank, adaptive.DifficultyMedium, excluded); q != nil {
		t.Errorf("expected nil for an exhausted bank, got %s", q.ID)
	}
}

func TestDistribution(t *testing.T) {
	counts := Distribution(testBank())
	for _, level := range adaptive.Levels() {
		if counts[level] != 2 {
			t.Errorf("%s: expected 2 questions, got %d", level, counts[level])
		}
	}
}

func TestRemaining(t *testing.T) {
	bank := testBank()
	excluded := map[string]struct{}{"q1": {}, "q5": {}}

	counts := Remaining(bank, excluded)
	if counts[adaptive.DifficultyLow] != 1 || counts[adaptive.DifficultyMedium] != 2 || counts[adaptive.DifficultyHard] != 1 {
		t.Errorf("unexpected remaining counts: %v", counts)
	}
}
