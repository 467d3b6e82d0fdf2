package adaptive

import (
	"testing"

	"golang.org/x/exp/rand"
)

func newTestManager() *Manager {
	return NewManager(nil, rand.NewSource(1), nil)
}

func TestStepRule(t *testing.T) {
	testCases := []struct {
		name        string
		current     DifficultyLevel
		lastCorrect bool
		expected    DifficultyLevel
	}{
		{"low correct steps up", DifficultyLow, true, DifficultyMedium},
		{"medium correct steps up", DifficultyMedium, true, DifficultyHard},
		{"hard correct clamps", DifficultyHard, true, DifficultyHard},
		{"hard wrong steps down", DifficultyHard, false, DifficultyMedium},
		{"medium wrong steps down", DifficultyMedium, false, DifficultyLow},
		{"low wrong clamps", DifficultyLow, false, DifficultyLow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestManager()
			got := m.SelectNextDifficulty(tc.current, TrendStable, tc.lastCorrect, true)
			if got != tc.expected {
				t.Errorf("SelectNextDifficulty(%s, correct=%v) = %s, want %s",
					tc.current, tc.lastCorrect, got, tc.expected)
			}
		})
	}
}

func TestStepRuleIgnoresTrend(t *testing.T) {
	// The step rule is authoritative: trend never changes its output.
	for _, trend := range Trends() {
		m := newTestManager()
		if got := m.SelectNextDifficulty(DifficultyMedium, trend, true, true); got != DifficultyHard {
			t.Errorf("trend %s: expected hard, got %s", trend, got)
		}
	}
}

func TestDifficultyClampedOverLongStreaks(t *testing.T) {
	m := newTestManager()

	current := DifficultyMedium
	for i := 0; i < 20; i++ {
		current = m.SelectNextDifficulty(current, TrendImproving, true, true)
	}
	if current != DifficultyHard {
		t.Errorf("20 correct answers: expected hard, got %s", current)
	}

	for i := 0; i < 20; i++ {
		current = m.SelectNextDifficulty(current, TrendDeclining, false, true)
	}
	if current != DifficultyLow {
		t.Errorf("20 wrong answers: expected low, got %s", current)
	}
}

func TestSelectUpdatesThompsonPosterior(t *testing.T) {
	m := newTestManager()

	// Correct at medium selects hard and credits hard with a success.
	m.SelectNextDifficulty(DifficultyMedium, TrendStable, true, true)
	p := m.LearningStats().ThompsonSampling.BetaParams[DifficultyHard]
	if p.Alpha != 2 || p.Beta != 1 {
		t.Errorf("expected hard Beta(2,1), got Beta(%.1f,%.1f)", p.Alpha, p.Beta)
	}

	// Wrong at medium selects low and debits low with a failure.
	m.SelectNextDifficulty(DifficultyMedium, TrendStable, false, true)
	p = m.LearningStats().ThompsonSampling.BetaParams[DifficultyLow]
	if p.Alpha != 1 || p.Beta != 2 {
		t.Errorf("expected low Beta(1,2), got Beta(%.1f,%.1f)", p.Alpha, p.Beta)
	}
}

func TestSelectUpdatesQTable(t *testing.T) {
	m := newTestManager()

	m.SelectNextDifficulty(DifficultyMedium, TrendStable, true, false)

	state := State{Difficulty: DifficultyMedium, Trend: TrendStable}
	q := m.LearningStats().QLearning.QTable[state.String()][DifficultyHard]
	// Q <- 0 + 0.1*(1.0 + 0.9*0 - 0)
	if q != 0.1 {
		t.Errorf("expected Q=0.1 for (medium/stable, hard), got %f", q)
	}
}

func TestUpdateLearningFeedsActiveAgent(t *testing.T) {
	m := newTestManager()

	m.UpdateLearning(DifficultyMedium, DifficultyMedium, TrendStable, -0.5, true)
	p := m.LearningStats().ThompsonSampling.BetaParams[DifficultyMedium]
	if p.Alpha != 1 || p.Beta != 2 {
		t.Errorf("expected medium Beta(1,2), got Beta(%.1f,%.1f)", p.Alpha, p.Beta)
	}
}

func TestManagerDelegates(t *testing.T) {
	m := newTestManager()

	if got := m.PerformanceTrend([]bool{false, true, true}); got != TrendImproving {
		t.Errorf("expected improving, got %s", got)
	}
	if got := m.Reward(true, DifficultyHard); got != 1.5 {
		t.Errorf("expected reward 1.5, got %f", got)
	}
}

func TestLearningStatsShape(t *testing.T) {
	m := newTestManager()
	stats := m.LearningStats()

	if len(stats.QLearning.QTable) != 9 {
		t.Errorf("expected 9 Q-table states, got %d", len(stats.QLearning.QTable))
	}
	if stats.QLearning.ExplorationRate != 0.2 {
		t.Errorf("expected exploration rate 0.2, got %f", stats.QLearning.ExplorationRate)
	}
	if len(stats.ThompsonSampling.BetaParams) != 3 {
		t.Errorf("expected 3 Beta posteriors, got %d", len(stats.ThompsonSampling.BetaParams))
	}
}
