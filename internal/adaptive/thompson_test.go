package adaptive

import (
	"testing"

	"golang.org/x/exp/rand"
)

func TestThompsonUniformPrior(t *testing.T) {
	agent := NewThompsonSamplingAgent(rand.NewSource(1))

	for _, level := range Levels() {
		p := agent.Params()[level]
		if p.Alpha != 1 || p.Beta != 1 {
			t.Errorf("%s: expected Beta(1,1) prior, got Beta(%.1f,%.1f)", level, p.Alpha, p.Beta)
		}
	}
}

func TestThompsonUpdate(t *testing.T) {
	agent := NewThompsonSamplingAgent(rand.NewSource(1))

	agent.Update(DifficultyHard, 1.5)
	agent.Update(DifficultyHard, 1.0)
	agent.Update(DifficultyHard, -0.75)
	agent.Update(DifficultyLow, -0.55)
	agent.Update(DifficultyLow, 0) // zero reward counts as failure

	params := agent.Params()
	if p := params[DifficultyHard]; p.Alpha != 3 || p.Beta != 2 {
		t.Errorf("hard: expected Beta(3,2), got Beta(%.1f,%.1f)", p.Alpha, p.Beta)
	}
	if p := params[DifficultyLow]; p.Alpha != 1 || p.Beta != 3 {
		t.Errorf("low: expected Beta(1,3), got Beta(%.1f,%.1f)", p.Alpha, p.Beta)
	}
	if p := params[DifficultyMedium]; p.Alpha != 1 || p.Beta != 1 {
		t.Errorf("medium: expected untouched Beta(1,1), got Beta(%.1f,%.1f)", p.Alpha, p.Beta)
	}
}

func TestThompsonChooseReturnsAvailable(t *testing.T) {
	agent := NewThompsonSamplingAgent(rand.NewSource(42))

	available := []DifficultyLevel{DifficultyMedium, DifficultyHard}
	for i := 0; i < 100; i++ {
		got := agent.Choose(available)
		if got != DifficultyMedium && got != DifficultyHard {
			t.Fatalf("chose unavailable level %s", got)
		}
	}
}

func TestThompsonChooseFavorsStrongPosterior(t *testing.T) {
	agent := NewThompsonSamplingAgent(rand.NewSource(9))

	// Heavy success history on hard, heavy failure everywhere else.
	for i := 0; i < 200; i++ {
		agent.Update(DifficultyHard, 1)
		agent.Update(DifficultyMedium, -1)
		agent.Update(DifficultyLow, -1)
	}

	hardWins := 0
	for i := 0; i < 100; i++ {
		if agent.Choose(nil) == DifficultyHard {
			hardWins++
		}
	}
	if hardWins < 90 {
		t.Errorf("expected hard to dominate selections, won %d/100", hardWins)
	}
}

func TestParamsReturnsCopy(t *testing.T) {
	agent := NewThompsonSamplingAgent(rand.NewSource(1))

	params := agent.Params()
	params[DifficultyHard] = BetaParams{Alpha: 99, Beta: 99}

	if p := agent.Params()[DifficultyHard]; p.Alpha != 1 || p.Beta != 1 {
		t.Error("mutating the returned map leaked into agent state")
	}
}
