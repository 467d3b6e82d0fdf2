package adaptive

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// State is a Q-table state: the difficulty the learner is at together with
// their performance trend.
type State struct {
	Difficulty DifficultyLevel
	Trend      Trend
}

func (s State) String() string {
	return fmt.Sprintf("%s/%s", s.Difficulty, s.Trend)
}

// QLearningAgent keeps a tabular Q-value estimate per (state, action) pair.
// Actions are the three difficulty levels.
type QLearningAgent struct {
	learningRate    float64
	discountFactor  float64
	explorationRate float64

	table map[State]map[DifficultyLevel]float64
	rng   *rand.Rand
}

// NewQLearningAgent builds an agent with the table zeroed for all 3x3 states
// and 3 actions. src may be nil for non-deterministic exploration.
func NewQLearningAgent(learningRate, discountFactor, explorationRate float64, src rand.Source) *QLearningAgent {
	if src == nil {
		src = rand.NewSource(rand.Uint64())
	}
	a := &QLearningAgent{
		learningRate:    learningRate,
		discountFactor:  discountFactor,
		explorationRate: explorationRate,
		table:           make(map[State]map[DifficultyLevel]float64),
		rng:             rand.New(src),
	}
	for _, d := range Levels() {
		for _, t := range Trends() {
			a.table[State{Difficulty: d, Trend: t}] = zeroActions()
		}
	}
	return a
}

func zeroActions() map[DifficultyLevel]float64 {
	return map[DifficultyLevel]float64{
		DifficultyLow:    0,
		DifficultyMedium: 0,
		DifficultyHard:   0,
	}
}

func (a *QLearningAgent) actions(s State) map[DifficultyLevel]float64 {
	acts, ok := a.table[s]
	if !ok {
		acts = zeroActions()
		a.table[s] = acts
	}
	return acts
}

// ChooseAction picks an action epsilon-greedily: with probability epsilon a
// uniform choice among available, otherwise the max-Q action with ties broken
// in enumeration order (low, medium, hard).
func (a *QLearningAgent) ChooseAction(s State, available []DifficultyLevel) DifficultyLevel {
	if len(available) == 0 {
		available = Levels()
	}
	if a.rng.Float64() < a.explorationRate {
		return available[a.rng.Intn(len(available))]
	}

	acts := a.actions(s)
	best := available[0]
	for _, action := range available[1:] {
		if acts[action] > acts[best] {
			best = action
		}
	}
	return best
}

// UpdateQValue applies the Q-learning update rule:
//
//	Q(s,a) <- Q(s,a) + alpha * (r + gamma*max_a' Q(s',a') - Q(s,a))
func (a *QLearningAgent) UpdateQValue(s State, action DifficultyLevel, reward float64, next State) {
	acts := a.actions(s)
	current := acts[action]

	maxNext := 0.0
	if nextActs, ok := a.table[next]; ok {
		first := true
		for _, q := range nextActs {
			if first || q > maxNext {
				maxNext = q
				first = false
			}
		}
	}

	acts[action] = current + a.learningRate*(reward+a.discountFactor*maxNext-current)
}

// QTable returns a copy of the table keyed by "difficulty/trend".
func (a *QLearningAgent) QTable() map[string]map[DifficultyLevel]float64 {
	out := make(map[string]map[DifficultyLevel]float64, len(a.table))
	for s, acts := range a.table {
		row := make(map[DifficultyLevel]float64, len(acts))
		for action, q := range acts {
			row[action] = q
		}
		out[s.String()] = row
	}
	return out
}

// ExplorationRate reports the agent's epsilon.
func (a *QLearningAgent) ExplorationRate() float64 {
	return a.explorationRate
}
