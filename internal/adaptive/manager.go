package adaptive

import (
	"log/slog"
	"sync"

	"golang.org/x/exp/rand"
)

// Manager drives adaptive difficulty selection for quiz sessions.
//
// The step rule is authoritative: difficulty moves up one level on a correct
// answer and down one level on a wrong answer, clamped to [low, hard]. The
// Q-learning and Thompson Sampling agents are updated on every transition but
// never override the step rule; their learned state is exposed for telemetry.
type Manager struct {
	config  *Config
	tracker *Tracker

	// mu guards the agents: their learned state is shared by all sessions.
	mu      sync.Mutex
	qAgent  *QLearningAgent
	tsAgent *ThompsonSamplingAgent

	log *slog.Logger
}

// NewManager creates a manager. A nil config selects DefaultConfig; a nil
// source leaves the agents non-deterministic, which is the production setup.
func NewManager(config *Config, src rand.Source, log *slog.Logger) *Manager {
	if config == nil {
		config = DefaultConfig()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Manager{
		config:  config,
		tracker: NewTracker(config),
		qAgent:  NewQLearningAgent(config.LearningRate, config.DiscountFactor, config.ExplorationRate, src),
		tsAgent: NewThompsonSamplingAgent(src),
		log:     log,
	}
}

// PerformanceTrend classifies the learner's recent correctness direction.
func (m *Manager) PerformanceTrend(history []bool) Trend {
	return m.tracker.Trend(history)
}

// Reward returns the reward for an answer outcome at a difficulty.
func (m *Manager) Reward(isCorrect bool, difficulty DifficultyLevel) float64 {
	return m.tracker.Reward(isCorrect, difficulty)
}

// SelectNextDifficulty applies the step rule and feeds the chosen transition
// into the active agent. useThompson selects which agent's state is updated;
// the returned difficulty is the same either way.
func (m *Manager) SelectNextDifficulty(current DifficultyLevel, trend Trend, lastCorrect bool, useThompson bool) DifficultyLevel {
	var next DifficultyLevel
	if lastCorrect {
		next = current.StepUp()
	} else {
		next = current.StepDown()
	}

	// Bookkeeping reward for the transition itself: +1 success, -0.5 failure.
	transitionReward := 1.0
	if !lastCorrect {
		transitionReward = -0.5
	}

	m.mu.Lock()
	if useThompson {
		m.tsAgent.Update(next, transitionReward)
	} else {
		state := State{Difficulty: current, Trend: trend}
		nextState := State{Difficulty: next, Trend: trend}
		m.qAgent.UpdateQValue(state, next, transitionReward, nextState)
	}
	m.mu.Unlock()

	m.log.Debug("selected next difficulty",
		"current", current,
		"next", next,
		"last_correct", lastCorrect,
		"trend", trend,
	)
	return next
}

// UpdateLearning feeds an observed reward into the active agent.
func (m *Manager) UpdateLearning(current, next DifficultyLevel, trend Trend, reward float64, useThompson bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if useThompson {
		m.tsAgent.Update(next, reward)
	} else {
		state := State{Difficulty: current, Trend: trend}
		nextState := State{Difficulty: next, Trend: trend}
		m.qAgent.UpdateQValue(state, next, reward, nextState)
	}
}

// LearningStats snapshots both agents' learned state.
func (m *Manager) LearningStats() LearningStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return LearningStats{
		QLearning: QLearningStats{
			QTable:          m.qAgent.QTable(),
			ExplorationRate: m.qAgent.ExplorationRate(),
		},
		ThompsonSampling: ThompsonStats{
			BetaParams: m.tsAgent.Params(),
		},
	}
}
