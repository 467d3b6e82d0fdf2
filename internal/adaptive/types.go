package adaptive

// DifficultyLevel is the question difficulty, totally ordered low < medium < hard.
type DifficultyLevel string

const (
	DifficultyLow    DifficultyLevel = "low"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

// Levels returns all difficulty levels in ascending order. The order doubles
// as the tie-break order for greedy action selection.
func Levels() []DifficultyLevel {
	return []DifficultyLevel{DifficultyLow, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty maps a raw string onto a difficulty level.
func ParseDifficulty(s string) (DifficultyLevel, bool) {
	switch DifficultyLevel(s) {
	case DifficultyLow, DifficultyMedium, DifficultyHard:
		return DifficultyLevel(s), true
	}
	return "", false
}

func (d DifficultyLevel) index() int {
	switch d {
	case DifficultyLow:
		return 0
	case DifficultyMedium:
		return 1
	default:
		return 2
	}
}

// StepUp returns the next harder level, clamped at hard.
func (d DifficultyLevel) StepUp() DifficultyLevel {
	levels := Levels()
	i := d.index() + 1
	if i >= len(levels) {
		i = len(levels) - 1
	}
	return levels[i]
}

// StepDown returns the next easier level, clamped at low.
func (d DifficultyLevel) StepDown() DifficultyLevel {
	i := d.index() - 1
	if i < 0 {
		i = 0
	}
	return Levels()[i]
}

// Trend is a coarse classification of recent correctness direction.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// Trends returns all performance trends.
func Trends() []Trend {
	return []Trend{TrendImproving, TrendStable, TrendDeclining}
}

// RewardSpec holds the reward values for one difficulty level.
type RewardSpec struct {
	Correct   float64 `json:"correct"`
	Incorrect float64 `json:"incorrect"`
}

// Config holds the tunables for the adaptive difficulty policy.
type Config struct {
	LearningRate    float64                        `json:"learning_rate"`
	DiscountFactor  float64                        `json:"discount_factor"`
	ExplorationRate float64                        `json:"exploration_rate"`
	TrendWindow     int                            `json:"trend_window"`
	Rewards         map[DifficultyLevel]RewardSpec `json:"rewards"`
}

// DefaultConfig returns the standard policy parameters.
func DefaultConfig() *Config {
	return &Config{
		LearningRate:    0.1,
		DiscountFactor:  0.9,
		ExplorationRate: 0.2,
		TrendWindow:     3,
		Rewards: map[DifficultyLevel]RewardSpec{
			DifficultyLow:    {Correct: 0.5, Incorrect: -0.55},
			DifficultyMedium: {Correct: 1.0, Incorrect: -0.50},
			DifficultyHard:   {Correct: 1.5, Incorrect: -0.75},
		},
	}
}

// LearningStats is a snapshot of both agents' learned state, for telemetry.
type LearningStats struct {
	QLearning        QLearningStats `json:"q_learning"`
	ThompsonSampling ThompsonStats  `json:"thompson_sampling"`
}

type QLearningStats struct {
	QTable          map[string]map[DifficultyLevel]float64 `json:"q_table"`
	ExplorationRate float64                                `json:"exploration_rate"`
}

type ThompsonStats struct {
	BetaParams map[DifficultyLevel]BetaParams `json:"beta_params"`
}
