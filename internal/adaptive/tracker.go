package adaptive

// Tracker derives the performance trend and reward signal from a sequence of
// correctness outcomes.
type Tracker struct {
	window  int
	rewards map[DifficultyLevel]RewardSpec
}

// NewTracker builds a tracker from the policy config.
func NewTracker(cfg *Config) *Tracker {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Tracker{window: cfg.TrendWindow, rewards: cfg.Rewards}
}

// Trend classifies the recent correctness direction. The last window outcomes
// are split into two halves by floor division; the trend is the direction of
// the second half's mean relative to the first, with a 0.1 dead band.
func (t *Tracker) Trend(history []bool) Trend {
	if len(history) < 2 {
		return TrendStable
	}

	recent := history
	if len(recent) > t.window {
		recent = recent[len(recent)-t.window:]
	}
	if len(recent) < 2 {
		return TrendStable
	}

	firstHalf := recent[:len(recent)/2]
	secondHalf := recent[len(recent)/2:]

	firstScore := meanCorrect(firstHalf)
	secondScore := meanCorrect(secondHalf)

	switch {
	case secondScore > firstScore+0.1:
		return TrendImproving
	case secondScore < firstScore-0.1:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func meanCorrect(outcomes []bool) float64 {
	if len(outcomes) == 0 {
		return 0.5
	}
	correct := 0
	for _, c := range outcomes {
		if c {
			correct++
		}
	}
	return float64(correct) / float64(len(outcomes))
}

// Reward looks up the reward for an answer outcome at a difficulty.
func (t *Tracker) Reward(isCorrect bool, difficulty DifficultyLevel) float64 {
	spec, ok := t.rewards[difficulty]
	if !ok {
		spec = DefaultConfig().Rewards[DifficultyMedium]
	}
	if isCorrect {
		return spec.Correct
	}
	return spec.Incorrect
}
