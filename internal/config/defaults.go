package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in engine tuning. The values match the classic
// balance: 20 logical ticks per second, 2x dash, 60-tick combo window.
func Default() EngineConfig {
	return EngineConfig{
		Timing: TimingConfig{
			BaseTickSeconds: 0.05,
			DashMultiplier:  2.0,
			MaxFrameDelta:   0.25,
		},
		Scoring: ScoringConfig{
			BasePoints:  10,
			ComboWindow: 60,
			MaxCombo:    4,
			DashBonus:   2,
		},
		Level: LevelConfig{
			ObstacleCountMin: 20,
			ObstacleCountMax: 29,
			BlockWidthMin:    2,
			BlockWidthMax:    7,
			BlockHeightMin:   1,
			BlockHeightMax:   4,
			SpawnClearRadius: 5,
		},
		Particles: ParticlesConfig{
			BurstBase:     10,
			BurstPerCombo: 5,
			LifeMin:       5,
			LifeMax:       15,
		},
	}
}
