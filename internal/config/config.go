// Package config provides YAML-based engine tuning and difficulty presets.
package config

// EngineConfig contains all tunable parameters for the snake engine.
// Grid dimensions are deliberately not here: the arena is fixed at 80x30.
type EngineConfig struct {
	Timing    TimingConfig    `yaml:"timing"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Level     LevelConfig     `yaml:"level"`
	Particles ParticlesConfig `yaml:"particles"`
}

// TimingConfig defines the fixed-step clock behavior.
type TimingConfig struct {
	BaseTickSeconds float64 `yaml:"base_tick_seconds"` // Logical step interval
	DashMultiplier  float64 `yaml:"dash_multiplier"`   // Tick rate factor while dashing
	MaxFrameDelta   float64 `yaml:"max_frame_delta"`   // Real delta clamp per frame
}

// ScoringConfig defines the points and combo economy.
type ScoringConfig struct {
	BasePoints  int `yaml:"base_points"`  // Points per food before multipliers
	ComboWindow int `yaml:"combo_window"` // Ticks allowed between eats
	MaxCombo    int `yaml:"max_combo"`    // Multiplier cap
	DashBonus   int `yaml:"dash_bonus"`   // Extra score factor while dashing
}

// LevelConfig defines obstacle generation and the spawn clearing.
type LevelConfig struct {
	ObstacleCountMin int `yaml:"obstacle_count_min"`
	ObstacleCountMax int `yaml:"obstacle_count_max"`
	BlockWidthMin    int `yaml:"block_width_min"`
	BlockWidthMax    int `yaml:"block_width_max"`
	BlockHeightMin   int `yaml:"block_height_min"`
	BlockHeightMax   int `yaml:"block_height_max"`
	SpawnClearRadius int `yaml:"spawn_clear_radius"` // Half-width of the cleared square
}

// ParticlesConfig defines eat-burst visuals.
type ParticlesConfig struct {
	BurstBase     int `yaml:"burst_base"`      // Particles per eat
	BurstPerCombo int `yaml:"burst_per_combo"` // Extra particles per combo step
	LifeMin       int `yaml:"life_min"`        // Ticks, inclusive
	LifeMax       int `yaml:"life_max"`        // Ticks, exclusive
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the base tick interval for a difficulty preset.
// Normal keeps the configured interval.
func ApplyPreset(cfg *EngineConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.BaseTickSeconds *= 1.3
	case DifficultyHard:
		cfg.Timing.BaseTickSeconds *= 0.8
	}
}
