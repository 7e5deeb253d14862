package config

// DifficultyPreset represents a named scramble strength.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Valid returns true for the known presets.
func (p DifficultyPreset) Valid() bool {
	switch p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// FlipsForPreset returns the number of random flips for a difficulty preset.
func FlipsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyHard:
		return 20
	default:
		return 10
	}
}
