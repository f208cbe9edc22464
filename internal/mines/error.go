package mines

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrGameOver             = errors.New("game is over")
)

// ConfigError describes why a grid could not be constructed.
type ConfigError struct {
	Params  GameParams
	message string
}

// [ConfigError] implements [error]
func (e ConfigError) Error() string {
	return "invalid game params " + e.Params.String() + ": " + e.message
}

func (e ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}
