package config

import "time"

// EventsConfig tunes the in-process domain event bus and the retry policy of
// its consumers.
type EventsConfig struct {
	OutputBuffer    int           `mapstructure:"output_buffer" validate:"gte=0"`
	MaxRetries      int           `mapstructure:"max_retries" validate:"gte=0"`
	InitialInterval time.Duration `mapstructure:"initial_interval"`
	MaxInterval     time.Duration `mapstructure:"max_interval"`
	Multiplier      float64       `mapstructure:"multiplier"`
	MaxElapsedTime  time.Duration `mapstructure:"max_elapsed_time"`
}
