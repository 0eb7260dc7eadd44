package service

import (
	"time"

	"workdeck/internal/core/ports"
)

// SystemClock is the production Clock; tests substitute a fixed one.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

var _ ports.Clock = SystemClock{}
