package uuidify

import (
	"errors"
	"fmt"
	"time"
)

// Options contains everything a rename run needs besides the root paths.
type Options struct {
	// Confirm asks before every rename. When false, files are renamed
	// unconditionally after their destination is printed.
	Confirm bool

	// Verbose enables detailed logging
	Verbose bool

	// SkipGenerated leaves files alone whose stem already is a generated name.
	SkipGenerated bool

	// Summary prints a YAML report of all outcomes after the run.
	Summary bool

	// Countdown is shown once before unattended renaming starts. Ignored when
	// Confirm is true. Zero disables it.
	Countdown time.Duration
}

// Validate checks the option combination.
// It returns a multi-error if multiple validation failures occur.
func (o *Options) Validate() error {
	var errs []error

	if o.Countdown < 0 {
		errs = append(errs, fmt.Errorf("countdown cannot be negative: %w", ErrInvalidConfig))
	}

	if o.Countdown > MaxCountdown {
		errs = append(errs, fmt.Errorf("countdown cannot exceed %s: %w", MaxCountdown, ErrInvalidConfig))
	}

	if o.Confirm && o.Countdown > 0 {
		errs = append(errs, fmt.Errorf("countdown only applies with confirmation disabled: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Outcome describes what happened to a single visited file.
type Outcome string

const (
	OutcomeRenamed  Outcome = "renamed"
	OutcomeDeclined Outcome = "declined"
	OutcomeSkipped  Outcome = "skipped"
)

// RenameRecord is one visited file and what was done with it.
type RenameRecord struct {
	Source      string  `yaml:"source"`
	Destination string  `yaml:"destination,omitempty"`
	Outcome     Outcome `yaml:"outcome"`
}
