package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/text/language"
)

var (
	// ErrEmptySources indicates no source patterns were configured
	ErrEmptySources = errors.New("empty source patterns")

	// ErrInvalidPattern indicates a glob pattern that does not compile
	ErrInvalidPattern = errors.New("invalid glob pattern")

	// ErrEmptyOutputDir indicates a missing output directory
	ErrEmptyOutputDir = errors.New("empty output directory")

	// ErrInvalidLocale indicates an unparseable collation locale
	ErrInvalidLocale = errors.New("invalid locale")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if err := validatePaths(&cfg.Paths); err != nil {
		errs = append(errs, err)
	}

	if strings.TrimSpace(cfg.Output.Dir) == "" {
		errs = append(errs, fmt.Errorf("%w: output.dir is required", ErrEmptyOutputDir))
	}

	if _, err := language.Parse(cfg.Index.Locale); err != nil {
		errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidLocale, cfg.Index.Locale, err))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validatePaths(cfg *PathsConfig) error {
	var errs []error

	if len(cfg.Source) == 0 {
		errs = append(errs, fmt.Errorf("%w: at least one source pattern required", ErrEmptySources))
	}

	for _, pattern := range append(append([]string{}, cfg.Source...), cfg.Ignore...) {
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
