// Package config resolves runtime settings from the environment and
// loads grading configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/thinkle/sbgsync/internal/oneroster"
)

// ErrMissing indicates a required setting is absent. Fatal to the
// calling operation, never retried.
var ErrMissing = errors.New("missing configuration")

// Config holds everything needed to talk to the SIS as one teacher.
type Config struct {
	// TeacherEmail identifies the acting teacher; every authorization
	// check is scoped to this identity.
	TeacherEmail string

	SIS oneroster.Config
}

// FromEnv builds a Config from environment variables. A .env file in
// the working directory is loaded first if present, so local setups
// don't have to export anything.
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := Config{
		TeacherEmail: os.Getenv("SBGSYNC_TEACHER_EMAIL"),
		SIS: oneroster.Config{
			BaseURL:      os.Getenv("SBGSYNC_SIS_BASE_URL"),
			TokenURL:     os.Getenv("SBGSYNC_SIS_TOKEN_URL"),
			ClientID:     os.Getenv("SBGSYNC_SIS_CLIENT_ID"),
			ClientSecret: os.Getenv("SBGSYNC_SIS_CLIENT_SECRET"),
		},
	}

	if v := os.Getenv("SBGSYNC_SIS_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.SIS.Timeout = d
		} else {
			fmt.Fprintf(os.Stderr, "warning: invalid SBGSYNC_SIS_TIMEOUT %q, using default\n", v)
		}
	}

	return cfg
}

// Validate checks that every setting SIS operations depend on is set.
// Local-only commands never call this.
func (c Config) Validate() error {
	if c.TeacherEmail == "" {
		return fmt.Errorf("%w: SBGSYNC_TEACHER_EMAIL", ErrMissing)
	}
	return c.SIS.Validate()
}
