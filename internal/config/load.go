package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docspell/internal/foundation/errors"
	"git.home.luguber.info/inful/docspell/internal/logfields"
)

// envFiles are loaded before the configuration is read. Variables already in
// the process environment win.
var envFiles = []string{".env", ".env.local"}

// Load reads the configuration file at path on top of Default, expanding
// ${VAR} references first. An empty path yields the defaults. The result is
// normalized but not validated, so command-line overrides can still fill in
// required values.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.WrapError(err, errors.CategoryNotFound, "configuration file not found").
				WithContext("file", path).
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read configuration file").
			WithContext("file", path).
			Build()
	}

	expanded := os.ExpandEnv(string(data))
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse configuration file").
			WithContext("file", path).
			Build()
	}

	ApplyDefaults(cfg)
	slog.Debug("Loaded configuration", logfields.File(path))
	return cfg, nil
}

func loadEnvFiles() {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			slog.Warn("Failed to load environment file", logfields.File(name), logfields.Error(err))
			continue
		}
		slog.Debug("Loaded environment variables", logfields.File(name))
	}
}
