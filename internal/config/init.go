package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docspell/internal/foundation/errors"
)

// Init writes an example configuration file to configPath.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithContext("file", configPath).
			Build()
	}

	example := Default()
	example.Dictionaries = []string{"dictionaries/english.txt", "dictionaries/project.txt"}
	example.Ignore = IgnoreConfig{
		Words:      []string{"docspell", "goroutine"},
		Files:      []string{"dictionaries/ignore.txt"},
		Containing: []string{"http"},
	}
	example.Report.File = "spelling-report.txt"
	example.Report.UnknownWordsFile = "unknown-words.txt"
	example.Report.WithSuggestions = true
	example.Markup.Enabled = true
	example.Source.PackageScope = true
	example.Source.ExcludeDirs = []string{"examples"}
	example.Watch.Interval = "1h"

	data, err := yaml.Marshal(example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal example configuration").Build()
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write configuration file").
			WithContext("file", configPath).
			Build()
	}
	return nil
}
