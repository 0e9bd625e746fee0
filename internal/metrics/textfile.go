package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docspell/internal/foundation/errors"
)

// WriteTextfile writes every metric gathered from reg to path in the text
// exposition format read by the node_exporter textfile collector. The file is
// replaced atomically.
func WriteTextfile(path string, reg *prom.Registry) error {
	if reg == nil {
		return errors.ValidationError("metrics registry is nil").Build()
	}
	if err := prom.WriteToTextfile(path, reg); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write metrics textfile").
			WithContext("file", path).
			Build()
	}
	return nil
}
