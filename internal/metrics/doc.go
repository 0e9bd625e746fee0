// Package metrics provides the observability hooks for docspell runs.
//
// Components receive a Recorder and default to NoopRecorder, so metrics
// collection needs no nil checks at call sites:
//
//	rec := metrics.Recorder(metrics.NoopRecorder{})
//	if cfg.Metrics.Textfile != "" {
//	    reg := prometheus.NewRegistry()
//	    rec = metrics.NewPrometheusRecorder(reg)
//	    defer metrics.WriteTextfile(cfg.Metrics.Textfile, reg)
//	}
//
// docspell is a batch tool, so the Prometheus recorder is exported through
// the node_exporter textfile collector format rather than an HTTP endpoint.
package metrics
