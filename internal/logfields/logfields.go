package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyPackage    = "package"
	KeyType       = "type"
	KeyMember     = "member"
	KeyFile       = "file"
	KeyDirectory  = "directory"
	KeyWord       = "word"
	KeyPath       = "path"
	KeyUnit       = "unit"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Package(p string) slog.Attr      { return slog.String(KeyPackage, p) }
func Type(t string) slog.Attr         { return slog.String(KeyType, t) }
func Member(m string) slog.Attr       { return slog.String(KeyMember, m) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Directory(d string) slog.Attr    { return slog.String(KeyDirectory, d) }
func Word(w string) slog.Attr         { return slog.String(KeyWord, w) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Unit(u string) slog.Attr         { return slog.String(KeyUnit, u) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
