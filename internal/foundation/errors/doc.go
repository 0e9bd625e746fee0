// Package errors provides the classified error primitives used across docspell.
//
// A ClassifiedError carries a category (config, filesystem, report, ...), a
// severity and a small context map. The CLI adapter turns categories into
// process exit codes.
//
// Example usage:
//
//	err := errors.WrapError(readErr, errors.CategoryFileSystem, "cannot read markup file").
//		Fatal().
//		WithContext("file", path).
//		Build()
package errors
