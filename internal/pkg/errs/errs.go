// Package errs is the project's thin layer over cockroachdb/errors.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark tags err so that Is(err, markErr) holds. A nil err yields markErr.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

func Is(err, target error) bool {
	return cr.Is(err, target)
}

// IsAny reports whether err matches any of the references.
func IsAny(err error, refs ...error) bool {
	return cr.IsAny(err, refs...)
}

// WithUserMessage attaches text that is safe to show to clinic staff.
func WithUserMessage(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.WithHint(err, msg)
}

// UserMessage returns the outermost message attached with WithUserMessage,
// or fallback when there is none.
func UserMessage(err error, fallback string) string {
	hints := cr.GetAllHints(err)
	if len(hints) == 0 {
		return fallback
	}
	return hints[0]
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
