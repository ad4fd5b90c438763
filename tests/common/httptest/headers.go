//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertContentType ignores parameters such as charset.
func AssertContentType(t *testing.T, w *httptest.ResponseRecorder, mediaType string) {
	t.Helper()
	got, _, _ := strings.Cut(w.Header().Get("Content-Type"), ";")
	assert.Equal(t, mediaType, strings.TrimSpace(got))
}
