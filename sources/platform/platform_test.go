package platform

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvironGetters(t *testing.T) {
	t.Setenv("AUTOTABLE_TEST_STRING", "value")
	t.Setenv("AUTOTABLE_TEST_INT", "42")
	t.Setenv("AUTOTABLE_TEST_BAD_INT", "forty-two")
	t.Setenv("AUTOTABLE_TEST_BOOL", "true")
	t.Setenv("AUTOTABLE_TEST_DURATION", "3s")

	assert.Equal(t, "value", Get("AUTOTABLE_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", Get("AUTOTABLE_TEST_MISSING", "fallback"))
	assert.Equal(t, 42, GetAsInt("AUTOTABLE_TEST_INT", 1))
	assert.Equal(t, 1, GetAsInt("AUTOTABLE_TEST_BAD_INT", 1))
	assert.True(t, GetAsBool("AUTOTABLE_TEST_BOOL", false))
	assert.False(t, GetAsBool("AUTOTABLE_TEST_MISSING", false))
	assert.Equal(t, 3*time.Second, GetAsDuration("AUTOTABLE_TEST_DURATION", "1s"))
	assert.Equal(t, time.Second, GetAsDuration("AUTOTABLE_TEST_MISSING", "1s"))
	assert.Equal(t, 5*time.Second, GetAsDuration("AUTOTABLE_TEST_MISSING", "never"))
}

func TestCurry(t *testing.T) {
	mux := Curry(http.NewServeMux, func(m *http.ServeMux) {
		m.HandleFunc("/ping", func(http.ResponseWriter, *http.Request) {})
	})

	_, pattern := mux.Handler(httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, "/ping", pattern)
}

func TestManifest(t *testing.T) {
	SetAppManifest("1.2.3", "2026-10-19", time.Now().Add(-90*time.Second))

	assert.Equal(t, "1.2.3", GetAppVersion())
	assert.Equal(t, "2026-10-19", GetAppBuildTime())
	assert.GreaterOrEqual(t, GetAppUptime(), 90*time.Second)
}
