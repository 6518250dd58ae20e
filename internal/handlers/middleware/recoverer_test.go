package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecoverer(t *testing.T) {
	t.Run("panic becomes 500", func(t *testing.T) {
		l := &recordLogger{}
		h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("store exploded")
		})

		rec := httptest.NewRecorder()
		Recoverer(l)(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"error":"service_error","message":"Internal server error"}`, rec.Body.String())
		require.NotContains(t, rec.Body.String(), "store exploded", "panic details must not leak")

		entries := l.all()
		require.Len(t, entries, 1)
		require.Equal(t, "error", entries[0].level)
		require.Contains(t, entries[0].args, "store exploded")
	})

	t.Run("no panic passes through", func(t *testing.T) {
		l := &recordLogger{}
		h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		rec := httptest.NewRecorder()
		Recoverer(l)(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts", nil))

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Empty(t, l.all())
	})

	t.Run("abort handler is re-raised", func(t *testing.T) {
		l := &recordLogger{}
		h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(http.ErrAbortHandler)
		})

		require.PanicsWithValue(t, http.ErrAbortHandler, func() {
			Recoverer(l)(h).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
		require.Empty(t, l.all())
	})
}
