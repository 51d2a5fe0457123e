package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	lfhttp "github.com/fwojciec/formazioni/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns page body", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body>probabili formazioni</body></html>"))
		}))
		defer srv.Close()

		f := lfhttp.NewFetcher()
		defer f.Close()

		html, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, html, "probabili formazioni")
	})

	t.Run("sends browser-like headers", func(t *testing.T) {
		t.Parallel()

		var gotUA, gotLang string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotLang = r.Header.Get("Accept-Language")
		}))
		defer srv.Close()

		f := lfhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, gotUA, "Mozilla/5.0")
		assert.Contains(t, gotLang, "it-IT")
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		f := lfhttp.NewFetcher()
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 403")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		}))
		defer srv.Close()

		f := lfhttp.NewFetcher()
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := f.Fetch(ctx, srv.URL)

		assert.Error(t, err)
	})

	t.Run("custom user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := lfhttp.NewFetcher(lfhttp.WithUserAgent("formazioni-test"))
		defer f.Close()

		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "formazioni-test", gotUA)
	})
}
