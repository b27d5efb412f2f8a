package remote

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ziadkadry99/folio/internal/db"
	"github.com/ziadkadry99/folio/internal/prefs"
	"github.com/ziadkadry99/folio/internal/theme"
)

var _ theme.Store = (*Client)(nil)

func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	d, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { d.Close() })

	r := chi.NewRouter()
	prefs.RegisterRoutes(r, prefs.NewStore(d))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newJarClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return NewClient(baseURL, &http.Client{Jar: jar})
}

func TestClientRoundTrip(t *testing.T) {
	srv := setupTestServer(t)
	c := newJarClient(t, srv.URL+"/")
	ctx := context.Background()

	if _, ok, err := c.Get(ctx, "currentTheme"); err != nil || ok {
		t.Fatalf("Get before Set = ok %v, err %v", ok, err)
	}
	if err := c.Set(ctx, "currentTheme", "forest"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := c.Get(ctx, "currentTheme")
	if err != nil || !ok || v != "forest" {
		t.Errorf("Get = %q, %v, %v; want forest", v, ok, err)
	}
}

func TestClientBacksSelector(t *testing.T) {
	srv := setupTestServer(t)
	c := newJarClient(t, srv.URL)
	ctx := context.Background()

	sel := theme.NewSelector(nil, c, nil)
	if _, err := sel.Apply(ctx, "mystic"); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	name, err := sel.Cycle(ctx)
	if err != nil {
		t.Fatalf("Cycle: %v", err)
	}
	if name != "forest" {
		t.Errorf("Cycle after mystic = %q, want forest", name)
	}
}

func TestClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	if _, _, err := c.Get(context.Background(), "k"); err == nil {
		t.Error("expected error from Get")
	}
	if err := c.Set(context.Background(), "k", "v"); err == nil {
		t.Error("expected error from Set")
	}
}
