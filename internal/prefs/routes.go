package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the visitor id.
const CookieName = "folio_visitor"

// CookieMaxAge is how long a visitor cookie lives. Preferences older than
// this belong to visitors whose cookie has expired.
const CookieMaxAge = 365 * 24 * time.Hour

const (
	maxKeyLen   = 64
	maxValueLen = 4096
)

type visitorKey struct{}

// VisitorID returns the visitor id the middleware attached to ctx.
func VisitorID(ctx context.Context) string {
	id, _ := ctx.Value(visitorKey{}).(string)
	return id
}

// Visitor makes sure every request carries a visitor id, issuing a new
// cookie when the request has none or an invalid one.
func Visitor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(CookieName); err == nil {
			if parsed, err := uuid.Parse(c.Value); err == nil {
				id = parsed.String()
			}
		}
		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(CookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), visitorKey{}, id)))
	})
}

// RegisterRoutes mounts preference endpoints on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Group(func(r chi.Router) {
		r.Use(Visitor)
		r.Get("/api/prefs", listPrefsHandler(store))
		r.Get("/api/prefs/{key}", getPrefHandler(store))
		r.Put("/api/prefs/{key}", putPrefHandler(store))
		r.Delete("/api/prefs/{key}", deletePrefHandler(store))
	})
}

type putRequest struct {
	Value string `json:"value"`
}

func validKey(key string) bool {
	return key != "" && len(key) <= maxKeyLen
}

func listPrefsHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := store.List(r.Context(), VisitorID(r.Context()))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func getPrefHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		if !validKey(key) {
			http.Error(w, "invalid key", http.StatusBadRequest)
			return
		}
		p, err := store.Get(r.Context(), VisitorID(r.Context()), key)
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "preference not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func putPrefHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		if !validKey(key) {
			http.Error(w, "invalid key", http.StatusBadRequest)
			return
		}
		var req putRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxValueLen*2)).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if len(req.Value) > maxValueLen {
			http.Error(w, "value too long", http.StatusRequestEntityTooLarge)
			return
		}
		p, err := store.Set(r.Context(), VisitorID(r.Context()), key, req.Value)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func deletePrefHandler(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		if !validKey(key) {
			http.Error(w, "invalid key", http.StatusBadRequest)
			return
		}
		if err := store.Delete(r.Context(), VisitorID(r.Context()), key); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
