package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ReloadMessage is sent to every open page when the site changes.
type ReloadMessage struct {
	Type string `json:"type"`
}

// Hub tracks the pages connected to /ws/reload.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	closed  bool
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// ServeHTTP upgrades the request and holds the socket until the page goes
// away. Pages never send anything; reads only detect the close.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[conn] = true
	h.mu.Unlock()

	defer h.remove(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// Clients returns the number of connected pages.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast tells every connected page to reload. Pages that cannot be
// written to are dropped.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(ReloadMessage{Type: "reload"}); err != nil {
			log.Printf("server: websocket write: %v", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

// Close disconnects every page and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for conn := range h.clients {
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		conn.Close()
		delete(h.clients, conn)
	}
}

// Watch calls onChange after files under paths change, coalescing bursts
// of events that arrive within debounce of each other. Directories are
// watched recursively; for a file, its parent directory is watched and
// only events for that file count. onChange runs on one goroutine, one call
// at a time; changes seen while it runs queue a single follow-up call.
// Watch blocks until ctx is done.
func Watch(ctx context.Context, paths []string, debounce time.Duration, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	trees := make(map[string]bool) // watched directory roots
	files := make(map[string]bool) // watched single files
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil {
			log.Printf("server: not watching %s: %v", p, err)
			continue
		}
		if !info.IsDir() {
			files[abs] = true
			if err := watcher.Add(filepath.Dir(abs)); err != nil {
				log.Printf("server: failed to watch %s: %v", p, err)
			}
			continue
		}
		trees[abs] = true
		addTree(watcher, abs)
	}

	relevant := func(name string) bool {
		if files[name] {
			return true
		}
		for root := range trees {
			if name == root || strings.HasPrefix(name, root+string(filepath.Separator)) {
				return true
			}
		}
		return false
	}

	done := make(chan struct{})
	pending := make(chan struct{}, 1)
	go func() {
		for {
			select {
			case <-done:
				return
			case <-pending:
				onChange()
			}
		}
	}()
	notify := func() {
		select {
		case pending <- struct{}{}:
		default:
		}
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
		close(done)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !relevant(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					addTree(watcher, event.Name)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, notify)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("server: watcher error: %v", err)
		}
	}
}

// addTree watches root and every directory below it.
func addTree(watcher *fsnotify.Watcher, root string) {
	filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				log.Printf("server: failed to watch %s: %v", path, err)
			}
		}
		return nil
	})
}
