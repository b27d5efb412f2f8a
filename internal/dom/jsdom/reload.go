//go:build js && wasm

package jsdom

import (
	"encoding/json"
	"log"
	"net/url"
	"syscall/js"
)

type reloadMessage struct {
	Type string `json:"type"`
}

// WatchReload opens the dev server's reload socket and reloads the page when
// told to. Pages served without the socket simply log the failure once.
func (d *Document) WatchReload(path string) {
	loc := d.Location()
	scheme := "ws"
	if loc.Scheme == "https" {
		scheme = "wss"
	}
	u := url.URL{Scheme: scheme, Host: loc.Host, Path: path}

	ws := d.window.Get("WebSocket").New(u.String())
	ws.Set("onmessage", js.FuncOf(func(this js.Value, args []js.Value) any {
		var msg reloadMessage
		if err := json.Unmarshal([]byte(args[0].Get("data").String()), &msg); err != nil {
			return nil
		}
		if msg.Type == "reload" {
			d.Reload()
		}
		return nil
	}))
	ws.Set("onerror", js.FuncOf(func(this js.Value, args []js.Value) any {
		log.Printf("jsdom: reload socket %s unavailable", u.String())
		return nil
	}))
}
