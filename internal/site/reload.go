package site

import (
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// reloadHub tracks connected dev-server pages and pushes reload signals.
type reloadHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func newReloadHub() *reloadHub {
	return &reloadHub{conns: make(map[*websocket.Conn]bool)}
}

func (h *reloadHub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("serve: websocket upgrade: %v", err)
		return
	}

	h.mu.Lock()
	h.conns[conn] = true
	h.mu.Unlock()

	// Drain reads until the page goes away; the hub only writes.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("serve: websocket read: %v", err)
				}
				return
			}
		}
	}()
}

func (h *reloadHub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
}

// broadcast sends a text message to every connected page, dropping
// connections that fail.
func (h *reloadHub) broadcast(msg string) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			h.drop(c)
		}
	}
}

// statFile returns the file's modification time.
func statFile(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
