package main

import (
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"printdesk/server/printer"
)

// Admin pages open a websocket on /ws and re-poll whenever a printer
// or job change event arrives, so open pages track concurrent edits.

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 54 * time.Second
)

// wsClient is one connected admin page.
type wsClient struct {
	id   string
	conn *websocket.Conn
	send chan printer.Event
}

var (
	wsClients     = make(map[string]*wsClient)
	wsClientsLock sync.RWMutex
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return u.Host == r.Host
	},
}

// handleEventsWS upgrades the connection and streams change events
// until the page goes away.
func handleEventsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		logWarn("WebSocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	client := &wsClient{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan printer.Event, 16),
	}

	wsClientsLock.Lock()
	wsClients[client.id] = client
	wsClientsLock.Unlock()

	logDebug("WebSocket client connected", "id", client.id, "remote", r.RemoteAddr)

	go client.writePump()
	client.readPump()
}

// broadcastEvent fans one committed change out to every connected
// page. Slow clients drop events rather than block the mutation path.
func broadcastEvent(ev printer.Event) {
	wsClientsLock.RLock()
	defer wsClientsLock.RUnlock()
	for _, client := range wsClients {
		select {
		case client.send <- ev:
		default:
		}
	}
}

func (c *wsClient) unregister() {
	wsClientsLock.Lock()
	if _, ok := wsClients[c.id]; ok {
		delete(wsClients, c.id)
		close(c.send)
	}
	wsClientsLock.Unlock()
	c.conn.Close()
}

// readPump discards inbound frames; it exists to observe pongs and
// connection close.
func (c *wsClient) readPump() {
	defer c.unregister()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			logDebug("WebSocket client disconnected", "id", c.id, "error", err)
			return
		}
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case ev, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
