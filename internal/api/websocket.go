package api

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jitterbugs/jitterkit/internal/id"
	"github.com/jitterbugs/jitterkit/internal/model"
	"github.com/jitterbugs/jitterkit/internal/ui"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     checkOrigin,
}

// checkOrigin accepts clients with no Origin, the serving host itself, and
// localhost dev servers.
func checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || isLocalOrigin(origin) {
		return true
	}
	u, err := url.Parse(origin)
	return err == nil && strings.EqualFold(u.Host, r.Host)
}

// Outgoing message types.
const (
	MsgConnected   = "connected"
	MsgColor       = "color"
	MsgSavedColors = "saved_colors"
	MsgPlot        = "plot"
	MsgAlert       = "alert"
	MsgFileChange  = "file_change"
)

// Incoming message types.
const (
	MsgInput = "input"
	MsgClick = "click"
	MsgFile  = "file"
)

// defaultReadLimit bounds incoming frames when no upload limit is set.
const defaultReadLimit = 8 << 20

// WebSocketHub manages sessions and broadcasts shared state changes.
type WebSocketHub struct {
	mu        sync.RWMutex
	clients   map[*Session]bool
	onConnect func(s *Session)
	readLimit int64
}

// WebSocketMessage is the JSON message sent to clients.
type WebSocketMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ClientMessage is the JSON message received from clients.
// File contents arrive base64 encoded in Data.
type ClientMessage struct {
	Type    string `json:"type"`
	Control string `json:"control,omitempty"`
	Value   string `json:"value,omitempty"`
	Name    string `json:"name,omitempty"`
	Data    []byte `json:"data,omitempty"`
}

// NewWebSocketHub creates a new WebSocket hub.
func NewWebSocketHub() *WebSocketHub {
	return &WebSocketHub{
		clients:   make(map[*Session]bool),
		readLimit: defaultReadLimit,
	}
}

// SetOnConnect sets the function that binds controllers to each new session.
// It runs before the session starts reading.
func (h *WebSocketHub) SetOnConnect(fn func(s *Session)) {
	h.onConnect = fn
}

// SetReadLimit sets the largest accepted frame. File messages are base64
// encoded, so this should be a third larger than the upload limit.
func (h *WebSocketHub) SetReadLimit(n int64) {
	h.readLimit = n
}

// OnFileChange implements FileWatcherSubscriber.
func (h *WebSocketHub) OnFileChange(change FileChange) {
	h.Broadcast(MsgFileChange, change)
}

// Broadcast sends a typed message to every session.
func (h *WebSocketHub) Broadcast(msgType string, data any) {
	msg, err := json.Marshal(WebSocketMessage{Type: msgType, Data: data})
	if err != nil {
		log.Printf("Failed to marshal %s message: %v", msgType, err)
		return
	}
	h.broadcast(msg)
}

func (h *WebSocketHub) broadcast(data []byte) {
	h.mu.RLock()
	clients := make([]*Session, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		h.trySend(client, data)
	}
}

// trySend attempts to send data to a client, handling the case where
// the client's channel was closed between snapshot and send.
func (h *WebSocketHub) trySend(client *Session, data []byte) {
	defer func() {
		if r := recover(); r != nil {
			// Channel was closed by removeClient - client already cleaned up
		}
	}()

	select {
	case client.send <- data:
	default:
		// Client buffer full, close it
		h.removeClient(client)
	}
}

func (h *WebSocketHub) addClient(client *Session) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()
}

func (h *WebSocketHub) removeClient(client *Session) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	h.mu.Unlock()
}

// ServeWS handles WebSocket connection requests.
func (h *WebSocketHub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	session := newSession(h, conn)
	h.addClient(session)

	session.sendMessage(MsgConnected, map[string]string{"session": session.id})
	if h.onConnect != nil {
		h.onConnect(session)
	}

	go session.writePump()
	go session.readPump()
}

// ClientCount returns the number of connected clients.
func (h *WebSocketHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Session is one browser connection. It implements ui.Binder by
// dispatching incoming messages to registered handlers, and ui.Surface by
// sending typed messages back.
type Session struct {
	id   string
	hub  *WebSocketHub
	conn *websocket.Conn
	send chan []byte

	mu     sync.RWMutex
	inputs map[string]ui.InputHandler
	clicks map[string]ui.ClickHandler
	file   ui.FileHandler
}

var (
	_ ui.Binder  = (*Session)(nil)
	_ ui.Surface = (*Session)(nil)
)

func newSession(hub *WebSocketHub, conn *websocket.Conn) *Session {
	return &Session{
		id:     id.New(id.Session),
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 256),
		inputs: make(map[string]ui.InputHandler),
		clicks: make(map[string]ui.ClickHandler),
	}
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.id
}

func (s *Session) OnInput(control string, fn ui.InputHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs[control] = fn
}

func (s *Session) OnClick(control string, fn ui.ClickHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clicks[control] = fn
}

func (s *Session) OnFileDrop(fn ui.FileHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.file = fn
}

func (s *Session) ShowColor(d model.ColorDisplay) {
	s.sendMessage(MsgColor, d)
}

func (s *Session) ShowSavedColors(entries []model.SavedEntry) {
	if entries == nil {
		entries = []model.SavedEntry{}
	}
	s.sendMessage(MsgSavedColors, entries)
}

func (s *Session) ShowPlot(p ui.PlotView) {
	s.sendMessage(MsgPlot, p)
}

func (s *Session) Alert(message string) {
	s.sendMessage(MsgAlert, map[string]string{"message": message})
}

func (s *Session) sendMessage(msgType string, data any) {
	msg, err := json.Marshal(WebSocketMessage{Type: msgType, Data: data})
	if err != nil {
		log.Printf("Failed to marshal %s message: %v", msgType, err)
		return
	}
	s.hub.trySend(s, msg)
}

// dispatch routes one client message to its handler. Unknown controls are
// logged and dropped.
func (s *Session) dispatch(msg ClientMessage) {
	s.mu.RLock()
	var fn func()
	switch msg.Type {
	case MsgInput:
		if h, ok := s.inputs[msg.Control]; ok {
			fn = func() { h(msg.Value) }
		}
	case MsgClick:
		if h, ok := s.clicks[msg.Control]; ok {
			fn = func() { h(msg.Value) }
		}
	case MsgFile:
		if h := s.file; h != nil {
			fn = func() { h(msg.Name, bytes.NewReader(msg.Data)) }
		}
	}
	s.mu.RUnlock()

	if fn == nil {
		log.Printf("WebSocket %s: no handler for %s %q", s.id, msg.Type, msg.Control)
		return
	}
	fn()
}

// readPump reads and dispatches client messages until the connection closes.
func (s *Session) readPump() {
	defer func() {
		// closing send signals writePump to exit and close the connection
		s.hub.removeClient(s)
	}()

	s.conn.SetReadLimit(s.hub.readLimit)
	s.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			break
		}
		s.conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.Alert("malformed message")
			continue
		}
		s.dispatch(msg)
	}
}

// writePump writes messages to the WebSocket connection.
func (s *Session) writePump() {
	ticker := time.NewTicker(30 * time.Second) // Ping interval
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			// One frame per message so the client always parses whole JSON
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
