package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jitterbugs/jitterkit/internal/model"
	"github.com/jitterbugs/jitterkit/internal/store"
	"github.com/jitterbugs/jitterkit/internal/ui"
)

// Server wraps the HTTP server for the web frontend.
type Server struct {
	httpServer *http.Server
	app        *AppContext
	watcher    *FileWatcher
	wsHub      *WebSocketHub
}

// NewServer creates a server for app listening on port. When watch is
// false, file watching is disabled and external edits to storage or
// settings are not picked up.
func NewServer(app *AppContext, port int, watch bool) *Server {
	mux := http.NewServeMux()

	handler := NewHandler(app)
	wsHub := NewWebSocketHub()
	handler.SetHub(wsHub)
	handler.RegisterRoutes(mux)
	mux.HandleFunc("GET /api/v1/ws", wsHub.ServeWS)

	s := &Server{
		app:   app,
		wsHub: wsHub,
	}

	// base64 inflates uploads by a third
	wsHub.SetReadLimit(app.Settings().Server.MaxUploadBytes*4/3 + 4096)
	wsHub.SetOnConnect(s.bindSession)

	// Push saved list changes from any source to every tab
	app.ColorService.Subscribe(func(list *model.SavedColorList) {
		wsHub.Broadcast(MsgSavedColors, list.Entries())
	})

	// The current color is shared, so a slider moved in one tab (or a REST
	// PUT) redraws every tab
	app.ColorService.SubscribeCurrent(func(d model.ColorDisplay) {
		wsHub.Broadcast(MsgColor, d)
	})

	if watch {
		watcher, err := NewFileWatcher(app.Paths)
		if err != nil {
			log.Printf("Warning: failed to create file watcher: %v", err)
		} else {
			watcher.Subscribe(s)
			watcher.Subscribe(wsHub)
			s.watcher = watcher
		}
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      Logging(Recover(Cors(mux))),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	return s
}

// bindSession attaches the color picker and plot tool to a new session and
// draws their initial state.
func (s *Server) bindSession(session *Session) {
	picker := ui.NewColorPicker(s.app.ColorService, session)
	picker.Bind(session)
	picker.Init()

	tool := ui.NewPlotTool(s.app.PlotService, session, PlotAPIBase)
	tool.Bind(session)
	tool.Init()

	log.Printf("WebSocket session %s connected", session.ID())
}

// OnFileChange reloads shared state changed by another process.
func (s *Server) OnFileChange(change FileChange) {
	switch change.Kind {
	case FileChangeKindStorage:
		if change.Key != store.SavedColorsKey {
			return
		}
		// Reload notifies subscribers, which broadcasts the new list
		if _, err := s.app.ColorService.Reload(); err != nil {
			log.Printf("Warning: failed to reload saved colors: %v", err)
			s.wsHub.Broadcast(MsgAlert, map[string]string{"message": err.Error()})
		}
	case FileChangeKindSettings:
		if err := s.app.ReloadSettings(); err != nil {
			log.Printf("Warning: failed to reload settings: %v", err)
			return
		}
		log.Printf("Settings reloaded from %s", s.app.Paths.SettingsPath())
	}
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for HTTP requests. Blocks until shutdown.
func (s *Server) Start() error {
	if s.watcher != nil {
		if err := s.watcher.Start(); err != nil {
			log.Printf("Warning: failed to start file watcher: %v", err)
		}
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		s.watcher.Stop()
	}

	return s.httpServer.Shutdown(ctx)
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
