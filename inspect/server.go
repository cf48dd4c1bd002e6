package inspect

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Server upgrades HTTP requests to observer connections.
type Server struct {
	logger   *slog.Logger
	hub      *Hub
	upgrader websocket.Upgrader
}

// NewServer returns a server joining observers to hub.
func NewServer(logger *slog.Logger, hub *Hub) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		logger: logger,
		hub:    hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Register installs the handler on mux at path.
func (s *Server) Register(mux *http.ServeMux, path string) {
	if mux == nil {
		return
	}
	mux.HandleFunc(path, s.handleState)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("inspect upgrade failed", "error", err)
		return
	}

	o := newObserver(conn, r.RemoteAddr, s.hub.queue)
	if !s.hub.join(o) {
		_ = conn.Close()
		return
	}
	// The hub greets o with its snapshot; serve outlives the request.
	go s.hub.serve(o)
}

// ListenAndServe serves observers on addr at path until ctx is canceled.
func ListenAndServe(ctx context.Context, addr, path string, s *Server) error {
	mux := http.NewServeMux()
	s.Register(mux, path)
	srv := &http.Server{Addr: addr, Handler: mux}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("inspect listening", "addr", addr, "path", path)

	select {
	case <-ctx.Done():
		return srv.Close()
	case err := <-errc:
		return err
	}
}
