// Package server implements the transports of the tool server: MCP over stdio and a RESTful HTTP API.
package server

import (
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/tarancss/adptools/lib/store"
	"github.com/tarancss/adptools/tool"
)

// Name is the server name announced to MCP clients.
const Name = "adptools"

// Server contains the data necessary to deliver the HTTP transport.
type Server struct {
	d    *tool.Dispatcher
	db   store.DB // audit log, may be nil
	auth string   // bearer token, empty disables authentication
	r    *mux.Router

	mu   sync.Mutex
	s    *http.Server  // http server
	ss   *http.Server  // https server
	sc   chan struct{} // closed when the servers have been shut down
	once sync.Once
}

// New returns a pointer to a new Server.
func New(d *tool.Dispatcher, db store.DB, authToken string) *Server {
	s := &Server{
		d:    d,
		db:   db,
		auth: authToken,
		sc:   make(chan struct{}),
	}
	s.r = s.router()

	return s
}

// Router exposes the root HTTP handler for the server.
func (s *Server) Router() http.Handler {
	return s.r
}
