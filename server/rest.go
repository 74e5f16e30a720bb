package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/mux"
)

const timeout = 60

// ErrNoListener is returned by Init when neither a http port nor a complete https setup is configured.
var ErrNoListener = errors.New("no http or https port configured")

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)

	// API definition
	r.HandleFunc("/", s.homeHandler)
	r.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)
	r.Handle("/calls", s.authorize(http.HandlerFunc(s.callsHandler))).Methods(http.MethodGet) // audit log

	m := r.PathPrefix("/mcp").Subrouter()
	m.Use(s.authorize)
	m.HandleFunc("/tools", s.toolsHandler).Methods(http.MethodGet) // tool schemas
	m.HandleFunc("/call", s.callHandler).Methods(http.MethodPost)  // invoke a tool

	return r
}

// Init sets up and starts the http/https server to service the RESTful API. If sslPort, sslCert and sslKey are
// informed, it will start an https (TLS) server on the specified endpoint. It blocks until Stop is called or a server
// fails.
func (s *Server) Init(endpoint, port, sslPort, sslCert, sslKey string) error {
	errc := make(chan error, 2) //nolint:gomnd // one per server

	s.mu.Lock()
	// start http server
	if port != "" {
		s.s = &http.Server{
			Handler:      s.r,
			Addr:         endpoint + ":" + port,
			WriteTimeout: timeout * time.Second,
			ReadTimeout:  timeout * time.Second,
		}

		go func(hs *http.Server) {
			if err := hs.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				errc <- err
			}
		}(s.s)

		log.Printf("Listening to API http requests on %s:%s", endpoint, port)
	}
	// start https server
	if sslPort != "" && sslCert != "" && sslKey != "" {
		s.ss = &http.Server{
			Handler:      s.r,
			Addr:         endpoint + ":" + sslPort,
			WriteTimeout: timeout * time.Second,
			ReadTimeout:  timeout * time.Second,
		}

		go func(hs *http.Server) {
			if err := hs.ListenAndServeTLS(sslCert, sslKey); !errors.Is(err, http.ErrServerClosed) {
				errc <- err
			}
		}(s.ss)

		log.Printf("Listening to API https requests on %s:%s", endpoint, sslPort)
	}

	none := s.s == nil && s.ss == nil
	s.mu.Unlock()

	if none {
		return ErrNoListener
	}
	// wait for servers to be shutdown
	select {
	case err := <-errc:
		s.Stop()

		return err
	case <-s.sc:
		return nil
	}
}

// Stop shuts down the http servers implementing the RESTful API. It is safe to call more than once.
func (s *Server) Stop() {
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if s.s != nil {
			if err := s.s.Shutdown(context.Background()); err != nil {
				log.Printf("Error in http server shutdown:%v", err)
			}
		}

		if s.ss != nil {
			if err := s.ss.Shutdown(context.Background()); err != nil {
				log.Printf("Error in https server shutdown:%v", err)
			}
		}

		close(s.sc) // indicate shutdowns have finished
	})
}
