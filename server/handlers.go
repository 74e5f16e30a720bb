package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/tarancss/adptools/lib/block/types"
	"github.com/tarancss/adptools/lib/creds"
	"github.com/tarancss/adptools/lib/store"
	"github.com/tarancss/adptools/tool"
)

// Request headers carrying per-request access tokens.
const (
	HeaderEthToken    = "X-Eth-Token"
	HeaderSolanaToken = "X-Solana-Token"
)

// Errors returned to client requests.
var (
	ErrBadrequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
)

// Response defines the data structure returned to the client making a non-MCP http request.
type Response struct {
	Body  string `json:"body"`
	Error string `json:"error,omitempty"`
}

func reply(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json;charset=utf8")
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(v)
}

// authorize requires the configured bearer token, if any.
func (s *Server) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if s.auth != "" && r.Header.Get("Authorization") != "Bearer "+s.auth {
			log.Printf("httpreq from %v %s err:%v\n", r.RemoteAddr, r.RequestURI, ErrUnauthorized)
			reply(rw, http.StatusUnauthorized, Response{Error: ErrUnauthorized.Error()})

			return
		}

		next.ServeHTTP(rw, r)
	})
}

// homeHandler just replies a welcome message to the client.
func (s *Server) homeHandler(rw http.ResponseWriter, r *http.Request) {
	reply(rw, http.StatusOK, Response{Body: "Hello, this is your blockchain tool server!"})
}

// healthHandler replies ok while the server is up.
func (s *Server) healthHandler(rw http.ResponseWriter, r *http.Request) {
	reply(rw, http.StatusOK, Response{Body: "ok"})
}

// toolsHandler replies the list of tools with their input schemas.
func (s *Server) toolsHandler(rw http.ResponseWriter, r *http.Request) {
	reply(rw, http.StatusOK, map[string]interface{}{"tools": tool.Tools()})
}

// callHandler invokes a tool. Once the request is decoded the reply is always 200 with the tool response, whose
// isError flag reports tool failures.
func (s *Server) callHandler(rw http.ResponseWriter, r *http.Request) {
	var req tool.Request

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("httpreq from %v %s err:%v\n", r.RemoteAddr, r.RequestURI, err)
		reply(rw, http.StatusBadRequest, Response{Error: fmt.Sprintf("%s: %v", ErrBadrequest, err)})

		return
	}

	// tokens sent with the request win over the configured ones
	override := map[string]string{}
	if t := r.Header.Get(HeaderEthToken); t != "" {
		override[creds.Key(types.ETH)] = t
	}

	if t := r.Header.Get(HeaderSolanaToken); t != "" {
		override[creds.Key(types.Solana)] = t
	}

	res := s.d.Dispatch(creds.WithOverride(r.Context(), override), req)

	log.Printf("httpreq from %v %s tool:%s isError:%v\n", r.RemoteAddr, r.RequestURI, req.Name, res.IsError)
	reply(rw, http.StatusOK, res)
}

// callsHandler replies the latest tool calls saved in the audit log. Query values: tool (filter) and limit.
func (s *Server) callsHandler(rw http.ResponseWriter, r *http.Request) {
	var err error

	var res Response

	var calls []store.Call

	status := http.StatusOK

	defer func() {
		// reply to requester accordingly
		if err != nil {
			res.Error = err.Error()
		} else {
			tmp, _ := json.Marshal(calls)
			res.Body = string(tmp)
		}
		// log request
		log.Printf("httpreq from %v %s calls:%d err:%v\n", r.RemoteAddr, r.RequestURI, len(calls), err)
		reply(rw, status, &res)
	}()

	if s.db == nil {
		status, err = http.StatusNotFound, store.ErrNoStore

		return
	}

	limit := 0
	if l := r.FormValue("limit"); l != "" {
		if limit, err = strconv.Atoi(l); err != nil {
			status, err = http.StatusBadRequest, ErrBadrequest

			return
		}
	}

	if calls, err = s.db.GetCalls(r.FormValue("tool"), limit); err != nil {
		status = http.StatusInternalServerError
	}
}
