// Package cliserver implements the portal's TCP admin interface: a
// loopback listener speaking newline-delimited JSON, one command per
// connection. Operators use it (via the poolcli binary) to inspect the
// running configuration and to trigger a new resolution pass.
package cliserver

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sort"
	"time"

	"github.com/MKhiriev/multipool/internal/logger"
	"github.com/MKhiriev/multipool/internal/pool"
)

// ErrUnknownCommand indicates a request naming no known admin command.
var ErrUnknownCommand = errors.New("unknown admin command")

// readTimeout bounds how long a connected client may take to send its
// command line.
const readTimeout = 30 * time.Second

// Portal is the slice of the running portal the admin commands operate
// on.
type Portal interface {
	// Pools returns the current resolved configuration map.
	Pools() pool.ConfigMap
	// Coins returns the names of all registered coin profiles.
	Coins() []string
	// Reload runs a fresh resolution pass and swaps the active map on
	// success.
	Reload() error
}

// Request is one admin command line.
type Request struct {
	Command string `json:"command"`
}

// Response is the single JSON reply written for a request.
type Response struct {
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// poolInfo is the admin view of one resolved pool.
type poolInfo struct {
	Coin      string   `json:"coin"`
	Symbol    string   `json:"symbol"`
	Algorithm string   `json:"algorithm"`
	Ports     []string `json:"ports"`
}

// Server accepts admin connections until Shutdown closes the listener.
type Server struct {
	portal   Portal
	logger   *logger.Logger
	listener net.Listener
}

// NewServer binds the admin listener on address (normally loopback).
func NewServer(address string, portal Portal, log *logger.Logger) (*Server, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("error binding admin listener on %s: %w", address, err)
	}

	return &Server{portal: portal, logger: log, listener: listener}, nil
}

// Addr returns the bound listener address.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Run accepts connections until the listener is closed. A closed listener
// is normal termination and reported as nil.
func (s *Server) Run() error {
	s.logger.Info().Str("address", s.Addr()).Msg("launching admin listener")

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("error accepting admin connection: %w", err)
		}

		go s.handle(conn)
	}
}

// Shutdown closes the listener; in-flight connections finish on their
// own.
func (s *Server) Shutdown() {
	if err := s.listener.Close(); err != nil {
		s.logger.Error().Err(err).Msg("error closing admin listener")
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	if err := conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
		s.logger.Error().Err(err).Msg("error setting admin read deadline")
		return
	}

	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		return
	}

	var req Request
	resp := Response{}
	if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
		resp.Error = fmt.Sprintf("error parsing admin request: %v", err)
	} else {
		resp = s.dispatch(req)
	}

	if err := json.NewEncoder(conn).Encode(resp); err != nil {
		s.logger.Error().Err(err).Msg("error writing admin response")
	}
}

func (s *Server) dispatch(req Request) Response {
	s.logger.Debug().Str("command", req.Command).Msg("admin command received")

	switch req.Command {
	case "pools":
		return Response{Result: s.poolInfos()}
	case "coins":
		return Response{Result: s.portal.Coins()}
	case "reload":
		if err := s.portal.Reload(); err != nil {
			return Response{Error: err.Error()}
		}
		return Response{Result: "ok"}
	default:
		return Response{Error: fmt.Sprintf("%v: %q", ErrUnknownCommand, req.Command)}
	}
}

func (s *Server) poolInfos() []poolInfo {
	pools := s.portal.Pools()

	infos := make([]poolInfo, 0, len(pools))
	for _, cfg := range pools {
		infos = append(infos, poolInfo{
			Coin:      cfg.CoinName,
			Symbol:    cfg.Profile.Symbol,
			Algorithm: cfg.Profile.Algorithm,
			Ports:     cfg.Ports(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Coin < infos[j].Coin })

	return infos
}
