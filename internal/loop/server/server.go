// Package server tracks the sessions connected to a hosted instance. Every
// session plays its own game; the server only counts them, relays
// server-wide events and keeps a leaderboard of the connected players.
package server

import (
	"cmp"
	"errors"
	"slices"
	"sync"
	"time"
)

// ErrServerFull is returned by RegisterClient when the session limit is reached.
var ErrServerFull = errors.New("server full")

// GameServer is the interface clients use to communicate with the server.
type GameServer interface {
	RegisterClient(username string) (*ClientHandle, error)
	UnregisterClient(clientID int)
	ReportScore(clientID, score int)
	Players() int
	TopScores(n int) []TopScoreEntry
}

// Server holds the registry of connected clients.
type Server struct {
	mu           sync.RWMutex
	clients      map[int]*ClientHandle
	nextClientID int
	maxClients   int // 0 means unlimited
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// ClientHandle represents a client's connection to the server.
type ClientHandle struct {
	ID        int
	Username  string           // Display name for this client
	EventsCh  chan ClientEvent // Events sent to client (shutdown, etc.)
	BestScore int              // Highest final score in this connection
}

// ClientEvent represents an event sent from server to client.
type ClientEvent struct {
	Type ClientEventType
}

// ClientEventType identifies the type of client event.
type ClientEventType int

const (
	EventServerShutdown ClientEventType = iota
)

// TopScoreEntry represents a single entry on the leaderboard.
type TopScoreEntry struct {
	Username string
	Score    int
	clientID int // Used for deterministic tie-break when scores are equal
}

// NewServer creates a server accepting up to maxClients concurrent clients.
// A maxClients of zero or less removes the limit.
func NewServer(maxClients int) *Server {
	return &Server{
		clients:      make(map[int]*ClientHandle),
		nextClientID: 1,
		maxClients:   max(maxClients, 0),
	}
}

// RegisterClient registers a new client with the given username and returns its handle.
func (s *Server) RegisterClient(username string) (*ClientHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxClients > 0 && len(s.clients) >= s.maxClients {
		return nil, ErrServerFull
	}

	handle := &ClientHandle{
		ID:       s.nextClientID,
		Username: username,
		EventsCh: make(chan ClientEvent, 16),
	}
	s.nextClientID++
	s.clients[handle.ID] = handle
	return handle, nil
}

// UnregisterClient removes a client from the server and closes its event channel.
func (s *Server) UnregisterClient(clientID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if handle, ok := s.clients[clientID]; ok {
		close(handle.EventsCh)
		delete(s.clients, clientID)
	}
}

// ReportScore records the final score of a finished game.
func (s *Server) ReportScore(clientID, score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if handle, ok := s.clients[clientID]; ok && score > handle.BestScore {
		handle.BestScore = score
	}
}

// Players returns the number of connected clients.
func (s *Server) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// TopScores returns up to n connected players with a non-zero best score,
// highest first. Equal scores are ordered by connection time.
func (s *Server) TopScores(n int) []TopScoreEntry {
	s.mu.RLock()
	entries := make([]TopScoreEntry, 0, len(s.clients))
	for _, handle := range s.clients {
		if handle.BestScore <= 0 {
			continue
		}
		entries = append(entries, TopScoreEntry{
			Username: handle.Username,
			Score:    handle.BestScore,
			clientID: handle.ID,
		})
	}
	s.mu.RUnlock()

	slices.SortFunc(entries, func(a, b TopScoreEntry) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.clientID, b.clientID)
	})
	if len(entries) > n {
		entries = entries[:max(n, 0)]
	}
	return entries
}

// Shutdown gracefully shuts down the server by notifying all connected clients
// and waiting for them to disconnect (up to the given timeout).
func (s *Server) Shutdown(timeout time.Duration) {
	// Notify all connected clients about the shutdown
	s.mu.RLock()
	for _, handle := range s.clients {
		select {
		case handle.EventsCh <- ClientEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.RUnlock()

	// Wait for all clients to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.Players() == 0 {
			return
		}
		select {
		case <-deadline:
			return
		case <-ticker.C:
		}
	}
}
