package client

import (
	"time"

	"github.com/tomz197/blaster/internal/input"
)

// View identifies what the client is currently showing.
type View int

const (
	ViewStart    View = iota // Title screen
	ViewPlaying              // Active gameplay
	ViewOver                 // Game over, show final score and restart prompt
	ViewShutdown             // Server is shutting down
)

// ClientState holds per-connection state that is not part of the game itself.
type ClientState struct {
	Input         input.Input
	Running       bool          // Client loop running
	delta         time.Duration // Frame delta time (client-side)
	shutdown      bool          // Server asked us to leave
	shutdownTimer float64       // Countdown before auto-disconnect on shutdown
	isInactive    bool          // Whether the client is in inactive warning state
	prevView      View          // View drawn in the previous frame
	wasInactive   bool          // Inactivity state drawn in the previous frame
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		Running: true,
	}
}
