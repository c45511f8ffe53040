// internal/room/conn.go
package room

import (
	"log"

	"github.com/google/uuid"

	"github.com/duelforge/duelforge/internal/protocol"
)

// Conn is a single participant's presence in a room. The ID is an opaque
// connection identifier issued at upgrade time; room logic never touches
// the underlying transport.
type Conn struct {
	ID     uuid.UUID
	UserID uuid.UUID

	// Username is shared between connections once matched; the registry
	// mutex guards every read and write of it after construction.
	Username string

	Cancel func()
	Out    chan protocol.Frame
}

// NewConn builds a connection handle with a buffered outbound queue.
func NewConn(userID uuid.UUID, username string, cancel func()) *Conn {
	return &Conn{
		ID:       uuid.New(),
		UserID:   userID,
		Username: username,
		Cancel:   cancel,
		Out:      make(chan protocol.Frame, 16),
	}
}

// Write pushes a frame onto the connection's outbound queue without
// blocking. Sends are fire-and-forget: if the queue is full or closed the
// frame is dropped and logged.
func (c *Conn) Write(f protocol.Frame) {
	select {
	case c.Out <- f:
	default:
		log.Printf("room.Conn WARNING: out queue for conn %s full or closed, dropped %q frame", c.ID, f.Type)
	}
}

// WriteError is a convenience for sending an error frame.
func (c *Conn) WriteError(message string) {
	c.Write(protocol.Error(message))
}
