// internal/room/room.go
package room

import (
	"github.com/google/uuid"

	"github.com/duelforge/duelforge/internal/models"
)

// MaxParticipants is the hard cap on room occupancy.
const MaxParticipants = 2

// Room is a pairing slot holding up to two participants and, once full, the
// shared game state. Rooms live only in the registry's memory; a restart
// loses all of them.
type Room struct {
	ID           string
	Password     string
	Creator      uuid.UUID
	Participants map[uuid.UUID]*Conn
	Game         *models.GameState
}

// Peer returns the participant that is not connID, or nil.
func (r *Room) Peer(connID uuid.UUID) *Conn {
	for id, c := range r.Participants {
		if id != connID {
			return c
		}
	}
	return nil
}

// participants snapshots the current participant set. Registry lock held.
func (r *Room) participants() []*Conn {
	conns := make([]*Conn, 0, len(r.Participants))
	for _, c := range r.Participants {
		conns = append(conns, c)
	}
	return conns
}
