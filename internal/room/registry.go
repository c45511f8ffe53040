// internal/room/registry.go
package room

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/duelforge/duelforge/internal/game"
	"github.com/duelforge/duelforge/internal/protocol"
)

// Registry failure modes. The WS handler maps these onto error frames.
var (
	ErrAlreadyInRoom = errors.New("connection is already in a room")
	ErrNotInRoom     = errors.New("connection is not in a room")
	ErrRoomNotFound  = errors.New("room not found")
	ErrWrongPassword = errors.New("incorrect password")
	ErrRoomFull      = errors.New("room is full")
	ErrNoGame        = errors.New("no game in progress")
)

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
const tokenLength = 6

// Registry owns all live rooms and serializes every room and game-state
// mutation behind one mutex, including every read and write of a
// connection's Username. It is constructed once per server process and
// passed by handle into the connection handlers, so room logic is testable
// without any transport. All state is process memory only; a restart loses
// every room.
type Registry struct {
	mu     sync.Mutex
	rooms  map[string]*Room
	byConn map[uuid.UUID]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rooms:  make(map[string]*Room),
		byConn: make(map[uuid.UUID]string),
	}
}

// JoinResult reports a successful join. Matched is true when the joiner was
// the second participant, in which case State carries the freshly-built
// initial game_state frame. Participants is snapshotted under the registry
// lock so callers can broadcast without re-entering it.
type JoinResult struct {
	RoomID       string
	Matched      bool
	Participants []*Conn
	State        protocol.Frame
}

// LeaveResult reports the outcome of removing a participant. Remaining is
// the peer still in the room, nil when the room was deleted.
type LeaveResult struct {
	RoomID    string
	Remaining *Conn
	Deleted   bool
}

// StateSync carries a game_state snapshot frame plus the participants to
// send it to. Snapshots are encoded under the registry lock, so later
// mutations cannot race the broadcast.
type StateSync struct {
	Participants []*Conn
	State        protocol.Frame
	HasGame      bool
}

// Create opens a new room with conn as its only participant. The token is
// a short random base36 string, regenerated on the rare collision. A
// non-empty username is recorded on the connection here, under the same
// lock that guards every other read of it.
func (reg *Registry) Create(conn *Conn, password, username string) (*Room, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if username != "" {
		conn.Username = username
	}
	if _, inRoom := reg.byConn[conn.ID]; inRoom {
		return nil, ErrAlreadyInRoom
	}

	token := newToken()
	for {
		if _, taken := reg.rooms[token]; !taken {
			break
		}
		token = newToken()
	}

	r := &Room{
		ID:           token,
		Password:     password,
		Creator:      conn.ID,
		Participants: map[uuid.UUID]*Conn{conn.ID: conn},
	}
	reg.rooms[token] = r
	reg.byConn[conn.ID] = token
	return r, nil
}

// Join adds conn to an existing room. Lookup, password comparison and
// occupancy are all checked before any mutation; a failed join leaves the
// room untouched. Joining as the second participant constructs the initial
// game state, with the room's creator taking the first turn. As with
// Create, a non-empty username is recorded under the registry lock.
func (reg *Registry) Join(conn *Conn, roomID, password, username string) (*JoinResult, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if username != "" {
		conn.Username = username
	}
	if _, inRoom := reg.byConn[conn.ID]; inRoom {
		return nil, ErrAlreadyInRoom
	}

	r, ok := reg.rooms[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if r.Password != "" && r.Password != password {
		return nil, ErrWrongPassword
	}
	if len(r.Participants) >= MaxParticipants {
		return nil, ErrRoomFull
	}

	r.Participants[conn.ID] = conn
	reg.byConn[conn.ID] = roomID

	res := &JoinResult{
		RoomID:       roomID,
		Participants: r.participants(),
	}
	if len(r.Participants) == MaxParticipants {
		creator := r.Participants[r.Creator]
		r.Game = game.NewState(
			creator.ID.String(), creator.Username,
			conn.ID.String(), conn.Username,
		)
		res.Matched = true
		res.State = protocol.GameState(r.Game)
	}
	return res, nil
}

// Leave removes connID from its room, deleting the room when it empties.
// Returns nil if the connection was not in any room. Disconnects use the
// same path, keyed by connection ID. Any in-progress game state is dropped
// with the room; there is no resumption.
func (reg *Registry) Leave(connID uuid.UUID) *LeaveResult {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	roomID, ok := reg.byConn[connID]
	if !ok {
		return nil
	}
	delete(reg.byConn, connID)

	r := reg.rooms[roomID]
	delete(r.Participants, connID)

	res := &LeaveResult{RoomID: roomID}
	if len(r.Participants) == 0 {
		delete(reg.rooms, roomID)
		res.Deleted = true
		return res
	}

	remaining := r.Peer(connID)
	// keep Creator pointing at a live participant for future rematches
	if r.Creator == connID && remaining != nil {
		r.Creator = remaining.ID
	}
	res.Remaining = remaining
	return res
}

// Rename records a display name for conn, whether or not it has joined a
// room yet. When the connection's room has a live game the matching player
// is renamed as well and a fresh snapshot returned for broadcast; before
// that the name just sticks to the connection, so it survives into a later
// create or join. Returns nil when there is nothing to broadcast.
func (reg *Registry) Rename(conn *Conn, username string) *StateSync {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if username != "" {
		conn.Username = username
	}

	roomID, ok := reg.byConn[conn.ID]
	if !ok {
		return nil
	}
	r := reg.rooms[roomID]

	sync := &StateSync{Participants: r.participants()}
	if r.Game != nil {
		if p, ok := r.Game.Players[conn.ID.String()]; ok && username != "" {
			p.Username = username
		}
		sync.HasGame = true
		sync.State = protocol.GameState(r.Game)
	}
	return sync
}

// PlayCard applies a play_card action for connID's player and returns a
// snapshot for broadcast. Rule violations are returned unwrapped from the
// game package; the state is untouched on any error.
func (reg *Registry) PlayCard(connID uuid.UUID, cardID string) (*StateSync, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, err := reg.gameRoom(connID)
	if err != nil {
		return nil, err
	}
	if err := game.PlayCard(r.Game, connID.String(), cardID); err != nil {
		return nil, err
	}
	return &StateSync{
		Participants: r.participants(),
		State:        protocol.GameState(r.Game),
		HasGame:      true,
	}, nil
}

// EndTurn passes the turn for connID's player and returns a snapshot for
// broadcast.
func (reg *Registry) EndTurn(connID uuid.UUID) (*StateSync, error) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	r, err := reg.gameRoom(connID)
	if err != nil {
		return nil, err
	}
	if err := game.EndTurn(r.Game, connID.String()); err != nil {
		return nil, err
	}
	return &StateSync{
		Participants: r.participants(),
		State:        protocol.GameState(r.Game),
		HasGame:      true,
	}, nil
}

// PeerOf returns the other participant in connID's room, if any.
func (reg *Registry) PeerOf(connID uuid.UUID) (*Conn, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	roomID, ok := reg.byConn[connID]
	if !ok {
		return nil, false
	}
	peer := reg.rooms[roomID].Peer(connID)
	return peer, peer != nil
}

// RoomFor returns the room connID currently belongs to.
func (reg *Registry) RoomFor(connID uuid.UUID) (*Room, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	roomID, ok := reg.byConn[connID]
	if !ok {
		return nil, false
	}
	r, ok := reg.rooms[roomID]
	return r, ok
}

// Len reports the number of live rooms.
func (reg *Registry) Len() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.rooms)
}

// gameRoom resolves connID to a room with an active game. Lock held.
func (reg *Registry) gameRoom(connID uuid.UUID) (*Room, error) {
	roomID, ok := reg.byConn[connID]
	if !ok {
		return nil, ErrNotInRoom
	}
	r := reg.rooms[roomID]
	if r.Game == nil {
		return nil, ErrNoGame
	}
	return r, nil
}

func newToken() string {
	b := make([]byte, tokenLength)
	for i := range b {
		b[i] = tokenAlphabet[rand.Intn(len(tokenAlphabet))]
	}
	return string(b)
}
