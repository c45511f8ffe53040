// internal/handlers/dispatch.go
package handlers

import (
	"errors"

	"github.com/duelforge/duelforge/internal/game"
	"github.com/duelforge/duelforge/internal/protocol"
	"github.com/duelforge/duelforge/internal/room"
)

// dispatch applies one decoded client message against the registry and
// pushes the resulting frames. Every mutation is serialized inside the
// registry; everything here works on snapshots it returns.
func (s *Server) dispatch(conn *room.Conn, msg *protocol.Message) {
	switch msg.Type {
	case protocol.TypeCreateRoom:
		s.handleCreateRoom(conn, msg.CreateRoom)
	case protocol.TypeJoinRoom:
		s.handleJoinRoom(conn, msg.JoinRoom)
	case protocol.TypeGameInit:
		s.handleGameInit(conn, msg.GameInit)
	case protocol.TypePlayCard:
		s.handlePlayCard(conn, msg.PlayCard)
	case protocol.TypeEndTurn:
		s.handleEndTurn(conn)
	case protocol.TypeChat:
		s.handleChat(conn, msg.Chat)
	case protocol.TypeLeaveRoom:
		s.handleLeaveRoom(conn)
	}
}

func (s *Server) handleCreateRoom(conn *room.Conn, req *protocol.CreateRoom) {
	r, err := s.Registry.Create(conn, req.Password, req.Username)
	if err != nil {
		conn.WriteError(clientMessage(err))
		return
	}
	s.Logger.Infof("conn %s created room %s", conn.ID, r.ID)
	conn.Write(protocol.RoomCreated(r.ID))
}

func (s *Server) handleJoinRoom(conn *room.Conn, req *protocol.JoinRoom) {
	res, err := s.Registry.Join(conn, req.RoomID, req.Password, req.Username)
	if err != nil {
		conn.WriteError(clientMessage(err))
		return
	}
	if !res.Matched {
		return
	}

	s.Logger.Infof("room %s matched", res.RoomID)
	matched := protocol.Matched(res.RoomID)
	for _, p := range res.Participants {
		p.Write(matched)
		p.Write(res.State)
	}
}

func (s *Server) handleGameInit(conn *room.Conn, req *protocol.GameInit) {
	// The name is recorded even before the sender has a room; only the
	// broadcast waits for a live game.
	sync := s.Registry.Rename(conn, req.Username)
	if sync == nil || !sync.HasGame {
		return
	}
	for _, p := range sync.Participants {
		p.Write(sync.State)
	}
}

func (s *Server) handlePlayCard(conn *room.Conn, req *protocol.PlayCard) {
	sync, err := s.Registry.PlayCard(conn.ID, req.CardID)
	if err != nil {
		s.Logger.Debugf("conn %s: play_card %s rejected: %v", conn.ID, req.CardID, err)
		conn.WriteError(clientMessage(err))
		return
	}
	for _, p := range sync.Participants {
		p.Write(sync.State)
	}
}

func (s *Server) handleEndTurn(conn *room.Conn) {
	sync, err := s.Registry.EndTurn(conn.ID)
	if err != nil {
		s.Logger.Debugf("conn %s: end_turn rejected: %v", conn.ID, err)
		conn.WriteError(clientMessage(err))
		return
	}
	for _, p := range sync.Participants {
		p.Write(sync.State)
	}
}

func (s *Server) handleChat(conn *room.Conn, req *protocol.Chat) {
	if req.Text == "" {
		return
	}
	// Relayed to the peer only; the sender echoes its own message locally.
	peer, ok := s.Registry.PeerOf(conn.ID)
	if !ok {
		return
	}
	peer.Write(protocol.ChatRelay(req.Username, req.Text))
}

func (s *Server) handleLeaveRoom(conn *room.Conn) {
	res := s.Registry.Leave(conn.ID)
	if res == nil {
		return
	}
	s.Logger.Infof("conn %s left room %s (deleted=%v)", conn.ID, res.RoomID, res.Deleted)
	if res.Remaining != nil {
		res.Remaining.Write(protocol.UserLeft("Opponent left the room"))
	}
}

// clientMessage maps registry and game errors onto the messages clients
// display. Unrecognized errors fall back to a generic line rather than
// leaking internals.
func clientMessage(err error) string {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return "Room not found"
	case errors.Is(err, room.ErrWrongPassword):
		return "Incorrect password"
	case errors.Is(err, room.ErrRoomFull):
		return "Room is full"
	case errors.Is(err, room.ErrAlreadyInRoom):
		return "Already in a room"
	case errors.Is(err, room.ErrNotInRoom):
		return "You are not in a room"
	case errors.Is(err, room.ErrNoGame):
		return "No game in progress"
	case errors.Is(err, game.ErrNotYourTurn):
		return "It is not your turn"
	case errors.Is(err, game.ErrCardNotInHand):
		return "Card is not in your hand"
	case errors.Is(err, game.ErrInsufficientMana):
		return "Insufficient mana"
	case errors.Is(err, game.ErrUnknownPlayer):
		return "You are not part of this game"
	default:
		return "Request failed"
	}
}
