// internal/protocol/messages.go
package protocol

import (
	"encoding/json"
	"fmt"
)

// Client -> server message types.
const (
	TypeCreateRoom = "create_room"
	TypeJoinRoom   = "join_room"
	TypeGameInit   = "game_init"
	TypePlayCard   = "play_card"
	TypeEndTurn    = "end_turn"
	TypeChat       = "chat"
	TypeLeaveRoom  = "leave_room"
)

// Server -> client message types.
const (
	TypeRoomCreated = "room_created"
	TypeMatched     = "matched"
	TypeError       = "error"
	TypeGameState   = "game_state"
	TypeUserLeft    = "user_left"
)

// Envelope is the wire shape of every message in both directions:
// a type tag plus a type-specific data object.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// CreateRoom asks the server to open a new room, optionally password-locked.
type CreateRoom struct {
	Password string `json:"password,omitempty"`
	Username string `json:"username,omitempty"`
}

// JoinRoom asks the server to join an existing room by token.
type JoinRoom struct {
	RoomID   string `json:"roomId"`
	Password string `json:"password,omitempty"`
	Username string `json:"username,omitempty"`
}

// GameInit registers or refreshes the sender's display username.
type GameInit struct {
	Username string `json:"username"`
}

// PlayCard plays the referenced card from the sender's hand.
type PlayCard struct {
	CardID string `json:"cardId"`
}

// EndTurn passes the turn to the opponent. It carries no fields.
type EndTurn struct{}

// Chat is a text message relayed to the peer.
type Chat struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}

// LeaveRoom removes the sender from their room. It carries no fields.
type LeaveRoom struct{}

// Message is the decoded form of an inbound client frame: the type tag plus
// exactly one non-nil payload matching it.
type Message struct {
	Type string

	CreateRoom *CreateRoom
	JoinRoom   *JoinRoom
	GameInit   *GameInit
	PlayCard   *PlayCard
	EndTurn    *EndTurn
	Chat       *Chat
	LeaveRoom  *LeaveRoom
}

// Decode parses a raw text frame into a Message. Malformed JSON, unknown
// types, and payloads that do not match the variant's schema are rejected
// with an error; no partial Message is returned.
func Decode(raw []byte) (*Message, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("malformed frame: %w", err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("frame missing type tag")
	}

	data := env.Data
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}

	msg := &Message{Type: env.Type}
	var err error
	switch env.Type {
	case TypeCreateRoom:
		msg.CreateRoom = &CreateRoom{}
		err = json.Unmarshal(data, msg.CreateRoom)
	case TypeJoinRoom:
		msg.JoinRoom = &JoinRoom{}
		err = json.Unmarshal(data, msg.JoinRoom)
	case TypeGameInit:
		msg.GameInit = &GameInit{}
		err = json.Unmarshal(data, msg.GameInit)
	case TypePlayCard:
		msg.PlayCard = &PlayCard{}
		err = json.Unmarshal(data, msg.PlayCard)
	case TypeEndTurn:
		msg.EndTurn = &EndTurn{}
		err = json.Unmarshal(data, msg.EndTurn)
	case TypeChat:
		msg.Chat = &Chat{}
		err = json.Unmarshal(data, msg.Chat)
	case TypeLeaveRoom:
		msg.LeaveRoom = &LeaveRoom{}
		err = json.Unmarshal(data, msg.LeaveRoom)
	default:
		return nil, fmt.Errorf("unknown message type %q", env.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s payload: %w", env.Type, err)
	}
	return msg, nil
}
