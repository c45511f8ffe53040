// internal/protocol/frames.go
package protocol

import (
	"encoding/json"
	"time"

	"github.com/duelforge/duelforge/internal/models"
)

// Frame is an outbound server message, already shaped for the wire.
type Frame struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// RoomCreatedData acknowledges room creation to the creator.
type RoomCreatedData struct {
	RoomID string `json:"roomId"`
}

// MatchedData notifies both participants that the room is full.
type MatchedData struct {
	RoomID string `json:"roomId"`
}

// ErrorData reports a room or game-rule failure to one client.
type ErrorData struct {
	Message string `json:"message"`
}

// ChatData is the relayed form of a chat message, timestamped server-side.
type ChatData struct {
	Username  string `json:"username"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// UserLeftData informs the remaining participant their opponent is gone.
type UserLeftData struct {
	Message string `json:"message"`
}

func RoomCreated(roomID string) Frame {
	return Frame{Type: TypeRoomCreated, Data: RoomCreatedData{RoomID: roomID}}
}

func Matched(roomID string) Frame {
	return Frame{Type: TypeMatched, Data: MatchedData{RoomID: roomID}}
}

func Error(message string) Frame {
	return Frame{Type: TypeError, Data: ErrorData{Message: message}}
}

// GameState encodes the state immediately rather than holding the pointer,
// so the frame stays a stable snapshot once the caller's lock is released.
func GameState(state *models.GameState) Frame {
	data, err := json.Marshal(state)
	if err != nil {
		return Frame{Type: TypeGameState, Data: json.RawMessage("{}")}
	}
	return Frame{Type: TypeGameState, Data: json.RawMessage(data)}
}

func ChatRelay(username, text string) Frame {
	return Frame{Type: TypeChat, Data: ChatData{
		Username:  username,
		Text:      text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}}
}

func UserLeft(message string) Frame {
	return Frame{Type: TypeUserLeft, Data: UserLeftData{Message: message}}
}

// Encode marshals a frame for the wire. Marshal failures fall back to an
// empty object so a bad payload never tears down the write pump.
func (f Frame) Encode() []byte {
	data, err := json.Marshal(f)
	if err != nil {
		return []byte("{}")
	}
	return data
}
