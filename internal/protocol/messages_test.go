// internal/protocol/messages_test.go
package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duelforge/duelforge/internal/models"
)

func TestDecodeCreateRoom(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"create_room","data":{"password":"x","username":"Alice"}}`))
	require.NoError(t, err)
	require.NotNil(t, msg.CreateRoom)
	assert.Equal(t, "x", msg.CreateRoom.Password)
	assert.Equal(t, "Alice", msg.CreateRoom.Username)
}

func TestDecodeJoinRoom(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"join_room","data":{"roomId":"abc123","password":"x"}}`))
	require.NoError(t, err)
	require.NotNil(t, msg.JoinRoom)
	assert.Equal(t, "abc123", msg.JoinRoom.RoomID)
	assert.Equal(t, "x", msg.JoinRoom.Password)
}

func TestDecodeMissingDataDefaultsEmpty(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"leave_room"}`))
	require.NoError(t, err)
	assert.NotNil(t, msg.LeaveRoom)

	msg, err = Decode([]byte(`{"type":"end_turn"}`))
	require.NoError(t, err)
	assert.NotNil(t, msg.EndTurn)
}

func TestDecodeRejections(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{"type":`},
		{"missing type", `{"data":{}}`},
		{"unknown type", `{"type":"teleport","data":{}}`},
		{"wrong payload shape", `{"type":"chat","data":"not an object"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := Decode([]byte(tc.raw))
			assert.Error(t, err)
			assert.Nil(t, msg)
		})
	}
}

func TestFrameEncoding(t *testing.T) {
	raw := Error("Room is full").Encode()

	var env struct {
		Type string    `json:"type"`
		Data ErrorData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, TypeError, env.Type)
	assert.Equal(t, "Room is full", env.Data.Message)
}

func TestChatRelayIsTimestamped(t *testing.T) {
	raw := ChatRelay("Alice", "hello").Encode()

	var env struct {
		Type string   `json:"type"`
		Data ChatData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, TypeChat, env.Type)
	assert.Equal(t, "Alice", env.Data.Username)
	assert.Equal(t, "hello", env.Data.Text)
	assert.NotEmpty(t, env.Data.Timestamp)
}

func TestGameStateFrameIsSnapshot(t *testing.T) {
	state := &models.GameState{
		Players: map[string]*models.Player{
			"p1": {ID: "p1", Life: 20},
		},
		CurrentTurn: "p1",
		Phase:       models.PhaseDraw,
		TurnNumber:  1,
	}
	frame := GameState(state)

	// mutations after framing must not leak into the snapshot
	state.Players["p1"].Life = 1
	state.TurnNumber = 99

	var env struct {
		Data models.GameState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(frame.Encode(), &env))
	assert.Equal(t, 20, env.Data.Players["p1"].Life)
	assert.Equal(t, 1, env.Data.TurnNumber)
}
