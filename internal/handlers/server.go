// internal/handlers/server.go
package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/duelforge/duelforge/internal/room"
)

// Server bundles the relay's shared dependencies: the room registry and the
// process logger. One Server is built in main and handed to every handler.
type Server struct {
	Registry *room.Registry
	Logger   *logrus.Logger

	// Origins are the allowed WebSocket origin patterns.
	Origins []string
}

// NewServer wires a relay server around an owned registry.
func NewServer(logger *logrus.Logger, origins []string) *Server {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Server{
		Registry: room.NewRegistry(),
		Logger:   logger,
		Origins:  origins,
	}
}
