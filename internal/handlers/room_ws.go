// internal/handlers/room_ws.go
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/sirupsen/logrus"

	"github.com/duelforge/duelforge/internal/auth"
	"github.com/duelforge/duelforge/internal/protocol"
	"github.com/duelforge/duelforge/internal/room"
)

// RoomWSHandler upgrades the HTTP connection to WebSocket and runs the relay
// for its lifetime: a write pump goroutine drains the connection's outbound
// queue while the read pump dispatches inbound frames against the registry.
// On exit the connection is removed from its room and the peer notified.
func (s *Server) RoomWSHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		remoteAddr := r.RemoteAddr

		// Session cookie must be set before the 101 response is written.
		userID, err := auth.EnsureGuest(w, r)
		if err != nil {
			s.Logger.Warnf("guest session failed for %s: %v", remoteAddr, err)
			http.Error(w, "session error", http.StatusInternalServerError)
			return
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"duel"},
			OriginPatterns: s.Origins,
		})
		if err != nil {
			s.Logger.Warnf("websocket accept error from %s: %v", remoteAddr, err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler exit")

		if c.Subprotocol() != "duel" {
			c.Close(BadSubprotocolError, "client must speak the duel subprotocol")
			return
		}

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		conn := room.NewConn(userID, fmt.Sprintf("Guest_%s", userID.String()[:4]), cancel)
		s.Logger.WithFields(logrus.Fields{
			"conn":   conn.ID,
			"user":   userID,
			"remote": remoteAddr,
		}).Info("WebSocket connected")

		go s.writePump(ctx, c, conn)

		s.readPump(ctx, c, conn)

		// Disconnect shares the leave path, keyed by connection ID.
		if res := s.Registry.Leave(conn.ID); res != nil && res.Remaining != nil {
			res.Remaining.Write(protocol.UserLeft("Opponent disconnected"))
		}
		s.Logger.WithFields(logrus.Fields{
			"conn":   conn.ID,
			"remote": remoteAddr,
		}).Info("WebSocket disconnected")
	}
}

// readPump blocks reading frames from the client until the connection
// closes or the context is cancelled. Malformed or unknown frames are
// rejected explicitly and never affect the connection.
func (s *Server) readPump(ctx context.Context, c *websocket.Conn, conn *room.Conn) {
	for {
		typ, raw, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				s.Logger.Infof("conn %s: websocket closed normally", conn.ID)
			} else if strings.Contains(err.Error(), "context canceled") {
				// shutdown path, already logged by caller
			} else {
				s.Logger.Warnf("conn %s: read error: %v (close status %d)", conn.ID, err, status)
			}
			return
		}

		if typ != websocket.MessageText {
			s.Logger.Warnf("conn %s: ignoring non-text message type %d", conn.ID, typ)
			continue
		}

		msg, err := protocol.Decode(raw)
		if err != nil {
			s.Logger.Warnf("conn %s: rejected frame: %v", conn.ID, err)
			conn.WriteError("Invalid message format")
			continue
		}

		s.dispatch(conn, msg)
	}
}

// writePump drains the connection's outbound queue onto the socket,
// pinging periodically to keep intermediaries from timing the connection
// out. A failed write is left for the read pump to detect as closure.
func (s *Server) writePump(ctx context.Context, c *websocket.Conn, conn *room.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := c.Ping(pingCtx)
			cancel()
			if err != nil {
				s.Logger.Warnf("conn %s: ping failed: %v", conn.ID, err)
				return
			}
		case frame, ok := <-conn.Out:
			if !ok {
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := c.Write(writeCtx, websocket.MessageText, frame.Encode())
			cancel()
			if err != nil {
				s.Logger.Warnf("conn %s: write failed for %q frame: %v", conn.ID, frame.Type, err)
				return
			}
		}
	}
}
