package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type lobby interface {
	Connect(sink entity.Sink) *entity.Session
	Disconnect(session *entity.Session)

	SetUsername(session *entity.Session, name string)
	ChatMessage(session *entity.Session, text string)
	Command(session *entity.Session, text string)
	ColumnClick(session *entity.Session, column int)
}

type Server struct {
	logger *slog.Logger
	lobby  lobby

	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, lobby lobby) *Server {
	return &Server{
		logger: logger.With("component", "websocket"),
		lobby:  lobby,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
	}
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.upgradeToWebSocket)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
		// no read/write timeouts: connections are long-lived
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket and runs its
// read loop until the client goes away.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	log.Info("WebSocket connection established", "remote", conn.RemoteAddr().String())

	that.handleMessages(conn)
}

// handleMessages - binds a session to the connection and feeds every
// inbound event into the lobby until the connection breaks, which
// counts as the session's disconnect.
func (that *Server) handleMessages(conn *websocket.Conn) {
	log := that.logger.With("method", "handleMessages")

	sink := newConnSink(that.logger, conn)
	session := that.lobby.Connect(sink)

	defer that.lobby.Disconnect(session)

	for {
		var message Message
		if err := conn.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		that.dispatch(session, &message)
	}
}

func (that *Server) dispatch(session *entity.Session, message *Message) {
	log := that.logger.With("method", "dispatch")

	switch message.Action {
	case actionSetUsername:
		var payload UsernamePayload
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			log.Error("failed to unmarshal payload", "action", message.Action, "error", err)
			return
		}
		that.lobby.SetUsername(session, payload.Username)

	case actionChatMessage:
		var payload ChatPayload
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			log.Error("failed to unmarshal payload", "action", message.Action, "error", err)
			return
		}
		that.lobby.ChatMessage(session, payload.Text)

	case actionChatCommand:
		var payload CommandPayload
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			log.Error("failed to unmarshal payload", "action", message.Action, "error", err)
			return
		}
		that.lobby.Command(session, payload.Command)

	case actionColumnClick:
		var payload ColumnPayload
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			log.Error("failed to unmarshal payload", "action", message.Action, "error", err)
			return
		}
		that.lobby.ColumnClick(session, payload.Column)

	default:
		log.Debug("unknown action", "action", message.Action)
	}
}
