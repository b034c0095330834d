package websocket

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seu-repo/partassist/internal/observability/telemetry"
	"github.com/seu-repo/partassist/internal/service/chat"
)

// inbound is one client frame. Only the query matters; unknown fields
// are ignored.
type inbound struct {
	Query string `json:"query"`
}

type errorFrame struct {
	Error string `json:"error"`
}

type ChatHandler struct {
	service *chat.Service
	logger  *zap.Logger
}

func NewChatHandler(service *chat.Service, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		logger:  logger,
	}
}

// HandleChat owns one connection for its whole life: a fresh session
// ID on connect, one reply per inbound frame, and context teardown
// when the socket closes.
func (h *ChatHandler) HandleChat(c *websocket.Conn) {
	sessionID := uuid.New().String()
	ctx := context.Background()

	telemetry.ActiveSessions.Inc()
	h.logger.Info("chat session opened", zap.String("session_id", sessionID))

	defer func() {
		h.service.Sessions().Drop(sessionID)
		telemetry.ActiveSessions.Dec()
		h.logger.Info("chat session closed", zap.String("session_id", sessionID))
	}()

	greeting, _ := json.Marshal(map[string]string{
		"session_id": sessionID,
		"message":    "Hi! I can help you find refrigerator and dishwasher parts, check compatibility, and troubleshoot problems.",
	})
	if err := c.WriteMessage(websocket.TextMessage, greeting); err != nil {
		return
	}

	for {
		messageType, data, err := c.ReadMessage()
		if err != nil {
			h.logger.Debug("websocket read ended", zap.String("session_id", sessionID), zap.Error(err))
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg inbound
		if err := json.Unmarshal(data, &msg); err != nil {
			// Plain text frames are accepted as the query itself.
			msg.Query = string(data)
		}
		msg.Query = strings.TrimSpace(msg.Query)
		if msg.Query == "" {
			h.writeJSON(c, sessionID, errorFrame{Error: "empty query"})
			continue
		}

		resp := h.service.ProcessTurn(ctx, sessionID, msg.Query)
		if !h.writeJSON(c, sessionID, resp) {
			break
		}
	}
}

func (h *ChatHandler) writeJSON(c *websocket.Conn, sessionID string, v interface{}) bool {
	payload, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("response encode failed", zap.String("session_id", sessionID), zap.Error(err))
		return true
	}
	if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
		h.logger.Warn("websocket write failed", zap.String("session_id", sessionID), zap.Error(err))
		return false
	}
	return true
}

// SetupChatRoutes registers the chat WebSocket endpoint.
func SetupChatRoutes(app *fiber.App, handler *ChatHandler) {
	app.Use("/ws/chat", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/chat", websocket.New(handler.HandleChat))
}
