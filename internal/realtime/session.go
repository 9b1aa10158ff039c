package realtime

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fprevidi/Blabbo/config"
	"github.com/fprevidi/Blabbo/pkg/logger"
	"github.com/fprevidi/Blabbo/pkg/utils"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	defaultPongWait     = 60 * time.Second
	defaultPingInterval = 25 * time.Second
	defaultWriteWait    = 10 * time.Second

	maxFrameSize  = 64 * 1024
	sendQueueSize = 64
)

// Session is one authenticated websocket connection. A user may hold several
// at once (one per device); presence only flips on the first and last.
type Session struct {
	hub    *Hub
	conn   *websocket.Conn
	logger logger.Logger

	userID   uuid.UUID
	username string

	pongWait     time.Duration
	pingInterval time.Duration
	writeWait    time.Duration

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newSession(hub *Hub, conn *websocket.Conn, userID uuid.UUID, username string, cfg *config.Config, logger logger.Logger) *Session {
	s := &Session{
		hub:          hub,
		conn:         conn,
		logger:       logger,
		userID:       userID,
		username:     username,
		pongWait:     defaultPongWait,
		pingInterval: defaultPingInterval,
		writeWait:    defaultWriteWait,
		send:         make(chan []byte, sendQueueSize),
		done:         make(chan struct{}),
	}
	if cfg.Realtime.PongWaitSeconds > 0 {
		s.pongWait = time.Duration(cfg.Realtime.PongWaitSeconds) * time.Second
	}
	if cfg.Realtime.PingIntervalSeconds > 0 {
		s.pingInterval = time.Duration(cfg.Realtime.PingIntervalSeconds) * time.Second
	}
	if cfg.Realtime.WriteWaitSeconds > 0 {
		s.writeWait = time.Duration(cfg.Realtime.WriteWaitSeconds) * time.Second
	}
	return s
}

// enqueue hands a frame to the write pump. A session that cannot keep up gets
// dropped rather than blocking the room fan-out. The send channel itself is
// never closed: the hub may still hold this session in its maps while frames
// race in from other goroutines, so teardown is signalled through done and the
// channel stays writable until the session is garbage.
func (s *Session) enqueue(frame []byte) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.send <- frame:
	case <-s.done:
	default:
		s.logger.Warn("session send queue full, dropping connection", "user_id", s.userID)
		s.close()
	}
}

func (s *Session) sendEvent(eventType EventType, payload any) {
	frame, err := Encode(eventType, payload)
	if err != nil {
		s.logger.Error("failed to encode event", "event", string(eventType), "err", err)
		return
	}
	s.enqueue(frame)
}

func (s *Session) close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

func (s *Session) readPump(ctx context.Context) {
	defer func() {
		s.hub.Unregister(ctx, s)
		s.close()
		s.conn.Close()
	}()

	s.conn.SetReadLimit(maxFrameSize)
	s.conn.SetReadDeadline(time.Now().Add(s.pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.pongWait))
	})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("unexpected close", "user_id", s.userID, "err", err)
			}
			return
		}
		s.dispatch(ctx, raw)
	}
}

func (s *Session) dispatch(ctx context.Context, raw []byte) {
	eventType, payload, err := ParseEvent(raw)
	if err != nil {
		s.sendEvent(EventError, ErrorPayload{Message: err.Error()})
		return
	}

	switch eventType {
	case EventJoinChat:
		s.hub.JoinChat(ctx, s, payload.(*JoinChatPayload).ChatID)
	case EventLeaveChat:
		s.hub.LeaveChat(s, payload.(*JoinChatPayload).ChatID)
	case EventSend:
		s.hub.HandleSend(ctx, s, payload.(*SendMessagePayload))
	case EventMarkRead:
		s.hub.HandleMarkRead(ctx, s, payload.(*MarkReadPayload).MessageID)
	case EventTyping, EventStopTyping:
		s.hub.HandleTyping(s, eventType, payload.(*TypingPayload).ChatID)
	}
}

func (s *Session) writePump() {
	ticker := time.NewTicker(s.pingInterval)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case frame := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(s.writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-s.done:
			s.conn.SetWriteDeadline(time.Now().Add(s.writeWait))
			s.conn.WriteMessage(websocket.CloseMessage, nil)
			return
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(s.writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Server upgrades HTTP requests into hub sessions.
type Server struct {
	hub      *Hub
	cfg      *config.Config
	logger   logger.Logger
	upgrader websocket.Upgrader
}

func NewServer(hub *Hub, cfg *config.Config, logger logger.Logger) *Server {
	return &Server{
		hub:    hub,
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// HandleWS authenticates via the token query parameter (or bearer header)
// before upgrading. Sockets never carry an unauthenticated frame.
func (srv *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		token = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	}
	claims, err := utils.ParseJWTClaims(token, srv.cfg)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := srv.upgrader.Upgrade(w, r, nil)
	if err != nil {
		srv.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	// The request context dies with the HTTP handler; sessions outlive it.
	ctx := context.Background()
	s := newSession(srv.hub, conn, userID, claims.Username, srv.cfg, srv.logger)
	srv.hub.Register(ctx, s)

	go s.writePump()
	go s.readPump(ctx)
}
