// Package streamserver accepts one WebSocket connection per camera-style
// client and decodes each binary frame it receives as a Telepen Numeric row
// image. It is the minimal real transport that would sit in front of a
// camera capture pipeline, without attempting to implement that pipeline
// itself.
package streamserver

import (
	"encoding/binary"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mharwood/telepengo/internal/metrics"
	"github.com/mharwood/telepengo/internal/rasterimage"
)

const (
	readTimeout = 60 * time.Second
	pingPeriod  = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server decodes Telepen frames streamed over WebSocket connections.
type Server struct {
	Addr string
}

// New returns a Server bound to addr.
func New(addr string) *Server {
	return &Server{Addr: addr}
}

// ListenAndServe registers the decode handler and blocks serving HTTP.
func (s *Server) ListenAndServe() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/decode", s.decodeHandler)
	return http.ListenAndServe(s.Addr, mux)
}

// decodeHandler upgrades the connection and decodes one frame per binary
// message, writing back the digit string or an empty message on failure.
func (s *Server) decodeHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	slog.Info("stream connection established", "remote_addr", r.RemoteAddr)
	s.serveConn(conn)
}

// serveConn reads frames until the client disconnects.
func (s *Server) serveConn(conn *websocket.Conn) {
	_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	stop := make(chan struct{})
	defer close(stop)
	go s.keepAlive(conn, stop)

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("stream read error", "error", err)
			}
			return
		}
		if messageType != websocket.BinaryMessage {
			continue
		}
		s.handleFrame(conn, data)
	}
}

func (s *Server) keepAlive(conn *websocket.Conn, stop <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second)); err != nil {
				return
			}
		}
	}
}

// handleFrame decodes one frame and writes back the result as a text
// message: the digit string on success, or an empty string when nothing
// decoded or the frame was malformed.
func (s *Server) handleFrame(conn *websocket.Conn, data []byte) {
	image, err := decodeFrame(data)
	if err != nil {
		slog.Warn("malformed frame", "error", err)
		_ = conn.WriteMessage(websocket.TextMessage, nil)
		return
	}

	text, ok := metrics.Decode(image)
	if !ok {
		_ = conn.WriteMessage(websocket.TextMessage, nil)
		return
	}
	_ = conn.WriteMessage(websocket.TextMessage, []byte(text))
}

// frameHeaderLen is the width/height prefix on every wire frame: two
// big-endian uint32s.
const frameHeaderLen = 8

// decodeFrame parses a wire frame of the form width(4) || height(4) ||
// RGBA pixels(width*height*4) into a rasterimage.Image.
func decodeFrame(data []byte) (*rasterimage.Image, error) {
	if len(data) < frameHeaderLen {
		return nil, errTooShort
	}
	width := int(binary.BigEndian.Uint32(data[0:4]))
	height := int(binary.BigEndian.Uint32(data[4:8]))
	pix := data[frameHeaderLen:]

	if width <= 0 || height <= 0 || len(pix) != width*height*4 {
		return nil, errBadDimensions
	}
	return rasterimage.NewFromRGBA(width, height, pix), nil
}
