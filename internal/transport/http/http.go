// Package http implements the HTTP/WebSocket transport for usher.
//
// This transport exposes a REST API for utterance dispatch and a WebSocket
// endpoint for interactive sessions. It is best suited for web clients,
// phones, and services that prefer HTTP-based communication.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/usherd/usher/internal/message"
	"github.com/usherd/usher/internal/transport"
)

// Transport implements transport.Transport over HTTP and WebSocket.
type Transport struct {
	port   int
	server *http.Server
}

// New creates a new HTTP transport on the given port.
func New(port int) *Transport {
	return &Transport{port: port}
}

// Name returns the transport identifier.
func (t *Transport) Name() string { return "http" }

// Listen starts the HTTP server and routes incoming requests to the handler.
func (t *Transport) Listen(ctx context.Context, handler transport.Handler) error {
	mux := http.NewServeMux()

	// POST /utterance: accepts a command utterance, returns the outcome.
	mux.HandleFunc("POST /utterance", func(w http.ResponseWriter, r *http.Request) {
		t.handleUtterance(w, r, handler)
	})

	// GET /ws: WebSocket endpoint for interactive sessions.
	mux.HandleFunc("GET /ws", func(w http.ResponseWriter, r *http.Request) {
		t.handleWebSocket(w, r, handler)
	})

	// Swagger UI: serves the generated OpenAPI docs.
	mux.Handle("GET /swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	t.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", t.port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("http transport listening", "port", t.port)

	go func() {
		<-ctx.Done()
		slog.Info("http transport shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = t.server.Shutdown(shutdownCtx)
	}()

	if err := t.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("http listen: %w", err)
	}
	return nil
}

// handleUtterance processes a POST /utterance request.
//
// @Summary     Dispatch a command utterance
// @Description Accepts a JSON message (with utterance text or a pre-tokenized sequence) or a raw text/plain body.
// @Description The utterance is offered to every command service; the winning candidate is executed and the
// @Description outcome, including any natural-language response, is returned to the sender.
// @Tags        dispatch
// @Accept      json
// @Accept      plain
// @Produce     json
// @Param       message  body      message.Message  true  "Utterance (JSON). For plain text, POST the utterance directly with Content-Type text/plain."
// @Param       X-Usher-Source         header  string  false  "Sender identifier (used with plain-text bodies)"
// @Param       X-Usher-Response-Mode  header  string  false  "Response mode: none, text, audio or text+audio (used with plain-text bodies)"
// @Success     200  {object}  message.DispatchResult  "Dispatch outcome"
// @Failure     400  {string}  string  "Invalid request body or headers"
// @Failure     500  {string}  string  "Internal processing error"
// @Router      /utterance [post]
func (t *Transport) handleUtterance(w http.ResponseWriter, r *http.Request, handler transport.Handler) {
	var msg message.Message

	contentType := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(contentType, "application/json"):
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
			return
		}
	default:
		// Treat the body as the raw utterance text.
		body, err := io.ReadAll(io.LimitReader(r.Body, 64<<10))
		if err != nil {
			http.Error(w, "reading body: "+err.Error(), http.StatusBadRequest)
			return
		}
		msg.Text = strings.TrimSpace(string(body))
		msg.Source = r.Header.Get("X-Usher-Source")
		msg.ResponseMode = message.ResponseMode(r.Header.Get("X-Usher-Response-Mode"))
	}

	stamp(&msg)

	result, err := handler(r.Context(), &msg)
	if err != nil {
		slog.Error("dispatch failed", "error", err)
		http.Error(w, "dispatch error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// handleWebSocket runs an interactive session: each text frame is one
// JSON message, each reply frame is its dispatch result. The connection
// stays open until the client goes away.
func (t *Transport) handleWebSocket(w http.ResponseWriter, r *http.Request, handler transport.Handler) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	slog.Info("websocket session started", "remote", conn.RemoteAddr())

	for {
		var msg message.Message
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("websocket read failed", "error", err)
			}
			return
		}
		stamp(&msg)

		result, err := handler(r.Context(), &msg)
		if err != nil {
			result = &message.DispatchResult{MessageID: msg.ID, Error: err.Error()}
		}
		if err := conn.WriteJSON(result); err != nil {
			slog.Warn("websocket write failed", "error", err)
			return
		}
	}
}

// stamp fills in the bookkeeping fields a client may omit.
func stamp(msg *message.Message) {
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
}

// Close gracefully shuts down the HTTP server.
func (t *Transport) Close() error {
	if t.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return t.server.Shutdown(ctx)
	}
	return nil
}
