// Package server hosts many independent minefield sessions over WebSocket.
// Clients issue JSON commands and receive the packed board export plus the
// aggregate counters after every mutation, so a renderer never has to query
// per cell.
package server

import (
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/sweeplab/minefield/game"
)

// Command is one client request. Action is "new", "reveal", "flag" or
// "question"; Row/Col address a cell for the latter three, and
// Rows/Cols/Mines configure the board for "new".
type Command struct {
	Action string `json:"action"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`

	Rows  int `json:"rows,omitempty"`
	Cols  int `json:"cols,omitempty"`
	Mines int `json:"mines,omitempty"`
}

// State is pushed to the client after the session is created and after
// every command. Board is the 3-bytes-per-cell packed export
// (base64-encoded by JSON marshalling).
type State struct {
	Session        string `json:"session"`
	Status         string `json:"status"`
	Rows           int    `json:"rows"`
	Cols           int    `json:"cols"`
	TotalMines     int    `json:"totalMines"`
	RemainingFlags int    `json:"remainingFlags"`
	Board          []byte `json:"board"`

	// Error reports a rejected command; the session stays usable.
	Error string `json:"error,omitempty"`
}

// Server owns the session registry and the WebSocket endpoint.
type Server struct {
	sessions *Manager
	log      *logrus.Logger
	upgrader websocket.Upgrader
}

func NewServer(log *logrus.Logger) *Server {
	return &Server{
		sessions: NewManager(),
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (server *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", server.handleWS)
	return mux
}

func (server *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := server.upgrader.Upgrade(w, r, nil)
	if err != nil {
		server.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	session, err := server.sessions.Create(game.NewConfig())
	if err != nil {
		server.log.WithError(err).Error("could not create session")
		return
	}
	defer server.sessions.Delete(session.ID)

	log := server.log.WithField("session", session.ID)
	log.Info("session started")
	defer log.Info("session closed")

	if err := server.push(conn, session, ""); err != nil {
		return
	}

	for {
		var command Command
		if err := conn.ReadJSON(&command); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("read failed")
			}
			return
		}

		cmdErr := server.apply(session, command)
		if cmdErr != nil {
			log.WithError(cmdErr).WithField("action", command.Action).Debug("command rejected")
		}
		if err := server.push(conn, session, errorCode(cmdErr)); err != nil {
			return
		}
	}
}

func (server *Server) apply(session *Session, command Command) error {
	switch command.Action {
	case "new":
		config := game.NewConfig()
		if command.Rows > 0 || command.Cols > 0 {
			config.Rows, config.Cols = command.Rows, command.Cols
			config.NumMines = -1
		}
		if command.Mines > 0 {
			config.NumMines = command.Mines
		}
		return session.Reset(config)
	case "reveal":
		return session.With(func(g *game.Game) error {
			return g.Reveal(command.Row, command.Col)
		})
	case "flag":
		return session.With(func(g *game.Game) error {
			return g.ToggleFlag(command.Row, command.Col)
		})
	case "question":
		return session.With(func(g *game.Game) error {
			return g.ToggleQuestion(command.Row, command.Col)
		})
	default:
		return errors.New("unknown action")
	}
}

func (server *Server) push(conn *websocket.Conn, session *Session, errCode string) error {
	var state State
	_ = session.With(func(g *game.Game) error {
		state = State{
			Session:        session.ID,
			Status:         g.Status().String(),
			Rows:           g.Rows(),
			Cols:           g.Cols(),
			TotalMines:     g.TotalMines(),
			RemainingFlags: g.RemainingFlags(),
			Board:          g.ExportPacked(),
			Error:          errCode,
		}
		return nil
	})

	if err := conn.WriteJSON(state); err != nil {
		server.log.WithError(err).Warn("write failed")
		return err
	}
	return nil
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, game.ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, game.ErrNoFlagsRemaining):
		return "no_flags_remaining"
	case errors.Is(err, game.ErrGameOver):
		return "game_over"
	case errors.Is(err, game.ErrInvalidDimensions):
		return "invalid_dimensions"
	default:
		return err.Error()
	}
}
