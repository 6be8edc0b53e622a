// internal/httpserver/server.go
//
// HTTP server wiring for the word-grid backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access logs).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /games, GET /games, PUT /games/{gameId}/dict,
//     POST /games/{gameId}/moves, GET /games/{gameId}.
//   - Leaderboard from the journal: GET /leaderboard.
//
// Notes:
//   - Handlers pass raw bodies to the service, which owns all payload validation.
//   - Game-scoped handlers resolve the game before reading the body, so an
//     unknown game is a 404 whatever the body holds.
//   - Engine error kinds map to status codes in writeError only.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgrid/internal/game"
	"github.com/robalobadob/wordgrid/internal/service"
)

const maxBodyBytes int64 = 1 << 20

// Options tunes the transport.
type Options struct {
	ClientOrigin   string
	RequestTimeout time.Duration
}

// Server bundles router and game service.
type Server struct {
	r   *chi.Mux
	svc *service.Service

	srvMu sync.Mutex
	srv   *http.Server
}

// New constructs a Server, installs middleware, and registers routes.
func New(svc *service.Service, opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	s := &Server{r: chi.NewRouter(), svc: svc}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                    // add X-Request-ID
	s.r.Use(chimw.RealIP)                       // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))        // request-scoped zerolog logger
	s.r.Use(hlog.AccessHandler(accessLog))      // one log line per request
	s.r.Use(chimw.Recoverer)                    // recover from panics
	s.r.Use(chimw.Timeout(opts.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                    // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))            // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordgrid","endpoints":["/health","POST /games","GET /games","PUT /games/{gameId}/dict","POST /games/{gameId}/moves","GET /games/{gameId}","GET /leaderboard"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Route("/games", func(r chi.Router) {
		r.Post("/", s.handleCreateGame)
		r.Get("/", s.handleListGames)
		r.Route("/{gameId}", func(r chi.Router) {
			r.Get("/", s.handleGetGame)
			r.Put("/dict", s.handleAttachDictionary)
			r.Post("/moves", s.handleSubmitMove)
		})
	})
	s.r.Get("/leaderboard", s.handleLeaderboard)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr and blocks until Shutdown.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()

	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops a running server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ------------------------------ GAMES --------------------------------------

type createGameRes struct {
	GameID int `json:"gameId"`
}

// handleCreateGame validates the board payload and registers a new game.
func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	id, err := s.svc.CreateGameJSON(r.Context(), body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, createGameRes{GameID: id})
}

type listGamesRes struct {
	GameIDs []int `json:"gameIds"`
}

// handleListGames lists all game ids in creation order.
func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	ids, err := s.svc.GameIDs(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listGamesRes{GameIDs: ids})
}

// handleAttachDictionary sets (or replaces) the game's dictionary.
func (s *Server) handleAttachDictionary(w http.ResponseWriter, r *http.Request) {
	id, ok := s.existingGameID(w, r)
	if !ok {
		return
	}
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	if err := s.svc.AttachDictionaryJSON(r.Context(), id, body); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSubmitMove validates a tile path and scores it.
func (s *Server) handleSubmitMove(w http.ResponseWriter, r *http.Request) {
	id, ok := s.existingGameID(w, r)
	if !ok {
		return
	}
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	res, err := s.svc.SubmitMoveJSON(r.Context(), id, body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// handleGetGame returns a snapshot of the game.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := gameID(w, r)
	if !ok {
		return
	}
	snap, err := s.svc.Game(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// handleLeaderboard lists the top journaled games (?limit=, default 20).
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_limit"})
			return
		}
		limit = n
	}
	rows, err := s.svc.Leaderboard(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// ------------------------------- helpers -----------------------------------

// gameID parses {gameId}. Anything that is not a known-shaped id is a 404.
func gameID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "gameId"))
	if err != nil || id < 0 {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found"})
		return 0, false
	}
	return id, true
}

// existingGameID parses {gameId} and checks the game exists.
func (s *Server) existingGameID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, ok := gameID(w, r)
	if !ok {
		return 0, false
	}
	if err := s.svc.Exists(r.Context(), id); err != nil {
		writeError(w, r, err)
		return 0, false
	}
	return id, true
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "body_too_large"})
			return nil, false
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_body"})
		return nil, false
	}
	return body, true
}

// writeError maps engine error kinds to HTTP statuses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, kind := http.StatusInternalServerError, "internal"
	switch {
	case service.IsNotFound(err):
		status, kind = http.StatusNotFound, "not_found"
	case errors.Is(err, game.ErrInvalidBoard):
		status, kind = http.StatusBadRequest, "invalid_board"
	case errors.Is(err, game.ErrInvalidDictionary):
		status, kind = http.StatusBadRequest, "invalid_dictionary"
	case errors.Is(err, game.ErrMalformedMove):
		status, kind = http.StatusBadRequest, "malformed_move"
	case errors.Is(err, game.ErrDictionaryMissing):
		status, kind = http.StatusForbidden, "dictionary_missing"
	case errors.Is(err, game.ErrDisallowedMove):
		status, kind = http.StatusForbidden, "disallowed_move"
	case errors.Is(err, game.ErrDuplicateMove):
		status, kind = http.StatusForbidden, "duplicate_move"
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
	}
	writeJSON(w, status, map[string]string{"error": kind, "detail": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
