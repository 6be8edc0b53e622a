// internal/service/service.go
//
// The three game operations exposed to transports:
//   - CreateGame:       validate a board and register a new game.
//   - AttachDictionary: set (or replace) a game's word list.
//   - SubmitMove:       validate, score and record a path.
//
// Each operation comes in a typed form for in-process callers and a *JSON form
// that parses a raw payload. The JSON forms resolve the game before parsing,
// so an unknown game is reported ahead of any payload problem.
//
// Accepted results are written to the history journal best effort: journal
// failures are logged and never fail the operation.
package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordgrid/internal/game"
	"github.com/robalobadob/wordgrid/internal/history"
	"github.com/robalobadob/wordgrid/internal/store"
)

// ErrNotFound is returned for unknown games.
var ErrNotFound = store.ErrNotFound

// Service runs game operations against a store.
type Service struct {
	store     store.Store
	journal   history.Journal
	adjacency game.Adjacency
}

// Option configures a Service.
type Option func(*Service)

// WithJournal records activity to j.
func WithJournal(j history.Journal) Option {
	return func(s *Service) { s.journal = j }
}

// WithAdjacency sets the neighbour rule for newly created games.
func WithAdjacency(a game.Adjacency) Option {
	return func(s *Service) { s.adjacency = a }
}

// New constructs a Service over st.
func New(st store.Store, opts ...Option) *Service {
	s := &Service{store: st, journal: history.Nop{}, adjacency: game.AdjacencyOffset}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateGame validates letters and registers a new game.
func (s *Service) CreateGame(ctx context.Context, letters []string) (int, error) {
	b, err := game.NewBoard(letters)
	if err != nil {
		return 0, err
	}
	return s.create(ctx, b)
}

// CreateGameJSON parses a {"board": [...]} payload and registers a new game.
func (s *Service) CreateGameJSON(ctx context.Context, data []byte) (int, error) {
	b, err := game.ParseBoardInput(data)
	if err != nil {
		return 0, err
	}
	return s.create(ctx, b)
}

func (s *Service) create(ctx context.Context, b game.Board) (int, error) {
	id, err := s.store.Create(ctx, game.New(b, s.adjacency))
	if err != nil {
		return 0, err
	}
	log.Info().Int("gameId", id).Str("adjacency", s.adjacency.String()).Msg("game created")
	// The id is visible in the store before its journal row exists. A
	// concurrent attach or move on it can fail the journal's foreign key;
	// that failure is only logged and the in-memory game stays authoritative.
	if err := s.journal.RecordGame(ctx, id, b.Letters()); err != nil {
		log.Warn().Err(err).Int("gameId", id).Msg("journal game")
	}
	return id, nil
}

// AttachDictionary sets the game's dictionary, replacing any previous one.
func (s *Service) AttachDictionary(ctx context.Context, gameID int, words []string) error {
	g, err := s.store.Get(ctx, gameID)
	if err != nil {
		return err
	}
	d := game.NewDictionary(words)
	g.AttachDictionary(d)
	s.dictionaryAttached(ctx, gameID, d)
	return nil
}

// AttachDictionaryJSON parses a {"words": [...]} payload and attaches it.
func (s *Service) AttachDictionaryJSON(ctx context.Context, gameID int, data []byte) error {
	g, err := s.store.Get(ctx, gameID)
	if err != nil {
		return err
	}
	d, err := g.AttachDictionaryInput(data)
	if err != nil {
		return err
	}
	s.dictionaryAttached(ctx, gameID, d)
	return nil
}

func (s *Service) dictionaryAttached(ctx context.Context, gameID int, d game.Dictionary) {
	log.Info().Int("gameId", gameID).Int("words", d.Len()).Msg("dictionary attached")
	if err := s.journal.RecordDictionary(ctx, gameID, d.Len()); err != nil {
		log.Warn().Err(err).Int("gameId", gameID).Msg("journal dictionary")
	}
}

// SubmitMove validates tiles against the game and records the move if accepted.
func (s *Service) SubmitMove(ctx context.Context, gameID int, tiles []int) (game.MoveResult, error) {
	g, err := s.store.Get(ctx, gameID)
	if err != nil {
		return game.MoveResult{}, err
	}
	res, m, err := g.SubmitMove(tiles)
	return s.moveSubmitted(ctx, gameID, res, m, err)
}

// SubmitMoveJSON parses a JSON array of tile indices and submits it.
func (s *Service) SubmitMoveJSON(ctx context.Context, gameID int, data []byte) (game.MoveResult, error) {
	g, err := s.store.Get(ctx, gameID)
	if err != nil {
		return game.MoveResult{}, err
	}
	res, m, err := g.SubmitMoveInput(data)
	return s.moveSubmitted(ctx, gameID, res, m, err)
}

func (s *Service) moveSubmitted(ctx context.Context, gameID int, res game.MoveResult, m game.Move, err error) (game.MoveResult, error) {
	if err != nil {
		log.Debug().Err(err).Int("gameId", gameID).Msg("move rejected")
		return game.MoveResult{}, err
	}
	log.Info().Int("gameId", gameID).Int("moveId", res.MoveID).Str("word", m.Word).Int("points", res.Points).Msg("move accepted")
	if err := s.journal.RecordMove(ctx, gameID, res.MoveID, m); err != nil {
		log.Warn().Err(err).Int("gameId", gameID).Int("moveId", res.MoveID).Msg("journal move")
	}
	return res, nil
}

// Game returns a snapshot of one game.
func (s *Service) Game(ctx context.Context, gameID int) (game.Snapshot, error) {
	g, err := s.store.Get(ctx, gameID)
	if err != nil {
		return game.Snapshot{}, err
	}
	return g.Snapshot(), nil
}

// GameIDs lists every game in creation order.
func (s *Service) GameIDs(ctx context.Context) ([]int, error) {
	return s.store.IDs(ctx)
}

// Exists returns ErrNotFound if gameID has no game.
func (s *Service) Exists(ctx context.Context, gameID int) error {
	_, err := s.store.Get(ctx, gameID)
	return err
}

// Leaderboard returns the highest scoring journaled games.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]history.LBRow, error) {
	return s.journal.Leaderboard(ctx, limit)
}

// IsNotFound reports whether err means the game does not exist.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
