package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/emzxxx/gridgame-backend/internal/entity"
	"github.com/emzxxx/gridgame-backend/internal/gridgame"
)

type matchRepo interface {
	CreateOrUpdate(ctx context.Context, match *entity.Match) error
	GetByID(ctx context.Context, id string) (*entity.Match, error)
	DeleteByID(ctx context.Context, id string) error
}

type metricsRecorder interface {
	MatchCreated()
	MatchFinished()
	TurnPlayed()
	TurnRejected(feedback string)
}

// CreateMatchParams carries the fixed per-match configuration.
type CreateMatchParams struct {
	GridSize    int
	Symbols     []entity.Symbol
	PlayerCount int
	Variant     gridgame.Variant
}

// MatchManager runs matches on top of the rules engine: it creates them,
// loads and stores snapshots, and applies turns. Every mutating call on a
// match is serialized behind a per-match lock so board mutation, game-over
// evaluation and turn advancement are observed as one step.
type MatchManager struct {
	logger  *slog.Logger
	repo    matchRepo
	metrics metricsRecorder

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewMatchManager(logger *slog.Logger, repo matchRepo, metrics metricsRecorder) *MatchManager {
	return &MatchManager{
		logger:  logger.With("component", "match_manager"),
		repo:    repo,
		metrics: metrics,

		locks: make(map[string]*sync.Mutex),
	}
}

// CreateMatch validates the configuration through the rules engine and
// stores the initial snapshot.
func (that *MatchManager) CreateMatch(ctx context.Context, params CreateMatchParams) (*entity.Match, error) {
	model, err := gridgame.NewModel(params.GridSize, params.Symbols, params.PlayerCount, params.Variant)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	match, err := model.Snapshot(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot new match: %w", err)
	}

	if err = that.repo.CreateOrUpdate(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to store match: %w", err)
	}

	that.metrics.MatchCreated()
	that.logger.Info("match created", "id", match.ID, "variant", match.Variant, "grid_size", match.GridSize)

	return match, nil
}

// GetMatch returns the stored snapshot of a match.
func (that *MatchManager) GetMatch(ctx context.Context, id string) (*entity.Match, error) {
	match, err := that.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	return match, nil
}

// MakeTurn applies one placement to a match and persists the result. A
// finished match is removed from storage; its final snapshot is still
// returned to the caller.
func (that *MatchManager) MakeTurn(ctx context.Context, id string, symbol entity.Symbol, cell entity.Cell) (entity.Feedback, *entity.Match, error) {
	lock := that.matchLock(id)
	lock.Lock()
	defer lock.Unlock()

	stored, err := that.repo.GetByID(ctx, id)
	if err != nil {
		return "", nil, fmt.Errorf("failed to get match: %w", err)
	}

	model, err := gridgame.FromSnapshot(stored)
	if err != nil {
		return "", nil, fmt.Errorf("failed to restore match: %w", err)
	}

	feedback, err := model.PlaceSymbol(symbol, cell)
	if err != nil {
		return "", nil, fmt.Errorf("failed to make turn: %w", err)
	}

	match, err := model.Snapshot(id)
	if err != nil {
		return "", nil, fmt.Errorf("failed to snapshot match: %w", err)
	}

	if feedback != entity.FeedbackValid {
		that.metrics.TurnRejected(string(feedback))
		return feedback, match, nil
	}

	that.metrics.TurnPlayed()

	if match.IsFinished() {
		that.cleanupMatch(ctx, match)
		return feedback, match, nil
	}

	if err = that.repo.CreateOrUpdate(ctx, match); err != nil {
		return "", nil, fmt.Errorf("failed to update match: %w", err)
	}

	return feedback, match, nil
}

// SymbolChoices lists the symbols a player may place in the given match.
func (that *MatchManager) SymbolChoices(ctx context.Context, id string, player entity.PlayerID) ([]entity.Symbol, error) {
	stored, err := that.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	model, err := gridgame.FromSnapshot(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to restore match: %w", err)
	}

	choices, err := model.SymbolChoices(player)
	if err != nil {
		return nil, fmt.Errorf("failed to get symbol choices: %w", err)
	}

	return choices, nil
}

func (that *MatchManager) cleanupMatch(ctx context.Context, match *entity.Match) {
	log := that.logger.With("method", "cleanupMatch")

	if err := that.repo.DeleteByID(ctx, match.ID); err != nil {
		log.Error("failed to delete finished match", "id", match.ID, "error", err)
		return
	}

	that.metrics.MatchFinished()

	that.mu.Lock()
	delete(that.locks, match.ID)
	that.mu.Unlock()

	log.Info("match finished", "id", match.ID, "winner", match.Winner)
}

func (that *MatchManager) matchLock(id string) *sync.Mutex {
	that.mu.Lock()
	defer that.mu.Unlock()

	lock, ok := that.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		that.locks[id] = lock
	}

	return lock
}
