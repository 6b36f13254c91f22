// Package engine is the single entry point over the wager games and the stats aggregator.
// Transports translate requests into StartGame/ApplyAction calls and render the results.
package engine

import (
	"context"
	"fmt"

	"github.com/osse101/Casino_Go/internal/blackjack"
	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/minebomb"
	"github.com/osse101/Casino_Go/internal/roulette"
	"github.com/osse101/Casino_Go/internal/slots"
)

// Params carries every game's inputs; each game reads only the fields it needs
type Params struct {
	UserID string
	Bet    int
	Bombs  int
	Mode   string
	Choice string
	Index  int
}

// StartResult holds the response of whichever game was started
type StartResult struct {
	GameType  domain.GameType               `json:"game_type"`
	Blackjack *domain.BlackjackStartResult `json:"blackjack,omitempty"`
	Minebomb  *domain.MinebombStartResult  `json:"minebomb,omitempty"`
	Roulette  *domain.RouletteResult       `json:"roulette,omitempty"`
	Slots     *domain.SlotsResult          `json:"slots,omitempty"`
}

// ActionResult holds the response of whichever action was applied
type ActionResult struct {
	GameType        domain.GameType               `json:"game_type"`
	Action          string                        `json:"action"`
	BlackjackHit    *domain.BlackjackHitResult    `json:"blackjack_hit,omitempty"`
	BlackjackStand  *domain.BlackjackStandResult  `json:"blackjack_stand,omitempty"`
	MinebombReveal  *domain.MinebombRevealResult  `json:"minebomb_reveal,omitempty"`
	MinebombCashout *domain.MinebombCashoutResult `json:"minebomb_cashout,omitempty"`
}

// Snapshotter computes aggregate stats for a scope
type Snapshotter interface {
	Snapshot(ctx context.Context, scope domain.StatsScope) (*domain.StatsSnapshot, error)
}

// Games bundles the game services the engine dispatches to
type Games struct {
	Blackjack blackjack.Service
	Minebomb  minebomb.Service
	Roulette  roulette.Service
	Slots     slots.Service
}

// Engine defines the facade over every game
type Engine interface {
	StartGame(ctx context.Context, gameType domain.GameType, params Params) (*StartResult, error)
	ApplyAction(ctx context.Context, gameType domain.GameType, action string, params Params) (*ActionResult, error)
	StatsSnapshot(ctx context.Context, scope domain.StatsScope) (*domain.StatsSnapshot, error)
}

type actionFunc func(ctx context.Context, p Params, res *ActionResult) error

type engine struct {
	games   Games
	stats   Snapshotter
	actions map[actionKey]actionFunc
}

type actionKey struct {
	game   domain.GameType
	action string
}

// New creates the engine facade
func New(games Games, stats Snapshotter) Engine {
	e := &engine{games: games, stats: stats}
	e.actions = map[actionKey]actionFunc{
		{domain.GameBlackjack, ActionHit}: func(ctx context.Context, p Params, res *ActionResult) (err error) {
			res.BlackjackHit, err = e.games.Blackjack.Hit(ctx, p.UserID)
			return err
		},
		{domain.GameBlackjack, ActionStand}: func(ctx context.Context, p Params, res *ActionResult) (err error) {
			res.BlackjackStand, err = e.games.Blackjack.Stand(ctx, p.UserID)
			return err
		},
		{domain.GameMinebomb, ActionReveal}: func(ctx context.Context, p Params, res *ActionResult) (err error) {
			res.MinebombReveal, err = e.games.Minebomb.Reveal(ctx, p.UserID, p.Index)
			return err
		},
		{domain.GameMinebomb, ActionCashout}: func(ctx context.Context, p Params, res *ActionResult) (err error) {
			res.MinebombCashout, err = e.games.Minebomb.Cashout(ctx, p.UserID)
			return err
		},
	}
	return e
}

// StartGame opens a session game or plays a single-shot game to completion
func (e *engine) StartGame(ctx context.Context, gameType domain.GameType, p Params) (*StartResult, error) {
	res := &StartResult{GameType: gameType}
	var err error

	switch gameType {
	case domain.GameBlackjack:
		res.Blackjack, err = e.games.Blackjack.Start(ctx, p.UserID, p.Bet)
	case domain.GameMinebomb:
		res.Minebomb, err = e.games.Minebomb.Start(ctx, p.UserID, p.Bet, p.Bombs)
	case domain.GameRoulette:
		res.Roulette, err = e.games.Roulette.Spin(ctx, p.UserID, p.Bet, p.Mode, p.Choice)
	case domain.GameSlots:
		res.Slots, err = e.games.Slots.Spin(ctx, p.UserID, p.Bet)
	default:
		return nil, fmt.Errorf("%w: unknown game %q", domain.ErrInvalidParameters, gameType)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ApplyAction advances an in-progress session game.
// Single-shot games have no actions.
func (e *engine) ApplyAction(ctx context.Context, gameType domain.GameType, action string, p Params) (*ActionResult, error) {
	if !gameType.Valid() {
		return nil, fmt.Errorf("%w: unknown game %q", domain.ErrInvalidParameters, gameType)
	}
	fn, ok := e.actions[actionKey{gameType, action}]
	if !ok {
		return nil, fmt.Errorf("%w: game %q has no action %q", domain.ErrInvalidParameters, gameType, action)
	}

	res := &ActionResult{GameType: gameType, Action: action}
	if err := fn(ctx, p, res); err != nil {
		return nil, err
	}
	return res, nil
}

// StatsSnapshot recomputes the aggregate for scope
func (e *engine) StatsSnapshot(ctx context.Context, scope domain.StatsScope) (*domain.StatsSnapshot, error) {
	return e.stats.Snapshot(ctx, scope)
}
