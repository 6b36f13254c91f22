package minebomb

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/rng"
)

var diamondStep = decimal.RequireFromString(DiamondStep)

// ValidateBombs checks the requested bomb count
func ValidateBombs(bombs int) error {
	if bombs < MinBombs || bombs > MaxBombs {
		return fmt.Errorf("%w: bombs must be %d-%d, got %d", domain.ErrInvalidParameters, MinBombs, MaxBombs, bombs)
	}
	return nil
}

// NewBoard lays out bombs bomb cells among the grid and shuffles them
func NewBoard(src rng.Source, bet, bombs int) *domain.MinebombSession {
	grid := make([]string, domain.MinebombGridSize)
	for i := range grid {
		if i < bombs {
			grid[i] = domain.CellBomb
		} else {
			grid[i] = domain.CellSafe
		}
	}
	rng.Shuffle(src, grid)

	return &domain.MinebombSession{
		Bet:      bet,
		Bombs:    bombs,
		Grid:     grid,
		Revealed: []int{},
	}
}

// CheckReveal rejects indexes off the board or already uncovered
func CheckReveal(sess *domain.MinebombSession, index int) error {
	if index < 0 || index >= len(sess.Grid) {
		return fmt.Errorf("%w: index must be 0-%d, got %d", domain.ErrInvalidParameters, len(sess.Grid)-1, index)
	}
	if sess.IsRevealed(index) {
		return fmt.Errorf("%w: cell %d already revealed", domain.ErrInvalidParameters, index)
	}
	return nil
}

// Reveal uncovers index and reports whether it was a bomb. Call CheckReveal first.
func Reveal(sess *domain.MinebombSession, index int) (bomb bool) {
	sess.Revealed = append(sess.Revealed, index)
	if sess.Grid[index] == domain.CellBomb {
		return true
	}
	sess.DiamondsFound++
	return false
}

// Multiplier returns 1 + diamonds*0.3*(bombs/5), exactly
func Multiplier(diamonds, bombs int) decimal.Decimal {
	return decimal.NewFromInt(1).Add(
		decimal.NewFromInt(int64(diamonds)).
			Mul(diamondStep).
			Mul(decimal.NewFromInt(int64(bombs)).Div(decimal.NewFromInt(BombScale))),
	)
}

// PotentialWin is floor(bet * multiplier) and the multiplier it used
func PotentialWin(bet, diamonds, bombs int) (int, float64) {
	m := Multiplier(diamonds, bombs)
	return int(decimal.NewFromInt(int64(bet)).Mul(m).Floor().IntPart()), m.InexactFloat64()
}
