package roulette

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/rng"
)

// Bet is a validated roulette wager choice
type Bet struct {
	Mode   string
	Color  string // set in color mode
	Number int    // set in number mode
}

// Choice renders the bet the way it is recorded in history
func (b Bet) Choice() string {
	if b.Mode == domain.RouletteModeNumber {
		return strconv.Itoa(b.Number)
	}
	return b.Color
}

// ParseBet validates mode and choice. Colors are matched case-insensitively.
func ParseBet(mode, choice string) (Bet, error) {
	choice = strings.TrimSpace(choice)

	switch mode {
	case domain.RouletteModeColor:
		color := cases.Title(language.English).String(choice)
		switch color {
		case domain.ColorRed, domain.ColorBlack, domain.ColorGreen:
			return Bet{Mode: mode, Color: color}, nil
		}
		return Bet{}, fmt.Errorf("%w: unknown color %q", domain.ErrInvalidParameters, choice)

	case domain.RouletteModeNumber:
		n, err := strconv.Atoi(choice)
		if err != nil || n < 0 || n > MaxNumber {
			return Bet{}, fmt.Errorf("%w: number must be 0-%d, got %q", domain.ErrInvalidParameters, MaxNumber, choice)
		}
		return Bet{Mode: mode, Number: n}, nil
	}

	return Bet{}, fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidParameters, mode)
}

// Draw spins the wheel, returning a uniform pocket in 0..36
func Draw(src rng.Source) int {
	return src.IntN(Pockets)
}

// ColorOf returns the pocket color of n
func ColorOf(n int) string {
	switch {
	case n == 0:
		return domain.ColorGreen
	case redNumbers[n]:
		return domain.ColorRed
	default:
		return domain.ColorBlack
	}
}

// Resolve reports whether b wins on number and the payout multiplier (0 on a loss)
func Resolve(b Bet, number int) (bool, float64) {
	if b.Mode == domain.RouletteModeNumber {
		if b.Number == number {
			return true, NumberMultiplier
		}
		return false, 0
	}
	if b.Color == ColorOf(number) {
		return true, ColorMultiplier
	}
	return false, 0
}
