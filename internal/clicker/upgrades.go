package clicker

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/Casino_Go/internal/domain"
)

// NextCost grows cost by the track's factor, truncating any fraction
func NextCost(track string, cost int) (int, error) {
	factor, ok := growthFactors[track]
	if !ok {
		return 0, fmt.Errorf("%w: unknown upgrade %q", domain.ErrInvalidParameters, track)
	}
	return int(decimal.NewFromInt(int64(cost)).Mul(decimal.RequireFromString(factor)).IntPart()), nil
}

// CostOf returns the price of the next purchase on track
func CostOf(data *domain.ClickerData, track string) (int, error) {
	switch track {
	case TrackClick:
		return data.ClickCost, nil
	case TrackAuto:
		return data.AutoCost, nil
	case TrackFactory:
		return data.FactoryCost, nil
	case TrackBank:
		return data.BankCost, nil
	}
	return 0, fmt.Errorf("%w: unknown upgrade %q", domain.ErrInvalidParameters, track)
}

// ApplyUpgrade levels track up once and reprices it. It does not touch the balance.
func ApplyUpgrade(data *domain.ClickerData, track string) (newLevel int, err error) {
	cost, err := CostOf(data, track)
	if err != nil {
		return 0, err
	}
	next, err := NextCost(track, cost)
	if err != nil {
		return 0, err
	}

	switch track {
	case TrackClick:
		data.ClickPower++
		data.ClickLevel++
		data.ClickCost = next
		return data.ClickLevel, nil
	case TrackAuto:
		data.AutoLevel++
		data.AutoCost = next
		return data.AutoLevel, nil
	case TrackFactory:
		data.FactoryLevel++
		data.FactoryCost = next
		return data.FactoryLevel, nil
	default:
		data.BankLevel++
		data.BankCost = next
		return data.BankLevel, nil
	}
}
