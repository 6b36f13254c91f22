package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// betField is the json name shared by every wager request
const betField = "bet"

// RegisterUserRequest registers a new player
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required"`
}

// UserRequest identifies the acting player for actions with no other inputs
type UserRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
}

// WagerRequest places a bet for a single-step game start
type WagerRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
	Bet    int    `json:"bet" validate:"min=10"`
}

// MinebombStartRequest opens a minebomb board
type MinebombStartRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
	Bet    int    `json:"bet" validate:"min=10"`
	Bombs  int    `json:"bombs" validate:"gte=3,lte=10"`
}

// MinebombRevealRequest reveals one cell of the active board
type MinebombRevealRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
	Index  *int   `json:"index" validate:"required,gte=0"`
}

// RouletteSpinRequest spins the wheel. Choice is a color name in color mode
// and a pocket number in number mode.
type RouletteSpinRequest struct {
	UserID string         `json:"user_id" validate:"required,max=100"`
	Bet    int            `json:"bet" validate:"min=10"`
	Mode   string         `json:"mode" validate:"required,oneof=color number"`
	Choice RouletteChoice `json:"choice" validate:"required" swaggertype:"string"`
}

// ClickerUpgradeRequest buys one level of an upgrade track
type ClickerUpgradeRequest struct {
	UserID string `json:"user_id" validate:"required,max=100"`
	Track  string `json:"upgrade_type" validate:"required,oneof=click auto factory bank"`
}

// RouletteChoice accepts either a JSON string or a JSON integer
type RouletteChoice string

// UnmarshalJSON implements json.Unmarshaler
func (c *RouletteChoice) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = RouletteChoice(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("choice must be a string or a number: %w", err)
	}
	if _, err := strconv.Atoi(n.String()); err != nil {
		return fmt.Errorf("choice must be a whole number: %w", err)
	}
	*c = RouletteChoice(n.String())
	return nil
}
