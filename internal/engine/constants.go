package engine

// Session game actions
const (
	ActionHit     = "hit"
	ActionStand   = "stand"
	ActionReveal  = "reveal"
	ActionCashout = "cashout"
)
