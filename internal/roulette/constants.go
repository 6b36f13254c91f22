package roulette

// Wheel layout
const (
	MaxNumber = 36
	Pockets   = MaxNumber + 1
)

// Payout multipliers
const (
	ColorMultiplier  = 2.0
	NumberMultiplier = 35.0
)

// redNumbers is the set of red pockets; 0 is green and every other pocket is black
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// Log messages
const (
	LogMsgSpin = "Roulette spin"
)

// Error contexts
const (
	ErrContextSettle = "failed to settle roulette spin"
)
