package slots

// Symbol constants
const (
	SymbolSlot    = "🎰"
	SymbolLemon   = "🍋"
	SymbolOrange  = "🍊"
	SymbolGrape   = "🍇"
	SymbolSeven   = "7️⃣"
	SymbolDiamond = "💎"
)

// Symbols is the reel alphabet. Every symbol is equally likely.
var Symbols = []string{SymbolSlot, SymbolLemon, SymbolOrange, SymbolGrape, SymbolSeven, SymbolDiamond}

// PayoutMultipliers defines the payout for 3 matching symbols
var PayoutMultipliers = map[string]float64{
	SymbolDiamond: 100.0,
	SymbolSeven:   50.0,
	SymbolSlot:    20.0,
	SymbolLemon:   15.0,
	SymbolOrange:  12.0,
	SymbolGrape:   10.0,
}

// Fallback payouts
const (
	DefaultTripleMultiplier = 10.0 // three of a symbol missing from the table
	TwoMatchMultiplier      = 2.0
)

// Thresholds for special triggers
const (
	BigWinThreshold  = 15.0
	JackpotThreshold = 50.0
)

// Trigger types for visual effects
const (
	TriggerNormal      = "normal"
	TriggerBigWin      = "big_win"
	TriggerJackpot     = "jackpot"
	TriggerMegaJackpot = "mega_jackpot"
)

// Log messages
const (
	LogMsgSpin = "Slots spin"
)

// Error contexts
const (
	ErrContextSettle = "failed to settle slots spin"
)
