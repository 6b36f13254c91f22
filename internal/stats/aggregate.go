package stats

import (
	"math"

	"github.com/osse101/Casino_Go/internal/domain"
)

// Aggregate reduces history records to a snapshot in one pass.
// ByGame always carries an entry for every game type.
func Aggregate(records []domain.GameHistory) *domain.StatsSnapshot {
	s := &domain.StatsSnapshot{
		ByGame: make(map[domain.GameType]domain.GameBreakdown, len(domain.AllGameTypes)),
	}
	for _, g := range domain.AllGameTypes {
		s.ByGame[g] = domain.GameBreakdown{}
	}

	for _, r := range records {
		s.TotalGames++
		s.TotalWagered += int64(r.BetAmount)

		switch r.Result {
		case domain.ResultWin:
			s.TotalWins++
		case domain.ResultLose:
			s.TotalLosses++
		}

		if r.Profit > 0 {
			s.TotalWinnings += int64(r.Profit)
			if r.Profit > s.BiggestWin {
				s.BiggestWin = r.Profit
			}
		} else if r.Profit < 0 && -r.Profit > s.BiggestLoss {
			s.BiggestLoss = -r.Profit
		}

		b := s.ByGame[r.GameType]
		b.Games++
		b.Wagered += int64(r.BetAmount)
		if r.Result == domain.ResultWin {
			b.Wins++
		}
		if r.Profit > 0 {
			b.Won += int64(r.Profit)
		}
		s.ByGame[r.GameType] = b
	}

	return s
}

// WithRatios adds the per-player win rate (percent, one decimal) and net profit
func WithRatios(s *domain.StatsSnapshot) *domain.UserStats {
	u := &domain.UserStats{StatsSnapshot: *s}
	if s.TotalGames > 0 {
		u.WinRate = math.Round(float64(s.TotalWins)/float64(s.TotalGames)*1000) / 10
	}
	u.NetProfit = s.TotalWinnings - s.TotalWagered
	return u
}
