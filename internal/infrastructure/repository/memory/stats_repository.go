package memory

import (
	"context"
	"sort"
	"time"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/official"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/player"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/stats"
)

// Store implements stats.Repository over committed state. Every query
// orders its result deterministically to match the postgres queries.

func (s *Store) MatchEventsByPlayer(_ context.Context, name string) ([]stats.MatchEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state

	numbers := make(map[int64]struct{})
	if p, ok := st.players[name]; ok {
		for _, entry := range st.rosters {
			if entry.PlayerID == p.ID {
				numbers[entry.MatchNumber] = struct{}{}
			}
		}
	}
	for number, m := range st.matches {
		if m.PlayerOfMatch == name {
			numbers[number] = struct{}{}
		}
	}

	out := make([]stats.MatchEvent, 0, len(numbers))
	for number := range numbers {
		m := st.matches[number]
		out = append(out, stats.MatchEvent{
			MatchNumber:   m.Number,
			MatchType:     m.Type,
			City:          m.City,
			Venue:         m.Venue,
			EventName:     m.EventName,
			Winner:        st.outcomes[number].Winner,
			TossWinner:    m.TossWinner,
			TossDecision:  m.TossDecision,
			PlayerOfMatch: m.PlayerOfMatch,
			MatchDate:     m.Date,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchNumber < out[j].MatchNumber })

	return out, nil
}

func (s *Store) WicketsByBowler(_ context.Context, name string) ([]stats.BowlerWicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]stats.BowlerWicket, 0)
	for _, d := range s.state.deliveries {
		if d.Bowler != name || !d.Wicket {
			continue
		}
		out = append(out, stats.BowlerWicket{
			DeliveryID:    d.ID,
			Over:          d.Over,
			Ball:          d.Ball,
			Wicket:        d.Wicket,
			Batsman:       d.Batter,
			Bowler:        d.Bowler,
			DismissalType: d.DismissalType,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeliveryID < out[j].DeliveryID })

	return out, nil
}

func (s *Store) CumulativeRunsByBatter(_ context.Context, name string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, d := range s.state.deliveries {
		if d.Batter == name {
			total += int64(d.Runs)
		}
	}

	return total, nil
}

func (s *Store) BatterMatchLine(_ context.Context, name string, matchNumber int64) (stats.BatterMatchLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state

	var line stats.BatterMatchLine
	for _, d := range st.deliveries {
		if d.Batter != name {
			continue
		}
		if in, ok := st.innings[d.InningID]; !ok || in.MatchNumber != matchNumber {
			continue
		}
		line.Runs += int64(d.Runs)
		line.Balls++
	}

	return line, nil
}

func (s *Store) TopBatsmen(_ context.Context, limit, offset int) ([]stats.BatterTotal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]int64)
	for _, d := range s.state.deliveries {
		totals[d.Batter] += int64(d.Runs)
	}

	rows := make([]stats.BatterTotal, 0, len(totals))
	for name, runs := range totals {
		rows = append(rows, stats.BatterTotal{Name: name, Runs: runs})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Runs != rows[j].Runs {
			return rows[i].Runs > rows[j].Runs
		}
		return rows[i].Name < rows[j].Name
	})

	return pageSlice(rows, limit, offset), nil
}

func (s *Store) TopWicketTakers(_ context.Context, limit, offset int) ([]stats.BowlerTotal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totals := make(map[string]int64)
	for _, d := range s.state.deliveries {
		if d.Wicket {
			totals[d.Bowler]++
		}
	}

	rows := make([]stats.BowlerTotal, 0, len(totals))
	for name, wickets := range totals {
		rows = append(rows, stats.BowlerTotal{Name: name, Wickets: wickets})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Wickets != rows[j].Wickets {
			return rows[i].Wickets > rows[j].Wickets
		}
		return rows[i].Name < rows[j].Name
	})

	return pageSlice(rows, limit, offset), nil
}

func (s *Store) PlayersByTeamAndMatch(_ context.Context, teamName string, matchNumber int64) ([]player.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state

	t, ok := st.teams[teamName]
	if !ok {
		return []player.Player{}, nil
	}

	playersByID := make(map[int64]player.Player, len(st.players))
	for _, p := range st.players {
		playersByID[p.ID] = p
	}

	out := make([]player.Player, 0)
	for _, entry := range st.rosters {
		if entry.TeamID != t.ID || entry.MatchNumber != matchNumber {
			continue
		}
		if p, ok := playersByID[entry.PlayerID]; ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (s *Store) OfficialsByMatch(_ context.Context, matchNumber int64) ([]official.Official, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state

	officialsByID := make(map[int64]official.Official, len(st.officials))
	for _, o := range st.officials {
		officialsByID[o.ID] = o
	}

	out := make([]official.Official, 0)
	for _, id := range st.matchOfficials[matchNumber] {
		if o, ok := officialsByID[id]; ok {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (s *Store) InningScoresByDate(_ context.Context, date time.Time) ([]stats.InningScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := s.state

	year, month, day := date.Date()
	out := make([]stats.InningScore, 0)
	for _, in := range st.innings {
		m, ok := st.matches[in.MatchNumber]
		if !ok {
			continue
		}
		my, mm, md := m.Date.Date()
		if my != year || mm != month || md != day {
			continue
		}
		out = append(out, stats.InningScore{
			MatchNumber: in.MatchNumber,
			InningID:    in.ID,
			BattingTeam: in.BattingTeam,
			TotalScore:  in.TotalScore,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MatchNumber != out[j].MatchNumber {
			return out[i].MatchNumber < out[j].MatchNumber
		}
		return out[i].InningID < out[j].InningID
	})

	return out, nil
}

func pageSlice[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return []T{}
	}
	rows = rows[offset:]
	if limit >= 0 && limit < len(rows) {
		rows = rows[:limit]
	}

	return rows
}
