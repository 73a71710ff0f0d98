package scorecard

import (
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

// ErrMalformedDocument marks documents that cannot be parsed at all or
// that lack the mandatory match number. It is surfaced before any write.
var ErrMalformedDocument = crerr.New("malformed scorecard document")

const dateLayout = "2006-01-02"

type documentEnvelope struct {
	Info struct {
		Event struct {
			MatchNumber *int64 `json:"match_number"`
			Name        string `json:"name"`
		} `json:"event"`
		MatchType string `json:"match_type"`
		City      string `json:"city"`
		Venue     string `json:"venue"`
		Toss      struct {
			Winner   string `json:"winner"`
			Decision string `json:"decision"`
		} `json:"toss"`
		PlayerOfMatch []string `json:"player_of_match"`
		Outcome       struct {
			Winner string `json:"winner"`
			Result string `json:"result"`
			By     struct {
				Runs    int `json:"runs"`
				Wickets int `json:"wickets"`
			} `json:"by"`
		} `json:"outcome"`
		Dates     []string            `json:"dates"`
		Players   map[string][]string `json:"players"`
		Officials map[string][]string `json:"officials"`
		// Some feeds nest innings under info instead of the root.
		Innings []inningDoc `json:"innings"`
	} `json:"info"`
	Innings []inningDoc `json:"innings"`
}

type inningDoc struct {
	Team  string    `json:"team"`
	Overs []overDoc `json:"overs"`
}

type overDoc struct {
	Over       *int      `json:"over"`
	Deliveries []ballDoc `json:"deliveries"`
}

type ballDoc struct {
	Batter  string `json:"batter"`
	Batsman string `json:"batsman"`
	Bowler  string `json:"bowler"`
	Runs    struct {
		Batter int `json:"batter"`
		Extras int `json:"extras"`
		Total  int `json:"total"`
	} `json:"runs"`
	Wickets []struct {
		Kind      string `json:"kind"`
		PlayerOut string `json:"player_out"`
	} `json:"wickets"`
}

// Parse turns a raw match document into a validated Scorecard.
func Parse(raw []byte) (Scorecard, error) {
	var env documentEnvelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return Scorecard{}, crerr.WithDetail(ErrMalformedDocument, err.Error())
	}

	if env.Info.Event.MatchNumber == nil || *env.Info.Event.MatchNumber <= 0 {
		return Scorecard{}, crerr.WithDetail(ErrMalformedDocument, "info.event.match_number is missing")
	}

	card := Scorecard{
		MatchNumber:     *env.Info.Event.MatchNumber,
		MatchType:       strings.TrimSpace(env.Info.MatchType),
		City:            strings.TrimSpace(env.Info.City),
		Venue:           strings.TrimSpace(env.Info.Venue),
		EventName:       strings.TrimSpace(env.Info.Event.Name),
		TossWinner:      strings.TrimSpace(env.Info.Toss.Winner),
		TossDecision:    strings.TrimSpace(env.Info.Toss.Decision),
		OutcomeWinner:   strings.TrimSpace(env.Info.Outcome.Winner),
		OutcomeResult:   outcomeResult(env),
		PlayersByTeam:   copyNameMap(env.Info.Players),
		OfficialsByRole: copyNameMap(env.Info.Officials),
	}

	if len(env.Info.PlayerOfMatch) > 0 {
		card.PlayerOfMatch = strings.TrimSpace(env.Info.PlayerOfMatch[0])
	}

	for _, item := range env.Info.Dates {
		parsed, err := time.Parse(dateLayout, strings.TrimSpace(item))
		if err != nil {
			return Scorecard{}, crerr.WithDetail(ErrMalformedDocument, "invalid date: "+item)
		}
		card.Dates = append(card.Dates, parsed)
	}

	innings := env.Innings
	if len(innings) == 0 {
		innings = env.Info.Innings
	}
	for _, in := range innings {
		card.Innings = append(card.Innings, parseInning(in))
	}

	return card, nil
}

func parseInning(doc inningDoc) Inning {
	out := Inning{Team: strings.TrimSpace(doc.Team)}
	for idx, over := range doc.Overs {
		number := idx
		if over.Over != nil {
			number = *over.Over
		}

		parsed := Over{Number: number}
		for _, ball := range over.Deliveries {
			batter := strings.TrimSpace(ball.Batter)
			if batter == "" {
				batter = strings.TrimSpace(ball.Batsman)
			}

			item := Ball{
				Batter: batter,
				Bowler: strings.TrimSpace(ball.Bowler),
				Runs:   ball.Runs.Total,
			}
			if len(ball.Wickets) > 0 {
				item.Wicket = true
				item.DismissalType = strings.TrimSpace(ball.Wickets[0].Kind)
			}
			parsed.Balls = append(parsed.Balls, item)
		}
		out.Overs = append(out.Overs, parsed)
	}

	return out
}

func outcomeResult(env documentEnvelope) string {
	if result := strings.TrimSpace(env.Info.Outcome.Result); result != "" {
		return result
	}
	if env.Info.Outcome.By.Runs > 0 {
		return "runs"
	}
	if env.Info.Outcome.By.Wickets > 0 {
		return "wickets"
	}

	return ""
}

func copyNameMap(in map[string][]string) map[string][]string {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string][]string, len(in))
	for key, names := range in {
		cleaned := make([]string, 0, len(names))
		for _, name := range names {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				cleaned = append(cleaned, trimmed)
			}
		}
		out[strings.TrimSpace(key)] = cleaned
	}

	return out
}
