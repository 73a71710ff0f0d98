package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/delivery"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/inning"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/match"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/official"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/outcome"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/player"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-scorecard/internal/platform/logging"
)

// IngestionService turns one scorecard document into normalized rows,
// exactly once per match number. The whole pipeline — duplicate guard,
// entity normalization, delivery decomposition, outcome — runs inside
// a single unit of work.
type IngestionService struct {
	tx     TxManager
	logger *logging.Logger
}

func NewIngestionService(tx TxManager, logger *logging.Logger) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &IngestionService{tx: tx, logger: logger}
}

// Ingest parses and persists one match document. It returns false when
// the match number already exists; that is a normal outcome, not an
// error. Parse failures surface before any write.
func (s *IngestionService) Ingest(ctx context.Context, raw []byte) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.Ingest")
	defer span.End()

	card, err := scorecard.Parse(raw)
	if err != nil {
		return false, err
	}

	created := false
	err = s.tx.WithinTx(ctx, func(ctx context.Context, uow UnitOfWork) error {
		exists, err := uow.Matches().Exists(ctx, card.MatchNumber)
		if err != nil {
			return fmt.Errorf("check match exists: %w", err)
		}
		if exists {
			return nil
		}

		inserted, err := uow.Matches().Create(ctx, match.Match{
			Number:        card.MatchNumber,
			Type:          card.MatchType,
			City:          card.City,
			Venue:         card.Venue,
			EventName:     card.EventName,
			TossWinner:    card.TossWinner,
			TossDecision:  card.TossDecision,
			PlayerOfMatch: card.PlayerOfMatch,
			Date:          card.MatchDate(),
		})
		if err != nil {
			return fmt.Errorf("create match: %w", err)
		}
		if !inserted {
			// Lost a race against a concurrent ingestion of the same
			// match number; the conflict-guarded insert decided it.
			return nil
		}

		if err := s.normalizeEntities(ctx, uow, card); err != nil {
			return err
		}
		if err := s.decomposeInnings(ctx, uow, card); err != nil {
			return err
		}

		if err := uow.Outcomes().Create(ctx, outcome.Outcome{
			MatchNumber: card.MatchNumber,
			Winner:      card.OutcomeWinner,
			Result:      card.OutcomeResult,
		}); err != nil {
			return fmt.Errorf("create outcome: %w", err)
		}

		created = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if created {
		s.logger.InfoContext(ctx, "match ingested",
			"match_number", card.MatchNumber,
			"innings", len(card.Innings),
		)
	} else {
		s.logger.InfoContext(ctx, "match already ingested", "match_number", card.MatchNumber)
	}

	return created, nil
}

// normalizeEntities deduplicates team, player and official names within
// the batch and issues one batch upsert per entity kind, then records
// the match-scoped links.
func (s *IngestionService) normalizeEntities(ctx context.Context, uow UnitOfWork, card scorecard.Scorecard) error {
	teamNames := sortedKeys(card.PlayersByTeam)
	if len(teamNames) > 0 {
		teams, err := uow.Teams().UpsertByNames(ctx, teamNames)
		if err != nil {
			return fmt.Errorf("upsert teams: %w", err)
		}
		teamIDByName := make(map[string]int64, len(teams))
		for _, t := range teams {
			teamIDByName[t.Name] = t.ID
		}

		playerNames := make([]string, 0)
		seenPlayers := make(map[string]struct{})
		for _, teamName := range teamNames {
			for _, name := range card.PlayersByTeam[teamName] {
				if _, ok := seenPlayers[name]; ok {
					continue
				}
				seenPlayers[name] = struct{}{}
				playerNames = append(playerNames, name)
			}
		}

		if len(playerNames) > 0 {
			players, err := uow.Players().UpsertByNames(ctx, playerNames)
			if err != nil {
				return fmt.Errorf("upsert players: %w", err)
			}
			playerIDByName := make(map[string]int64, len(players))
			for _, p := range players {
				playerIDByName[p.Name] = p.ID
			}

			entries := make([]player.RosterEntry, 0, len(playerNames))
			seenEntries := make(map[[2]int64]struct{})
			for _, teamName := range teamNames {
				teamID := teamIDByName[teamName]
				for _, name := range card.PlayersByTeam[teamName] {
					playerID := playerIDByName[name]
					key := [2]int64{teamID, playerID}
					if _, ok := seenEntries[key]; ok {
						continue
					}
					seenEntries[key] = struct{}{}
					entries = append(entries, player.RosterEntry{
						MatchNumber: card.MatchNumber,
						TeamID:      teamID,
						PlayerID:    playerID,
					})
				}
			}
			if err := uow.Players().AddMatchRoster(ctx, entries); err != nil {
				return fmt.Errorf("add match roster: %w", err)
			}
		}
	}

	roles := sortedKeys(card.OfficialsByRole)
	if len(roles) == 0 {
		return nil
	}

	officials := make([]official.Official, 0)
	seenOfficials := make(map[string]struct{})
	for _, role := range roles {
		for _, name := range card.OfficialsByRole[role] {
			if _, ok := seenOfficials[name]; ok {
				continue
			}
			seenOfficials[name] = struct{}{}
			officials = append(officials, official.Official{Name: name, Role: role})
		}
	}
	if len(officials) == 0 {
		return nil
	}

	upserted, err := uow.Officials().Upsert(ctx, officials)
	if err != nil {
		return fmt.Errorf("upsert officials: %w", err)
	}

	officialIDs := make([]int64, 0, len(upserted))
	for _, o := range upserted {
		officialIDs = append(officialIDs, o.ID)
	}
	if err := uow.Officials().AddMatchOfficials(ctx, card.MatchNumber, officialIDs); err != nil {
		return fmt.Errorf("add match officials: %w", err)
	}

	return nil
}

// decomposeInnings walks innings -> overs -> balls, producing one
// Inning row per batting turn and ordered Delivery rows beneath it.
// Over and ball numbering follow the document; this is a transcription,
// not a legality check.
func (s *IngestionService) decomposeInnings(ctx context.Context, uow UnitOfWork, card scorecard.Scorecard) error {
	for idx, in := range card.Innings {
		total := 0
		for _, over := range in.Overs {
			for _, ball := range over.Balls {
				total += ball.Runs
			}
		}

		inningID, err := uow.Innings().Create(ctx, inning.Inning{
			MatchNumber: card.MatchNumber,
			Seq:         idx + 1,
			BattingTeam: in.Team,
			TotalScore:  total,
		})
		if err != nil {
			return fmt.Errorf("create inning %d: %w", idx+1, err)
		}

		deliveries := make([]delivery.Delivery, 0)
		for _, over := range in.Overs {
			for ballIdx, ball := range over.Balls {
				deliveries = append(deliveries, delivery.Delivery{
					InningID:      inningID,
					Over:          over.Number,
					Ball:          ballIdx + 1,
					Batter:        ball.Batter,
					Bowler:        ball.Bowler,
					Runs:          ball.Runs,
					Wicket:        ball.Wicket,
					DismissalType: ball.DismissalType,
				})
			}
		}
		if len(deliveries) == 0 {
			continue
		}
		if err := uow.Deliveries().CreateBatch(ctx, deliveries); err != nil {
			return fmt.Errorf("create deliveries for inning %d: %w", idx+1, err)
		}
	}

	return nil
}

func sortedKeys(in map[string][]string) []string {
	if len(in) == 0 {
		return nil
	}

	out := make([]string, 0, len(in))
	for key := range in {
		if key == "" {
			continue
		}
		out = append(out, key)
	}
	sort.Strings(out)

	return out
}
