package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/cricket-scorecard/internal/infrastructure/auditlog"
	"github.com/riskibarqy/cricket-scorecard/internal/usecase"
)

func (h *Handler) ListMatchesByPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByPlayer")
	defer span.End()

	playerName := h.queryParam(r, "playerName")
	events, err := h.statsService.MatchesByPlayer(ctx, playerName)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches by player failed", "player_name", playerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.audit.Publish(ctx, auditlog.Entry{
		Action: "stats.matches_by_player",
		Detail: map[string]any{"player_name": playerName, "rows": len(events)},
	})

	items := make([]matchEventDTO, 0, len(events))
	for _, event := range events {
		items = append(items, matchEventToDTO(event))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListWicketsByBowler(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWicketsByBowler")
	defer span.End()

	playerName := h.queryParam(r, "playerName")
	wickets, err := h.statsService.WicketsByBowler(ctx, playerName)
	if err != nil {
		h.logger.WarnContext(ctx, "list wickets by bowler failed", "player_name", playerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.audit.Publish(ctx, auditlog.Entry{
		Action: "stats.wickets_by_bowler",
		Detail: map[string]any{"player_name": playerName, "rows": len(wickets)},
	})

	items := make([]bowlerWicketDTO, 0, len(wickets))
	for _, wicket := range wickets {
		items = append(items, bowlerWicketToDTO(wicket))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetCumulativeRunsByBatter(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCumulativeRunsByBatter")
	defer span.End()

	batterName := h.queryParam(r, "batterName")
	runs, err := h.statsService.CumulativeRunsByBatter(ctx, batterName)
	if err != nil {
		h.logger.WarnContext(ctx, "cumulative runs failed", "batter_name", batterName, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.audit.Publish(ctx, auditlog.Entry{
		Action: "stats.cumulative_runs",
		Detail: map[string]any{"batter_name": batterName},
	})

	writeSuccess(ctx, w, http.StatusOK, batterRunsDTO{BatterName: batterName, TotalRuns: runs})
}

func (h *Handler) GetStrikeRateByBatterAndMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStrikeRateByBatterAndMatch")
	defer span.End()

	batterName := h.queryParam(r, "batterName")
	matchNumber, err := h.int64QueryParam(r, "matchNumber")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rate, err := h.statsService.StrikeRateByBatterAndMatch(ctx, batterName, matchNumber)
	if err != nil {
		h.logger.WarnContext(ctx, "strike rate failed", "batter_name", batterName, "match_number", matchNumber, "error", err)
		writeError(ctx, w, err)
		return
	}
	if rate == usecase.NoStatsData {
		writeError(ctx, w, fmt.Errorf("%w: %s", usecase.ErrNotFound, usecase.NoStatsData))
		return
	}

	h.audit.Publish(ctx, auditlog.Entry{
		Action: "stats.strike_rate",
		Detail: map[string]any{"batter_name": batterName, "match_number": matchNumber},
	})

	writeSuccess(ctx, w, http.StatusOK, strikeRateDTO{
		BatterName:  batterName,
		MatchNumber: matchNumber,
		StrikeRate:  rate,
	})
}

func (h *Handler) ListTopBatsmen(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopBatsmen")
	defer span.End()

	query, err := h.pageQueryParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.statsService.TopBatsmen(ctx, query.Page, query.Size)
	if err != nil {
		h.logger.WarnContext(ctx, "top batsmen failed", "page", query.Page, "size", query.Size, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.audit.Publish(ctx, auditlog.Entry{
		Action: "stats.top_batsmen",
		Detail: map[string]any{"page": query.Page, "size": query.Size},
	})

	items := make([]batterTotalDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, batterTotalDTO{Name: row.Name, Runs: row.Runs})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTopWicketTakers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopWicketTakers")
	defer span.End()

	query, err := h.pageQueryParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.statsService.TopWicketTakers(ctx, query.Page, query.Size)
	if err != nil {
		h.logger.WarnContext(ctx, "top wicket takers failed", "page", query.Page, "size", query.Size, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.audit.Publish(ctx, auditlog.Entry{
		Action: "stats.top_wicket_takers",
		Detail: map[string]any{"page": query.Page, "size": query.Size},
	})

	items := make([]bowlerTotalDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, bowlerTotalDTO{Name: row.Name, Wickets: row.Wickets})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayersByTeamAndMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTeamAndMatch")
	defer span.End()

	teamName := h.queryParam(r, "teamName")
	matchNumber, err := h.int64QueryParam(r, "matchNumber")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.statsService.PlayersByTeamAndMatch(ctx, teamName, matchNumber)
	if err != nil {
		h.logger.WarnContext(ctx, "players by team failed", "team_name", teamName, "match_number", matchNumber, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.audit.Publish(ctx, auditlog.Entry{
		Action: "stats.players_by_team",
		Detail: map[string]any{"team_name": teamName, "match_number": matchNumber},
	})

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerDTO{ID: p.ID, Name: p.Name})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListOfficialsByMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListOfficialsByMatch")
	defer span.End()

	matchNumber, err := h.int64QueryParam(r, "matchNumber")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	officials, err := h.statsService.OfficialsByMatch(ctx, matchNumber)
	if err != nil {
		h.logger.WarnContext(ctx, "officials by match failed", "match_number", matchNumber, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.audit.Publish(ctx, auditlog.Entry{
		Action: "stats.officials_by_match",
		Detail: map[string]any{"match_number": matchNumber},
	})

	items := make([]officialDTO, 0, len(officials))
	for _, o := range officials {
		items = append(items, officialDTO{ID: o.ID, Name: o.Name, Role: o.Role})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListInningScoresByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListInningScoresByDate")
	defer span.End()

	matchDate := h.queryParam(r, "matchDate")
	scores, err := h.statsService.InningScoresByDate(ctx, matchDate)
	if err != nil {
		h.logger.WarnContext(ctx, "inning scores failed", "match_date", matchDate, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.audit.Publish(ctx, auditlog.Entry{
		Action: "stats.inning_scores_by_date",
		Detail: map[string]any{"match_date": matchDate, "rows": len(scores)},
	})

	items := make([]inningScoreDTO, 0, len(scores))
	for _, score := range scores {
		items = append(items, inningScoreDTO{
			MatchNumber: score.MatchNumber,
			InningID:    score.InningID,
			BattingTeam: score.BattingTeam,
			TotalScore:  score.TotalScore,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
