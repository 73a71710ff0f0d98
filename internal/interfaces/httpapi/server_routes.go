package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerIngestionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/matches/upload", handler.UploadMatch)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/matches", handler.ListMatchesByPlayer)
	mux.HandleFunc("GET /v1/bowlers/wickets", handler.ListWicketsByBowler)
	mux.HandleFunc("GET /v1/bowlers/top", handler.ListTopWicketTakers)
	mux.HandleFunc("GET /v1/batsmen/runs", handler.GetCumulativeRunsByBatter)
	mux.HandleFunc("GET /v1/batsmen/strike-rate", handler.GetStrikeRateByBatterAndMatch)
	mux.HandleFunc("GET /v1/batsmen/top", handler.ListTopBatsmen)
	mux.HandleFunc("GET /v1/teams/players", handler.ListPlayersByTeamAndMatch)
	mux.HandleFunc("GET /v1/matches/officials", handler.ListOfficialsByMatch)
	mux.HandleFunc("GET /v1/innings/scores", handler.ListInningScoresByDate)
}
