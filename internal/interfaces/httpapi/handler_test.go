package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/cricket-scorecard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricket-scorecard/internal/platform/logging"
	"github.com/riskibarqy/cricket-scorecard/internal/usecase"
)

const uploadDocument = `{
	"info": {
		"event": {"match_number": 11, "name": "Border-Gavaskar Trophy"},
		"match_type": "Test",
		"city": "Chennai",
		"venue": "MA Chidambaram Stadium",
		"dates": ["2001-03-18"],
		"toss": {"winner": "India", "decision": "field"},
		"player_of_match": ["Harbhajan Singh"],
		"outcome": {"winner": "India", "by": {"wickets": 2}},
		"players": {
			"India": ["Harbhajan Singh", "SR Tendulkar"],
			"Australia": ["SR Waugh", "ME Waugh"]
		},
		"officials": {"umpire": ["AV Jayaprakash"]}
	},
	"innings": [
		{
			"team": "Australia",
			"overs": [
				{"over": 0, "deliveries": [
					{"batter": "ME Waugh", "bowler": "Harbhajan Singh", "runs": {"total": 4}},
					{"batter": "ME Waugh", "bowler": "Harbhajan Singh", "runs": {"total": 0},
						"wickets": [{"kind": "lbw", "player_out": "ME Waugh"}]}
				]}
			]
		}
	]
}`

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewStore()
	ingest := usecase.NewIngestionService(store, logging.NewNop())
	stats := usecase.NewStatsService(store)
	handler := NewHandler(ingest, stats, nil, nil)

	return NewRouter(handler, nil, nil)
}

func decodeEnvelope(t *testing.T, body string) googleResponseEnvelope {
	t.Helper()

	var envelope googleResponseEnvelope
	if err := sonic.Unmarshal([]byte(body), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, body)
	}

	return envelope
}

func TestHandler_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandler_UploadMatch(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/matches/upload", strings.NewReader(uploadDocument)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on first upload, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"created":true`) {
		t.Fatalf("unexpected first upload body: %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/matches/upload", strings.NewReader(uploadDocument)))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on duplicate upload, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"created":false`) {
		t.Fatalf("unexpected duplicate upload body: %s", rec.Body.String())
	}
}

func TestHandler_UploadMatch_Malformed(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/matches/upload", strings.NewReader("not json")))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed document, got %d", rec.Code)
	}

	envelope := decodeEnvelope(t, rec.Body.String())
	if envelope.Error == nil || envelope.Error.Status != "INVALID_ARGUMENT" {
		t.Fatalf("unexpected error body: %+v", envelope.Error)
	}
}

func TestHandler_StatsEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/matches/upload", strings.NewReader(uploadDocument)))
	if rec.Code != http.StatusOK {
		t.Fatalf("seed upload failed: %d", rec.Code)
	}

	cases := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{"matches by player", "/v1/players/matches?playerName=Harbhajan+Singh", http.StatusOK, `"match_number":11`},
		{"wickets by bowler", "/v1/bowlers/wickets?playerName=Harbhajan+Singh", http.StatusOK, `"dismissalType":"lbw"`},
		{"cumulative runs", "/v1/batsmen/runs?batterName=ME+Waugh", http.StatusOK, `"totalRuns":4`},
		{"strike rate", "/v1/batsmen/strike-rate?batterName=ME+Waugh&matchNumber=11", http.StatusOK, `"strikeRate":"200.00"`},
		{"strike rate no data", "/v1/batsmen/strike-rate?batterName=SR+Tendulkar&matchNumber=11", http.StatusNotFound, "No data found"},
		{"top batsmen", "/v1/batsmen/top?page=0&size=5", http.StatusOK, `"name":"ME Waugh"`},
		{"top wicket takers", "/v1/bowlers/top", http.StatusOK, `"wickets":1`},
		{"players by team", "/v1/teams/players?teamName=India&matchNumber=11", http.StatusOK, `"name":"SR Tendulkar"`},
		{"officials by match", "/v1/matches/officials?matchNumber=11", http.StatusOK, `"role":"umpire"`},
		{"inning scores", "/v1/innings/scores?matchDate=2001-03-18", http.StatusOK, `"totalScore":4`},
		{"blank player name", "/v1/players/matches?playerName=", http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"bad match number", "/v1/matches/officials?matchNumber=abc", http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"bad page size", "/v1/batsmen/top?size=0", http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"bad date", "/v1/innings/scores?matchDate=18-03-2001", http.StatusBadRequest, "INVALID_ARGUMENT"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rec.Code != tc.wantCode {
			t.Fatalf("%s: expected %d, got %d: %s", tc.name, tc.wantCode, rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), tc.wantBody) {
			t.Fatalf("%s: body %s does not contain %q", tc.name, rec.Body.String(), tc.wantBody)
		}
	}
}
