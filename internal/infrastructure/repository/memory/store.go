// Package memory keeps the full scorecard dataset in process memory.
// It backs tests and local runs without a database while honoring the
// same transactional contract as the postgres implementation.
package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/delivery"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/inning"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/match"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/official"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/outcome"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/player"
	"github.com/riskibarqy/cricket-scorecard/internal/domain/team"
	"github.com/riskibarqy/cricket-scorecard/internal/usecase"
)

// Store is an in-memory dataset with copy-on-write transactions. Reads
// see only committed state; WithinTx works on a deep clone that becomes
// the committed state iff the callback returns nil.
type Store struct {
	mu    sync.RWMutex
	state *state
}

func NewStore() *Store {
	return &Store{state: newState()}
}

// WithinTx runs fn against a private clone of the dataset and swaps it
// in on success. Writers serialize on the store mutex, which also makes
// the exists-then-create sequence inside fn race-free.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, uow usecase.UnitOfWork) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.state.clone()
	if err := fn(ctx, &unit{state: draft}); err != nil {
		return err
	}
	s.state = draft

	return nil
}

type state struct {
	matches        map[int64]match.Match
	teams          map[string]team.Team
	players        map[string]player.Player
	officials      map[string]official.Official
	rosters        []player.RosterEntry
	matchOfficials map[int64][]int64
	innings        map[int64]inning.Inning
	deliveries     []delivery.Delivery
	outcomes       map[int64]outcome.Outcome

	nextTeamID     int64
	nextPlayerID   int64
	nextOfficialID int64
	nextInningID   int64
	nextDeliveryID int64
}

func newState() *state {
	return &state{
		matches:        make(map[int64]match.Match),
		teams:          make(map[string]team.Team),
		players:        make(map[string]player.Player),
		officials:      make(map[string]official.Official),
		matchOfficials: make(map[int64][]int64),
		innings:        make(map[int64]inning.Inning),
		outcomes:       make(map[int64]outcome.Outcome),
	}
}

func (st *state) clone() *state {
	out := &state{
		matches:        make(map[int64]match.Match, len(st.matches)),
		teams:          make(map[string]team.Team, len(st.teams)),
		players:        make(map[string]player.Player, len(st.players)),
		officials:      make(map[string]official.Official, len(st.officials)),
		rosters:        append([]player.RosterEntry(nil), st.rosters...),
		matchOfficials: make(map[int64][]int64, len(st.matchOfficials)),
		innings:        make(map[int64]inning.Inning, len(st.innings)),
		deliveries:     append([]delivery.Delivery(nil), st.deliveries...),
		outcomes:       make(map[int64]outcome.Outcome, len(st.outcomes)),
		nextTeamID:     st.nextTeamID,
		nextPlayerID:   st.nextPlayerID,
		nextOfficialID: st.nextOfficialID,
		nextInningID:   st.nextInningID,
		nextDeliveryID: st.nextDeliveryID,
	}
	for k, v := range st.matches {
		out.matches[k] = v
	}
	for k, v := range st.teams {
		out.teams[k] = v
	}
	for k, v := range st.players {
		out.players[k] = v
	}
	for k, v := range st.officials {
		out.officials[k] = v
	}
	for k, v := range st.matchOfficials {
		out.matchOfficials[k] = append([]int64(nil), v...)
	}
	for k, v := range st.innings {
		out.innings[k] = v
	}
	for k, v := range st.outcomes {
		out.outcomes[k] = v
	}

	return out
}

// unit exposes draft-backed repositories for the span of one WithinTx.
type unit struct {
	state *state
}

func (u *unit) Matches() match.Repository       { return &matchRepository{state: u.state} }
func (u *unit) Teams() team.Repository          { return &teamRepository{state: u.state} }
func (u *unit) Players() player.Repository      { return &playerRepository{state: u.state} }
func (u *unit) Officials() official.Repository  { return &officialRepository{state: u.state} }
func (u *unit) Innings() inning.Repository      { return &inningRepository{state: u.state} }
func (u *unit) Deliveries() delivery.Repository { return &deliveryRepository{state: u.state} }
func (u *unit) Outcomes() outcome.Repository    { return &outcomeRepository{state: u.state} }
