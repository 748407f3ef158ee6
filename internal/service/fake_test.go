package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"faceit-stats/internal/api"
)

// fakeFaceit satisfies FaceitAPI with per-endpoint hooks and records
// the calls it receives.
type fakeFaceit struct {
	playerFn  func(steamID string) (*api.PlayerResponse, error)
	statsFn   func(playerID, game string) (*api.StatsResponse, error)
	historyFn func(playerID, game string, offset, limit int) (*api.HistoryResponse, error)
	matchFn   func(matchID string) (*api.MatchStatsResponse, error)

	mu    sync.Mutex
	calls []string
}

var errFakeUnset = errors.New("fake endpoint not configured")

func (f *fakeFaceit) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeFaceit) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeFaceit) GetPlayerBySteamID(_ context.Context, steamID string) (*api.PlayerResponse, error) {
	f.record("player:" + steamID)
	if f.playerFn == nil {
		return nil, errFakeUnset
	}
	return f.playerFn(steamID)
}

func (f *fakeFaceit) GetPlayerStats(_ context.Context, playerID, game string) (*api.StatsResponse, error) {
	f.record("stats:" + game)
	if f.statsFn == nil {
		return nil, errFakeUnset
	}
	return f.statsFn(playerID, game)
}

func (f *fakeFaceit) GetHistory(_ context.Context, playerID, game string, offset, limit int) (*api.HistoryResponse, error) {
	f.record("history")
	if f.historyFn == nil {
		return nil, errFakeUnset
	}
	return f.historyFn(playerID, game, offset, limit)
}

func (f *fakeFaceit) GetMatchStats(_ context.Context, matchID string) (*api.MatchStatsResponse, error) {
	f.record("match:" + matchID)
	if f.matchFn == nil {
		return nil, errFakeUnset
	}
	return f.matchFn(matchID)
}

var _ FaceitAPI = (*fakeFaceit)(nil)

// historyOf builds a history window of n matches with an elo snapshot
// attached to the entries listed in eloAt (index → elo).
func historyOf(n int, eloAt map[int]int) *api.HistoryResponse {
	resp := &api.HistoryResponse{}
	for i := 0; i < n; i++ {
		item := api.HistoryItem{MatchID: matchID(i)}
		if elo, ok := eloAt[i]; ok {
			e := elo
			item.Elo = &e
		}
		resp.Items = append(resp.Items, item)
	}
	return resp
}

func matchID(i int) string {
	return fmt.Sprintf("match-%d", i)
}
