package service

import (
	"context"

	"faceit-stats/internal/api"
)

// FaceitAPI is the slice of the FACEIT client the services consume.
// Narrowed to an interface so the aggregation pipeline can be tested
// against fakes.
type FaceitAPI interface {
	GetPlayerBySteamID(ctx context.Context, steamID string) (*api.PlayerResponse, error)
	GetPlayerStats(ctx context.Context, playerID, game string) (*api.StatsResponse, error)
	GetHistory(ctx context.Context, playerID, game string, offset, limit int) (*api.HistoryResponse, error)
	GetMatchStats(ctx context.Context, matchID string) (*api.MatchStatsResponse, error)
}

var _ FaceitAPI = (*api.FaceitClient)(nil)

const (
	GameCS2  = "cs2"
	GameCSGO = "csgo"
)
