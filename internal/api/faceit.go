// Package api is a client for the FACEIT Data API v4.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"faceit-stats/internal/config"

	"github.com/valyala/fasthttp"
)

// ErrNotFound reports that the requested resource does not exist
// upstream, e.g. no FACEIT profile is bound to a Steam ID.
var ErrNotFound = errors.New("faceit: not found")

type FaceitClient struct {
	apiKey  string
	baseURL string
	client  *fasthttp.Client
}

func NewFaceitClient(cfg *config.Config) *FaceitClient {
	return &FaceitClient{
		apiKey:  cfg.FaceitAPIKey,
		baseURL: cfg.FaceitBaseURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// GetPlayerBySteamID resolves a FACEIT profile from a Steam ID64.
func (c *FaceitClient) GetPlayerBySteamID(ctx context.Context, steamID string) (*PlayerResponse, error) {
	u := fmt.Sprintf("%s/players?game=cs2&game_player_id=%s", c.baseURL, url.QueryEscape(steamID))
	return doRequest[PlayerResponse](ctx, c, u)
}

// GetPlayerStats fetches lifetime statistics for one title.
func (c *FaceitClient) GetPlayerStats(ctx context.Context, playerID, game string) (*StatsResponse, error) {
	u := fmt.Sprintf("%s/players/%s/stats/%s", c.baseURL, url.PathEscape(playerID), url.PathEscape(game))
	return doRequest[StatsResponse](ctx, c, u)
}

// GetHistory fetches a page of the player's match history, most recent
// first, in the order the upstream returns it.
func (c *FaceitClient) GetHistory(ctx context.Context, playerID, game string, offset, limit int) (*HistoryResponse, error) {
	u := fmt.Sprintf("%s/players/%s/history?game=%s&offset=%d&limit=%d", c.baseURL, url.PathEscape(playerID), url.QueryEscape(game), offset, limit)
	return doRequest[HistoryResponse](ctx, c, u)
}

// GetMatchStats fetches the per-round statistics of a single match.
func (c *FaceitClient) GetMatchStats(ctx context.Context, matchID string) (*MatchStatsResponse, error) {
	u := fmt.Sprintf("%s/matches/%s/stats", c.baseURL, url.PathEscape(matchID))
	return doRequest[MatchStatsResponse](ctx, c, u)
}

func doRequest[T any](ctx context.Context, client *FaceitClient, url string) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", "Bearer "+client.apiKey)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	if resp.StatusCode() == fasthttp.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("API error: %d", resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type PlayerResponse struct {
	PlayerID  string                `json:"player_id"`
	Nickname  string                `json:"nickname"`
	Country   string                `json:"country"`
	FaceitURL string                `json:"faceit_url"`
	Games     map[string]GameDetail `json:"games"`
}

type GameDetail struct {
	FaceitElo      *int   `json:"faceit_elo"`
	SkillLevel     *int   `json:"skill_level"`
	GamePlayerID   string `json:"game_player_id"`
	GamePlayerName string `json:"game_player_name"`
	Region         string `json:"region"`
}

type StatsResponse struct {
	PlayerID string          `json:"player_id"`
	GameID   string          `json:"game_id"`
	Lifetime json.RawMessage `json:"lifetime"`
}

type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
	Start int           `json:"start"`
	End   int           `json:"end"`
}

type HistoryItem struct {
	MatchID    string `json:"match_id"`
	GameID     string `json:"game_id"`
	Status     string `json:"status"`
	StartedAt  int64  `json:"started_at"`
	FinishedAt int64  `json:"finished_at"`

	// Elo is the rating snapshot recorded at this point of the
	// history; absent for some match types.
	Elo *int `json:"elo,omitempty"`
}

// MatchStatsResponse is the nested per-match statistics payload. All
// statistic values are transmitted as strings and none is guaranteed
// present, so the maps stay untyped until aggregation.
type MatchStatsResponse struct {
	Rounds []MatchRound `json:"rounds"`
}

type MatchRound struct {
	BestOf     string            `json:"best_of"`
	MatchID    string            `json:"match_id"`
	RoundStats map[string]string `json:"round_stats"`
	Teams      []MatchTeam       `json:"teams"`
}

type MatchTeam struct {
	TeamID    string             `json:"team_id"`
	TeamStats map[string]string  `json:"team_stats"`
	Players   []MatchParticipant `json:"players"`
}

type MatchParticipant struct {
	PlayerID    string            `json:"player_id"`
	Nickname    string            `json:"nickname"`
	PlayerStats map[string]string `json:"player_stats"`
}
