package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"faceit-stats/internal/constants"
	"faceit-stats/internal/domain"
	"faceit-stats/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type StatsServer struct {
	playerSvc *service.PlayerService
	statsSvc  *service.StatsService
	matchSvc  *service.MatchService
	ratingSvc *service.RatingService
	logger    zerolog.Logger
}

func NewStatsServer(playerSvc *service.PlayerService, statsSvc *service.StatsService, matchSvc *service.MatchService, ratingSvc *service.RatingService, logger zerolog.Logger) *StatsServer {
	return &StatsServer{playerSvc: playerSvc, statsSvc: statsSvc, matchSvc: matchSvc, ratingSvc: ratingSvc, logger: logger}
}

// Routes mounts the aggregation endpoint on a router.
func (s *StatsServer) Routes(r chi.Router) {
	r.Get("/getStats/{steamID}", s.GetStats)
}

type titlePayload struct {
	Elo            *int            `json:"elo"`
	Level          *int            `json:"level"`
	GamePlayerName string          `json:"game_player_name"`
	Stats          json.RawMessage `json:"stats"`
}

type statsPayload struct {
	Nickname  string             `json:"nickname"`
	Country   string             `json:"country"`
	FaceitURL string             `json:"faceitUrl"`
	Last20    *domain.RecentForm `json:"last20"`
	CS2       titlePayload       `json:"cs2"`
	CSGO      titlePayload       `json:"csgo"`
}

// GetStats resolves a Steam ID to a FACEIT profile and enriches it
// with lifetime stats per title, the last-20 aggregate and the elo
// delta. Enrichment runs concurrently and fails soft: a null field in
// a 200 response, never an error status.
func (s *StatsServer) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constants.RequestTimeout)
	defer cancel()

	steamID := chi.URLParam(r, "steamID")

	player, err := s.playerSvc.LookupPlayer(ctx, steamID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "no FACEIT profile is bound to this Steam ID")
			return
		}
		s.logger.Error().Err(err).Str("steam_id", steamID).Msg("profile lookup failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	var (
		cs2Stats, csgoStats *domain.TitleStats
		form                *domain.RecentForm
		eloChange           *int
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cs2Stats = s.statsSvc.GetTitleStats(gCtx, player.PlayerID, service.GameCS2)
		return nil
	})
	g.Go(func() error {
		csgoStats = s.statsSvc.GetTitleStats(gCtx, player.PlayerID, service.GameCSGO)
		return nil
	})
	g.Go(func() error {
		f, err := s.matchSvc.RecentForm(gCtx, player.PlayerID)
		switch {
		case errors.Is(err, service.ErrHistoryUnavailable):
			s.logger.Warn().Str("player_id", player.PlayerID).Msg("history fetch failed, last20 degraded to null")
		case err != nil:
			s.logger.Warn().Err(err).Str("player_id", player.PlayerID).Msg("recent form unavailable")
		case f == nil:
			s.logger.Debug().Str("player_id", player.PlayerID).Msg("player has no usable recent matches")
		default:
			form = f
		}
		return nil
	})
	if player.CS2.Elo != nil {
		currentElo := *player.CS2.Elo
		g.Go(func() error {
			eloChange = s.ratingSvc.EloDelta(gCtx, player.PlayerID, currentElo)
			return nil
		})
	}
	g.Wait()

	if form != nil {
		form.EloChange = eloChange
	}

	writeJSON(w, http.StatusOK, statsPayload{
		Nickname:  player.Nickname,
		Country:   player.Country,
		FaceitURL: player.FaceitURL,
		Last20:    form,
		CS2:       toTitlePayload(player.CS2, cs2Stats),
		CSGO:      toTitlePayload(player.CSGO, csgoStats),
	})
}

func toTitlePayload(account domain.TitleAccount, stats *domain.TitleStats) titlePayload {
	p := titlePayload{
		Elo:            account.Elo,
		Level:          account.SkillLevel,
		GamePlayerName: account.GamePlayerName,
	}
	if stats != nil {
		p.Stats = stats.Lifetime
	}
	return p
}
