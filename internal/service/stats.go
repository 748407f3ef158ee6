package service

import (
	"bytes"
	"context"

	"faceit-stats/internal/constants"
	"faceit-stats/internal/domain"

	"github.com/rs/zerolog"
)

type StatsService struct {
	faceit FaceitAPI
	logger zerolog.Logger
}

func NewStatsService(faceit FaceitAPI, logger zerolog.Logger) *StatsService {
	return &StatsService{faceit: faceit, logger: logger}
}

// GetTitleStats fetches the lifetime statistics block for one title.
// Fail-soft: any transport or status failure collapses to nil so the
// caller can render the field as null.
func (s *StatsService) GetTitleStats(ctx context.Context, playerID, game string) *domain.TitleStats {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.faceit.GetPlayerStats(apiCtx, playerID, game)
	if err != nil {
		s.logger.Warn().Err(err).Str("player_id", playerID).Str("game", game).Msg("title stats unavailable")
		return nil
	}
	if len(resp.Lifetime) == 0 || bytes.Equal(resp.Lifetime, []byte("null")) {
		s.logger.Debug().Str("player_id", playerID).Str("game", game).Msg("no lifetime stats for title")
		return nil
	}
	return &domain.TitleStats{Lifetime: resp.Lifetime}
}
