package service

import (
	"context"

	"faceit-stats/internal/constants"

	"github.com/rs/zerolog"
)

type RatingService struct {
	faceit FaceitAPI
	logger zerolog.Logger
}

func NewRatingService(faceit FaceitAPI, logger zerolog.Logger) *RatingService {
	return &RatingService{faceit: faceit, logger: logger}
}

// EloDelta computes current elo minus the snapshot recorded at the
// lookback offset. Returns nil when the history fetch fails, when
// fewer matches exist than the lookback distance, or when the sampled
// match carries no snapshot. Isolated from the recent-form pipeline so
// its failure never suppresses the rest of the response.
func (s *RatingService) EloDelta(ctx context.Context, playerID string, currentElo int) *int {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	history, err := s.faceit.GetHistory(apiCtx, playerID, GameCS2, 0, constants.EloLookback)
	if err != nil {
		s.logger.Warn().Err(err).Str("player_id", playerID).Msg("elo delta history fetch failed")
		return nil
	}
	if len(history.Items) < constants.EloLookback {
		s.logger.Debug().Str("player_id", playerID).Int("matches", len(history.Items)).Msg("not enough history for elo delta")
		return nil
	}

	past := history.Items[constants.EloLookback-1].Elo
	if past == nil {
		s.logger.Debug().Str("player_id", playerID).Msg("lookback match carries no elo snapshot")
		return nil
	}

	delta := currentElo - *past
	return &delta
}
