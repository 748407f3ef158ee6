package service

import (
	"context"
	"errors"

	"faceit-stats/internal/api"
	"faceit-stats/internal/constants"
	"faceit-stats/internal/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ErrHistoryUnavailable reports that the match history fetch itself
// failed. Distinct from a player with zero matches played, which is
// not an error.
var ErrHistoryUnavailable = errors.New("match history unavailable")

type MatchService struct {
	faceit FaceitAPI
	logger zerolog.Logger
}

func NewMatchService(faceit FaceitAPI, logger zerolog.Logger) *MatchService {
	return &MatchService{faceit: faceit, logger: logger}
}

// RecentForm aggregates the player's last matches into one stat line.
// Returns ErrHistoryUnavailable when the history fetch fails, and
// (nil, nil) when the player has no matches or no usable match data.
func (s *MatchService) RecentForm(ctx context.Context, playerID string) (*domain.RecentForm, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	history, err := s.faceit.GetHistory(apiCtx, playerID, GameCS2, 0, constants.HistoryLimit)
	if err != nil {
		s.logger.Warn().Err(err).Str("player_id", playerID).Msg("failed to fetch match history")
		return nil, ErrHistoryUnavailable
	}

	if len(history.Items) == 0 {
		s.logger.Debug().Str("player_id", playerID).Msg("player has no match history")
		return nil, nil
	}

	details := s.fetchDetails(ctx, history.Items)

	form := aggregate(details, playerID)
	if form == nil {
		s.logger.Debug().Str("player_id", playerID).Int("matches", len(history.Items)).Msg("no usable match data in history window")
		return nil, nil
	}

	s.logger.Info().Str("player_id", playerID).Int("matches", len(history.Items)).Int("wins", form.Wins).Int("losses", form.Losses).Msg("recent form aggregated")
	return form, nil
}

// fetchDetails fans out one detail request per match id. The result
// has the same order and length as the input; a failed fetch leaves a
// nil slot and never cancels its siblings.
func (s *MatchService) fetchDetails(ctx context.Context, items []api.HistoryItem) []*api.MatchStatsResponse {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	details := make([]*api.MatchStatsResponse, len(items))

	g := new(errgroup.Group)
	g.SetLimit(constants.DetailFanoutLimit)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			detail, err := s.faceit.GetMatchStats(apiCtx, item.MatchID)
			if err != nil {
				s.logger.Warn().Err(err).Str("match_id", item.MatchID).Msg("match detail fetch failed, skipping")
				return nil
			}
			details[i] = detail
			return nil
		})
	}
	g.Wait()

	return details
}
