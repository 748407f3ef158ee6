package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"faceit-stats/internal/api"
	"faceit-stats/internal/constants"
	"faceit-stats/internal/domain"

	"github.com/rs/zerolog"
)

// ErrProfileNotFound reports that no FACEIT profile is bound to the
// given Steam ID.
var ErrProfileNotFound = errors.New("no faceit profile bound to this steam id")

type PlayerService struct {
	faceit FaceitAPI
	logger zerolog.Logger
}

func NewPlayerService(faceit FaceitAPI, logger zerolog.Logger) *PlayerService {
	return &PlayerService{faceit: faceit, logger: logger}
}

// LookupPlayer resolves a Steam ID64 to a FACEIT profile with its
// per-title sub-records.
func (s *PlayerService) LookupPlayer(ctx context.Context, steamID string) (*domain.Player, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	s.logger.Debug().Str("steam_id", steamID).Msg("looking up player")

	resp, err := s.faceit.GetPlayerBySteamID(apiCtx, steamID)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			s.logger.Info().Str("steam_id", steamID).Msg("no faceit profile for steam id")
			return nil, ErrProfileNotFound
		}
		s.logger.Error().Err(err).Str("steam_id", steamID).Msg("player lookup failed")
		return nil, fmt.Errorf("failed to look up player: %w", err)
	}

	player := &domain.Player{
		PlayerID:  resp.PlayerID,
		Nickname:  resp.Nickname,
		Country:   resp.Country,
		FaceitURL: profileURL(resp),
		CS2:       titleAccount(resp, GameCS2),
		CSGO:      titleAccount(resp, GameCSGO),
	}

	s.logger.Info().Str("steam_id", steamID).Str("player_id", player.PlayerID).Str("nickname", player.Nickname).Msg("player resolved")
	return player, nil
}

// profileURL expands the {lang} placeholder of the upstream profile
// URL template, falling back to a nickname-based URL when the template
// is absent.
func profileURL(resp *api.PlayerResponse) string {
	if resp.FaceitURL != "" {
		return strings.ReplaceAll(resp.FaceitURL, "{lang}", "en")
	}
	return "https://www.faceit.com/en/players/" + resp.Nickname
}

func titleAccount(resp *api.PlayerResponse, game string) domain.TitleAccount {
	g, ok := resp.Games[game]
	if !ok {
		return domain.TitleAccount{}
	}
	return domain.TitleAccount{
		Elo:            g.FaceitElo,
		SkillLevel:     g.SkillLevel,
		GamePlayerName: g.GamePlayerName,
	}
}
