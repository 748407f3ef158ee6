package service

import (
	"math"
	"strconv"

	"faceit-stats/internal/api"
	"faceit-stats/internal/domain"
)

// Statistic field names of the upstream match payload.
const (
	statKills     = "Kills"
	statDeaths    = "Deaths"
	statHeadshots = "Headshots"
	statADR       = "ADR"
	statResult    = "Result"
	statRounds    = "Rounds"
)

// aggregate reduces a batch of match details into the player's recent
// form. Matches where the player does not appear or carries no
// statistics map, failed fetches (nil slots) and malformed payloads
// are skipped and do not count toward any denominator. Returns nil
// when not a single match was usable.
func aggregate(details []*api.MatchStatsResponse, playerID string) *domain.RecentForm {
	var (
		kills, deaths, headshots int
		rounds, wins, valid      int
		adr                      float64
	)

	for _, detail := range details {
		if detail == nil || len(detail.Rounds) == 0 {
			continue
		}

		// Only the first round block counts; overtime blocks beyond it
		// are ignored.
		block := detail.Rounds[0]

		p := findParticipant(block.Teams, playerID)
		if p == nil || p.PlayerStats == nil {
			continue
		}

		kills += parseIntOrZero(p.PlayerStats[statKills])
		deaths += parseIntOrZero(p.PlayerStats[statDeaths])
		headshots += parseIntOrZero(p.PlayerStats[statHeadshots])
		adr += parseFloatOrZero(p.PlayerStats[statADR])
		rounds += parseIntOrZero(block.RoundStats[statRounds])
		if p.PlayerStats[statResult] == "1" {
			wins++
		}
		valid++
	}

	if valid == 0 {
		return nil
	}

	form := &domain.RecentForm{
		Avg:    round2(float64(kills) / float64(valid)),
		ADR:    math.Round(adr / float64(valid)),
		Wins:   wins,
		Losses: valid - wins,
	}

	// Guard every ratio: K/D falls back to raw kills, K/R and HS% to
	// zero, instead of dividing by zero.
	if deaths == 0 {
		form.KD = round2(float64(kills))
	} else {
		form.KD = round2(float64(kills) / float64(deaths))
	}
	if rounds > 0 {
		form.KR = round2(float64(kills) / float64(rounds))
	}
	if kills > 0 {
		form.HSPercent = math.Round(float64(headshots) / float64(kills) * 100)
	}

	return form
}

// findParticipant flattens all teams' rosters and returns the entry
// matching the target player id, or nil.
func findParticipant(teams []api.MatchTeam, playerID string) *api.MatchParticipant {
	for _, team := range teams {
		for i := range team.Players {
			if team.Players[i].PlayerID == playerID {
				return &team.Players[i]
			}
		}
	}
	return nil
}

// parseIntOrZero parses an upstream statistic value, treating missing
// or malformed input as a zero contribution.
func parseIntOrZero(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
