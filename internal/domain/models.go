package domain

import "encoding/json"

// Player is the resolved FACEIT profile for a Steam ID, built once per
// request from the player lookup response and never mutated.
type Player struct {
	PlayerID  string
	Nickname  string
	Country   string
	FaceitURL string
	CS2       TitleAccount
	CSGO      TitleAccount
}

// TitleAccount is the per-title sub-record of a profile. Every field is
// optional upstream: a player may have never touched one of the titles.
type TitleAccount struct {
	Elo            *int
	SkillLevel     *int
	GamePlayerName string
}

// TitleStats carries the lifetime statistics block for one title,
// passed through verbatim from the upstream payload. Nil when the
// fetch failed or the player has no stats for the title.
type TitleStats struct {
	Lifetime json.RawMessage
}

// RecentForm is the aggregate over the player's last matches. Ratios
// are rounded once, at composition time: Avg/KD/KR to two decimals,
// ADR and HSPercent to whole numbers.
type RecentForm struct {
	Avg       float64 `json:"avg"`
	ADR       float64 `json:"adr"`
	KD        float64 `json:"kd"`
	KR        float64 `json:"kr"`
	HSPercent float64 `json:"hs"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	EloChange *int    `json:"elo_change"`
}
