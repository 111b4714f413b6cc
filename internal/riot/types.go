// Package riot declares the raw match payload shapes accepted from the Riot
// match-v5 API. The payload is schema-validated upstream; this package only
// mirrors the fields the report renderer consumes.
package riot

// MatchPayload represents the response from /lol/match/v5/matches/{matchId}.
type MatchPayload struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

type MatchInfo struct {
	GameCreation int64         `json:"gameCreation"`
	GameDuration int           `json:"gameDuration"` // seconds
	GameVersion  string        `json:"gameVersion"`
	QueueID      int           `json:"queueId"`
	Participants []Participant `json:"participants"`
}

type Participant struct {
	ParticipantID  int    `json:"participantId"`
	PUUID          string `json:"puuid"`
	RiotIDGameName string `json:"riotIdGameName"`
	RiotIDTagline  string `json:"riotIdTagline"`
	ChampionID     int    `json:"championId"`
	ChampionName   string `json:"championName"`
	TeamID         int    `json:"teamId"`       // 100 blue, 200 red
	TeamPosition   string `json:"teamPosition"` // TOP, JUNGLE, MIDDLE, BOTTOM, UTILITY
	ChampLevel     int    `json:"champLevel"`

	Win                       bool `json:"win"`
	GameEndedInSurrender      bool `json:"gameEndedInSurrender"`
	GameEndedInEarlySurrender bool `json:"gameEndedInEarlySurrender"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
	Item6 int `json:"item6"` // vision trinket

	Summoner1ID int `json:"summoner1Id"`
	Summoner2ID int `json:"summoner2Id"`

	Perks Perks `json:"perks"`

	TotalMinionsKilled          int `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int `json:"neutralMinionsKilled"`
	VisionScore                 int `json:"visionScore"`
	TotalDamageDealtToChampions int `json:"totalDamageDealtToChampions"`
	GoldEarned                  int `json:"goldEarned"`

	// Arena fields; zero outside queue 1700.
	PlayerSubteamID   int `json:"playerSubteamId"`   // 1..8
	SubteamPlacement  int `json:"subteamPlacement"`  // 1..8
	Placement         int `json:"placement"`         // mirrors SubteamPlacement
	PlayerAugment1    int `json:"playerAugment1"`
	PlayerAugment2    int `json:"playerAugment2"`
	PlayerAugment3    int `json:"playerAugment3"`
	PlayerAugment4    int `json:"playerAugment4"`
}

// Perks is the rune page selected for the match.
type Perks struct {
	Styles []PerkStyle `json:"styles"`
}

type PerkStyle struct {
	Description string          `json:"description"` // primaryStyle | subStyle
	Style       int             `json:"style"`       // rune tree id
	Selections  []PerkSelection `json:"selections"`
}

type PerkSelection struct {
	Perk int `json:"perk"`
}

// Items returns the six equipment slot ids in slot order, trinket excluded.
func (p Participant) Items() [6]int {
	return [6]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5}
}

// Surrendered reports whether the game ended in any surrender vote.
func (p Participant) Surrendered() bool {
	return p.GameEndedInSurrender || p.GameEndedInEarlySurrender
}

// ArenaPlacement returns the sub-team placement, preferring the explicit
// subteam field over the legacy mirror.
func (p Participant) ArenaPlacement() int {
	if p.SubteamPlacement != 0 {
		return p.SubteamPlacement
	}
	return p.Placement
}

// Keystone returns the keystone perk id, 0 if the page is malformed.
func (p Participant) Keystone() int {
	for _, s := range p.Perks.Styles {
		if s.Description == "primaryStyle" && len(s.Selections) > 0 {
			return s.Selections[0].Perk
		}
	}
	return 0
}

// SecondaryStyle returns the secondary rune tree id, 0 if absent.
func (p Participant) SecondaryStyle() int {
	for _, s := range p.Perks.Styles {
		if s.Description == "subStyle" {
			return s.Style
		}
	}
	return 0
}
