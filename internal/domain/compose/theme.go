package compose

import (
	"image/color"

	"github.com/riftcard/riftcard/internal/domain/classify"
	"github.com/riftcard/riftcard/internal/domain/model"
)

// colorNRGBA keeps theme signatures short.
type colorNRGBA = color.NRGBA

// Report palette. Kept close to the in-client scoreboard colors.
var (
	colBackground = color.NRGBA{R: 0x0a, G: 0x14, B: 0x28, A: 0xff}
	colPanel      = color.NRGBA{R: 0x10, G: 0x1c, B: 0x34, A: 0xff}
	colPanelLight = color.NRGBA{R: 0x1a, G: 0x28, B: 0x44, A: 0xff}
	colHighlight  = color.NRGBA{R: 0x28, G: 0x3c, B: 0x64, A: 0xff}

	colTextMain = color.NRGBA{R: 0xf0, G: 0xe6, B: 0xd2, A: 0xff}
	colTextDim  = color.NRGBA{R: 0xa0, G: 0xa8, B: 0xb8, A: 0xff}
	colTextGold = color.NRGBA{R: 0xc8, G: 0xaa, B: 0x6e, A: 0xff}

	colVictory   = color.NRGBA{R: 0x3c, G: 0xc8, B: 0x8c, A: 0xff}
	colDefeat    = color.NRGBA{R: 0xe8, G: 0x4a, B: 0x5a, A: 0xff}
	colSurrender = color.NRGBA{R: 0xc8, G: 0x96, B: 0x3c, A: 0xff}

	colBlueTeam = color.NRGBA{R: 0x3c, G: 0x82, B: 0xc8, A: 0xff}
	colRedTeam  = color.NRGBA{R: 0xc8, G: 0x50, B: 0x50, A: 0xff}

	colBarTrack = color.NRGBA{R: 0x22, G: 0x2e, B: 0x48, A: 0xff}
	colBarFill  = color.NRGBA{R: 0xc8, G: 0xaa, B: 0x6e, A: 0xff}

	colMedalGold   = color.NRGBA{R: 0xd4, G: 0xaf, B: 0x37, A: 0xff}
	colMedalSilver = color.NRGBA{R: 0xc0, G: 0xc0, B: 0xc8, A: 0xff}
	colMedalBronze = color.NRGBA{R: 0xcd, G: 0x7f, B: 0x32, A: 0xff}
	colCardBorder  = color.NRGBA{R: 0x2a, G: 0x38, B: 0x54, A: 0xff}
)

// outcomeColor styles the header outcome label.
func outcomeColor(o model.Outcome) color.NRGBA {
	switch o {
	case model.OutcomeVictory:
		return colVictory
	case model.OutcomeSurrender:
		return colSurrender
	default:
		return colDefeat
	}
}

// medalColor tints arena team-card borders for podium placements.
func medalColor(m classify.Medal) color.NRGBA {
	switch m {
	case classify.MedalGold:
		return colMedalGold
	case classify.MedalSilver:
		return colMedalSilver
	case classify.MedalBronze:
		return colMedalBronze
	}
	return colCardBorder
}
