package models

import "image/color"

// IconID names an icon drawn on a card or button. The UI maps each id to a
// concrete theme resource.
type IconID string

const (
	IconHeadphone IconID = "headphone"
	IconVideocam  IconID = "videocam"
	IconSearch    IconID = "search"
	IconPlay      IconID = "play"
)

// Feature describes one tile in the feature grid. The three colours are the
// card background and the two decoration layers painted over it.
type Feature struct {
	Title       string      // Text shown in the top-left corner
	Icon        IconID      // Icon shown in the bottom-left corner
	DarkColor   color.NRGBA // Card background
	MediumColor color.NRGBA // First decoration layer
	LightColor  color.NRGBA // Second decoration layer, painted on top
}

// Meditation is the highlighted session shown above the feature grid.
type Meditation struct {
	Title    string
	Subtitle string
	Color    color.NRGBA
}
