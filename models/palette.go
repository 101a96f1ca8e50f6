package models

import "image/color"

// Palette shared by the home screen and the card renderer.
var (
	TextWhite        = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	DeepBlue         = color.NRGBA{R: 0x06, G: 0x16, B: 0x4c, A: 0xff}
	ButtonBlue       = color.NRGBA{R: 0x50, G: 0x5c, B: 0xf3, A: 0xff}
	DarkerButtonBlue = color.NRGBA{R: 0x56, G: 0x68, B: 0x94, A: 0xff}
	LightRed         = color.NRGBA{R: 0xfc, G: 0x87, B: 0x9a, A: 0xff}
	AquaBlue         = color.NRGBA{R: 0x9a, G: 0xa5, B: 0xc4, A: 0xff}

	OrangeYellow1 = color.NRGBA{R: 0xf0, G: 0xbd, B: 0x28, A: 0xff}
	OrangeYellow2 = color.NRGBA{R: 0xf1, G: 0xc7, B: 0x46, A: 0xff}
	OrangeYellow3 = color.NRGBA{R: 0xf4, G: 0xcf, B: 0x65, A: 0xff}

	Beige1 = color.NRGBA{R: 0xfd, G: 0xbd, B: 0xa1, A: 0xff}
	Beige2 = color.NRGBA{R: 0xfc, G: 0xaf, B: 0x90, A: 0xff}
	Beige3 = color.NRGBA{R: 0xf9, G: 0xa2, B: 0x7b, A: 0xff}

	LightGreen1 = color.NRGBA{R: 0x54, G: 0xe1, B: 0xb6, A: 0xff}
	LightGreen2 = color.NRGBA{R: 0x36, G: 0xdd, B: 0xab, A: 0xff}
	LightGreen3 = color.NRGBA{R: 0x11, G: 0xd7, B: 0x9b, A: 0xff}

	BlueViolet1 = color.NRGBA{R: 0xae, G: 0xb4, B: 0xfd, A: 0xff}
	BlueViolet2 = color.NRGBA{R: 0x9f, G: 0xa5, B: 0xfe, A: 0xff}
	BlueViolet3 = color.NRGBA{R: 0x8f, G: 0x98, B: 0xfd, A: 0xff}
)
