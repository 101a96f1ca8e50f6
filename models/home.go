package models

// ChipLabels are the filter chips shown under the greeting, in display order.
var ChipLabels = []string{"Sweet Sleep", "Insomnia", "Depression"}

// DefaultUserName is greeted when no name has been configured.
const DefaultUserName = "Yash"

var CurrentMeditation = Meditation{
	Title:    "Daily Thought",
	Subtitle: "Meditation • 3-10 min",
	Color:    LightRed,
}

// Features returns the feature grid contents. A fresh slice is returned so
// callers cannot modify the screen's static list.
func Features() []Feature {
	return []Feature{
		{
			Title:       "Sleep meditation",
			Icon:        IconHeadphone,
			DarkColor:   BlueViolet1,
			MediumColor: BlueViolet2,
			LightColor:  BlueViolet3,
		},
		{
			Title:       "Tips for sleeping",
			Icon:        IconVideocam,
			DarkColor:   LightGreen1,
			MediumColor: LightGreen2,
			LightColor:  LightGreen3,
		},
		{
			Title:       "Night island",
			Icon:        IconHeadphone,
			DarkColor:   OrangeYellow1,
			MediumColor: OrangeYellow2,
			LightColor:  OrangeYellow3,
		},
		{
			Title:       "Calming sounds",
			Icon:        IconHeadphone,
			DarkColor:   Beige1,
			MediumColor: Beige2,
			LightColor:  Beige3,
		},
	}
}
