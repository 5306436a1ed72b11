package css

// SystemColor is a CSS system color keyword. These resolve against the
// user's platform theme, so they have no fixed channel values here.
type SystemColor string

const (
	SystemAccentColor      SystemColor = "AccentColor"
	SystemAccentColorText  SystemColor = "AccentColorText"
	SystemActiveText       SystemColor = "ActiveText"
	SystemButtonBorder     SystemColor = "ButtonBorder"
	SystemButtonFace       SystemColor = "ButtonFace"
	SystemButtonText       SystemColor = "ButtonText"
	SystemCanvas           SystemColor = "Canvas"
	SystemCanvasText       SystemColor = "CanvasText"
	SystemField            SystemColor = "Field"
	SystemFieldText        SystemColor = "FieldText"
	SystemGrayText         SystemColor = "GrayText"
	SystemHighlight        SystemColor = "Highlight"
	SystemHighlightText    SystemColor = "HighlightText"
	SystemLinkText         SystemColor = "LinkText"
	SystemMark             SystemColor = "Mark"
	SystemMarkText         SystemColor = "MarkText"
	SystemSelectedItem     SystemColor = "SelectedItem"
	SystemSelectedItemText SystemColor = "SelectedItemText"
	SystemVisitedText      SystemColor = "VisitedText"
)

// String returns the keyword with its conventional capitalization.
func (s SystemColor) String() string { return string(s) }

func (SystemColor) isColor() {}
