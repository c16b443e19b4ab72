package game

// Action is what a button does when tapped.
type Action int

const (
	// ActionPlay starts a level at the current level number.
	ActionPlay Action = iota
	// ActionAchievements shows the achievements panel.
	ActionAchievements
	// ActionContinue advances to the next level.
	ActionContinue
)

// Button is a tappable rectangle centred on (X, Y).
type Button struct {
	Label  string
	Action Action
	X, Y   float64
	W, H   float64
}

// Contains reports whether (px, py) lies inside the button.
func (b Button) Contains(px, py float64) bool {
	return px >= b.X-b.W/2 && px <= b.X+b.W/2 && py >= b.Y-b.H/2 && py <= b.Y+b.H/2
}

const (
	buttonWidth  = 300.0
	buttonHeight = 60.0
)

func menuButtons() []Button {
	y := CanvasHeight/2 + 50.0
	return []Button{
		{Label: "Play Game", Action: ActionPlay, X: CanvasWidth / 2, Y: y, W: buttonWidth, H: buttonHeight},
		{Label: "Daily Challenge", Action: ActionPlay, X: CanvasWidth / 2, Y: y + 80, W: buttonWidth, H: buttonHeight},
		{Label: "Achievements", Action: ActionAchievements, X: CanvasWidth / 2, Y: y + 160, W: buttonWidth, H: buttonHeight},
	}
}

func continueButton() Button {
	return Button{
		Label:  "Continue",
		Action: ActionContinue,
		X:      CanvasWidth / 2,
		Y:      CanvasHeight/2 + 110,
		W:      buttonWidth,
		H:      buttonHeight,
	}
}
