// Package achievement tracks the milestones a player reaches during a
// session. Nothing is persisted.
package achievement

import "fmt"

// ID identifies an achievement.
type ID string

const (
	FirstWord    ID = "first_word"
	ComboMaster  ID = "combo_master"
	WordExplorer ID = "word_explorer"
	SpeedRunner  ID = "speed_runner"
)

const (
	comboMasterCombo   = 5
	wordExplorerLevels = 20
	speedRunnerSeconds = 60.0
)

// Achievement describes a milestone.
type Achievement struct {
	ID          ID
	Name        string
	Description string
}

// All lists every achievement in display order.
var All = []Achievement{
	{FirstWord, "First Word", "Complete your first level"},
	{ComboMaster, "Combo Master", fmt.Sprintf("Reach %dx combo", comboMasterCombo)},
	{WordExplorer, "Word Explorer", fmt.Sprintf("Complete %d levels", wordExplorerLevels)},
	{SpeedRunner, "Speed Runner", fmt.Sprintf("Finish in under %.0f seconds", speedRunnerSeconds)},
}

// Completion describes a finished level.
type Completion struct {
	Combo   int     // combo after the level was awarded
	Elapsed float64 // seconds spent on the level
}

// Tracker records completions and unlocks achievements.
type Tracker struct {
	completed int
	unlocked  map[ID]bool
}

// NewTracker creates a tracker with nothing unlocked.
func NewTracker() *Tracker {
	return &Tracker{unlocked: make(map[ID]bool)}
}

// RecordCompletion registers a finished level and returns the achievements
// it newly unlocked.
func (t *Tracker) RecordCompletion(c Completion) []Achievement {
	t.completed++

	var earned []Achievement
	for _, a := range All {
		if t.unlocked[a.ID] || !t.qualifies(a.ID, c) {
			continue
		}
		t.unlocked[a.ID] = true
		earned = append(earned, a)
	}
	return earned
}

func (t *Tracker) qualifies(id ID, c Completion) bool {
	switch id {
	case FirstWord:
		return t.completed >= 1
	case ComboMaster:
		return c.Combo >= comboMasterCombo
	case WordExplorer:
		return t.completed >= wordExplorerLevels
	case SpeedRunner:
		return c.Elapsed < speedRunnerSeconds
	default:
		return false
	}
}

// Unlocked reports whether an achievement has been earned.
func (t *Tracker) Unlocked(id ID) bool {
	return t.unlocked[id]
}

// Completed returns the number of levels finished this session.
func (t *Tracker) Completed() int {
	return t.completed
}

// Lines renders every achievement as a checklist line.
func (t *Tracker) Lines() []string {
	lines := make([]string, 0, len(All))
	for _, a := range All {
		mark := "[ ]"
		if t.unlocked[a.ID] {
			mark = "[x]"
		}
		lines = append(lines, fmt.Sprintf("%s %s - %s", mark, a.Name, a.Description))
	}
	return lines
}
