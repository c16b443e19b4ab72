package game

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"chosenoffset.com/wordexplorer/internal/achievement"
	"chosenoffset.com/wordexplorer/internal/audio"
	"chosenoffset.com/wordexplorer/internal/core/particle"
	"chosenoffset.com/wordexplorer/internal/core/starfield"
	"chosenoffset.com/wordexplorer/internal/core/tile"
	"chosenoffset.com/wordexplorer/internal/telemetry"
	"chosenoffset.com/wordexplorer/internal/words"
)

const (
	// RoundSeconds is the countdown for each level.
	RoundSeconds = 180.0
	// BasePoints is multiplied by combo+1 for each completed word.
	BasePoints = 100

	starCount        = 100
	tileSpacing      = 80.0
	tileBaselineGap  = 150.0
	selectBurst      = 10
	completeBurst    = 50
	completeBurstX   = CanvasWidth / 2
	completeBurstY   = 300.0
	achievementTitle = "Achievements"
)

// Options configures a Game. Nil fields get working defaults.
type Options struct {
	Bank         *words.Bank
	Rand         *rand.Rand
	Audio        audio.Player
	Dialog       Dialog
	Achievements *achievement.Tracker
	Tracer       trace.Tracer
}

// Game holds all game state and logic. It is not safe for concurrent use;
// the frame driver calls it from a single goroutine.
type Game struct {
	state      State
	score      int
	level      int
	combo      int
	timeLeft   float64
	elapsed    float64 // seconds spent on the current level
	targetWord string

	letters   []*tile.Letter
	selection []*tile.Letter
	particles *particle.System
	stars     *starfield.Field
	buttons   []Button
	continueB Button

	bank         *words.Bank
	rng          *rand.Rand
	audio        audio.Player
	dialog       Dialog
	achievements *achievement.Tracker
	tracer       trace.Tracer
}

// New creates a game sitting on the menu at level 1.
func New(opts Options) *Game {
	if opts.Bank == nil {
		opts.Bank = words.MustDefault()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Dialog == nil {
		opts.Dialog = nopDialog{}
	}
	if opts.Achievements == nil {
		opts.Achievements = achievement.NewTracker()
	}
	if opts.Tracer == nil {
		opts.Tracer = telemetry.NoopTracer()
	}

	return &Game{
		state:        StateMenu,
		level:        1,
		timeLeft:     RoundSeconds,
		particles:    particle.NewSystem(),
		stars:        starfield.New(starCount, CanvasWidth, CanvasHeight, opts.Rand),
		buttons:      menuButtons(),
		continueB:    continueButton(),
		bank:         opts.Bank,
		rng:          opts.Rand,
		audio:        opts.Audio,
		dialog:       opts.Dialog,
		achievements: opts.Achievements,
		tracer:       opts.Tracer,
	}
}

// State returns the current state.
func (g *Game) State() State { return g.state }

// Score returns the run's score.
func (g *Game) Score() int { return g.score }

// Level returns the current level number, starting at 1.
func (g *Game) Level() int { return g.level }

// Combo returns the number of words completed this session.
func (g *Game) Combo() int { return g.combo }

// TimeLeft returns the seconds remaining on the countdown.
func (g *Game) TimeLeft() float64 { return g.timeLeft }

// TargetWord returns the word the player must spell.
func (g *Game) TargetWord() string { return g.targetWord }

// Letters returns the tiles for the current level in layout order.
func (g *Game) Letters() []*tile.Letter { return g.letters }

// Attempt returns the selected letters joined in selection order.
func (g *Game) Attempt() string {
	var b strings.Builder
	for _, l := range g.selection {
		b.WriteRune(l.Char)
	}
	return b.String()
}

// StartGame begins a level at the current level number: the countdown is
// reset, a word is picked for the level's tier, and its shuffled letters
// are laid out in a centred row.
func (g *Game) StartGame(ctx context.Context) {
	g.state = StatePlaying
	g.timeLeft = RoundSeconds
	g.elapsed = 0
	g.selection = nil
	g.dialog.Dismiss()

	tier := g.bank.Tier(g.level)
	g.targetWord = g.bank.Pick(g.level, g.rng)

	chars := []rune(g.targetWord)
	words.Shuffle(chars, g.rng)

	startX := CanvasWidth/2 - float64(len(chars)-1)*tileSpacing/2
	y := CanvasHeight - tileBaselineGap
	g.letters = make([]*tile.Letter, len(chars))
	for i, ch := range chars {
		g.letters[i] = tile.New(ch, startX+float64(i)*tileSpacing, y, i)
	}

	_, span := g.tracer.Start(ctx, "game.start")
	span.SetAttributes(
		attribute.Int("level", g.level),
		attribute.Int("tier", tier),
		attribute.Int("word.length", len(chars)),
	)
	span.End()

	log.Debug().Int("level", g.level).Int("tier", tier).Str("word", g.targetWord).Msg("level started")
}

// Update advances the game by dt seconds.
func (g *Game) Update(ctx context.Context, dt float64) {
	g.stars.Update()
	g.dialog.Update(dt)

	switch g.state {
	case StatePlaying:
		g.timeLeft -= dt
		g.elapsed += dt
		if g.timeLeft <= 0 {
			g.timeLeft = 0
			g.timeout(ctx)
			break
		}
		g.updateLetters()
	case StateComplete:
		g.updateLetters()
	}

	g.particles.Update()
}

func (g *Game) updateLetters() {
	for _, l := range g.letters {
		l.Update()
	}
}

// timeout ends the run without credit and returns to the menu.
func (g *Game) timeout(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "game.timeout")
	span.SetAttributes(
		attribute.Int("level", g.level),
		attribute.Int("selection.length", len(g.selection)),
	)
	span.End()

	log.Debug().Int("level", g.level).Str("attempt", g.Attempt()).Msg("run timed out")

	g.state = StateMenu
	g.selection = nil
	g.letters = nil
}

// HandleTap applies a tap at canvas coordinates (x, y). Taps outside every
// interactive region are ignored.
func (g *Game) HandleTap(ctx context.Context, x, y float64) {
	switch g.state {
	case StateMenu:
		for _, b := range g.buttons {
			if b.Contains(x, y) {
				g.audio.PlayTone(audio.ToneButton)
				g.dispatch(ctx, b.Action)
				return
			}
		}
	case StatePlaying:
		// Letters are checked in layout order; a completed word ends the
		// dispatch so later letters cannot undo it.
		for _, l := range g.letters {
			if g.state != StatePlaying {
				return
			}
			if l.Contains(x, y) {
				g.toggle(ctx, l)
			}
		}
	case StateComplete:
		if g.continueB.Contains(x, y) {
			g.dispatch(ctx, g.continueB.Action)
		}
	}
}

// Confirm activates the current screen's default button: Play Game on the
// menu, Continue on the level summary. It does nothing while playing.
func (g *Game) Confirm(ctx context.Context) {
	switch g.state {
	case StateMenu:
		g.audio.PlayTone(audio.ToneButton)
		g.dispatch(ctx, g.buttons[0].Action)
	case StateComplete:
		g.dispatch(ctx, g.continueB.Action)
	}
}

func (g *Game) dispatch(ctx context.Context, action Action) {
	switch action {
	case ActionPlay:
		g.StartGame(ctx)
	case ActionAchievements:
		g.dialog.Show(achievementTitle, g.achievements.Lines())
	case ActionContinue:
		g.level++
		g.StartGame(ctx)
	}
}

// toggle selects an unselected letter or deselects a selected one, then
// checks the attempt against the target.
func (g *Game) toggle(ctx context.Context, l *tile.Letter) {
	if !l.Selected {
		l.Selected = true
		g.selection = append(g.selection, l)
		g.audio.PlayTone(audio.ToneSelect)
		g.particles.Add(particle.Burst(l.X, l.Y, selectBurst, g.rng)...)
	} else {
		l.Selected = false
		g.removeFromSelection(l)
		g.audio.PlayTone(audio.ToneDeselect)
	}

	if g.Attempt() == g.targetWord {
		g.complete(ctx)
	}
}

func (g *Game) removeFromSelection(l *tile.Letter) {
	kept := g.selection[:0]
	for _, s := range g.selection {
		if s != l {
			kept = append(kept, s)
		}
	}
	g.selection = kept
}

// complete awards the word and shows the level summary.
func (g *Game) complete(ctx context.Context) {
	awarded := BasePoints * (g.combo + 1)
	g.score += awarded
	g.combo++
	g.audio.PlayTone(audio.ToneSuccess)
	g.particles.Add(particle.Burst(completeBurstX, completeBurstY, completeBurst, g.rng)...)
	g.state = StateComplete

	_, span := g.tracer.Start(ctx, "game.complete")
	span.SetAttributes(
		attribute.Int("level", g.level),
		attribute.Int("combo", g.combo),
		attribute.Int("points", awarded),
		attribute.Int("score", g.score),
	)
	span.End()

	log.Debug().
		Int("level", g.level).
		Int("points", awarded).
		Int("score", g.score).
		Int("combo", g.combo).
		Msg("word completed")

	earned := g.achievements.RecordCompletion(achievement.Completion{Combo: g.combo, Elapsed: g.elapsed})
	if len(earned) > 0 {
		names := make([]string, len(earned))
		for i, a := range earned {
			names[i] = a.Name + " - " + a.Description
		}
		g.dialog.Show("Achievement Unlocked!", names)
		log.Info().Strs("achievements", names).Msg("achievements unlocked")
	}
}

// Snapshot copies the state the presentation layer needs.
func (g *Game) Snapshot() Snapshot {
	letters := make([]tile.Letter, len(g.letters))
	for i, l := range g.letters {
		letters[i] = *l
	}

	return Snapshot{
		State:      g.state,
		Score:      g.score,
		Level:      g.level,
		Combo:      g.combo,
		TimeLeft:   g.timeLeft,
		TargetWord: g.targetWord,
		Attempt:    g.Attempt(),
		Letters:    letters,
		Particles:  g.particles.Particles(),
		Stars:      append([]starfield.Star(nil), g.stars.Stars...),
		Buttons:    append([]Button(nil), g.buttons...),
		Continue:   g.continueB,
	}
}
