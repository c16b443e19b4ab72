// Package dialog shows informational panels over the game without pausing
// it. Panels fade out on their own.
package dialog

// DefaultDuration is how long a panel stays up, in seconds.
const DefaultDuration = 4.0

// Message is an on-screen panel that fades over time.
type Message struct {
	Title    string
	Lines    []string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// Alpha returns the panel opacity in [0, 1].
func (m Message) Alpha() float64 {
	if m.MaxTime <= 0 {
		return 0
	}
	a := m.TimeLeft / m.MaxTime
	// Stay fully opaque for most of the lifetime, fade in the last quarter.
	a *= 4
	if a > 1 {
		return 1
	}
	if a < 0 {
		return 0
	}
	return a
}

// Overlay holds at most one panel. Showing a new panel replaces the old one.
type Overlay struct {
	current  *Message
	duration float64
}

// NewOverlay creates an empty overlay whose panels last duration seconds.
func NewOverlay(duration float64) *Overlay {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Overlay{duration: duration}
}

// Show displays a panel. It returns immediately.
func (o *Overlay) Show(title string, lines []string) {
	o.current = &Message{
		Title:    title,
		Lines:    append([]string(nil), lines...),
		TimeLeft: o.duration,
		MaxTime:  o.duration,
	}
}

// Dismiss removes the current panel.
func (o *Overlay) Dismiss() {
	o.current = nil
}

// Update counts the current panel down by dt seconds.
func (o *Overlay) Update(dt float64) {
	if o.current == nil {
		return
	}
	o.current.TimeLeft -= dt
	if o.current.TimeLeft <= 0 {
		o.current = nil
	}
}

// Current returns a copy of the visible panel, if any.
func (o *Overlay) Current() (Message, bool) {
	if o.current == nil {
		return Message{}, false
	}
	return *o.current, true
}
