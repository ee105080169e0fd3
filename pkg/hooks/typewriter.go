package hooks

import (
	"sync"
	"time"

	"portfolio-backend/pkg/clock"
)

// Phase is the state of a Typewriter.
type Phase int

const (
	// Typing appends one character per tick.
	Typing Phase = iota
	// Waiting holds the full text before deleting starts.
	Waiting
	// Deleting removes one character per tick.
	Deleting
)

func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	case Waiting:
		return "waiting"
	case Deleting:
		return "deleting"
	default:
		return "unknown"
	}
}

const (
	DefaultTypeSpeed    = 100 * time.Millisecond
	DefaultDeleteSpeed  = 50 * time.Millisecond
	DefaultDelayBetween = 2 * time.Second
	DefaultCursor       = "|"
)

// TypewriterOptions configures a Typewriter. Zero or negative durations
// fall back to the defaults.
type TypewriterOptions struct {
	Speed        time.Duration
	DeleteSpeed  time.Duration
	DelayBetween time.Duration
	Cursor       string
	OnChange     func(TypewriterState)
}

// TypewriterState is a snapshot of the machine.
type TypewriterState struct {
	Index int
	Text  string
	Phase Phase
}

// Typewriter cycles through a list of strings, typing each one out,
// pausing, deleting it and moving on to the next. At most one timer is
// pending at any time.
type Typewriter struct {
	mu      sync.Mutex
	clock   clock.Clock
	texts   [][]rune
	opts    TypewriterOptions
	index   int
	length  int
	phase   Phase
	pending clock.Timer
	gen     uint64
	running bool
}

// NewTypewriter creates a stopped Typewriter over texts.
func NewTypewriter(clk clock.Clock, texts []string, opts TypewriterOptions) *Typewriter {
	if opts.Speed <= 0 {
		opts.Speed = DefaultTypeSpeed
	}
	if opts.DeleteSpeed <= 0 {
		opts.DeleteSpeed = DefaultDeleteSpeed
	}
	if opts.DelayBetween <= 0 {
		opts.DelayBetween = DefaultDelayBetween
	}
	if opts.Cursor == "" {
		opts.Cursor = DefaultCursor
	}

	runes := make([][]rune, len(texts))
	for i, t := range texts {
		runes[i] = []rune(t)
	}

	return &Typewriter{
		clock: clk,
		texts: runes,
		opts:  opts,
		phase: Typing,
	}
}

// Start begins the cycle. Starting a running Typewriter does nothing.
func (tw *Typewriter) Start() {
	tw.mu.Lock()
	if tw.running {
		tw.mu.Unlock()
		return
	}
	tw.running = true
	tw.advance()
	tw.mu.Unlock()
}

// Stop cancels the pending timer. The current state is kept.
func (tw *Typewriter) Stop() {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	tw.running = false
	tw.cancel()
}

// State returns a snapshot of the current state.
func (tw *Typewriter) State() TypewriterState {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.snapshot()
}

// Text returns the currently displayed prefix.
func (tw *Typewriter) Text() string {
	return tw.State().Text
}

// Display returns the displayed text followed by the cursor. With no texts
// only the cursor is shown.
func (tw *Typewriter) Display() string {
	return tw.Text() + tw.opts.Cursor
}

func (tw *Typewriter) snapshot() TypewriterState {
	if len(tw.texts) == 0 {
		return TypewriterState{Phase: tw.phase}
	}
	return TypewriterState{
		Index: tw.index,
		Text:  string(tw.texts[tw.index][:tw.length]),
		Phase: tw.phase,
	}
}

// advance decides the next timer from the current state. Transitions that
// need no delay are applied immediately. Callers must hold tw.mu.
func (tw *Typewriter) advance() {
	if !tw.running || len(tw.texts) == 0 {
		return
	}

	current := tw.texts[tw.index]

	switch tw.phase {
	case Typing:
		if tw.length >= len(current) {
			tw.phase = Waiting
			tw.schedule(tw.opts.DelayBetween, tw.finishWaiting)
			return
		}
		tw.schedule(tw.opts.Speed, tw.typeNext)

	case Waiting:
		tw.schedule(tw.opts.DelayBetween, tw.finishWaiting)

	case Deleting:
		if tw.length == 0 {
			tw.index = (tw.index + 1) % len(tw.texts)
			tw.phase = Typing
			tw.advance()
			return
		}
		tw.schedule(tw.opts.DeleteSpeed, tw.deleteNext)
	}
}

func (tw *Typewriter) typeNext() {
	tw.length++
}

func (tw *Typewriter) deleteNext() {
	tw.length--
}

func (tw *Typewriter) finishWaiting() {
	tw.phase = Deleting
}

// schedule replaces the pending timer with one that applies step and then
// advances the machine. Callers must hold tw.mu.
func (tw *Typewriter) schedule(d time.Duration, step func()) {
	tw.cancel()
	gen := tw.gen
	tw.pending = tw.clock.AfterFunc(d, func() {
		tw.mu.Lock()
		if gen != tw.gen || !tw.running {
			tw.mu.Unlock()
			return
		}
		tw.pending = nil
		step()
		tw.advance()
		state := tw.snapshot()
		onChange := tw.opts.OnChange
		tw.mu.Unlock()

		if onChange != nil {
			onChange(state)
		}
	})
}

// cancel stops the pending timer and invalidates its callback. Callers
// must hold tw.mu.
func (tw *Typewriter) cancel() {
	tw.gen++
	if tw.pending != nil {
		tw.pending.Stop()
		tw.pending = nil
	}
}
