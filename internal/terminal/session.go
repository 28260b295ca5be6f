// Package terminal manages the terminal session the dashboard runs in.
//
// A Session enters the alternate screen and raw mode when it starts and
// restores the previous terminal state when Run returns, whether the
// model quit, the context was cancelled, input failed or the model
// panicked.
package terminal

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameInterval is the render cadence; input is serviced at least this often.
const FrameInterval = 16 * time.Millisecond

// fps is FrameInterval expressed as frames per second.
const fps = int(time.Second / FrameInterval)

type options struct {
	ctx       context.Context
	input     io.Reader
	output    io.Writer
	altScreen bool
}

// Option configures a Session.
type Option func(*options)

// WithContext stops the session when ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

// WithInput reads key presses from r instead of the terminal.
func WithInput(r io.Reader) Option {
	return func(o *options) { o.input = r }
}

// WithOutput renders frames to w instead of the terminal.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithoutAltScreen renders inline instead of on the alternate screen.
func WithoutAltScreen() Option {
	return func(o *options) { o.altScreen = false }
}

// Session owns the terminal for the lifetime of one model.
type Session struct {
	program *tea.Program
}

// Acquire prepares a session for model. The terminal is not touched
// until Run.
func Acquire(model tea.Model, opts ...Option) *Session {
	o := options{ctx: context.Background(), altScreen: true}
	for _, opt := range opts {
		opt(&o)
	}

	teaOpts := []tea.ProgramOption{
		tea.WithContext(o.ctx),
		tea.WithFPS(fps),
	}
	if o.altScreen {
		teaOpts = append(teaOpts, tea.WithAltScreen())
	}
	if o.input != nil {
		teaOpts = append(teaOpts, tea.WithInput(o.input))
	}
	if o.output != nil {
		teaOpts = append(teaOpts, tea.WithOutput(o.output))
	}

	return &Session{program: tea.NewProgram(model, teaOpts...)}
}

// Run drives the model until it quits and returns its final state. The
// terminal is restored before Run returns on every path.
func (s *Session) Run() (tea.Model, error) {
	final, err := s.program.Run()
	if err != nil {
		return final, fmt.Errorf("running terminal session: %w", err)
	}
	return final, nil
}
