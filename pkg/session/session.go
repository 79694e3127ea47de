package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/hanfei1991/queuelab/pkg/autoid"
	"github.com/hanfei1991/queuelab/pkg/config"
	qerrors "github.com/hanfei1991/queuelab/pkg/errors"
	"github.com/hanfei1991/queuelab/pkg/list"
	"github.com/hanfei1991/queuelab/pkg/logutil"
	"github.com/hanfei1991/queuelab/pkg/notifier"
	"github.com/hanfei1991/queuelab/pkg/queue"
)

// Event is published after every command that changed the active
// structure, including switching to another one.
type Event struct {
	SessionID string
	Seq       int64
	Kind      string
	Rendering string
	Time      time.Time
}

// Entry is one line of the session history.
type Entry struct {
	Time time.Time
	Line string
	Err  string
}

// Stats counts the commands a session has run.
type Stats struct {
	Executed int64
	Failed   int64
}

// Result is the outcome of a successful command.
type Result struct {
	Command Command
	// Value is valid when HasValue is true.
	Value    int32
	HasValue bool
	Changed  bool
	// Rendering is the structure after the command.
	Rendering string
	text      string
}

// Message is what a display shows for the result.
func (r *Result) Message() string {
	args := r.Command.Args
	switch r.Command.Verb {
	case VerbEnqueue:
		return fmt.Sprintf("Enqueued: %d", args[0])
	case VerbDequeue:
		return fmt.Sprintf("Dequeued: %d", r.Value)
	case VerbPeek:
		return fmt.Sprintf("Peek: %d", r.Value)
	case VerbPushFront:
		return fmt.Sprintf("Added to front: %d", args[0])
	case VerbPopRear:
		return fmt.Sprintf("Removed from rear: %d", r.Value)
	case VerbPeekRear:
		return fmt.Sprintf("Rear: %d", r.Value)
	case VerbAppend:
		return fmt.Sprintf("Appended: %d", args[0])
	case VerbRead:
		return fmt.Sprintf("Data at position %d: %d", args[0], r.Value)
	case VerbUpdate:
		return fmt.Sprintf("Updated position %d: %d", args[0], args[1])
	case VerbDelete:
		return fmt.Sprintf("Deleted position %d: %d", args[0], r.Value)
	case VerbShow:
		return r.Rendering
	default:
		return r.text
	}
}

// Option customizes a Session.
type Option func(*Session)

// WithClock sets the clock used to stamp history and events.
func WithClock(c clock.Clock) Option {
	return func(s *Session) {
		s.clock = c
	}
}

// WithFactory replaces NewStructure.
func WithFactory(f Factory) Option {
	return func(s *Session) {
		s.factory = f
	}
}

// WithIDAllocator sets the allocator of the session id.
func WithIDAllocator(a autoid.Allocator) Option {
	return func(s *Session) {
		s.idAlloc = a
	}
}

// Session holds exactly one active structure and serializes every
// operation on it.
type Session struct {
	mu        sync.Mutex
	structure Structure
	history   []Entry
	closed    bool

	id       string
	cfg      *config.Config
	factory  Factory
	clock    clock.Clock
	idAlloc  autoid.Allocator
	notifier *notifier.Notifier[Event]

	executed atomic.Int64
	failed   atomic.Int64
	seq      atomic.Int64
}

// New creates a session whose active structure is cfg.DefaultKind.
func New(cfg *config.Config, opts ...Option) (*Session, error) {
	s := &Session{
		cfg:     cfg,
		factory: NewStructure,
		clock:   clock.New(),
		idAlloc: autoid.NewUUIDAllocator(),
	}
	for _, opt := range opts {
		opt(s)
	}

	structure, err := s.factory(cfg.DefaultKind, cfg.Capacity)
	if err != nil {
		return nil, err
	}
	s.structure = structure
	s.id = s.idAlloc.AllocID()
	s.notifier = notifier.NewNotifier[Event]()

	log.L().Info("session created",
		zap.String("session", s.id),
		zap.String("kind", nameOf(structure)),
		zap.Int("capacity", cfg.Capacity))
	return s, nil
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Kind returns the short name of the active structure.
func (s *Session) Kind() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return nameOf(s.structure)
}

// Render renders the active structure.
func (s *Session) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.structure.String()
}

// Values returns the contents of the active structure.
func (s *Session) Values() []int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.structure.Values()
}

// Stats returns the command counters.
func (s *Session) Stats() Stats {
	return Stats{
		Executed: s.executed.Load(),
		Failed:   s.failed.Load(),
	}
}

// History returns a copy of the recorded history, oldest first.
func (s *Session) History() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.history...)
}

// Subscribe returns a receiver of change events. The caller must close it.
func (s *Session) Subscribe() *notifier.Receiver[Event] {
	return s.notifier.NewReceiver()
}

// Flush waits until every published event reached the subscribers.
func (s *Session) Flush(ctx context.Context) error {
	return s.notifier.Flush(ctx)
}

// Close stops event delivery. Commands fail afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.notifier.Close()
	stats := s.Stats()
	log.L().Info("session closed", zap.String("session", s.id),
		zap.Int64("executed", stats.Executed), zap.Int64("failed", stats.Failed))
}

// Switch replaces the active structure with an empty one of another kind.
// A non-positive capacity selects the configured one.
func (s *Session) Switch(name string, capacity int) error {
	line := "use " + name
	if capacity > 0 {
		line = fmt.Sprintf("%s %d", line, capacity)
	}
	_, err := s.Execute(context.Background(), Command{
		Verb:     VerbUse,
		Kind:     name,
		Capacity: capacity,
		Line:     line,
	})
	return err
}

// ExecuteLine parses and executes one line of input.
func (s *Session) ExecuteLine(ctx context.Context, line string) (*Result, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		s.mu.Lock()
		s.record(strings.TrimSpace(line), err)
		s.mu.Unlock()
		s.failed.Inc()
		return nil, err
	}
	return s.Execute(ctx, cmd)
}

// Execute runs one command against the active structure.
func (s *Session) Execute(ctx context.Context, cmd Command) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Trace(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, qerrors.ErrSessionClosed.GenWithStackByArgs(s.id)
	}

	s.executed.Inc()
	res, err := s.dispatch(cmd)
	s.record(cmd.Line, err)
	if err != nil {
		s.failed.Inc()
		log.L().Info("command failed",
			zap.String("session", s.id),
			zap.String("command", cmd.Line),
			logutil.ShortError(err))
		return nil, err
	}

	res.Rendering = s.structure.String()
	if res.Changed {
		s.notifier.Notify(Event{
			SessionID: s.id,
			Seq:       s.seq.Inc(),
			Kind:      nameOf(s.structure),
			Rendering: res.Rendering,
			Time:      s.clock.Now(),
		})
	}
	log.L().Debug("command executed",
		zap.String("session", s.id),
		zap.String("command", cmd.Line),
		zap.Bool("changed", res.Changed),
		zap.Int("len", s.structure.Len()))
	return res, nil
}

func (s *Session) dispatch(cmd Command) (*Result, error) {
	res := &Result{Command: cmd}
	var err error

	switch cmd.Verb {
	case VerbEnqueue, VerbDequeue, VerbPeek:
		q, ok := s.structure.(queue.Queue)
		if !ok {
			return nil, s.unsupported(cmd.Verb)
		}
		switch cmd.Verb {
		case VerbEnqueue:
			err = q.Enqueue(cmd.Args[0])
			res.Changed = true
		case VerbDequeue:
			res.Value, err = q.Dequeue()
			res.HasValue, res.Changed = true, true
		default:
			res.Value, err = q.Peek()
			res.HasValue = true
		}
	case VerbPushFront, VerbPopRear, VerbPeekRear:
		d, ok := s.structure.(*queue.Deque)
		if !ok {
			return nil, s.unsupported(cmd.Verb)
		}
		switch cmd.Verb {
		case VerbPushFront:
			d.AddFront(cmd.Args[0])
			res.Changed = true
		case VerbPopRear:
			res.Value, err = d.RemoveRear()
			res.HasValue, res.Changed = true, true
		default:
			res.Value, err = d.PeekRear()
			res.HasValue = true
		}
	case VerbAppend, VerbRead, VerbUpdate, VerbDelete:
		l, ok := s.structure.(*list.List)
		if !ok {
			return nil, s.unsupported(cmd.Verb)
		}
		switch cmd.Verb {
		case VerbAppend:
			l.Append(cmd.Args[0])
			res.Changed = true
		case VerbRead:
			res.Value, err = l.Read(int(cmd.Args[0]))
			res.HasValue = true
		case VerbUpdate:
			err = l.Update(int(cmd.Args[0]), cmd.Args[1])
			res.Changed = true
		default:
			res.Value, err = l.Delete(int(cmd.Args[0]))
			res.HasValue, res.Changed = true, true
		}
	case VerbShow:
	case VerbUse:
		capacity := cmd.Capacity
		if capacity <= 0 {
			capacity = s.cfg.Capacity
		}
		var structure Structure
		structure, err = s.factory(cmd.Kind, capacity)
		if err != nil {
			return nil, err
		}
		s.structure = structure
		res.Changed = true
		res.text = "Switched to " + labelOf(structure)
		log.L().Info("session switched structure",
			zap.String("session", s.id),
			zap.String("kind", nameOf(structure)),
			zap.Int("capacity", capacity))
	case VerbHistory:
		res.text = s.formatHistory()
	case VerbStats:
		stats := s.Stats()
		res.text = fmt.Sprintf("executed %d, failed %d", stats.Executed, stats.Failed)
	case VerbHelp:
		res.text = Usage()
	default:
		return nil, qerrors.ErrUnknownCommand.GenWithStackByArgs(string(cmd.Verb))
	}

	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Session) unsupported(verb Verb) error {
	return qerrors.ErrUnsupportedOperation.GenWithStackByArgs(labelOf(s.structure), string(verb))
}

// record must be called with s.mu held.
func (s *Session) record(line string, err error) {
	if s.cfg.HistorySize <= 0 {
		return
	}
	entry := Entry{Time: s.clock.Now(), Line: line}
	if err != nil {
		entry.Err = qerrors.Message(err)
	}
	s.history = append(s.history, entry)
	if over := len(s.history) - s.cfg.HistorySize; over > 0 {
		s.history = append(s.history[:0], s.history[over:]...)
	}
}

func (s *Session) formatHistory() string {
	if len(s.history) == 0 {
		return "no history"
	}
	lines := make([]string, 0, len(s.history))
	for i, e := range s.history {
		line := fmt.Sprintf("%3d  %s  %s", i+1, e.Time.Format("15:04:05"), e.Line)
		if e.Err != "" {
			line += "  (" + e.Err + ")"
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
