package tasks

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"tarefas/internal/storage"
)

// Store owns the ordered task list, the editing state and the pending input
// buffer. Every mutation is applied in memory first, then written to storage
// by a detached goroutine; storage failures are logged and never returned.
type Store struct {
	storage storage.Storage
	logger  *zap.Logger
	key     string
	now     func() time.Time
	timeout time.Duration

	mu        sync.Mutex
	tasks     []Task
	editingID string
	input     string
	lastID    int64
	version   uint64

	subsMu  sync.Mutex
	subs    map[int]func(State)
	nextSub int

	// Persistence bookkeeping. issued is bumped under mu so sequence numbers
	// follow mutation order; applied is only touched under writeMu.
	writeMu sync.Mutex
	issued  uint64
	applied uint64

	// idle is closed whenever no storage call is in flight.
	inflightMu sync.Mutex
	inflight   int
	idle       chan struct{}
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithClock overrides the clock used to generate task ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithTimeout bounds every storage call. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Store) { s.timeout = d }
}

// New creates an empty store backed by st. Call Load to read persisted tasks.
func New(st storage.Storage, opts ...Option) *Store {
	s := &Store{
		storage: st,
		logger:  zap.NewNop(),
		key:     DefaultKey,
		now:     time.Now,
		tasks:   []Task{},
		subs:    make(map[int]func(State)),
		idle:    make(chan struct{}),
	}
	close(s.idle)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory list with the persisted one. A missing or empty
// record leaves the list empty; read and decode failures are logged and
// treated the same way. If a mutation is issued while the record is being
// read, the in-memory list is newer than the record and is kept.
func (s *Store) Load(ctx context.Context) {
	loaded := []Task{}

	s.mu.Lock()
	issued := s.issued
	s.mu.Unlock()

	ctx, cancel := s.callContext(ctx)
	raw, ok, err := s.storage.Get(ctx, s.key)
	cancel()

	switch {
	case err != nil:
		s.logger.Error("failed to load tasks", zap.String("key", s.key), zap.Error(err))
	case !ok || raw == "":
	default:
		decoded, err := Decode(raw)
		if err != nil {
			s.logger.Error("failed to decode stored tasks", zap.String("key", s.key), zap.Error(err))
		} else {
			loaded = decoded
		}
	}

	s.mu.Lock()
	for _, t := range loaded {
		if n, err := strconv.ParseInt(t.ID, 10, 64); err == nil && n > s.lastID {
			s.lastID = n
		}
	}
	if newer := s.issued - issued; newer > 0 {
		s.mu.Unlock()
		s.logger.Debug("discarding stale load",
			zap.Int("count", len(loaded)),
			zap.Uint64("newer_writes", newer))
		return
	}
	s.tasks = loaded
	if s.editingID != "" && s.indexLocked(s.editingID) < 0 {
		s.editingID = ""
		s.input = ""
	}
	state := s.changedLocked()
	s.mu.Unlock()

	s.logger.Debug("tasks loaded", zap.Int("count", len(loaded)))
	s.notify(state)
}

// Add appends a task with text, or, while editing, replaces the text of the
// task being edited. Text that is blank after trimming is ignored. The text
// is stored as given.
func (s *Store) Add(text string) State {
	s.mu.Lock()
	if strings.TrimSpace(text) == "" {
		state := s.snapshotLocked()
		s.mu.Unlock()
		return state
	}

	updated := make([]Task, 0, len(s.tasks)+1)
	if s.editingID != "" {
		for _, t := range s.tasks {
			if t.ID == s.editingID {
				t.Text = text
			}
			updated = append(updated, t)
		}
		s.editingID = ""
	} else {
		updated = append(updated, s.tasks...)
		updated = append(updated, Task{ID: s.nextIDLocked(), Text: text})
	}
	s.tasks = updated
	s.input = ""

	state := s.changedLocked()
	s.persistLocked(updated)
	s.mu.Unlock()

	s.notify(state)
	return state
}

// Remove deletes the task with id. Unknown ids leave the list unchanged, but
// the resulting list is still persisted.
func (s *Store) Remove(id string) State {
	s.mu.Lock()
	updated := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			updated = append(updated, t)
		}
	}
	s.tasks = updated
	if s.editingID != "" && s.editingID == id {
		s.editingID = ""
		s.input = ""
	}

	state := s.changedLocked()
	s.persistLocked(updated)
	s.mu.Unlock()

	s.notify(state)
	return state
}

// ClearAll empties the list and removes the persisted record.
func (s *Store) ClearAll() State {
	s.mu.Lock()
	s.tasks = []Task{}
	s.editingID = ""
	s.input = ""

	state := s.changedLocked()
	s.removeLocked()
	s.mu.Unlock()

	s.notify(state)
	return state
}

// BeginEdit enters editing mode for id and seeds the input buffer with the
// task's current text.
func (s *Store) BeginEdit(id string) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return errors.Wrapf(ErrTaskNotFound, "cannot edit %q", id)
	}
	s.editingID = id
	s.input = s.tasks[idx].Text
	state := s.changedLocked()
	s.mu.Unlock()

	s.notify(state)
	return nil
}

// CancelEdit leaves editing mode and clears the input buffer.
func (s *Store) CancelEdit() {
	s.mu.Lock()
	if s.editingID == "" {
		s.mu.Unlock()
		return
	}
	s.editingID = ""
	s.input = ""
	state := s.changedLocked()
	s.mu.Unlock()

	s.notify(state)
}

// Input returns the pending input buffer.
func (s *Store) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// SetInput replaces the pending input buffer. Subscribers are not notified;
// the buffer is owned by whoever is typing.
func (s *Store) SetInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = text
}

// Tasks returns a copy of the ordered list.
func (s *Store) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Task(nil), s.tasks...)
}

// Editing returns the id of the task being edited.
func (s *Store) Editing() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID, s.editingID != ""
}

// Logger returns the logger the store reports persistence failures to.
func (s *Store) Logger() *zap.Logger {
	return s.logger
}

// Snapshot returns the full presentation state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to be called with a snapshot after every state
// change. fn runs on the goroutine that made the change, outside the store
// lock. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, id)
			s.subsMu.Unlock()
		})
	}
}

// Flush waits for every storage call issued so far to finish.
func (s *Store) Flush(ctx context.Context) error {
	s.inflightMu.Lock()
	done := s.idle
	s.inflightMu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// Close flushes pending writes and closes the storage backend.
func (s *Store) Close(ctx context.Context) error {
	flushErr := s.Flush(ctx)
	if err := s.storage.Close(); err != nil {
		return errors.WithStack(err)
	}
	return flushErr
}

func (s *Store) snapshotLocked() State {
	return State{
		Tasks:     append([]Task(nil), s.tasks...),
		Input:     s.input,
		EditingID: s.editingID,
		Version:   s.version,
	}
}

// changedLocked records a state change and returns the new snapshot.
func (s *Store) changedLocked() State {
	s.version++
	return s.snapshotLocked()
}

func (s *Store) indexLocked(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// nextIDLocked returns the current time in Unix milliseconds, bumped past the
// highest id seen so ids stay unique when the clock stalls or goes back.
func (s *Store) nextIDLocked() string {
	n := s.now().UnixMilli()
	if n <= s.lastID {
		n = s.lastID + 1
	}
	s.lastID = n
	return strconv.FormatInt(n, 10)
}

func (s *Store) persistLocked(tasks []Task) {
	raw, err := Encode(tasks)
	if err != nil {
		s.logger.Error("failed to encode tasks", zap.Error(err))
		return
	}
	s.dispatchLocked("save", func(ctx context.Context) error {
		return s.storage.Set(ctx, s.key, raw)
	})
}

func (s *Store) removeLocked() {
	s.dispatchLocked("remove", func(ctx context.Context) error {
		return s.storage.Remove(ctx, s.key)
	})
}

// dispatchLocked runs call on its own goroutine. A call that finds a newer
// one already applied is dropped so storage converges on the latest state.
func (s *Store) dispatchLocked(op string, call func(ctx context.Context) error) {
	s.issued++
	seq := s.issued

	s.beginCall()
	go func() {
		defer s.endCall()

		s.writeMu.Lock()
		defer s.writeMu.Unlock()

		if seq < s.applied {
			s.logger.Debug("skipping stale write", zap.String("op", op), zap.Uint64("seq", seq))
			return
		}
		s.applied = seq

		ctx, cancel := s.callContext(context.Background())
		defer cancel()

		if err := call(ctx); err != nil {
			s.logger.Error("failed to persist tasks",
				zap.String("op", op),
				zap.String("key", s.key),
				zap.Uint64("seq", seq),
				zap.Error(err))
			return
		}
		s.logger.Debug("tasks persisted", zap.String("op", op), zap.Uint64("seq", seq))
	}()
}

func (s *Store) beginCall() {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()
	if s.inflight == 0 {
		s.idle = make(chan struct{})
	}
	s.inflight++
}

func (s *Store) endCall() {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()
	s.inflight--
	if s.inflight == 0 {
		close(s.idle)
	}
}

func (s *Store) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout > 0 {
		return context.WithTimeout(ctx, s.timeout)
	}
	return context.WithCancel(ctx)
}

func (s *Store) notify(state State) {
	s.subsMu.Lock()
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}
