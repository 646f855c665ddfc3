// ABOUTME: WorkoutStore owns the in-memory workout collection.
// ABOUTME: Every mutation updates memory first, then persists one snapshot to the KV.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/harperreed/routine/internal/models"
	"github.com/harperreed/routine/internal/storage"
	"github.com/sirupsen/logrus"
)

// Store is the authoritative workout collection. The collection is only
// mutated through Store methods; readers receive copies.
type Store struct {
	mu       sync.Mutex
	kv       storage.KV
	key      string
	log      logrus.FieldLogger
	newID    func() string
	workouts []models.Workout

	// snapshot is the blob last read from or written to the KV.
	snapshot      string
	reloadOnWrite bool

	subMu       sync.Mutex
	subscribers map[int]func([]models.Workout)
	nextSub     int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence failures.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// WithKey overrides the snapshot key.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithIDGenerator overrides workout ID generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// WithReloadOnWrite makes every mutation re-read the stored snapshot first,
// so a long-lived store does not overwrite changes another process made to
// the same backend.
func WithReloadOnWrite() Option {
	return func(s *Store) {
		s.reloadOnWrite = true
	}
}

// New creates an empty Store over kv. Call Load to read the persisted snapshot.
func New(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:          kv,
		key:         storage.SnapshotKey,
		log:         logrus.StandardLogger(),
		newID:       func() string { return uuid.New().String() },
		workouts:    []models.Workout{},
		subscribers: make(map[int]func([]models.Workout)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted snapshot. A missing or unreadable snapshot
// leaves the collection empty; failures are logged, never returned.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.workouts = []models.Workout{}
	s.snapshot = ""

	value, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logPersistence(&models.PersistenceError{Op: "load", Err: err})
		return
	}
	if !ok {
		s.log.WithField("key", s.key).Debug("no stored snapshot, starting empty")
		return
	}

	workouts, err := decodeSnapshot(value)
	if err != nil {
		s.logPersistence(&models.PersistenceError{Op: "load", Err: err})
		return
	}
	s.workouts = workouts
	s.snapshot = value
	s.log.WithField("workouts", len(workouts)).Debug("loaded snapshot")
}

// Reload re-reads the stored snapshot and reports whether it differed from
// the collection in memory. Subscribers are notified on change. A missing or
// unreadable snapshot keeps the current collection.
func (s *Store) Reload(ctx context.Context) bool {
	s.mu.Lock()
	changed := s.refreshLocked(ctx)
	s.mu.Unlock()

	if changed {
		s.notify()
	}
	return changed
}

// Workouts returns a copy of the collection in stored order.
func (s *Store) Workouts() []models.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.workouts)
}

// Len returns the number of workouts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.workouts)
}

// Get returns the workout with the exact id.
func (s *Store) Get(id string) (models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Workout{}, &models.NotFoundError{ID: id}
	}
	return s.workouts[i].Clone(), nil
}

// Resolve finds a workout by full ID or unique ID prefix.
func (s *Store) Resolve(idOrPrefix string) (models.Workout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idOrPrefix == "" {
		return models.Workout{}, &models.NotFoundError{ID: idOrPrefix}
	}
	if i := s.indexOf(idOrPrefix); i >= 0 {
		return s.workouts[i].Clone(), nil
	}

	match := -1
	for i := range s.workouts {
		if strings.HasPrefix(s.workouts[i].ID, idOrPrefix) {
			if match >= 0 {
				return models.Workout{}, fmt.Errorf("ambiguous prefix %s: matches multiple workouts", idOrPrefix)
			}
			match = i
		}
	}
	if match < 0 {
		return models.Workout{}, &models.NotFoundError{ID: idOrPrefix}
	}
	return s.workouts[match].Clone(), nil
}

// Replace swaps the whole collection and persists it.
func (s *Store) Replace(ctx context.Context, collection []models.Workout) {
	s.mu.Lock()
	s.replaceLocked(ctx, cloneAll(collection))
	s.mu.Unlock()
	s.notify()
}

// Create validates input, appends a new workout, and persists.
func (s *Store) Create(ctx context.Context, in models.WorkoutInput) (models.Workout, error) {
	if err := in.Validate(); err != nil {
		return models.Workout{}, err
	}

	s.mu.Lock()
	s.beforeWriteLocked(ctx)
	w := models.Workout{ID: s.uniqueID(), CompletedOn: []string{}}
	w.Apply(in)

	next := append(cloneAll(s.workouts), w)
	s.replaceLocked(ctx, next)
	s.mu.Unlock()

	s.notify()
	return w.Clone(), nil
}

// Update replaces the editable fields of workout id and persists.
// ID and completion history are preserved.
func (s *Store) Update(ctx context.Context, id string, in models.WorkoutInput) (models.Workout, error) {
	if err := in.Validate(); err != nil {
		return models.Workout{}, err
	}

	s.mu.Lock()
	s.beforeWriteLocked(ctx)
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return models.Workout{}, &models.NotFoundError{ID: id}
	}

	next := cloneAll(s.workouts)
	next[i].Apply(in)
	updated := next[i].Clone()
	s.replaceLocked(ctx, next)
	s.mu.Unlock()

	s.notify()
	return updated, nil
}

// Delete removes workout id if present and persists. It reports whether a
// workout was removed; an unknown id is not an error.
func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	s.beforeWriteLocked(ctx)
	next := slices.DeleteFunc(cloneAll(s.workouts), func(w models.Workout) bool {
		return w.ID == id
	})
	removed := len(next) != len(s.workouts)
	s.replaceLocked(ctx, next)
	s.mu.Unlock()

	s.notify()
	return removed
}

// ToggleCompletion flips dateKey in workout id's completion set and persists.
// An unknown id leaves the collection unchanged and reports found=false.
func (s *Store) ToggleCompletion(ctx context.Context, id, dateKey string) (w models.Workout, found bool) {
	s.mu.Lock()
	s.beforeWriteLocked(ctx)
	next := cloneAll(s.workouts)
	i := s.indexOf(id)
	if i >= 0 {
		next[i].ToggleCompletion(dateKey)
		w = next[i].Clone()
		found = true
	}
	s.replaceLocked(ctx, next)
	s.mu.Unlock()

	s.notify()
	return w, found
}

// Import adds workouts to the collection, or swaps the collection when
// replace is set. Merging rejects IDs that already exist.
func (s *Store) Import(ctx context.Context, workouts []models.Workout, replace bool) (int, error) {
	if replace {
		s.Replace(ctx, workouts)
		return len(workouts), nil
	}

	s.mu.Lock()
	s.beforeWriteLocked(ctx)
	for _, w := range workouts {
		if s.indexOf(w.ID) >= 0 {
			s.mu.Unlock()
			return 0, fmt.Errorf("workout %s already exists", w.ID)
		}
	}
	next := append(cloneAll(s.workouts), cloneAll(workouts)...)
	s.replaceLocked(ctx, next)
	s.mu.Unlock()

	s.notify()
	return len(workouts), nil
}

// Persist writes the current collection to the KV. The error is logged and
// also returned for callers that want it; mutations never surface it.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked(ctx)
}

// Subscribe registers fn to receive a copy of the collection after every
// mutation. The returned func cancels the subscription.
func (s *Store) Subscribe(fn func([]models.Workout)) (cancel func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store) replaceLocked(ctx context.Context, next []models.Workout) {
	s.workouts = next
	_ = s.persistLocked(ctx)
}

func (s *Store) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(s.workouts)
	if err != nil {
		perr := &models.PersistenceError{Op: "encode", Err: err}
		s.logPersistence(perr)
		return perr
	}
	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		perr := &models.PersistenceError{Op: "save", Err: err}
		s.logPersistence(perr)
		return perr
	}
	s.snapshot = string(data)
	return nil
}

func (s *Store) beforeWriteLocked(ctx context.Context) {
	if s.reloadOnWrite {
		s.refreshLocked(ctx)
	}
}

func (s *Store) refreshLocked(ctx context.Context) bool {
	value, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logPersistence(&models.PersistenceError{Op: "reload", Err: err})
		return false
	}
	if !ok || value == s.snapshot {
		return false
	}

	workouts, err := decodeSnapshot(value)
	if err != nil {
		s.logPersistence(&models.PersistenceError{Op: "reload", Err: err})
		return false
	}
	s.workouts = workouts
	s.snapshot = value
	s.log.WithField("workouts", len(workouts)).Debug("reloaded snapshot written elsewhere")
	return true
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func([]models.Workout), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	if len(fns) == 0 {
		return
	}
	snapshot := s.Workouts()
	for _, fn := range fns {
		fn(cloneAll(snapshot))
	}
}

func (s *Store) logPersistence(err *models.PersistenceError) {
	s.log.WithError(err.Err).WithFields(logrus.Fields{
		"op":  err.Op,
		"key": s.key,
	}).Error("workout snapshot persistence failed")
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.workouts, func(w models.Workout) bool {
		return w.ID == id
	})
}

func (s *Store) uniqueID() string {
	for {
		id := s.newID()
		if id != "" && s.indexOf(id) < 0 {
			return id
		}
	}
}

func decodeSnapshot(value string) ([]models.Workout, error) {
	var workouts []models.Workout
	if err := json.Unmarshal([]byte(value), &workouts); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if workouts == nil {
		return []models.Workout{}, nil
	}
	return cloneAll(workouts), nil
}

func cloneAll(workouts []models.Workout) []models.Workout {
	out := make([]models.Workout, len(workouts))
	for i := range workouts {
		out[i] = workouts[i].Clone()
	}
	return out
}

// IsNotFound reports whether err is a *models.NotFoundError.
func IsNotFound(err error) bool {
	var nf *models.NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a *models.ValidationError.
func IsValidation(err error) bool {
	var ve *models.ValidationError
	return errors.As(err, &ve)
}
