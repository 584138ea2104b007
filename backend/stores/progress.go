package stores

import (
	"encoding/json"
	"time"

	"tutorstate/backend/models"
	"tutorstate/backend/storage"

	"github.com/rs/zerolog"
)

const ProgressKey = "module-progress"

// ProgressStore tracks per-module progress and persists every change.
type ProgressStore struct {
	state *Writable[models.ProgressState]
	kv    storage.KV
	log   zerolog.Logger
	now   func() time.Time
}

// NewProgressStore loads stored progress from kv and fills in defaults for
// every catalog module. kv may be nil when no storage is available.
func NewProgressStore(kv storage.KV, log zerolog.Logger) *ProgressStore {
	s := &ProgressStore{
		kv:  kv,
		log: log.With().Str("store", "progress").Logger(),
		now: time.Now,
	}

	stored := s.load()
	initial := models.DefaultProgress()
	for id := range initial {
		if entry, ok := stored[id]; ok && entry != nil {
			initial[id] = *entry
		}
	}
	if dropped := len(stored) - countKnown(stored); dropped > 0 {
		s.log.Debug().Int("dropped", dropped).Msg("ignoring stored progress for unknown modules")
	}

	s.state = NewWritable(initial)
	return s
}

func (s *ProgressStore) load() map[string]*models.ProgressEntry {
	stored := make(map[string]*models.ProgressEntry)
	if s.kv == nil {
		return stored
	}

	raw, err := s.kv.Read(ProgressKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read stored progress")
		return stored
	}
	if len(raw) == 0 {
		return stored
	}
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.log.Warn().Err(err).Msg("stored progress is not valid JSON, starting empty")
		return make(map[string]*models.ProgressEntry)
	}
	return stored
}

func countKnown(stored map[string]*models.ProgressEntry) int {
	n := 0
	for id := range stored {
		if _, ok := models.FindModule(id); ok {
			n++
		}
	}
	return n
}

// Get returns a copy of the current state.
func (s *ProgressStore) Get() models.ProgressState {
	return s.state.Get().Clone()
}

// Subscribe registers fn; each call receives its own copy of the state.
func (s *ProgressStore) Subscribe(fn func(models.ProgressState)) func() {
	return s.state.Subscribe(func(state models.ProgressState) {
		fn(state.Clone())
	})
}

// MarkVisited stamps moduleID's lastVisited with the current time.
func (s *ProgressStore) MarkVisited(moduleID string) {
	s.update(moduleID, func(entry *models.ProgressEntry, now string) {
		entry.LastVisited = now
	})
}

// MarkCompleted sets the completed flag and stamps lastVisited.
func (s *ProgressStore) MarkCompleted(moduleID string, completed bool) {
	s.update(moduleID, func(entry *models.ProgressEntry, now string) {
		entry.Completed = completed
		entry.LastVisited = now
	})
}

// Reset clears progress for every catalog module.
func (s *ProgressStore) Reset() {
	s.state.Update(func(models.ProgressState) models.ProgressState {
		next := models.DefaultProgress()
		s.persist(next)
		return next
	})
}

func (s *ProgressStore) update(moduleID string, apply func(*models.ProgressEntry, string)) {
	s.state.Update(func(current models.ProgressState) models.ProgressState {
		next := current.Clone()
		// a missing entry starts from the zero record
		entry := next[moduleID]
		apply(&entry, models.FormatTimestamp(s.now()))
		next[moduleID] = entry
		s.persist(next)
		return next
	})
}

func (s *ProgressStore) persist(state models.ProgressState) {
	if s.kv == nil {
		return
	}
	raw, err := json.Marshal(state)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to encode progress")
		return
	}
	if err := s.kv.Write(ProgressKey, raw); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist progress")
	}
}

// Overview summarizes progress over the module catalog.
func (s *ProgressStore) Overview() models.ProgressOverview {
	state := s.state.Get()
	modules := models.Modules()

	overview := models.ProgressOverview{Total: len(modules)}
	var latest string
	for _, m := range modules {
		entry := state[m.ID]
		if entry.Completed {
			overview.Completed++
		}
		if entry.LastVisited == "" {
			continue
		}
		overview.Visited++
		// fixed-width UTC layout sorts lexically
		if entry.LastVisited > latest {
			latest = entry.LastVisited
			overview.LastVisitedID = m.ID
		}
	}
	if overview.Total > 0 {
		overview.PercentComplete = float64(overview.Completed) * 100 / float64(overview.Total)
	}
	return overview
}
