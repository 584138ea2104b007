package stores

import (
	"tutorstate/backend/models"
	"tutorstate/backend/prefers"
	"tutorstate/backend/storage"

	"github.com/rs/zerolog"
)

const ThemeKey = "theme"

// ThemeStore tracks the active display theme and persists every change.
type ThemeStore struct {
	theme *Writable[models.Theme]
	kv    storage.KV
	log   zerolog.Logger
}

// NewThemeStore picks the stored theme, else the environment preference,
// else light. signal is consulted at most once.
func NewThemeStore(kv storage.KV, signal prefers.Signal, log zerolog.Logger) *ThemeStore {
	s := &ThemeStore{
		kv:  kv,
		log: log.With().Str("store", "theme").Logger(),
	}

	initial, ok := s.load()
	if !ok {
		initial = models.Light
		if signal != nil {
			if dark, available := signal.PrefersDark(); available && dark {
				initial = models.Dark
			}
		}
	}

	s.theme = NewWritable(initial)
	return s
}

func (s *ThemeStore) load() (models.Theme, bool) {
	if s.kv == nil {
		return models.Light, false
	}
	raw, err := s.kv.Read(ThemeKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read stored theme")
		return models.Light, false
	}
	if len(raw) == 0 {
		return models.Light, false
	}
	theme, err := models.ParseTheme(string(raw))
	if err != nil {
		s.log.Warn().Err(err).Msg("ignoring stored theme")
		return models.Light, false
	}
	return theme, true
}

func (s *ThemeStore) Get() models.Theme {
	return s.theme.Get()
}

func (s *ThemeStore) Subscribe(fn func(models.Theme)) func() {
	return s.theme.Subscribe(fn)
}

// ToggleTheme flips between light and dark.
func (s *ThemeStore) ToggleTheme() {
	s.theme.Update(func(current models.Theme) models.Theme {
		next := current.Toggled()
		s.persist(next)
		return next
	})
}

func (s *ThemeStore) SetTheme(theme models.Theme) {
	s.theme.Update(func(models.Theme) models.Theme {
		s.persist(theme)
		return theme
	})
}

func (s *ThemeStore) persist(theme models.Theme) {
	if s.kv == nil {
		return
	}
	if err := s.kv.Write(ThemeKey, []byte(theme.String())); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist theme")
	}
}
