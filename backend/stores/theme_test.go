package stores

import (
	"testing"

	"tutorstate/backend/models"
	"tutorstate/backend/prefers"
	"tutorstate/backend/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThemeStore_InitialTheme(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		signal prefers.Signal
		want   models.Theme
	}{
		{"empty storage, no signal", "", prefers.Unavailable(), models.Light},
		{"empty storage, nil signal", "", nil, models.Light},
		{"empty storage, dark signal", "", prefers.Static(true), models.Dark},
		{"empty storage, light signal", "", prefers.Static(false), models.Light},
		{"stored light beats dark signal", "light", prefers.Static(true), models.Light},
		{"stored dark", "dark", prefers.Static(false), models.Dark},
		{"invalid stored value falls through", "sepia", prefers.Static(true), models.Dark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := storage.NewMemory()
			if tt.stored != "" {
				require.NoError(t, kv.Write(ThemeKey, []byte(tt.stored)))
			}

			s := NewThemeStore(kv, tt.signal, zerolog.Nop())
			assert.Equal(t, tt.want, s.Get())
		})
	}
}

func TestNewThemeStore_ReadsSignalOnce(t *testing.T) {
	calls := 0
	signal := prefers.SignalFunc(func() (bool, bool) {
		calls++
		return true, true
	})

	s := NewThemeStore(storage.NewMemory(), signal, zerolog.Nop())
	s.ToggleTheme()
	s.Get()

	assert.Equal(t, 1, calls)
}

func TestThemeStore_ToggleTwice(t *testing.T) {
	s := NewThemeStore(storage.NewMemory(), prefers.Unavailable(), zerolog.Nop())

	s.ToggleTheme()
	assert.Equal(t, models.Dark, s.Get())
	s.ToggleTheme()
	assert.Equal(t, models.Light, s.Get())
}

func TestThemeStore_SetThemeSurvivesReload(t *testing.T) {
	kv := storage.NewMemory()
	s := NewThemeStore(kv, prefers.Unavailable(), zerolog.Nop())
	s.SetTheme(models.Dark)

	raw, err := kv.Read(ThemeKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", string(raw))

	reloaded := NewThemeStore(kv, prefers.Static(false), zerolog.Nop())
	assert.Equal(t, models.Dark, reloaded.Get())
}

func TestThemeStore_NoStorage(t *testing.T) {
	s := NewThemeStore(nil, prefers.Static(true), zerolog.Nop())
	assert.Equal(t, models.Dark, s.Get())

	s.ToggleTheme()
	assert.Equal(t, models.Light, s.Get())
}

func TestThemeStore_Subscribe(t *testing.T) {
	s := NewThemeStore(storage.NewMemory(), prefers.Unavailable(), zerolog.Nop())

	var seen []models.Theme
	unsubscribe := s.Subscribe(func(theme models.Theme) { seen = append(seen, theme) })
	s.ToggleTheme()
	s.SetTheme(models.Dark)
	unsubscribe()
	s.SetTheme(models.Light)

	assert.Equal(t, []models.Theme{models.Light, models.Dark, models.Dark}, seen)
}
