package preference

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestService_RoundTrip(t *testing.T) {
	service := New(afs.New(), "mem://localhost/preferences.yaml")
	ctx := context.Background()

	loaded := service.Load(ctx)
	assert.Equal(t, Default(), loaded)

	loaded.SuppressWarnings = false
	loaded.Theme = ThemeNight
	assert.NoError(t, service.Save(ctx, loaded))

	reloaded := service.Load(ctx)
	assert.False(t, reloaded.SuppressWarnings)
	assert.Equal(t, ThemeNight, reloaded.Theme)
}

func TestService_CorruptFallsBackToDefaults(t *testing.T) {
	fs := afs.New()
	ctx := context.Background()
	err := fs.Upload(ctx, "mem://localhost/corrupt.yaml", file.DefaultFileOsMode,
		strings.NewReader(":: not yaml ::\n\t"))
	assert.NoError(t, err)

	service := New(fs, "mem://localhost/corrupt.yaml")
	assert.Equal(t, Default(), service.Load(ctx))
}

func TestService_UnknownThemeIgnored(t *testing.T) {
	fs := afs.New()
	ctx := context.Background()
	err := fs.Upload(ctx, "mem://localhost/theme.yaml", file.DefaultFileOsMode,
		strings.NewReader("suppressWarnings: \"false\"\ntheme: neon\n"))
	assert.NoError(t, err)

	service := New(fs, "mem://localhost/theme.yaml")
	loaded := service.Load(ctx)
	assert.False(t, loaded.SuppressWarnings)
	assert.Equal(t, ThemeDay, loaded.Theme)
}
