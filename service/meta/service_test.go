package meta

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

func TestService_Load(t *testing.T) {
	fs := afs.New()
	ctx := context.Background()
	err := fs.Upload(ctx, "mem://localhost/meta/manifest.yaml", file.DefaultFileOsMode,
		strings.NewReader("title: Data Cleaning\nlessons: 3\n"))
	assert.NoError(t, err)

	service := New(fs, "mem://localhost/meta")
	var manifest struct {
		Title   string `yaml:"title"`
		Lessons int    `yaml:"lessons"`
	}
	err = service.Load(ctx, "manifest.yaml", &manifest)
	assert.NoError(t, err)
	assert.Equal(t, "Data Cleaning", manifest.Title)
	assert.Equal(t, 3, manifest.Lessons)
}

func TestService_FetchMissing(t *testing.T) {
	service := New(afs.New(), "mem://localhost/meta")
	content, err := service.Fetch(context.Background(), "lessons/absent.py")
	assert.Equal(t, Placeholder, content)
	var fetchErr *FetchError
	assert.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.URL, "lessons/absent.py")
}

func TestService_FetchExpandsEnv(t *testing.T) {
	fs := afs.New()
	ctx := context.Background()
	assert.NoError(t, os.Setenv("LESSON_USER", "ada"))
	err := fs.Upload(ctx, "mem://localhost/meta/lessons/hello.py", file.DefaultFileOsMode,
		strings.NewReader("print(\"hello ${env.LESSON_USER}\")\n"))
	assert.NoError(t, err)

	service := New(fs, "mem://localhost/meta")
	content, err := service.Fetch(ctx, "lessons/hello.py")
	assert.NoError(t, err)
	assert.Equal(t, "print(\"hello ada\")\n", content)
}
