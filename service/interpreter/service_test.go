package interpreter

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestService_Run(t *testing.T) {
	service := New()
	ctx := context.Background()

	t.Run("captures stdout chunks", func(t *testing.T) {
		var chunks []string
		_, err := service.Run(ctx, `print("hi")`+"\n"+`print("there")`,
			func(chunk string) { chunks = append(chunks, chunk) }, nil)
		assert.Nil(t, err)
		assert.Equal(t, []string{"hi\n", "there\n"}, chunks)
	})

	t.Run("returns exported globals", func(t *testing.T) {
		globals, err := service.Run(ctx, "answer = 6 * 7", nil, nil)
		assert.Nil(t, err)
		if assert.Contains(t, globals, "answer") {
			assert.Equal(t, "42", globals["answer"].String())
		}
	})

	t.Run("runtime failure yields ExecutionError with diagnostic", func(t *testing.T) {
		var stderr []string
		_, err := service.Run(ctx, `boom()`, nil,
			func(chunk string) { stderr = append(stderr, chunk) })
		var execErr *ExecutionError
		if assert.ErrorAs(t, err, &execErr) {
			assert.NotEmpty(t, execErr.Diagnostic)
		}
		assert.NotEmpty(t, stderr)
	})

	t.Run("sinks are restored after the call", func(t *testing.T) {
		_, err := service.Run(ctx, `print("scoped")`, func(string) {}, nil)
		assert.Nil(t, err)
		service.sinkMu.Lock()
		defer service.sinkMu.Unlock()
		assert.Nil(t, service.stdout)
		assert.Nil(t, service.stderr)
	})

	t.Run("preloaded module is usable without a load statement", func(t *testing.T) {
		var chunks []string
		_, err := service.Run(ctx, "# import math\nprint(math.sqrt(9))",
			func(chunk string) { chunks = append(chunks, chunk) }, nil)
		assert.Nil(t, err)
		assert.Equal(t, "3.0\n", strings.Join(chunks, ""))
	})

	t.Run("failed pre-load is swallowed, execution fails naturally", func(t *testing.T) {
		_, err := service.Run(ctx, "# import pandas\npandas.read()", nil, nil)
		var execErr *ExecutionError
		assert.ErrorAs(t, err, &execErr)
	})
}

func TestService_SingleWarmUp(t *testing.T) {
	service := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Run(ctx, "x = 1", nil, nil)
			assert.Nil(t, err)
		}()
	}
	wg.Wait()
}

func TestDetectImports(t *testing.T) {
	source := `
import numpy
import numpy
from pandas import DataFrame
# import math
value = 1
`
	assert.Equal(t, []string{"numpy", "math", "pandas"}, DetectImports(source))
}
