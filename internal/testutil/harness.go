// Package testutil holds helpers shared by the application's tests.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/joltage/internal/app"
	"github.com/vk/joltage/internal/hcl"
	"github.com/vk/joltage/internal/registry"
)

// ExampleInput is the published example: its part totals are 357 for two
// digits and 3121910778619 for twelve.
const ExampleInput = `987654321111111
811111111111119
234234234234278
818181911112111
`

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteFiles creates files (relative path -> content) under a fresh temporary
// directory and returns that directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

// HarnessResult holds the outcomes of an application run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// RunApp builds an App from cfg with the HCL loader and runs it once. Debug
// logs are captured and printed when JOLTAGE_TEST_LOGS=true.
func RunApp(t *testing.T, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()

	logs := &SafeBuffer{}
	out := &bytes.Buffer{}
	cfg.LogLevel = "debug"

	t.Cleanup(func() {
		if os.Getenv("JOLTAGE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	a, err := app.NewApp(out, logs, &cfg, hcl.NewLoader(), modules...)
	if err == nil {
		err = a.Run(t.Context())
	}
	return &HarnessResult{Output: out.String(), LogOutput: logs.String(), Err: err}
}
