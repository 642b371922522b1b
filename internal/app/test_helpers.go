package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/specialistvlad/seedline/internal/handlers"
	"github.com/specialistvlad/seedline/internal/schema"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates a new app instance at debug level whose output and
// log share one buffer.
func SetupAppTest(t *testing.T, cfg *Config, s *schema.Schema, modules ...handlers.Module) (*App, *SafeBuffer) {
	t.Helper()

	buf := &SafeBuffer{}
	cfg.LogLevel = "debug"
	testApp := NewApp(buf, cfg, s, modules...)

	t.Cleanup(func() {
		_ = testApp.Close()
		if os.Getenv("SEEDLINE_TEST_LOGS") == "true" {
			t.Logf("--- Full Output for %s ---\n%s", t.Name(), buf.String())
		}
	})

	return testApp, buf
}
