//go:build integration

package testutil

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

const maxDBNameLen = 50

var (
	shared     *MongoDBContainer
	sharedErr  error
	sharedOnce sync.Once
	sharedMu   sync.RWMutex
)

// GetSharedMongoDB starts the package-wide MongoDB container on first use.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedOnce.Do(func() {
		sharedMu.Lock()
		defer sharedMu.Unlock()
		shared, sharedErr = SetupMongoDB(ctx)
	})

	sharedMu.RLock()
	defer sharedMu.RUnlock()
	return shared, sharedErr
}

// CleanupSharedMongoDB terminates the shared container if it was started.
func CleanupSharedMongoDB(ctx context.Context) error {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		return nil
	}
	return shared.Cleanup(ctx)
}

// SetupTestMainWithMongoDB runs m against a shared container:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	if err := CleanupSharedMongoDB(ctx); err != nil {
		_, _ = os.Stderr.WriteString("warning: mongodb container cleanup failed: " + err.Error() + "\n")
	}
	return code
}

// GetSharedContainerURI returns the URI of the shared container.
// It panics when SetupTestMainWithMongoDB has not run.
func GetSharedContainerURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if shared == nil {
		panic("testutil: shared mongodb container not started")
	}
	return shared.URI
}

// SanitizeDBName turns a test name into a unique MongoDB database name.
func SanitizeDBName(testName string) string {
	var b strings.Builder
	for _, r := range testName {
		switch r {
		case '/', '\\', '.', ' ', '"', '$':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}

	name := b.String()
	if len(name) > maxDBNameLen {
		name = name[:maxDBNameLen]
	}
	return name + "_" + strconv.FormatInt(time.Now().UnixNano()%1000000, 10)
}
