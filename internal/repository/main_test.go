//go:build integration
// +build integration

package repository

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"

	"timesheet-backend/internal/testutils"
)

// TestMain wraps the repository suites so the shared Postgres container is
// purged when the run finishes or is interrupted.
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Timesheet repository tests interrupted, purging the test database container...")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Println("🧪 Running timesheet repository tests against Postgres...")
	code := m.Run()

	log.Println("✅ Timesheet repository tests done, purging the test database container...")
	testutils.CleanupSharedContainer()

	os.Exit(code)
}
