package benchmark

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yndnr/cribcrack/internal/core/service"
)

// WorkerCounts defines the worker counts for parallel benchmarks.
var WorkerCounts = []int{1, 2, 4, 8}

// BatchSizes defines the batch sizes for parallel benchmarks.
var BatchSizes = []int{16, 256, 4096}

// readTestdata loads a ciphertext from testdata.
func readTestdata(b *testing.B, name string) string {
	b.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		b.Fatalf("read testdata: %v", err)
	}
	return strings.TrimSpace(string(data))
}

// newService creates a recovery service that never logs progress.
func newService(workers, batch int, skip bool) *service.RecoveryService {
	return service.NewRecoveryService(&service.Config{
		Workers:          workers,
		BatchSize:        batch,
		SkipDuplicates:   skip,
		ProgressInterval: time.Hour,
	})
}
