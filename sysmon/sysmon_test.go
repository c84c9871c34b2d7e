package sysmon

import (
	"testing"
	"time"
)

func TestCollect(t *testing.T) {
	info, err := Collect()
	if err != nil {
		t.Fatalf("Collect() unexpected error: %v", err)
	}

	if info.Platform == "" {
		t.Error("Collect() returned empty platform")
	}
	if info.CPUCount < 1 {
		t.Errorf("Collect() CPU count = %d, want >= 1", info.CPUCount)
	}
	if info.MemoryTotal == 0 {
		t.Error("Collect() returned zero total memory")
	}
	if info.MemoryAvailable > info.MemoryTotal {
		t.Errorf("available memory %d exceeds total %d",
			info.MemoryAvailable, info.MemoryTotal)
	}
	if info.DiskUsedPercent < 0 || info.DiskUsedPercent > 100 {
		t.Errorf("disk used percent = %f, want 0-100", info.DiskUsedPercent)
	}
	if time.Since(info.Timestamp) > time.Minute {
		t.Errorf("stale timestamp: %v", info.Timestamp)
	}
}

func TestDiskUsage(t *testing.T) {
	usage, err := DiskUsage(t.TempDir())
	if err != nil {
		t.Fatalf("DiskUsage() unexpected error: %v", err)
	}

	if usage.Total == 0 {
		t.Error("DiskUsage() returned zero total")
	}
	if usage.Used > usage.Total {
		t.Errorf("used %d exceeds total %d", usage.Used, usage.Total)
	}
	if usage.UsedPercent < 0 || usage.UsedPercent > 100 {
		t.Errorf("used percent = %f, want 0-100", usage.UsedPercent)
	}
}

func TestDiskUsageMissingPath(t *testing.T) {
	if _, err := DiskUsage("/definitely/not/a/mountpoint"); err == nil {
		t.Error("DiskUsage() expected error for missing path, got nil")
	}
}
