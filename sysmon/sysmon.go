// Package sysmon reports basic host and disk metrics.
//
// The package is a thin layer over gopsutil. Every probe is a synchronous
// snapshot: call it, get a timestamped value struct or an error, nothing is
// cached or watched.
package sysmon

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// rootPath is the mount probed for the headline disk-usage figure in Info.
const rootPath = "/"

// Info is a snapshot of basic system information.
type Info struct {
	Platform        string    `json:"platform"`
	PlatformRelease string    `json:"platform_release"`
	PlatformVersion string    `json:"platform_version"`
	Architecture    string    `json:"architecture"`
	CPUCount        int       `json:"cpu_count"`
	MemoryTotal     uint64    `json:"memory_total"`
	MemoryAvailable uint64    `json:"memory_available"`
	DiskUsedPercent float64   `json:"disk_usage"`
	Timestamp       time.Time `json:"timestamp"`
}

// Usage is a snapshot of disk utilization for one path.
type Usage struct {
	Path        string    `json:"path"`
	Total       uint64    `json:"total"`
	Used        uint64    `json:"used"`
	Free        uint64    `json:"free"`
	UsedPercent float64   `json:"percentage_used"`
	Timestamp   time.Time `json:"timestamp"`
}

// Collect gathers platform, CPU, memory, and root-disk information.
func Collect() (Info, error) {
	hostInfo, err := host.Info()
	if err != nil {
		return Info{}, fmt.Errorf("reading host info: %w", err)
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Info{}, fmt.Errorf("reading memory info: %w", err)
	}
	cpuCount, err := cpu.Counts(true)
	if err != nil {
		return Info{}, fmt.Errorf("counting cpus: %w", err)
	}
	rootUsage, err := disk.Usage(rootPath)
	if err != nil {
		return Info{}, fmt.Errorf("reading disk usage for %s: %w", rootPath, err)
	}

	return Info{
		Platform:        hostInfo.OS,
		PlatformRelease: hostInfo.KernelVersion,
		PlatformVersion: hostInfo.PlatformVersion,
		Architecture:    hostInfo.KernelArch,
		CPUCount:        cpuCount,
		MemoryTotal:     vm.Total,
		MemoryAvailable: vm.Available,
		DiskUsedPercent: rootUsage.UsedPercent,
		Timestamp:       time.Now(),
	}, nil
}

// DiskUsage reports utilization of the filesystem containing path.
func DiskUsage(path string) (Usage, error) {
	u, err := disk.Usage(path)
	if err != nil {
		return Usage{}, fmt.Errorf("reading disk usage for %s: %w", path, err)
	}
	return Usage{
		Path:        path,
		Total:       u.Total,
		Used:        u.Used,
		Free:        u.Free,
		UsedPercent: u.UsedPercent,
		Timestamp:   time.Now(),
	}, nil
}
