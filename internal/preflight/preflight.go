package preflight

import (
	"os"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Report holds host facts logged once before handoff. Observational only:
// nothing here gates startup.
type Report struct {
	Hostname        string
	CPUCount        int
	CPUModel        string
	MemoryTotal     uint64
	MemoryAvailable uint64
}

// Collect gathers host facts, best effort. Fields it cannot read stay at
// their zero value; collection never fails the bootstrap.
func Collect() Report {
	var report Report

	if hostname, err := os.Hostname(); err == nil {
		report.Hostname = hostname
	}

	if count, err := cpu.Counts(true); err == nil {
		report.CPUCount = count
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		report.CPUModel = infos[0].ModelName
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		report.MemoryTotal = vm.Total
		report.MemoryAvailable = vm.Available
	}

	return report
}

// Fields renders the report as log fields.
func (r Report) Fields() map[string]interface{} {
	return map[string]interface{}{
		"hostname":      r.Hostname,
		"cpu_count":     r.CPUCount,
		"cpu_model":     r.CPUModel,
		"mem_total":     r.MemoryTotal,
		"mem_available": r.MemoryAvailable,
	}
}
