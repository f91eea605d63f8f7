package preflight

import "testing"

func TestCollect(t *testing.T) {
	report := Collect()

	if report.CPUCount <= 0 {
		t.Errorf("CPUCount = %d, expected at least 1", report.CPUCount)
	}
	if report.MemoryTotal == 0 {
		t.Error("MemoryTotal = 0, expected a positive total")
	}
}

func TestFields(t *testing.T) {
	report := Report{Hostname: "swipe-api-0", CPUCount: 4}
	fields := report.Fields()

	if fields["hostname"] != "swipe-api-0" {
		t.Errorf("hostname field = %v", fields["hostname"])
	}
	if fields["cpu_count"] != 4 {
		t.Errorf("cpu_count field = %v", fields["cpu_count"])
	}
}
