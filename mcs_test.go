package itamae

import "testing"

func TestMCSRateIndex7(t *testing.T) {
	rate, ok := MCSRate(7, 20, 0)
	if !ok || rate != 65 {
		t.Fatalf("MCSRate(7,20,0) = %v, %v, want 65, true", rate, ok)
	}
	rate, ok = MCSRate(7, 20, 1)
	if !ok || rate != 72.2 {
		t.Fatalf("MCSRate(7,20,1) = %v, %v, want 72.2, true", rate, ok)
	}
}

func TestMCSRateBandwidth40(t *testing.T) {
	rate, ok := MCSRate(0, 40, 0)
	if !ok || rate != 13.5 {
		t.Fatalf("MCSRate(0,40,0) = %v, %v, want 13.5, true", rate, ok)
	}
}

func TestMCSRateOutOfRange(t *testing.T) {
	if _, ok := MCSRate(32, 20, 0); ok {
		t.Fatal("expected ok=false for index 32")
	}
	if _, ok := MCSRate(0, 80, 0); ok {
		t.Fatal("expected ok=false for unsupported bandwidth")
	}
}

func TestMCSCoding(t *testing.T) {
	coding, streams, ok := MCSCoding(7)
	if !ok || coding != "64-QAM 5/6" || streams != 1 {
		t.Fatalf("MCSCoding(7) = %q, %d, %v", coding, streams, ok)
	}
	coding, streams, ok = MCSCoding(15)
	if !ok || coding != "64-QAM 5/6" || streams != 2 {
		t.Fatalf("MCSCoding(15) = %q, %d, %v", coding, streams, ok)
	}
}
