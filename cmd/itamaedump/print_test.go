package main

import (
	"strings"
	"testing"
	"time"

	"github.com/google/gopacket"

	"github.com/wraith-wireless/itamae"
)

func TestSPrintFrameAck(t *testing.T) {
	rt := &itamae.Radiotap{
		Present:   []itamae.RadiotapField{itamae.FieldRate, itamae.FieldAntSignal},
		RateRaw:   2,
		AntSignal: -58,
	}
	m := &itamae.MPDU{
		Type:    itamae.TypeCtrl,
		Subtype: itamae.SubtypeACK,
		Addr1:   "88:1f:a1:ae:9d:cb",
	}
	ci := gopacket.CaptureInfo{Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}

	line := sPrintFrame(ci, rt, m)
	if !strings.Contains(line, "1.0Mb/s") {
		t.Errorf("line = %q, want rate 1.0Mb/s", line)
	}
	if !strings.Contains(line, "-58dBm") {
		t.Errorf("line = %q, want signal -58dBm", line)
	}
	if !strings.Contains(line, "a1=88:1f:a1:ae:9d:cb") {
		t.Errorf("line = %q, want addr1", line)
	}
}

func TestSPrintFrameNoRate(t *testing.T) {
	rt := &itamae.Radiotap{}
	m := &itamae.MPDU{Type: itamae.TypeData, Subtype: itamae.SubtypeData}
	ci := gopacket.CaptureInfo{Timestamp: time.Now()}

	line := sPrintFrame(ci, rt, m)
	if !strings.Contains(line, "?") {
		t.Errorf("line = %q, want unknown-rate placeholder", line)
	}
}
