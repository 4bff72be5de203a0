package main

import (
	"fmt"

	"github.com/google/gopacket"

	"github.com/wraith-wireless/itamae"
)

// sPrintFrame formats one decoded frame the way a packet dump tool
// would: timestamp, PHY rate/signal, MAC addresses, frame kind.
func sPrintFrame(ci gopacket.CaptureInfo, rt *itamae.Radiotap, m *itamae.MPDU) string {
	ts := ci.Timestamp.Format("15:04:05.000000")

	rate := "?"
	if r, ok := rt.Rate(); ok {
		rate = fmt.Sprintf("%.1fMb/s", r)
	}
	rss := "?"
	if v, ok := rt.RSS(); ok {
		rss = fmt.Sprintf("%ddBm", v)
	}

	s := fmt.Sprintf("%s | %s | %s | %s", ts, rate, rss, m.TypeDesc())
	if m.Addr1 != "" {
		s += fmt.Sprintf(" | a1=%s", m.Addr1)
	}
	if m.Addr2 != "" {
		s += fmt.Sprintf(" a2=%s", m.Addr2)
	}
	if m.HasQoS {
		s += fmt.Sprintf(" tid=%d", m.QoS.TID)
	}
	if m.Crypt.Variant != itamae.CryptNone {
		s += fmt.Sprintf(" crypt=%s", m.Crypt.Variant)
	}
	if len(rt.Errors) > 0 || len(m.Errors) > 0 {
		s += fmt.Sprintf(" errors=%d", len(rt.Errors)+len(m.Errors))
	}
	return s
}
