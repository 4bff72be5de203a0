package itamae

import "testing"

// ackMPDU is the MPDU portion of radiotapAck (after the 18-byte
// Radiotap header), a bare Acknowledgment frame with FCS.
var ackMPDU = radiotapAck[18:]

func TestParseAck(t *testing.T) {
	m, err := Parse(ackMPDU, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", m.Errors)
	}
	if m.Type != TypeCtrl || m.Subtype != SubtypeACK {
		t.Fatalf("type/subtype = %v/%d, want ctrl/ACK", m.Type, m.Subtype)
	}
	if m.Addr1 != "88:1f:a1:ae:9d:cb" {
		t.Fatalf("Addr1 = %q", m.Addr1)
	}
	if m.Addr2 != "" {
		t.Fatalf("Addr2 = %q, want empty", m.Addr2)
	}
	if !m.HasFCS {
		t.Fatal("expected HasFCS")
	}
	if m.FCS != 0x4b4b30c6 {
		t.Fatalf("FCS = %#08x, want 0x4b4b30c6", m.FCS)
	}
	if m.Size != 14 || m.Offset != 10 || m.Stripped != 4 {
		t.Fatalf("size/offset/stripped = %d/%d/%d, want 14/10/4", m.Size, m.Offset, m.Stripped)
	}
	if m.Offset+m.Stripped > m.Size {
		t.Fatalf("offset+stripped (%d) exceeds size (%d)", m.Offset+m.Stripped, m.Size)
	}
}

// nullDataMPDU is the MPDU portion of radiotapMCS (after the 21-byte
// Radiotap header): a non-QoS Null data frame, to-DS, with FCS.
var nullDataMPDU = radiotapMCS[21:]

func TestParseNullData(t *testing.T) {
	m, err := Parse(nullDataMPDU, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", m.Errors)
	}
	if m.Type != TypeData || m.Subtype != SubtypeNull {
		t.Fatalf("type/subtype = %v/%d, want data/null", m.Type, m.Subtype)
	}
	if !m.Flags.ToDS() || m.Flags.FromDS() {
		t.Fatalf("ToDS/FromDS = %v/%v, want true/false", m.Flags.ToDS(), m.Flags.FromDS())
	}
	if m.Addr1 != "00:3a:9d:aa:f0:19" || m.Addr2 != "1c:ab:a7:f2:13:9d" || m.Addr3 != "00:3a:9d:aa:f0:19" {
		t.Fatalf("addrs = %q/%q/%q", m.Addr1, m.Addr2, m.Addr3)
	}
	if m.Addr4 != "" {
		t.Fatal("did not expect addr4 (ToDS without FromDS)")
	}
	if m.FragNum != 0 || m.SeqNum != 2855 {
		t.Fatalf("fragno/seqno = %d/%d, want 0/2855", m.FragNum, m.SeqNum)
	}
	if m.HasQoS {
		t.Fatal("did not expect QoS control on a plain Null frame")
	}
	if m.FCS != 0x16f1a9ee {
		t.Fatalf("FCS = %#08x, want 0x16f1a9ee", m.FCS)
	}
	if m.Size != 28 || m.Offset != 24 || m.Stripped != 4 {
		t.Fatalf("size/offset/stripped = %d/%d/%d, want 28/24/4", m.Size, m.Offset, m.Stripped)
	}
}

func TestParseFrameControlTruncated(t *testing.T) {
	buf := []byte{0x08, 0x01, 0x00}
	if _, err := Parse(buf, false); err == nil {
		t.Fatal("expected Truncated(framectrl) error")
	} else if de, ok := err.(*DecodeError); !ok || de.Kind != KindTruncated || de.Field != "framectrl" {
		t.Fatalf("got %v, want Truncated(framectrl)", err)
	}
}

func TestParseDuration(t *testing.T) {
	cases := []struct {
		v    uint16
		kind string
	}{
		{0x0032, "vcs"},
		{0x8000, "cfp"},
		{0xc001, "aid"},
		{0xc800, "rsrv"}, // aid candidate 2048 > 2007
	}
	for _, c := range cases {
		d := decodeDuration(c.v)
		if d.Kind != c.kind {
			t.Errorf("decodeDuration(%#04x).Kind = %q, want %q", c.v, d.Kind, c.kind)
		}
	}
}

// TestParseWEPData builds a minimal QoS-data frame with the protected
// flag set and a WEP-shaped 4-byte IV (ext-iv bit clear) to exercise
// crypt variant detection.
func TestParseWEPData(t *testing.T) {
	buf := make([]byte, 0, 40)
	buf = append(buf, 0x88, 0x41) // data, subtype 8 (qos-data), protected+to-DS
	buf = append(buf, 0x00, 0x00) // duration
	buf = append(buf, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa) // addr1
	buf = append(buf, 0xbb, 0xbb, 0xbb, 0xbb, 0xbb, 0xbb) // addr2
	buf = append(buf, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc) // addr3
	buf = append(buf, 0x00, 0x00)                         // seqctrl
	buf = append(buf, 0x00, 0x00)                         // qosctrl
	buf = append(buf, 0x01, 0x02, 0x03, 0xc0)             // WEP IV: keyid=3 (0xc0>>6), ext-iv clear
	buf = append(buf, 'p', 'a', 'y', 'l', 'o', 'a', 'd')
	buf = append(buf, 0xde, 0xad, 0xbe, 0xef) // ICV

	m, err := Parse(buf, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", m.Errors)
	}
	if m.Crypt.Variant != CryptWEP {
		t.Fatalf("Crypt.Variant = %v, want wep", m.Crypt.Variant)
	}
	if m.Crypt.KeyID != 3 {
		t.Fatalf("Crypt.KeyID = %d, want 3", m.Crypt.KeyID)
	}
	if m.Stripped != 4 {
		t.Fatalf("Stripped = %d, want 4 (ICV only, no FCS)", m.Stripped)
	}
	if !m.HasQoS || m.QoS.TID != 0 {
		t.Fatalf("QoS = %+v", m.QoS)
	}
}

// TestParseCCMPData mirrors TestParseWEPData but sets the ext-iv bit and
// a keyid byte 1 pattern that fails the TKIP WEPSeed test, selecting CCMP.
func TestParseCCMPData(t *testing.T) {
	buf := make([]byte, 0, 40)
	buf = append(buf, 0x88, 0x41)
	buf = append(buf, 0x00, 0x00)
	buf = append(buf, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa)
	buf = append(buf, 0xbb, 0xbb, 0xbb, 0xbb, 0xbb, 0xbb)
	buf = append(buf, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc)
	buf = append(buf, 0x00, 0x00)
	buf = append(buf, 0x00, 0x00)
	// CCMP header: PN0=0x01, PN1=0x00, rsrv=0x00, keyid byte=0x20 (ext-iv set, keyid 0)
	buf = append(buf, 0x01, 0x00, 0x00, 0x20)
	buf = append(buf, 0x02, 0x03, 0x04, 0x05) // PN2..PN5
	buf = append(buf, 'p', 'a', 'y', 'l', 'o', 'a', 'd')
	buf = append(buf, 0, 0, 0, 0, 0, 0, 0, 0) // 8-byte MIC

	m, err := Parse(buf, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Crypt.Variant != CryptCCMP {
		t.Fatalf("Crypt.Variant = %v, want ccmp", m.Crypt.Variant)
	}
	if m.Stripped != 8 {
		t.Fatalf("Stripped = %d, want 8 (MIC only)", m.Stripped)
	}
}
