package itamae

import "testing"

// radiotapAck is a real monitor-mode capture: 1.0 Mb/s 2412 MHz 11b
// -58dB signal antenna 7 Acknowledgment RA:88:1f:a1:ae:9d:cb
//
//	0x0000:  0000 1200 2e48 0000 1002 6c09 a000 c607  .....H....l.....
//	0x0010:  0000 d400 0000 881f a1ae 9dcb c630 4b4b  .............0KK
var radiotapAck = []byte{
	0x00, 0x00, 0x12, 0x00, 0x2e, 0x48, 0x00, 0x00, 0x10, 0x02, 0x6c, 0x09, 0xa0, 0x00, 0xc6, 0x07,
	0x00, 0x00, 0xd4, 0x00, 0x00, 0x00, 0x88, 0x1f, 0xa1, 0xae, 0x9d, 0xcb, 0xc6, 0x30, 0x4b, 0x4b,
}

func TestParseRadiotapAck(t *testing.T) {
	rt, err := ParseRadiotap(radiotapAck)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.Sz != 18 {
		t.Fatalf("Sz = %d, want 18", rt.Sz)
	}
	if len(rt.Errors) != 0 {
		t.Fatalf("unexpected field errors: %v", rt.Errors)
	}
	wantPresent := []RadiotapField{FieldFlags, FieldRate, FieldChannel, FieldAntSignal, FieldAntenna, FieldRxFlags}
	if len(rt.Present) != len(wantPresent) {
		t.Fatalf("Present = %v, want %v", rt.Present, wantPresent)
	}
	for i, f := range wantPresent {
		if rt.Present[i] != f {
			t.Fatalf("Present[%d] = %v, want %v", i, rt.Present[i], f)
		}
	}
	if !rt.Flags.FCS() {
		t.Fatal("expected FCS flag set")
	}
	if rate, ok := rt.Rate(); !ok || rate != 1.0 {
		t.Fatalf("Rate() = %v, %v, want 1.0, true", rate, ok)
	}
	if rt.Channel.FreqMHz != 2412 {
		t.Fatalf("FreqMHz = %d, want 2412", rt.Channel.FreqMHz)
	}
	if rss, ok := rt.RSS(); !ok || rss != -58 {
		t.Fatalf("RSS() = %v, %v, want -58, true", rss, ok)
	}
	if rt.Antenna != 7 {
		t.Fatalf("Antenna = %d, want 7", rt.Antenna)
	}
	if rt.RxFlags != 0 {
		t.Fatalf("RxFlags = %d, want 0", rt.RxFlags)
	}
}

// radiotapMCS is a real monitor-mode capture: 2412 MHz 11g -36dB signal
// antenna 5 65.0 Mb/s MCS 7 20 MHz long GI
//
//	0x0000:  0000 1500 2a48 0800 1000 6c09 8004 dc05  ....*H....l.....
//	0x0010:  0000 0700 0748 112c 0000 3a9d aaf0 191c  .....H.,..:.....
//	0x0020:  aba7 f213 9d00 3a9d aaf0 1970 b2ee a9f1  ......:....p....
//	0x0030:  16                                       .
var radiotapMCS = []byte{
	0x00, 0x00, 0x15, 0x00, 0x2a, 0x48, 0x08, 0x00, 0x10, 0x00, 0x6c, 0x09, 0x80, 0x04, 0xdc, 0x05,
	0x00, 0x00, 0x07, 0x00, 0x07, 0x48, 0x11, 0x2c, 0x00, 0x00, 0x3a, 0x9d, 0xaa, 0xf0, 0x19, 0x1c,
	0xab, 0xa7, 0xf2, 0x13, 0x9d, 0x00, 0x3a, 0x9d, 0xaa, 0xf0, 0x19, 0x70, 0xb2, 0xee, 0xa9, 0xf1,
	0x16,
}

func TestParseRadiotapMCS(t *testing.T) {
	rt, err := ParseRadiotap(radiotapMCS)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.Sz != 21 {
		t.Fatalf("Sz = %d, want 21", rt.Sz)
	}
	if rt.Has(FieldRate) {
		t.Fatal("did not expect a legacy rate field")
	}
	if !rt.Has(FieldMCS) {
		t.Fatal("expected mcs field present")
	}
	if !rt.MCS.Known.MCSIndex() || rt.MCS.MCS != 7 {
		t.Fatalf("MCS index = %d, known=%v", rt.MCS.MCS, rt.MCS.Known.MCSIndex())
	}
	if !rt.MCS.Known.Bandwidth() || rt.MCS.Flags.Bandwidth() != 0 {
		t.Fatal("expected known 20MHz bandwidth")
	}
	if !rt.MCS.Known.GuardInterval() || rt.MCS.Flags.ShortGI() {
		t.Fatal("expected known long guard interval")
	}
	if rate, ok := rt.Rate(); !ok || rate != 65.0 {
		t.Fatalf("Rate() = %v, %v, want 65.0, true", rate, ok)
	}
	if rss, ok := rt.RSS(); !ok || rss != -36 {
		t.Fatalf("RSS() = %v, %v, want -36, true", rss, ok)
	}
}

func TestParseRadiotapBadVersion(t *testing.T) {
	buf := append([]byte{}, radiotapAck...)
	buf[0] = 1
	if _, err := ParseRadiotap(buf); err == nil {
		t.Fatal("expected BadVersion error")
	} else if de, ok := err.(*DecodeError); !ok || de.Kind != KindBadVersion {
		t.Fatalf("got %v, want KindBadVersion", err)
	}
}

func TestParseRadiotapBadLength(t *testing.T) {
	buf := append([]byte{}, radiotapAck...)
	buf[2], buf[3] = 0xff, 0xff // it_len far exceeds len(buf)
	if _, err := ParseRadiotap(buf); err == nil {
		t.Fatal("expected BadLength error")
	} else if de, ok := err.(*DecodeError); !ok || de.Kind != KindBadLength {
		t.Fatalf("got %v, want KindBadLength", err)
	}
}

func TestParseRadiotapTruncatedHeader(t *testing.T) {
	if _, err := ParseRadiotap(radiotapAck[:5]); err == nil {
		t.Fatal("expected truncated error")
	}
}

func TestDatapadAdjustedSize(t *testing.T) {
	buf := append([]byte{}, radiotapAck...)
	rt, err := ParseRadiotap(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rt.DatapadAdjustedSize(); got != int(rt.Sz) {
		t.Fatalf("without datapad, got %d, want %d", got, rt.Sz)
	}
	rt.Flags |= FlagDatapad
	// Force a value that is not 4-byte aligned to exercise the rounding.
	rt.Sz = 19
	if got := rt.DatapadAdjustedSize(); got != 20 {
		t.Fatalf("with datapad, got %d, want 20", got)
	}
}
