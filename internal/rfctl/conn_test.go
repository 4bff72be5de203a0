package rfctl

import "testing"

func TestBSSDecodeSSID(t *testing.T) {
	var b BSS
	ies := []byte{0x00, 0x05, 'h', 'e', 'l', 'l', 'o', 0x01, 0x01, 0x02}
	if err := b.decodeSSID(ies); err != nil {
		t.Fatalf("decodeSSID() error = %v", err)
	}
	if b.SSID != "hello" {
		t.Errorf("SSID = %q, want %q", b.SSID, "hello")
	}
}

func TestBSSDecodeSSIDHidden(t *testing.T) {
	var b BSS
	ies := []byte{0x00, 0x00, 0x01, 0x01, 0x02}
	if err := b.decodeSSID(ies); err != nil {
		t.Fatalf("decodeSSID() error = %v", err)
	}
	if b.SSID != "" {
		t.Errorf("SSID = %q, want empty for zero-length element", b.SSID)
	}
}

func TestBSSDecodeSSIDTruncated(t *testing.T) {
	var b BSS
	ies := []byte{0x00, 0x05, 'h', 'i'}
	if err := b.decodeSSID(ies); err != nil {
		t.Fatalf("decodeSSID() error = %v", err)
	}
	if b.SSID != "" {
		t.Errorf("SSID = %q, want empty when element overruns buffer", b.SSID)
	}
}

func TestBSSDecodeSSIDNotFirstElement(t *testing.T) {
	var b BSS
	ies := []byte{0x01, 0x01, 0x02}
	if err := b.decodeSSID(ies); err != nil {
		t.Fatalf("decodeSSID() error = %v", err)
	}
	if b.SSID != "" {
		t.Errorf("SSID = %q, want empty when buffer doesn't start with an SSID element", b.SSID)
	}
}
