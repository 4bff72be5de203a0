package itamae

import "testing"

func TestU16LE(t *testing.T) {
	buf := []byte{0x2e, 0x48}
	v, err := u16le(buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x482e {
		t.Fatalf("got %#04x, want 0x482e", v)
	}
}

func TestU16LETruncated(t *testing.T) {
	buf := []byte{0x01}
	if _, err := u16le(buf, 0); err == nil {
		t.Fatal("expected truncated error")
	}
}

func TestMAC(t *testing.T) {
	buf := []byte{0x00, 0x04, 0xa1, 0x51, 0xd0, 0xdc, 0x0f}
	s, err := mac(buf, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "04:a1:51:d0:dc:0f" {
		t.Fatalf("got %q", s)
	}
}

func TestAlign(t *testing.T) {
	cases := []struct{ off, n, want int }{
		{0, 2, 0},
		{1, 2, 2},
		{2, 2, 2},
		{3, 4, 4},
		{8, 8, 8},
		{9, 8, 16},
	}
	for _, c := range cases {
		if got := align(c.off, c.n); got != c.want {
			t.Errorf("align(%d,%d) = %d, want %d", c.off, c.n, got, c.want)
		}
	}
}

func TestBitsOf(t *testing.T) {
	// 0b1011010, bits 1-3 (width 3) = 0b101 = 5
	if got := bitsOf(0x5a, 1, 3); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}
