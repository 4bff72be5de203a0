package rfctl

import "testing"

func TestChannelByNumber(t *testing.T) {
	ch, ok := ChannelByNumber(6)
	if !ok {
		t.Fatal("expected channel 6 to resolve")
	}
	if ch.CenterFreq != 2437 {
		t.Errorf("channel 6 center freq = %d, want 2437", ch.CenterFreq)
	}
	if ch.LowerFreq != 2426 || ch.UpperFreq != 2448 {
		t.Errorf("channel 6 bounds = [%d,%d], want [2426,2448]", ch.LowerFreq, ch.UpperFreq)
	}
}

func TestChannelByNumberOutOfRange(t *testing.T) {
	if _, ok := ChannelByNumber(0); ok {
		t.Error("channel 0 should not resolve")
	}
	if _, ok := ChannelByNumber(15); ok {
		t.Error("channel 15 should not resolve")
	}
}

func TestChannelByFreq(t *testing.T) {
	for _, ch := range Channels2GHz {
		got, ok := ChannelByFreq(ch.CenterFreq)
		if !ok {
			t.Fatalf("channel %d missing from frequency index", ch.Number)
		}
		if got.Number != ch.Number {
			t.Errorf("freq %d indexed to channel %d, want %d", ch.CenterFreq, got.Number, ch.Number)
		}
	}
}

func TestChannelByFreqUnknown(t *testing.T) {
	if _, ok := ChannelByFreq(5180); ok {
		t.Error("5GHz frequency should not resolve against the 2.4GHz plan")
	}
}
