package rfctl

import (
	"errors"
	"time"

	"github.com/google/gopacket/pcap"

	"github.com/wraith-wireless/itamae"
)

const (
	defPcapBufLen = 2 * 1024 * 1024
	defSnapLen    = 1024
)

// Capture is a live monitor-mode pcap handle on the interface backing
// Conn.
type Capture struct {
	handle *pcap.Handle
}

// OpenCapture activates a monitor-mode pcap handle on ifaceName. The
// interface must already be in monitor mode (see cmd/itamaemon).
func OpenCapture(ifaceName string) (*Capture, error) {
	inactive, err := pcap.NewInactiveHandle(ifaceName)
	if err != nil {
		return nil, errors.New("pcap.NewInactiveHandle() " + err.Error())
	}
	defer inactive.CleanUp()

	if err := inactive.SetBufferSize(defPcapBufLen); err != nil {
		return nil, err
	}
	if err := inactive.SetSnapLen(defSnapLen); err != nil {
		return nil, err
	}
	if err := inactive.SetTimeout(100 * time.Millisecond); err != nil {
		return nil, err
	}
	if err := inactive.SetRFMon(true); err != nil {
		return nil, err
	}
	if err := inactive.SetPromisc(true); err != nil {
		return nil, err
	}
	handle, err := inactive.Activate()
	if err != nil {
		return nil, errors.New("pcap.InactiveHandle.Activate() " + err.Error())
	}
	return &Capture{handle: handle}, nil
}

// Close releases the pcap handle.
func (c *Capture) Close() { c.handle.Close() }

// SetFilter installs a BPF filter expression on the capture.
func (c *Capture) SetFilter(expr string) error {
	if err := c.handle.SetBPFFilter(expr); err != nil {
		return errors.New("pcap.Handle.SetBPFFilter() " + err.Error())
	}
	return nil
}

// Frame is one captured 802.11 frame, decoded by itamae rather than
// gopacket/layers.
type Frame struct {
	CapturedAt time.Time
	Radiotap   *itamae.Radiotap
	MPDU       *itamae.MPDU

	// Channel and HasChannel resolve the Radiotap "channel" field's
	// center frequency back to a 2.4GHz channel number, when the
	// capturing driver reported one that's in Channels2GHz.
	Channel    Channel
	HasChannel bool
}

// Next blocks for the next frame on the capture, decodes its Radiotap
// pseudo-header and MPDU, and returns the composed Frame. A pcap read
// timeout is returned as pcap's "Timeout Expired" error; the caller's
// loop should treat it as no frame and call Next again.
func (c *Capture) Next() (*Frame, error) {
	data, ci, err := c.handle.ZeroCopyReadPacketData()
	if err != nil {
		return nil, err
	}
	rt, err := itamae.ParseRadiotap(data)
	if err != nil {
		return nil, err
	}
	start := rt.DatapadAdjustedSize()
	if start > len(data) {
		return nil, errors.New("radiotap size exceeds captured frame length")
	}
	m, err := itamae.Parse(data[start:], rt.Has(itamae.FieldFlags) && rt.Flags.FCS())
	if err != nil {
		return nil, err
	}
	frame := &Frame{CapturedAt: ci.Timestamp, Radiotap: rt, MPDU: m}
	if rt.Has(itamae.FieldChannel) {
		frame.Channel, frame.HasChannel = ChannelByFreq(uint32(rt.Channel.FreqMHz))
	}
	return frame, nil
}
