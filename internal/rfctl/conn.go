package rfctl

import (
	"errors"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/dauie/go-netlink/nl80211"
	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/netlink"
)

// Conn drives one wireless interface's monitor-mode channel over
// nl80211 generic netlink.
type Conn struct {
	nlconn         *genetlink.Conn
	ifa            *net.Interface
	fam            *genetlink.Family
	currentFreq    uint32
	chanIndex      int
	lastChanSwitch time.Time
	lastScan       time.Time
}

// Open resolves ifaceName and dials nl80211 generic netlink for it.
func Open(ifaceName string) (*Conn, error) {
	nlconn, err := genetlink.Dial(nil)
	if err != nil {
		return nil, errors.New("genetlink.Dial() " + err.Error())
	}
	ifa, err := Interface(ifaceName)
	if err != nil {
		return nil, err
	}
	fam, err := NL80211Family(nlconn)
	if err != nil {
		return nil, errors.New("NL80211Family() " + err.Error())
	}
	return &Conn{nlconn: nlconn, ifa: &ifa, fam: fam}, nil
}

// Close releases the underlying netlink socket.
func (c *Conn) Close() error {
	return c.nlconn.Close()
}

// CurrentFrequency returns the last frequency successfully set via
// SetChannel or HopChannel.
func (c *Conn) CurrentFrequency() uint32 { return c.currentFreq }

// SetChannel switches the interface to 2.4GHz channel chnum (1-14).
func (c *Conn) SetChannel(chnum int) error {
	ch, ok := ChannelByNumber(chnum)
	if !ok {
		return errors.New("invalid channel")
	}
	return c.setFrequency(ch)
}

func (c *Conn) setFrequency(ch Channel) error {
	encoder := netlink.NewAttributeEncoder()
	encoder.Uint32(nl80211.ATTR_IFINDEX, uint32(c.ifa.Index))
	encoder.Uint32(nl80211.ATTR_WIPHY_FREQ, ch.CenterFreq)
	encoder.Uint32(attrChannelWidth, ch.Width)
	encoder.Uint32(attrCenterFreq, ch.CenterFreq)
	attribs, err := encoder.Encode()
	if err != nil {
		return errors.New("netlink.AttributeEncoder.Encode() " + err.Error())
	}
	req := genetlink.Message{
		Header: genetlink.Header{
			Command: nl80211.CMD_SET_CHANNEL,
			Version: c.fam.Version,
		},
		Data: attribs,
	}
	flags := netlink.HeaderFlagsRequest | netlink.HeaderFlagsAcknowledge
	if _, err := c.nlconn.Execute(req, c.fam.ID, flags); err != nil {
		return errors.New("genetlink.Conn.Execute() " + err.Error())
	}
	c.currentFreq = ch.CenterFreq
	c.chanIndex = ch.Number
	c.lastChanSwitch = time.Now()
	return nil
}

// SetIfaceType switches the interface's nl80211 operating mode, e.g.
// nl80211.IFTYPE_MONITOR or nl80211.IFTYPE_STATION.
func (c *Conn) SetIfaceType(ifaceType uint32) error {
	encoder := netlink.NewAttributeEncoder()
	encoder.Uint32(nl80211.ATTR_IFTYPE, ifaceType)
	encoder.Uint32(nl80211.ATTR_IFINDEX, uint32(c.ifa.Index))
	attribs, err := encoder.Encode()
	if err != nil {
		return errors.New("netlink.AttributeEncoder.Encode() " + err.Error())
	}
	req := genetlink.Message{
		Header: genetlink.Header{
			Command: nl80211.CMD_SET_INTERFACE,
			Version: c.fam.Version,
		},
		Data: attribs,
	}
	flags := netlink.HeaderFlagsRequest | netlink.HeaderFlagsAcknowledge
	if _, err := c.nlconn.Execute(req, c.fam.ID, flags); err != nil {
		return errors.New("genetlink.Conn.Execute() " + err.Error())
	}
	return nil
}

// InterfaceName returns the name of the interface this Conn controls.
func (c *Conn) InterfaceName() string { return c.ifa.Name }

// HopChannel advances to the next 2.4GHz channel if timeout has
// elapsed since the last channel switch, wrapping back to channel 1.
// It reports the channel switched to, or 0 if it didn't switch.
func (c *Conn) HopChannel(timeout time.Duration) (int, error) {
	if time.Since(c.lastChanSwitch) < timeout {
		return 0, nil
	}
	next := c.chanIndex + 1
	if next > len(Channels2GHz) {
		next = 1
	}
	if err := c.SetChannel(next); err != nil {
		return 0, err
	}
	c.chanIndex = next
	return next, nil
}

// AbortScan cancels any in-progress nl80211 scan on this interface.
// A missing scan (ENOENT) is not an error.
func (c *Conn) AbortScan() error {
	encoder := netlink.NewAttributeEncoder()
	encoder.Uint32(nl80211.ATTR_IFINDEX, uint32(c.ifa.Index))
	attribs, err := encoder.Encode()
	if err != nil {
		return errors.New("netlink.AttributeEncoder.Encode() " + err.Error())
	}
	req := genetlink.Message{
		Header: genetlink.Header{
			Command: nl80211.CMD_ABORT_SCAN,
			Version: c.fam.Version,
		},
		Data: attribs,
	}
	flags := netlink.HeaderFlagsRequest | netlink.HeaderFlagsAcknowledge
	if _, err := c.nlconn.Execute(req, c.fam.ID, flags); err != nil && !errors.Is(err, syscall.ENOENT) {
		return errors.New("genetlink.Conn.Execute() " + err.Error())
	}
	return nil
}

// BSS is a decoded nl80211 scan result: enough of a BSS entry to
// populate a station list without pulling in the full information
// element grammar itamae's frame decoder already covers for captured
// frames.
type BSS struct {
	BSSID     net.HardwareAddr
	SSID      string
	Frequency uint32
}

// TriggerScan requests a fresh scan and blocks until the kernel reports
// it complete (CMD_NEW_SCAN_RESULTS) on the nl80211 scan multicast
// group, or fails it (CMD_SCAN_ABORTED). It joins and leaves the group
// itself, so callers need only follow up with Scan to dump results.
func (c *Conn) TriggerScan() error {
	mcid, err := ScanMulticastID(c.fam)
	if err != nil {
		return err
	}
	if err := c.nlconn.JoinGroup(mcid); err != nil {
		return errors.New("genetlink.Conn.JoinGroup() " + err.Error())
	}
	defer func() {
		_ = c.nlconn.LeaveGroup(mcid)
	}()

	encoder := netlink.NewAttributeEncoder()
	encoder.Uint32(nl80211.ATTR_IFINDEX, uint32(c.ifa.Index))
	encoder.Bytes(nl80211.ATTR_SCAN_SSIDS, []byte(""))
	attribs, err := encoder.Encode()
	if err != nil {
		return errors.New("netlink.AttributeEncoder.Encode() " + err.Error())
	}
	req := genetlink.Message{
		Header: genetlink.Header{
			Command: nl80211.CMD_TRIGGER_SCAN,
			Version: c.fam.Version,
		},
		Data: attribs,
	}
	flags := netlink.HeaderFlagsRequest | netlink.HeaderFlagsAcknowledge
	if _, err := c.nlconn.Send(req, c.fam.ID, flags); err != nil {
		return errors.New("genetlink.Conn.Send() " + err.Error())
	}

	for {
		msgs, _, err := c.nlconn.Receive()
		if err != nil {
			return errors.New("genetlink.Conn.Receive() " + err.Error())
		}
		for _, m := range msgs {
			switch m.Header.Command {
			case nl80211.CMD_NEW_SCAN_RESULTS:
				return nil
			case nl80211.CMD_SCAN_ABORTED:
				return errors.New("scan aborted")
			}
		}
	}
}

// Scan issues a scan-results dump for this interface.
func (c *Conn) Scan() ([]BSS, error) {
	encoder := netlink.NewAttributeEncoder()
	encoder.Uint32(nl80211.ATTR_IFINDEX, uint32(c.ifa.Index))
	attribs, err := encoder.Encode()
	if err != nil {
		return nil, errors.New("netlink.AttributeEncoder.Encode() " + err.Error())
	}
	req := genetlink.Message{
		Header: genetlink.Header{
			Command: nl80211.CMD_GET_SCAN,
			Version: c.fam.Version,
		},
		Data: attribs,
	}
	flags := netlink.HeaderFlagsRequest | netlink.HeaderFlagsDump
	msgs, err := c.nlconn.Execute(req, c.fam.ID, flags)
	if err != nil {
		return nil, errors.New("genetlink.Conn.Execute() " + err.Error())
	}
	c.lastScan = time.Now()
	return decodeScanResults(msgs)
}

func decodeScanResults(msgs []genetlink.Message) ([]BSS, error) {
	var results []BSS
	for _, msg := range msgs {
		ad, err := netlink.NewAttributeDecoder(msg.Data)
		if err != nil {
			return nil, errors.New("netlink.NewAttributeDecoder() " + err.Error())
		}
		var bss BSS
		for ad.Next() {
			if ad.Type() == nl80211.ATTR_BSS {
				ad.Do(bss.decode)
			}
		}
		results = append(results, bss)
	}
	return results, nil
}

func (b *BSS) decode(data []byte) error {
	ad, err := netlink.NewAttributeDecoder(data)
	if err != nil {
		return err
	}
	for ad.Next() {
		switch ad.Type() {
		case nl80211.BSS_BSSID:
			b.BSSID = ad.Bytes()
		case nl80211.BSS_FREQUENCY:
			b.Frequency = ad.Uint32()
		case nl80211.BSS_INFORMATION_ELEMENTS:
			ad.Do(b.decodeSSID)
		}
	}
	return nil
}

// decodeSSID reads the SSID element (element ID 0) when it is the first
// element of a BSS's raw information-element blob; an SSID element
// later in the blob is not found. Full IE parsing beyond SSID belongs to the
// captured-frame path (itamae.MPDU), not the scan-result path.
func (b *BSS) decodeSSID(ies []byte) error {
	if len(ies) < 2 || ies[0] != 0 {
		b.SSID = ""
		return nil
	}
	ssidLen := int(ies[1])
	if ssidLen == 0 || 2+ssidLen > len(ies) {
		b.SSID = ""
		return nil
	}
	b.SSID = strings.TrimSpace(string(ies[2 : 2+ssidLen]))
	return nil
}
