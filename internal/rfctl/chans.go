// Package rfctl controls a wireless interface's monitor-mode channel
// over nl80211, and hands live captures to the itamae decoders.
package rfctl

// nl80211 channel-width constants (not yet in go-netlink/nl80211).
const (
	ChanWidth20NoHT = 0x0
	ChanWidth20     = 0x1
	ChanWidth40     = 0x2
	ChanWidth80     = 0x3
	ChanWidth80P80  = 0x4
	ChanWidth160    = 0x5
	ChanWidth5      = 0x6
	ChanWidth10     = 0x7
)

// attrChannelWidth and attrCenterFreq round out nl80211.ATTR_* for
// channel-width messages; upstream go-netlink/nl80211 doesn't define
// them yet.
const (
	attrChannelWidth = 0x9f
	attrCenterFreq   = 0xa0
)

// Channel describes one 802.11 channel's frequency plan.
type Channel struct {
	Number     int
	LowerFreq  uint32
	CenterFreq uint32
	UpperFreq  uint32
	Width      uint32
}

// Channels2GHz is the 14-channel 2.4GHz plan (channel 14 is Japan-only;
// ChannelByNumber below resolves it like any other entry).
var Channels2GHz = []Channel{
	{1, 2401, 2412, 2423, ChanWidth20},
	{2, 2406, 2417, 2428, ChanWidth20},
	{3, 2411, 2422, 2433, ChanWidth20},
	{4, 2416, 2427, 2438, ChanWidth20},
	{5, 2421, 2432, 2443, ChanWidth20},
	{6, 2426, 2437, 2448, ChanWidth20},
	{7, 2431, 2442, 2453, ChanWidth20},
	{8, 2436, 2447, 2458, ChanWidth20},
	{9, 2441, 2452, 2463, ChanWidth20},
	{10, 2446, 2457, 2468, ChanWidth20},
	{11, 2451, 2462, 2473, ChanWidth20},
	{12, 2456, 2467, 2478, ChanWidth20},
	{13, 2461, 2472, 2483, ChanWidth20},
	{14, 2473, 2484, 2495, ChanWidth20},
}

// channelsByFreq indexes Channels2GHz by center frequency for
// ChannelByFreq's reverse lookup.
var channelsByFreq = func() map[uint32]Channel {
	m := make(map[uint32]Channel, len(Channels2GHz))
	for _, c := range Channels2GHz {
		m[c.CenterFreq] = c
	}
	return m
}()

// ChannelByNumber returns the 2.4GHz channel plan entry for chan
// (1-14), or false if out of range.
func ChannelByNumber(chnum int) (Channel, bool) {
	if chnum < 1 || chnum > len(Channels2GHz) {
		return Channel{}, false
	}
	return Channels2GHz[chnum-1], true
}

// ChannelByFreq resolves a captured frame's Radiotap center frequency
// (MHz) back to its 2.4GHz channel plan entry, or false if freq isn't
// one of Channels2GHz's listed centers.
func ChannelByFreq(freq uint32) (Channel, bool) {
	ch, ok := channelsByFreq[freq]
	return ch, ok
}
