package itamae

// RadiotapField names one decoded Radiotap presence-bit entry. Values
// follow the catalog order of the field table below; tsft through
// rx-flags equal the bitmap index of the bit that introduces them, while
// mcs, a-mpdu and vht (bits 19-21) are numbered 15-17.
type RadiotapField int

const (
	FieldTSFT RadiotapField = iota
	FieldFlags
	FieldRate
	FieldChannel
	FieldFHSS
	FieldAntSignal
	FieldAntNoise
	FieldLockQuality
	FieldTxAttenuation
	FieldDBTxAttenuation
	FieldDBMTxPower
	FieldAntenna
	FieldDBAntSignal
	FieldDBAntNoise
	FieldRxFlags
	FieldMCS
	FieldAMPDU
	FieldVHT
)

var radiotapFieldNames = map[RadiotapField]string{
	FieldTSFT:            "tsft",
	FieldFlags:           "flags",
	FieldRate:            "rate",
	FieldChannel:         "channel",
	FieldFHSS:            "fhss",
	FieldAntSignal:       "antsignal",
	FieldAntNoise:        "antnoise",
	FieldLockQuality:     "lock-quality",
	FieldTxAttenuation:   "tx-attenuation",
	FieldDBTxAttenuation: "db-tx-attenuation",
	FieldDBMTxPower:      "dbm-tx-power",
	FieldAntenna:         "antenna",
	FieldDBAntSignal:     "db-antsignal",
	FieldDBAntNoise:      "db-antnoise",
	FieldRxFlags:         "rx-flags",
	FieldMCS:             "mcs",
	FieldAMPDU:           "a-mpdu",
	FieldVHT:             "vht",
}

func (f RadiotapField) String() string {
	if s, ok := radiotapFieldNames[f]; ok {
		return s
	}
	return "unknown"
}

// ChannelInfo is the decoded "channel" field: center frequency in MHz
// plus a bitmap of channel-class flags.
type ChannelInfo struct {
	FreqMHz uint16
	Flags   ChannelFlags
}

// ChannelFlags is the bitmap carried alongside a channel's frequency.
type ChannelFlags uint16

const (
	ChanTurbo   ChannelFlags = 1 << 4
	ChanCCK     ChannelFlags = 1 << 5
	ChanOFDM    ChannelFlags = 1 << 6
	ChanISM     ChannelFlags = 1 << 7
	ChanUNII    ChannelFlags = 1 << 8
	ChanPassive ChannelFlags = 1 << 9
	ChanDynCCK  ChannelFlags = 1 << 10
	ChanGFSK    ChannelFlags = 1 << 11
	ChanGSM     ChannelFlags = 1 << 12
	ChanStaticTurbo ChannelFlags = 1 << 13
	ChanHalfRate    ChannelFlags = 1 << 14
	ChanQuarterRate ChannelFlags = 1 << 15
)

func (f ChannelFlags) Turbo() bool   { return f&ChanTurbo != 0 }
func (f ChannelFlags) CCK() bool     { return f&ChanCCK != 0 }
func (f ChannelFlags) OFDM() bool    { return f&ChanOFDM != 0 }
func (f ChannelFlags) Passive() bool { return f&ChanPassive != 0 }
func (f ChannelFlags) Quarter() bool { return f&ChanQuarterRate != 0 }
func (f ChannelFlags) Half() bool    { return f&ChanHalfRate != 0 }

// RadiotapFlags is the "flags" field bitset, Std radiotap.org "flags".
type RadiotapFlags uint8

const (
	FlagCFP RadiotapFlags = 1 << iota
	FlagShortPreamble
	FlagWEP
	FlagFrag
	FlagFCS
	FlagDatapad
	FlagBadFCS
	FlagShortGI
)

func (f RadiotapFlags) CFP() bool           { return f&FlagCFP != 0 }
func (f RadiotapFlags) ShortPreamble() bool { return f&FlagShortPreamble != 0 }
func (f RadiotapFlags) WEP() bool           { return f&FlagWEP != 0 }
func (f RadiotapFlags) Frag() bool          { return f&FlagFrag != 0 }
func (f RadiotapFlags) FCS() bool           { return f&FlagFCS != 0 }
func (f RadiotapFlags) Datapad() bool       { return f&FlagDatapad != 0 }
func (f RadiotapFlags) BadFCS() bool        { return f&FlagBadFCS != 0 }
func (f RadiotapFlags) ShortGI() bool       { return f&FlagShortGI != 0 }

// MCSKnown marks which of the MCS struct's sibling fields the sender
// actually populated.
type MCSKnown uint8

const (
	MCSKnownBandwidth MCSKnown = 1 << iota
	MCSKnownMCSIndex
	MCSKnownGuardInterval
	MCSKnownHTFormat
	MCSKnownFECType
	MCSKnownSTBC
	MCSKnownNess
	MCSKnownNessBit1
)

func (k MCSKnown) Bandwidth() bool     { return k&MCSKnownBandwidth != 0 }
func (k MCSKnown) MCSIndex() bool      { return k&MCSKnownMCSIndex != 0 }
func (k MCSKnown) GuardInterval() bool { return k&MCSKnownGuardInterval != 0 }

// MCSFlags carries the sender-populated values addressed by MCSKnown.
type MCSFlags uint8

const (
	MCSFlagsBandwidthMask MCSFlags = 0x3
	MCSFlagsShortGI       MCSFlags = 1 << 2
	MCSFlagsHT40DupGF     MCSFlags = 1 << 3
	MCSFlagsFEC           MCSFlags = 1 << 4
	MCSFlagsSTBCMask      MCSFlags = 0x3 << 5
)

func (f MCSFlags) Bandwidth() int { return int(f & MCSFlagsBandwidthMask) }
func (f MCSFlags) ShortGI() bool  { return f&MCSFlagsShortGI != 0 }
func (f MCSFlags) FEC() bool      { return f&MCSFlagsFEC != 0 }

// MCSInfo is the "mcs" radiotap field: HT rate index plus the known/flag
// bitmaps needed to interpret it.
type MCSInfo struct {
	Known MCSKnown
	Flags MCSFlags
	MCS   uint8
}

// Rate returns the data rate in Mb/s for this MCS entry, using the
// sender-populated bandwidth and guard-interval bits when known and
// falling back to 20MHz/long-GI otherwise.
func (m MCSInfo) Rate() (float64, bool) {
	w := 20
	if m.Known.Bandwidth() && m.Flags.Bandwidth() == 1 {
		w = 40
	}
	gi := 0
	if m.Known.GuardInterval() && m.Flags.ShortGI() {
		gi = 1
	}
	return MCSRate(int(m.MCS), w, gi)
}

// AMPDUInfo is the "a-mpdu" radiotap field.
type AMPDUInfo struct {
	ReferenceNum uint32
	Flags        uint16
	CRC          uint8
	Reserved     uint8
}

// VHTInfo is the "vht" radiotap field (802.11ac).
type VHTInfo struct {
	Known      uint16
	Flags      uint8
	Bandwidth  uint8
	MCSNSS     [4]uint8
	Coding     uint8
	GroupID    uint8
	PartialAID uint16
}

// Radiotap is the decoded pseudo-header preceding every captured 802.11
// frame. Constructed once by ParseRadiotap and immutable thereafter.
type Radiotap struct {
	Vers    uint8
	Sz      uint16
	Present []RadiotapField

	TSFT            uint64
	Flags           RadiotapFlags
	RateRaw         uint8
	Channel         ChannelInfo
	FHSSHop         uint8
	FHSSPattern     uint8
	AntSignal       int8
	AntNoise        int8
	LockQuality     uint16
	TxAttenuation   uint16
	DBTxAttenuation uint16
	DBMTxPower      int8
	Antenna         uint8
	DBAntSignal     uint8
	DBAntNoise      uint8
	RxFlags         uint16
	MCS             MCSInfo
	AMPDU           AMPDUInfo
	VHT             VHTInfo

	// Errors collected per-field while walking the presence bitmap;
	// fields that failed to decode are absent from Present.
	Errors []FieldError
}

// Has reports whether field f was present and decoded without error.
func (r *Radiotap) Has(f RadiotapField) bool {
	for _, p := range r.Present {
		if p == f {
			return true
		}
	}
	return false
}

// Rate returns the PHY data rate in Mb/s: the legacy rate field scaled by
// 0.5 when present, or an MCS-table lookup when only mcs is present.
func (r *Radiotap) Rate() (float64, bool) {
	if r.Has(FieldRate) {
		return float64(r.RateRaw) * 0.5, true
	}
	if r.Has(FieldMCS) {
		return r.MCS.Rate()
	}
	return 0, false
}

// ChannelFlags returns the decoded channel's class bitmap.
func (r *Radiotap) ChannelFlags() ChannelFlags {
	return r.Channel.Flags
}

// RSS returns received signal strength in dBm, preferring the antenna
// signal field over its unitless dB sibling.
func (r *Radiotap) RSS() (int, bool) {
	if r.Has(FieldAntSignal) {
		return int(r.AntSignal), true
	}
	if r.Has(FieldDBAntSignal) {
		return int(r.DBAntSignal), true
	}
	return 0, false
}

// Duration is the tagged interpretation of the MPDU duration/ID field,
// Std 8.2.4.2.
type Duration struct {
	// Kind is one of "vcs", "cfp", "aid", or "rsrv".
	Kind  string
	Value uint16
}

// FrameControlFlags is the second frame-control byte, Std 8.2.4.1.1.
type FrameControlFlags uint8

const (
	FCFlagToDS FrameControlFlags = 1 << iota
	FCFlagFromDS
	FCFlagMoreFrag
	FCFlagRetry
	FCFlagPwrMgmt
	FCFlagMoreData
	FCFlagProtected
	FCFlagOrder
)

func (f FrameControlFlags) ToDS() bool     { return f&FCFlagToDS != 0 }
func (f FrameControlFlags) FromDS() bool   { return f&FCFlagFromDS != 0 }
func (f FrameControlFlags) MoreFrag() bool { return f&FCFlagMoreFrag != 0 }
func (f FrameControlFlags) Retry() bool    { return f&FCFlagRetry != 0 }
func (f FrameControlFlags) PwrMgmt() bool  { return f&FCFlagPwrMgmt != 0 }
func (f FrameControlFlags) MoreData() bool { return f&FCFlagMoreData != 0 }
func (f FrameControlFlags) Protected() bool { return f&FCFlagProtected != 0 }
func (f FrameControlFlags) Order() bool    { return f&FCFlagOrder != 0 }

// QoSControl is the decoded QoS control field, Std 8.2.4.5. TXOP's
// meaning depends on direction and subtype per Std Table 8-4; Parse
// additionally decodes it as AP-PS-Buffer-State (HasAPBufferState) when
// that interpretation applies, see qosextra.go.
type QoSControl struct {
	TID          uint8
	EOSP         bool
	AckPolicy    uint8
	AMSDUPresent bool
	TXOP         uint8
	Raw          uint16

	HasAPBufferState bool
	APBufferState    QoSAPBufferState
}

// HTControl is the decoded 4-byte HT Control field, Std 8.2.4.6.
type HTControl struct {
	VHT          bool
	LinkAdaptCtrl uint16
	CalibPos     uint8
	CalibSeq     uint8
	CSISteering  uint8
	NDPAnnounce  bool
	ACConstraint bool
	RDGMorePPDU  bool
	Raw          uint32
}

// CryptVariant identifies the encryption scheme detected on a protected
// MPDU, Std 8.2.4.1.9 / Annex amendments for TKIP and CCMP.
type CryptVariant int

const (
	CryptNone CryptVariant = iota
	CryptWEP
	CryptTKIP
	CryptCCMP
)

func (v CryptVariant) String() string {
	switch v {
	case CryptWEP:
		return "wep"
	case CryptTKIP:
		return "tkip"
	case CryptCCMP:
		return "ccmp"
	default:
		return "none"
	}
}

// Crypt carries the decoded encryption header fields; only the fields
// relevant to Variant are meaningful.
type Crypt struct {
	Variant CryptVariant
	KeyID   uint8
	ExtIV   bool

	// WEP
	IV uint32

	// TKIP
	TSC uint64

	// CCMP
	PN uint64
}

// MPDU is a decoded 802.11 MAC frame header. Constructed once by Parse
// and immutable thereafter.
type MPDU struct {
	Vers    uint8
	Type    FrameType
	Subtype uint8
	Flags   FrameControlFlags

	Duration Duration

	Addr1 string
	Addr2 string
	Addr3 string
	Addr4 string

	FragNum uint8
	SeqNum  uint16

	HasQoS bool
	QoS    QoSControl

	HasHTC bool
	HTC    HTControl

	// HasBAControl, BAControl, BAReqInfo, and BAInfo are populated for
	// control frames of subtype BlockAckReq/BlockAck; BAReqInfo applies
	// to BlockAckReq, BAInfo to BlockAck.
	HasBAControl bool
	BAControl    BlockAckControl
	BAReqInfo    BlockAckReqInfo
	BAInfo       BlockAckInfo

	Crypt Crypt

	FCS      uint32
	HasFCS   bool

	Size     int
	Offset   int
	Stripped int
	Present  []string

	Errors []FieldError
}

// TypeDesc returns the Std Table 8-1 descriptive name for the frame's
// type/subtype pair.
func (m *MPDU) TypeDesc() string {
	return SubtypeName(m.Type, m.Subtype)
}

// IsEmpty reports whether this MPDU carries no body beyond the header
// fields already decoded (no payload remains after offset/stripped).
func (m *MPDU) IsEmpty() bool {
	return m.Offset+m.Stripped >= m.Size
}
