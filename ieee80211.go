package itamae

// Frame type Std 8.2.4.1.1. FrameControl packs these as
// subtype(4)|type(2)|vers(2) in the first byte, flags in the second.
type FrameType uint8

const (
	TypeMgmt FrameType = iota
	TypeCtrl
	TypeData
	TypeReserved
)

func (t FrameType) String() string {
	switch t {
	case TypeMgmt:
		return "mgmt"
	case TypeCtrl:
		return "ctrl"
	case TypeData:
		return "data"
	default:
		return "rsrv"
	}
}

// Management subtypes Std Table 8-1.
const (
	SubtypeAssocReq uint8 = iota
	SubtypeAssocResp
	SubtypeReassocReq
	SubtypeReassocResp
	SubtypeProbeReq
	SubtypeProbeResp
	SubtypeTimingAdv
	subtypeMgmtRsrv7
	SubtypeBeacon
	SubtypeATIM
	SubtypeDisassoc
	SubtypeAuth
	SubtypeDeauth
	SubtypeAction
	SubtypeActionNoAck
	subtypeMgmtRsrv15
)

var mgmtSubtypeNames = [16]string{
	"assoc-req", "assoc-resp", "reassoc-req", "reassoc-resp", "probe-req",
	"probe-resp", "timing-adv", "mgmt-rsrv-7", "beacon", "atim", "disassoc",
	"auth", "deauth", "action", "action-noack", "mgmt-rsrv-15",
}

// Control subtypes Std Table 8-1.
const (
	subtypeCtrlRsrv0 uint8 = iota
	subtypeCtrlRsrv1
	subtypeCtrlRsrv2
	subtypeCtrlRsrv3
	subtypeCtrlRsrv4
	subtypeCtrlRsrv5
	subtypeCtrlRsrv6
	SubtypeWrapper
	SubtypeBlockAckReq
	SubtypeBlockAck
	SubtypePSPoll
	SubtypeRTS
	SubtypeCTS
	SubtypeACK
	SubtypeCFEnd
	SubtypeCFEndCFAck
)

var ctrlSubtypeNames = [16]string{
	"ctrl-rsrv-0", "ctrl-rsrv-1", "ctrl-rsrv-2", "ctrl-rsrv-3", "ctrl-rsrv-4",
	"ctrl-rsrv-5", "ctrl-rsrv-6", "wrapper", "block-ack-req", "block-ack",
	"pspoll", "rts", "cts", "ack", "cfend", "cfend-cfack",
}

// Data subtypes Std Table 8-1. Subtypes 8-15 carry a QoS control field.
const (
	SubtypeData uint8 = iota
	SubtypeCFAck
	SubtypeCFPoll
	SubtypeCFAckCFPoll
	SubtypeNull
	SubtypeNullCFAck
	SubtypeNullCFPoll
	SubtypeNullCFAckCFPoll
	SubtypeQoSData
	SubtypeQoSDataCFAck
	SubtypeQoSDataCFPoll
	SubtypeQoSDataCFAckCFPoll
	SubtypeQoSNull
	subtypeDataRsrv13
	SubtypeQoSCFPoll
	SubtypeQoSCFAckCFPoll
)

var dataSubtypeNames = [16]string{
	"data", "cfack", "cfpoll", "cfack-cfpoll", "null", "null-cfack",
	"null-cfpoll", "null-cfack-cfpoll", "qos-data", "qos-data-cfack",
	"qos-data-cfpoll", "qos-data-cfack-cfpoll", "qos-null", "data-rsrv-13",
	"qos-cfpoll", "qos-cfack-cfpoll",
}

// SubtypeName returns the Std Table 8-1 descriptive name for subtype s of
// frame type t. IsQoSData reports whether a data subtype carries a QoS
// control field (subtypes 8-15).
func SubtypeName(t FrameType, s uint8) string {
	s &= 0xf
	switch t {
	case TypeMgmt:
		return mgmtSubtypeNames[s]
	case TypeCtrl:
		return ctrlSubtypeNames[s]
	case TypeData:
		return dataSubtypeNames[s]
	default:
		return "rsrv"
	}
}

// IsQoSData reports whether data-frame subtype s carries a QoS control
// field, per Std 8.2.4.1.3 (subtypes 8-15).
func IsQoSData(s uint8) bool {
	return s&0x8 != 0
}

// QoS traffic-stream access category constants Std Table 8-104.
const (
	ACBestEffort uint8 = iota
	ACBackground
	acBKNegotiated
	acBEExcellent
	acVideoController
	ACVideo
	ACVoice
	acVoiceNegotiated
)

// Element IDs Std Table 8-54 (reserved/undefined ranges intentionally
// have no constant).
const (
	EIDSSID                 = 0
	EIDSupportedRates       = 1
	EIDFH                   = 2
	EIDDSSS                 = 3
	EIDCF                   = 4
	EIDTIM                  = 5
	EIDIBSS                 = 6
	EIDCountry              = 7
	EIDHopParams            = 8
	EIDHopTable             = 9
	EIDRequest              = 10
	EIDBSSLoad              = 11
	EIDEDCA                 = 12
	EIDTSPEC                = 13
	EIDTCLAS                = 14
	EIDSched                = 15
	EIDChallenge            = 16
	EIDPwrConstraint        = 32
	EIDPwrCapability        = 33
	EIDTPCReq               = 34
	EIDTPCRpt               = 35
	EIDChannels             = 36
	EIDChSwitch             = 37
	EIDMeasReq              = 38
	EIDMeasRpt              = 39
	EIDQuiet                = 40
	EIDIBSSDFS              = 41
	EIDERP                  = 42
	EIDTSDelay              = 43
	EIDTCLASPro             = 44
	EIDHTCap                = 45
	EIDQoSCap               = 46
	EIDRSN                  = 48
	EIDExtendedRates        = 50
	EIDAPChRpt              = 51
	EIDNeighborRpt          = 52
	EIDRCPI                 = 53
	EIDMDE                  = 54
	EIDFTE                  = 55
	EIDTIE                  = 56
	EIDRDE                  = 57
	EIDDSERegLoc            = 58
	EIDOpClasses            = 59
	EIDExtChSwitch          = 60
	EIDHTOp                 = 61
	EIDSecChOffset          = 62
	EIDBSSAvgDelay          = 63
	EIDAntenna              = 64
	EIDRSNI                 = 65
	EIDMeasPilot            = 66
	EIDBSSAvail             = 67
	EIDBSSACDelay           = 68
	EIDTimeAdv              = 69
	EIDRMEnabled            = 70
	EIDMulBSSID             = 71
	EID2040Coexist          = 72
	EID2040Intolerant       = 73
	EIDOverlappingBSS       = 74
	EIDRICDesc              = 75
	EIDMgmtMIC              = 76
	EIDEventReq             = 78
	EIDEventRpt             = 79
	EIDDiagReq              = 80
	EIDDiagRpt              = 81
	EIDLocation             = 82
	EIDNontransBSS          = 83
	EIDSSIDList             = 84
	EIDMultBSSIDIndex       = 85
	EIDFMSDesc              = 86
	EIDFMSReq               = 87
	EIDFMSResp              = 88
	EIDQoSTrafficCap        = 89
	EIDBSSMaxIdle           = 90
	EIDTFSReq               = 91
	EIDTFSResp              = 92
	EIDWNMSleep             = 93
	EIDTIMReq               = 94
	EIDTIMResp              = 95
	EIDCollocatedInterf     = 96
	EIDChUsage              = 97
	EIDTimeZone             = 98
	EIDDMSReq               = 99
	EIDDMSResp              = 100
	EIDLinkID               = 101
	EIDWakeupSched          = 102
	EIDChSwitchTiming       = 104
	EIDPTICtrl              = 105
	EIDTPUBuffStatus        = 106
	EIDInterworking         = 107
	EIDAdvProtocol          = 108
	EIDExpeditedBWReq       = 109
	EIDQoSMapSet            = 110
	EIDRoamingCons          = 111
	EIDEmergencyAlertID     = 112
	EIDMeshConfig           = 113
	EIDMeshID               = 114
	EIDMeshLinkMetricRpt    = 115
	EIDCongestion           = 116
	EIDMeshPeeringMgmt      = 117
	EIDMeshChSwitchParam    = 118
	EIDMeshAwakeWin         = 119
	EIDBeaconTiming         = 120
	EIDMCCAOPSetupReq       = 121
	EIDMCCAOPSetupRep       = 122
	EIDMCCAOPAdv            = 123
	EIDMCCAOPTeardown       = 124
	EIDGANN                 = 125
	EIDRANN                 = 126
	EIDExtCap               = 127
	EIDPREQ                 = 130
	EIDPREP                 = 131
	EIDPERR                 = 132
	EIDPXU                  = 137
	EIDPXUC                 = 138
	EIDAuthMeshPeerExc      = 139
	EIDMIC                  = 140
	EIDDestURI              = 141
	EIDUAPSDCoexist         = 142
	EIDMCCAOPAdvOverview    = 174
	EIDVendSpec             = 221
)

// Authentication algorithm numbers Std Table 8-36.
const (
	AuthAlgoOpen   uint16 = 0
	AuthAlgoShared uint16 = 1
	AuthAlgoFast   uint16 = 2
	AuthAlgoSAE    uint16 = 3
	AuthAlgoVendor uint16 = 63535
)

// A selection of status codes Std Table 8-37, limited to the values a
// decoder or its callers are likely to branch on; the full table is
// larger than is useful to enumerate here.
const (
	StatusSuccess             uint16 = 0
	StatusUnspecifiedFailure  uint16 = 1
	StatusCapsMismatch        uint16 = 10
	StatusAssocDeniedUnspec   uint16 = 12
	StatusAuthAlgNotSupported uint16 = 13
	StatusChallengeFail       uint16 = 15
	StatusAuthTimeout         uint16 = 16
)

// A selection of reason codes Std Table 8-36.
const (
	ReasonUnspecified         uint16 = 1
	ReasonPrevAuthNotValid    uint16 = 2
	ReasonDeauthLeaving       uint16 = 3
	ReasonDisassocInactivity  uint16 = 4
	ReasonDisassocAPBusy      uint16 = 5
	ReasonClass2FromNonauth   uint16 = 6
	ReasonClass3FromNonassoc  uint16 = 7
	ReasonDisassocLeft        uint16 = 8
	ReasonMICFailure          uint16 = 14
	Reason4WayTimeout         uint16 = 15
	ReasonGroupKeyTimeout     uint16 = 16
)

// Action frame category codes Std Table 8-38.
const (
	CategorySpectrumMgmt            uint8 = 0
	CategoryQoS                     uint8 = 1
	CategoryDLS                     uint8 = 2
	CategoryBlockAck                uint8 = 3
	CategoryPublic                  uint8 = 4
	CategoryHT                      uint8 = 7
	CategorySAQuery                 uint8 = 8
	CategoryProtectedDualOfAction   uint8 = 9
	CategoryTDLS                    uint8 = 12
	CategoryMeshAction              uint8 = 13
	CategoryMultihopAction          uint8 = 14
	CategorySelfProtected           uint8 = 15
	CategoryDMG                     uint8 = 16
	CategoryWMM                     uint8 = 17
	CategoryFST                     uint8 = 18
	CategoryUnprotDMG               uint8 = 20
	CategoryVHT                     uint8 = 21
	CategoryVendorSpecificProtected uint8 = 126
	CategoryVendorSpecific          uint8 = 127
)
