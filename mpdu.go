package itamae

// Frame control flag bit positions, Std 8.2.4.1.1.
const (
	fcFlagsOffset = 1
)

func decodeFrameControl(buf []byte) (vers uint8, typ FrameType, subtype uint8, flags FrameControlFlags, err error) {
	b0, e := u8(buf, 0)
	if e != nil {
		return 0, 0, 0, 0, e
	}
	b1, e := u8(buf, fcFlagsOffset)
	if e != nil {
		return 0, 0, 0, 0, e
	}
	vers = b0 & 0x3
	typ = FrameType((b0 >> 2) & 0x3)
	subtype = (b0 >> 4) & 0xf
	flags = FrameControlFlags(b1)
	return
}

// decodeDuration interprets the duration/ID field per Std 8.2.4.2: bit15
// clear is a virtual-carrier-sense value in microseconds; bit15 set with
// bit14 clear is a CFP value; bit15 and bit14 both set with the low 14
// bits in [1,2007] is an AID; every other combination is reserved.
func decodeDuration(v uint16) Duration {
	if v&0x8000 == 0 {
		return Duration{Kind: "vcs", Value: v & 0x7fff}
	}
	if v&0x4000 == 0 {
		return Duration{Kind: "cfp"}
	}
	aid := v & 0x3fff
	if aid >= 1 && aid <= 2007 {
		return Duration{Kind: "aid", Value: aid}
	}
	return Duration{Kind: "rsrv"}
}

// decodeSeqCtrl splits the sequence control field, Std 8.2.4.4: low 4
// bits are the fragment number, high 12 bits the sequence number.
func decodeSeqCtrl(v uint16) (fragno uint8, seqno uint16) {
	return uint8(v & 0xf), v >> 4
}

// QoS control subfield bit layout, Std 8.2.4.5.
const (
	qosEOSPBit      = 4
	qosAckPolicyLo  = 5
	qosAckPolicyLen = 2
	qosAMSDUBit     = 7
)

func decodeQoSCtrl(v uint16) QoSControl {
	lsb := uint8(v & 0xff)
	msb := uint8(v >> 8)
	return QoSControl{
		TID:          lsb & 0xf,
		EOSP:         lsb&(1<<qosEOSPBit) != 0,
		AckPolicy:    (lsb >> qosAckPolicyLo) & ((1 << qosAckPolicyLen) - 1),
		AMSDUPresent: lsb&(1<<qosAMSDUBit) != 0,
		TXOP:         msb,
		Raw:          v,
	}
}

// HT Control subfield bit layout, Std 8.2.4.6.
func decodeHTControl(v uint32) HTControl {
	return HTControl{
		VHT:           v&0x1 != 0,
		LinkAdaptCtrl: uint16(bitsOf(v, 1, 15)),
		CalibPos:      uint8(bitsOf(v, 16, 2)),
		CalibSeq:      uint8(bitsOf(v, 18, 2)),
		CSISteering:   uint8(bitsOf(v, 22, 2)),
		NDPAnnounce:   hasBit(v, 24),
		ACConstraint:  hasBit(v, 30),
		RDGMorePPDU:   hasBit(v, 31),
		Raw:           v,
	}
}

// addrShape describes how many address fields, and whether seqctrl/
// addr4/qos apply, for a given type/subtype per §A.5's table. perDS
// marks data frames, whose addr4 presence follows the DS bits.
type addrShape struct {
	nAddr    int
	hasSeq   bool
	perDS    bool
	hasQoS   bool
}

func shapeFor(typ FrameType, subtype uint8) addrShape {
	switch typ {
	case TypeMgmt:
		return addrShape{nAddr: 3, hasSeq: true}
	case TypeCtrl:
		switch subtype {
		case SubtypeRTS, SubtypeBlockAckReq, SubtypeBlockAck:
			return addrShape{nAddr: 2}
		case SubtypeCTS, SubtypeACK:
			return addrShape{nAddr: 1}
		case SubtypePSPoll:
			return addrShape{nAddr: 2}
		case SubtypeCFEnd, SubtypeCFEndCFAck:
			return addrShape{nAddr: 2}
		default:
			return addrShape{nAddr: 1}
		}
	case TypeData:
		return addrShape{nAddr: 3, hasSeq: true, perDS: true, hasQoS: IsQoSData(subtype)}
	default:
		return addrShape{nAddr: 0}
	}
}

// Parse decodes an 802.11 MAC frame header from buf. hasFCS indicates
// whether the capturing driver preserved the trailing 4-byte frame
// check sequence; when true it is recorded and counted in Stripped.
//
// Only frame-control truncation is fatal (step 1 of the contract);
// every later failure is appended to the returned MPDU's Errors and
// stops the walk, leaving a partial record.
func Parse(buf []byte, hasFCS bool) (*MPDU, error) {
	if len(buf) < 10 {
		return nil, newTruncated("framectrl", 10, len(buf))
	}

	vers, typ, subtype, flags, err := decodeFrameControl(buf)
	if err != nil {
		return nil, err
	}
	durRaw, err := u16le(buf, 2)
	if err != nil {
		return nil, err
	}

	m := &MPDU{
		Vers: vers, Type: typ, Subtype: subtype, Flags: flags,
		Duration: decodeDuration(durRaw),
		Size:     len(buf),
	}
	m.Present = append(m.Present, "framectrl", "duration")

	if hasFCS {
		m.Stripped = 4
		m.HasFCS = true
		if len(buf) >= 4 {
			fcs, _ := u32le(buf, len(buf)-4)
			m.FCS = fcs
			m.Present = append(m.Present, "fcs")
		}
	}

	offset := 4
	shape := shapeFor(typ, subtype)

	readAddr := func(name string) bool {
		a, err := mac(buf, offset)
		if err != nil {
			m.Errors = append(m.Errors, FieldError{Field: name, Err: err.(*DecodeError)})
			return false
		}
		switch name {
		case "addr1":
			m.Addr1 = a
		case "addr2":
			m.Addr2 = a
		case "addr3":
			m.Addr3 = a
		case "addr4":
			m.Addr4 = a
		}
		m.Present = append(m.Present, name)
		offset += 6
		return true
	}

	for i := 1; i <= shape.nAddr; i++ {
		if !readAddr("addr" + string(rune('0'+i))) {
			m.Offset = offset
			return m, nil
		}
	}

	if shape.hasSeq {
		v, err := u16le(buf, offset)
		if err != nil {
			m.Errors = append(m.Errors, FieldError{Field: "seqctrl", Err: err.(*DecodeError)})
			m.Offset = offset
			return m, nil
		}
		m.FragNum, m.SeqNum = decodeSeqCtrl(v)
		m.Present = append(m.Present, "seqctrl")
		offset += 2
	}

	if shape.perDS && flags.ToDS() && flags.FromDS() {
		if !readAddr("addr4") {
			m.Offset = offset
			return m, nil
		}
	}

	if shape.hasQoS {
		v, err := u16le(buf, offset)
		if err != nil {
			m.Errors = append(m.Errors, FieldError{Field: "qosctrl", Err: err.(*DecodeError)})
			m.Offset = offset
			return m, nil
		}
		m.QoS = decodeQoSCtrl(v)
		m.HasQoS = true
		m.Present = append(m.Present, "qosctrl")
		offset += 2

		// The TXOP byte is AP-PS-Buffer-State only when sent by the AP
		// on these subtypes, Std Table 8-4; every other combination
		// (TXOP Limit/Duration Requested/Queue Size, or the mesh
		// variant) is a plain scalar with no further bitfield to decode.
		if flags.FromDS() {
			switch subtype {
			case SubtypeQoSData, SubtypeQoSDataCFAck, SubtypeQoSNull:
				m.QoS.APBufferState = DecodeQoSAPBufferState(m.QoS.TXOP)
				m.QoS.HasAPBufferState = true
			}
		}
	}

	if typ == TypeCtrl && (subtype == SubtypeBlockAckReq || subtype == SubtypeBlockAck) {
		var (
			ctrl BlockAckControl
			n    int
			derr error
		)
		if subtype == SubtypeBlockAckReq {
			var info BlockAckReqInfo
			ctrl, info, n, derr = decodeBlockAckReqBody(buf, offset)
			m.BAReqInfo = info
		} else {
			var info BlockAckInfo
			ctrl, info, n, derr = decodeBlockAckBody(buf, offset)
			m.BAInfo = info
		}
		m.BAControl = ctrl
		m.HasBAControl = true
		m.Present = append(m.Present, "bactrl")
		offset += n
		if derr != nil {
			de := derr.(*DecodeError)
			m.Errors = append(m.Errors, FieldError{Field: "bainfo", Err: de})
			if de.Kind != KindUnknownField {
				m.Offset = offset
				return m, nil
			}
		} else {
			m.Present = append(m.Present, "bainfo")
		}
	}

	// HT Control is only decoded for QoS-data frames per the resolved
	// scope; other frame types carrying the order bit (control-wrapper,
	// non-QoS management) record no htc and flag it unsupported.
	if flags.Order() {
		if typ == TypeData && shape.hasQoS {
			v, err := u32le(buf, offset)
			if err != nil {
				m.Errors = append(m.Errors, FieldError{Field: "htc", Err: err.(*DecodeError)})
				m.Offset = offset
				return m, nil
			}
			m.HTC = decodeHTControl(v)
			m.HasHTC = true
			m.Present = append(m.Present, "htc")
			offset += 4
		} else {
			m.Errors = append(m.Errors, FieldError{
				Field: "htc",
				Err:   newError("htc", KindUnknownField, "order bit set on unsupported frame kind"),
			})
		}
	}

	if flags.Protected() {
		crypt, hdrLen, trailerLen, err := decodeCrypt(buf, offset)
		if err != nil {
			m.Errors = append(m.Errors, FieldError{Field: "crypt", Err: err.(*DecodeError)})
			m.Offset = offset
			return m, nil
		}
		m.Crypt = crypt
		m.Present = append(m.Present, "crypt")
		offset += hdrLen
		m.Stripped += trailerLen
	}

	m.Offset = offset
	return m, nil
}
