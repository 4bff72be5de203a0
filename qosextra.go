package itamae

// QoSAPBufferState is the AP-PS-Buffer-State sub-decode of the QoS
// control field's high (TXOP) byte, sent by an AP on
// QOS_DATA/QOS_DATA_CFACK/QOS_NULL frames, Std Table 8-4.
type QoSAPBufferState struct {
	Reserved                bool
	BufferStateIndicated    bool
	HighestPriorityBuffered uint8
	APBufferedCount         uint8
}

// DecodeQoSAPBufferState interprets a QoS control TXOP byte as the
// AP-PS-Buffer-State subfield. Parse calls this automatically for
// frames Std Table 8-4 identifies as carrying it; see mpdu.go.
func DecodeQoSAPBufferState(b uint8) QoSAPBufferState {
	return QoSAPBufferState{
		Reserved:                b&0x1 != 0,
		BufferStateIndicated:    b&0x2 != 0,
		HighestPriorityBuffered: (b >> 2) & 0x3,
		APBufferedCount:         (b >> 4) & 0xf,
	}
}

// BlockAckControl is the decoded BAR/BA control field shared by
// BlockAckReq and BlockAck control frames, Std 8.3.1.8/8.3.1.9. Kind
// resolves the MultiTID/CompressedBM combination to the variant name
// that governs how the following Information field is laid out:
// "basic", "compressed", "multi-tid", or "reserved".
type BlockAckControl struct {
	AckPolicy    bool
	MultiTID     bool
	CompressedBM bool
	TID          uint8
	Kind         string
}

// DecodeBlockAckControl interprets the 2-byte BAR/BA control field.
func DecodeBlockAckControl(v uint16) BlockAckControl {
	c := BlockAckControl{
		AckPolicy:    v&0x1 != 0,
		MultiTID:     v&0x2 != 0,
		CompressedBM: v&0x4 != 0,
		TID:          uint8(v >> 12),
	}
	switch {
	case !c.MultiTID && !c.CompressedBM:
		c.Kind = "basic"
	case !c.MultiTID && c.CompressedBM:
		c.Kind = "compressed"
	case c.MultiTID && !c.CompressedBM:
		c.Kind = "reserved"
	default:
		c.Kind = "multi-tid"
	}
	return c
}

// PerTIDInfo is one entry of a multi-TID BlockAckReq's Information
// field, Std Fig 8-22/8-23.
type PerTIDInfo struct {
	TID     uint8
	FragNum uint8
	SeqNum  uint16
}

// BlockAckReqInfo is the BAR Information field. FragNum/SeqNum are
// populated for the basic and compressed variants (Std
// 8.3.1.8.2/8.3.1.8.3); TIDs is populated instead for the multi-tid
// variant (Std 8.3.1.8.4).
type BlockAckReqInfo struct {
	FragNum uint8
	SeqNum  uint16
	TIDs    []PerTIDInfo
}

// DecodeBlockAckReqInfo interprets the 2-byte BAR Information field
// carried by the basic and compressed variants, using the same
// fragno/seqno split as a sequence control field.
func DecodeBlockAckReqInfo(v uint16) BlockAckReqInfo {
	fragno, seqno := decodeSeqCtrl(v)
	return BlockAckReqInfo{FragNum: fragno, SeqNum: seqno}
}

// decodeBlockAckReqBody decodes the BAR control field and its
// variant-dependent Information field starting at buf[off], Std
// 8.3.1.8, returning the bytes consumed. A reserved control-field
// combination is reported as a KindUnknownField error without failing
// the whole parse, matching how Parse treats other unsupported
// combinations (see htc in mpdu.go).
func decodeBlockAckReqBody(buf []byte, off int) (BlockAckControl, BlockAckReqInfo, int, error) {
	v, err := u16le(buf, off)
	if err != nil {
		return BlockAckControl{}, BlockAckReqInfo{}, 0, err
	}
	ctrl := DecodeBlockAckControl(v)
	consumed := 2

	switch ctrl.Kind {
	case "basic", "compressed":
		iv, err := u16le(buf, off+consumed)
		if err != nil {
			return ctrl, BlockAckReqInfo{}, consumed, err
		}
		info := DecodeBlockAckReqInfo(iv)
		return ctrl, info, consumed + 2, nil
	case "multi-tid":
		var info BlockAckReqInfo
		n := int(ctrl.TID) + 1
		for i := 0; i < n; i++ {
			pertid, err := u16le(buf, off+consumed)
			if err != nil {
				return ctrl, info, consumed, err
			}
			seq, err := u16le(buf, off+consumed+2)
			if err != nil {
				return ctrl, info, consumed, err
			}
			fragno, seqno := decodeSeqCtrl(seq)
			info.TIDs = append(info.TIDs, PerTIDInfo{
				TID: uint8(pertid >> 12), FragNum: fragno, SeqNum: seqno,
			})
			consumed += 4
		}
		return ctrl, info, consumed, nil
	default: // reserved: Std leaves this control combination undefined
		return ctrl, BlockAckReqInfo{}, consumed, newError("barinfo", KindUnknownField, "reserved bar control combination")
	}
}

// PerTIDBlockAck is one entry of a multi-TID BlockAck's Information
// field, Std Fig 8-28.
type PerTIDBlockAck struct {
	TID     uint8
	FragNum uint8
	SeqNum  uint16
	Bitmap  []byte
}

// BlockAckInfo is the BA Information field. FragNum/SeqNum/Bitmap are
// populated for the basic and compressed variants (Std
// 8.3.1.9.2/8.3.1.9.3, bitmap 128 and 8 bytes respectively); TIDs is
// populated instead for the multi-tid variant (Std 8.3.1.9.4).
type BlockAckInfo struct {
	FragNum uint8
	SeqNum  uint16
	Bitmap  []byte
	TIDs    []PerTIDBlockAck
}

// decodeBlockAckBody decodes the BA control field and its
// variant-dependent Information field starting at buf[off], Std
// 8.3.1.9, returning the bytes consumed.
func decodeBlockAckBody(buf []byte, off int) (BlockAckControl, BlockAckInfo, int, error) {
	v, err := u16le(buf, off)
	if err != nil {
		return BlockAckControl{}, BlockAckInfo{}, 0, err
	}
	ctrl := DecodeBlockAckControl(v)
	consumed := 2

	switch ctrl.Kind {
	case "basic", "compressed":
		iv, err := u16le(buf, off+consumed)
		if err != nil {
			return ctrl, BlockAckInfo{}, consumed, err
		}
		consumed += 2
		bmLen := 8
		if ctrl.Kind == "basic" {
			bmLen = 128
		}
		if off+consumed+bmLen > len(buf) {
			return ctrl, BlockAckInfo{}, consumed, newTruncated("bainfo.babitmap", bmLen, len(buf)-off-consumed)
		}
		fragno, seqno := decodeSeqCtrl(iv)
		info := BlockAckInfo{
			FragNum: fragno,
			SeqNum:  seqno,
			Bitmap:  append([]byte(nil), buf[off+consumed:off+consumed+bmLen]...),
		}
		return ctrl, info, consumed + bmLen, nil
	case "multi-tid":
		var info BlockAckInfo
		n := int(ctrl.TID) + 1
		for i := 0; i < n; i++ {
			pertid, err := u16le(buf, off+consumed)
			if err != nil {
				return ctrl, info, consumed, err
			}
			seq, err := u16le(buf, off+consumed+2)
			if err != nil {
				return ctrl, info, consumed, err
			}
			if off+consumed+4+8 > len(buf) {
				return ctrl, info, consumed, newTruncated("bainfo.tids.babitmap", 8, len(buf)-off-consumed-4)
			}
			fragno, seqno := decodeSeqCtrl(seq)
			info.TIDs = append(info.TIDs, PerTIDBlockAck{
				TID:     uint8(pertid >> 12),
				FragNum: fragno,
				SeqNum:  seqno,
				Bitmap:  append([]byte(nil), buf[off+consumed+4:off+consumed+12]...),
			})
			consumed += 12
		}
		return ctrl, info, consumed, nil
	default: // reserved: Std leaves this control combination undefined
		return ctrl, BlockAckInfo{}, consumed, newError("bainfo", KindUnknownField, "reserved ba control combination")
	}
}
