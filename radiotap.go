package itamae

import "strconv"

// Radiotap presence-bitmap bit numbers, per the radiotap.org field
// catalog. Bit 29 chains to a vendor-namespace-local copy of this table,
// bit 30 marks a vendor namespace, bit 31 means another bitmap word
// follows.
const (
	bitTSFT = iota
	bitFlags
	bitRate
	bitChannel
	bitFHSS
	bitAntSignal
	bitAntNoise
	bitLockQuality
	bitTxAttenuation
	bitDBTxAttenuation
	bitDBMTxPower
	bitAntenna
	bitDBAntSignal
	bitDBAntNoise
	bitRxFlags
	bitTxFlags
	bitRtsRetries
	bitDataRetries
	bitXChannel
	bitMCS
	bitAMPDU
	bitVHT
	bitNamespace = 29
	bitVendor    = 30
	bitExt       = 31
)

// radiotapFieldSize/Align give the on-wire size and alignment for each
// catalog field this decoder understands; fields absent from this map
// (TX flags, retries, XChannel, and anything vendor-defined) are not
// skipped: the first such bit set records an UnknownField error and
// ends the walk.
var radiotapFieldSize = map[int]int{
	bitTSFT:            8,
	bitFlags:           1,
	bitRate:            1,
	bitChannel:         4,
	bitFHSS:            2,
	bitAntSignal:       1,
	bitAntNoise:        1,
	bitLockQuality:     2,
	bitTxAttenuation:   2,
	bitDBTxAttenuation: 2,
	bitDBMTxPower:      1,
	bitAntenna:         1,
	bitDBAntSignal:     1,
	bitDBAntNoise:      1,
	bitRxFlags:         2,
	bitMCS:             3,
	bitAMPDU:           8,
	bitVHT:             12,
}

var radiotapFieldAlign = map[int]int{
	bitTSFT:            8,
	bitFlags:           1,
	bitRate:            1,
	bitChannel:         2,
	bitFHSS:            1,
	bitAntSignal:       1,
	bitAntNoise:        1,
	bitLockQuality:     2,
	bitTxAttenuation:   2,
	bitDBTxAttenuation: 2,
	bitDBMTxPower:      1,
	bitAntenna:         1,
	bitDBAntSignal:     1,
	bitDBAntNoise:      1,
	bitRxFlags:         2,
	bitMCS:             1,
	bitAMPDU:           4,
	bitVHT:             2,
}

// ParseRadiotap decodes the Radiotap pseudo-header at the start of buf.
// A bad version or a header/buffer length mismatch is fatal; any other
// field's decode failure is recorded in the returned record's Errors and
// the walk stops advancing (later fields are simply absent from
// Present).
func ParseRadiotap(buf []byte) (*Radiotap, error) {
	if len(buf) < 8 {
		return nil, newTruncated("radiotap-header", 8, len(buf))
	}
	vers, _ := u8(buf, 0)
	if vers != 0 {
		return nil, newError("vers", KindBadVersion, "")
	}
	sz, err := u16le(buf, 2)
	if err != nil {
		return nil, err
	}
	if int(sz) < 8 || int(sz) > len(buf) {
		return nil, newError("sz", KindBadLength, "it_len out of range")
	}

	r := &Radiotap{Vers: vers, Sz: sz}

	// Walk the (possibly chained) presence bitmap words.
	var bitmaps []uint32
	off := 4
	for {
		word, err := u32le(buf, off)
		if err != nil {
			return nil, err
		}
		bitmaps = append(bitmaps, word)
		off += 4
		if !hasBit(word, bitExt) {
			break
		}
		if off >= int(sz) {
			return nil, newError("presence", KindBadLength, "unterminated extension chain")
		}
	}

	cursor := off
	// Only the first bitmap word's standard bits (0-21) are decoded;
	// chained words only ever extend the namespace/vendor bits for this
	// decoder's supported field set.
	word := bitmaps[0]
	for bit := 0; bit <= bitVHT; bit++ {
		if !hasBit(word, uint(bit)) {
			continue
		}
		align, ok := radiotapFieldAlign[bit]
		if !ok {
			r.Errors = append(r.Errors, FieldError{
				Field: "bit" + strconv.Itoa(bit),
				Err:   newError("presence", KindUnknownField, ""),
			})
			break
		}
		cursor = align2(cursor, align)
		size := radiotapFieldSize[bit]
		if cursor+size > len(buf) {
			r.Errors = append(r.Errors, FieldError{
				Field: radiotapFieldName(bit),
				Err:   newTruncated(radiotapFieldName(bit), size, len(buf)-cursor),
			})
			break
		}
		if err := decodeRadiotapField(r, bit, buf, cursor); err != nil {
			r.Errors = append(r.Errors, FieldError{Field: radiotapFieldName(bit), Err: err.(*DecodeError)})
			break
		}
		r.Present = append(r.Present, radiotapFieldTag(bit))
		cursor += size
	}

	return r, nil
}

// align2 is align's namesake kept distinct so radiotap.go reads clearly
// next to the generic primitive in bits.go; n==0 means no alignment
// requirement.
func align2(off, n int) int {
	if n == 0 {
		return off
	}
	return align(off, n)
}

func radiotapFieldName(bit int) string {
	switch bit {
	case bitTSFT:
		return "tsft"
	case bitFlags:
		return "flags"
	case bitRate:
		return "rate"
	case bitChannel:
		return "channel"
	case bitFHSS:
		return "fhss"
	case bitAntSignal:
		return "antsignal"
	case bitAntNoise:
		return "antnoise"
	case bitLockQuality:
		return "lock-quality"
	case bitTxAttenuation:
		return "tx-attenuation"
	case bitDBTxAttenuation:
		return "db-tx-attenuation"
	case bitDBMTxPower:
		return "dbm-tx-power"
	case bitAntenna:
		return "antenna"
	case bitDBAntSignal:
		return "db-antsignal"
	case bitDBAntNoise:
		return "db-antnoise"
	case bitRxFlags:
		return "rx-flags"
	case bitMCS:
		return "mcs"
	case bitAMPDU:
		return "a-mpdu"
	case bitVHT:
		return "vht"
	default:
		return "unknown"
	}
}

func radiotapFieldTag(bit int) RadiotapField {
	switch bit {
	case bitTSFT:
		return FieldTSFT
	case bitFlags:
		return FieldFlags
	case bitRate:
		return FieldRate
	case bitChannel:
		return FieldChannel
	case bitFHSS:
		return FieldFHSS
	case bitAntSignal:
		return FieldAntSignal
	case bitAntNoise:
		return FieldAntNoise
	case bitLockQuality:
		return FieldLockQuality
	case bitTxAttenuation:
		return FieldTxAttenuation
	case bitDBTxAttenuation:
		return FieldDBTxAttenuation
	case bitDBMTxPower:
		return FieldDBMTxPower
	case bitAntenna:
		return FieldAntenna
	case bitDBAntSignal:
		return FieldDBAntSignal
	case bitDBAntNoise:
		return FieldDBAntNoise
	case bitRxFlags:
		return FieldRxFlags
	case bitMCS:
		return FieldMCS
	case bitAMPDU:
		return FieldAMPDU
	case bitVHT:
		return FieldVHT
	default:
		return -1
	}
}

func decodeRadiotapField(r *Radiotap, bit int, buf []byte, off int) error {
	switch bit {
	case bitTSFT:
		v, err := u64le(buf, off)
		if err != nil {
			return err
		}
		r.TSFT = v
	case bitFlags:
		v, err := u8(buf, off)
		if err != nil {
			return err
		}
		r.Flags = RadiotapFlags(v)
	case bitRate:
		v, err := u8(buf, off)
		if err != nil {
			return err
		}
		r.RateRaw = v
	case bitChannel:
		freq, err := u16le(buf, off)
		if err != nil {
			return err
		}
		flags, err := u16le(buf, off+2)
		if err != nil {
			return err
		}
		r.Channel = ChannelInfo{FreqMHz: freq, Flags: ChannelFlags(flags)}
	case bitFHSS:
		hop, err := u8(buf, off)
		if err != nil {
			return err
		}
		pat, err := u8(buf, off+1)
		if err != nil {
			return err
		}
		r.FHSSHop, r.FHSSPattern = hop, pat
	case bitAntSignal:
		v, err := i8(buf, off)
		if err != nil {
			return err
		}
		r.AntSignal = v
	case bitAntNoise:
		v, err := i8(buf, off)
		if err != nil {
			return err
		}
		r.AntNoise = v
	case bitLockQuality:
		v, err := u16le(buf, off)
		if err != nil {
			return err
		}
		r.LockQuality = v
	case bitTxAttenuation:
		v, err := u16le(buf, off)
		if err != nil {
			return err
		}
		r.TxAttenuation = v
	case bitDBTxAttenuation:
		v, err := u16le(buf, off)
		if err != nil {
			return err
		}
		r.DBTxAttenuation = v
	case bitDBMTxPower:
		v, err := i8(buf, off)
		if err != nil {
			return err
		}
		r.DBMTxPower = v
	case bitAntenna:
		v, err := u8(buf, off)
		if err != nil {
			return err
		}
		r.Antenna = v
	case bitDBAntSignal:
		v, err := u8(buf, off)
		if err != nil {
			return err
		}
		r.DBAntSignal = v
	case bitDBAntNoise:
		v, err := u8(buf, off)
		if err != nil {
			return err
		}
		r.DBAntNoise = v
	case bitRxFlags:
		v, err := u16le(buf, off)
		if err != nil {
			return err
		}
		r.RxFlags = v
	case bitMCS:
		known, err := u8(buf, off)
		if err != nil {
			return err
		}
		flags, err := u8(buf, off+1)
		if err != nil {
			return err
		}
		idx, err := u8(buf, off+2)
		if err != nil {
			return err
		}
		r.MCS = MCSInfo{Known: MCSKnown(known), Flags: MCSFlags(flags), MCS: idx}
	case bitAMPDU:
		ref, err := u32le(buf, off)
		if err != nil {
			return err
		}
		flags, err := u16le(buf, off+4)
		if err != nil {
			return err
		}
		crc, err := u8(buf, off+6)
		if err != nil {
			return err
		}
		rsrv, err := u8(buf, off+7)
		if err != nil {
			return err
		}
		r.AMPDU = AMPDUInfo{ReferenceNum: ref, Flags: flags, CRC: crc, Reserved: rsrv}
	case bitVHT:
		known, err := u16le(buf, off)
		if err != nil {
			return err
		}
		flags, err := u8(buf, off+2)
		if err != nil {
			return err
		}
		bw, err := u8(buf, off+3)
		if err != nil {
			return err
		}
		var mcsnss [4]uint8
		for i := 0; i < 4; i++ {
			v, err := u8(buf, off+4+i)
			if err != nil {
				return err
			}
			mcsnss[i] = v
		}
		coding, err := u8(buf, off+8)
		if err != nil {
			return err
		}
		groupID, err := u8(buf, off+9)
		if err != nil {
			return err
		}
		partialAID, err := u16le(buf, off+10)
		if err != nil {
			return err
		}
		r.VHT = VHTInfo{
			Known: known, Flags: flags, Bandwidth: bw, MCSNSS: mcsnss,
			Coding: coding, GroupID: groupID, PartialAID: partialAID,
		}
	}
	return nil
}

// DatapadAdjustedSize returns the MPDU start offset implied by this
// header: sz itself when the Atheros datapad flag is clear, or sz
// rounded up to a 4-byte boundary when it is set.
func (r *Radiotap) DatapadAdjustedSize() int {
	if !r.Has(FieldFlags) || !r.Flags.Datapad() {
		return int(r.Sz)
	}
	return align(int(r.Sz), 4)
}
