package itamae

// Encryption header sizes, Std 11.2.2.2 (WEP), 11.4.2.1 (TKIP), and
// 11.4.3.2 (CCMP).
const (
	wepIVLen  = 4
	wepICVLen = 4

	tkipIVLen  = 8
	tkipMICLen = 8
	tkipICVLen = 4

	ccmpIVLen  = 8
	ccmpMICLen = 8
)

// detectCryptVariant inspects the 4 bytes following the variable MAC
// header to decide between TKIP, CCMP, and WEP, per Std 11.4.2.1 (TKIP's
// WEPSeed byte satisfies (b0|0x20)&0x7f == b1) and the ext-iv bit at
// byte 3 bit 5 that both TKIP and CCMP set and WEP never does.
func detectCryptVariant(b0, b1, b3 byte) CryptVariant {
	extIV := b3&0x20 != 0
	if !extIV {
		return CryptWEP
	}
	if (b0|0x20)&0x7f == b1 {
		return CryptTKIP
	}
	return CryptCCMP
}

// decodeCrypt decodes the encryption header starting at buf[off] and
// reports the header bytes consumed (added to offset) and trailer bytes
// present (added to stripped). buf is the full MPDU buffer so the
// trailer, which sits at the very end, can be read directly.
func decodeCrypt(buf []byte, off int) (Crypt, int, int, error) {
	if off+4 > len(buf) {
		return Crypt{}, 0, 0, newTruncated("crypt-header", 4, len(buf)-off)
	}
	b0, b1, _, b3 := buf[off], buf[off+1], buf[off+2], buf[off+3]
	variant := detectCryptVariant(b0, b1, b3)

	switch variant {
	case CryptWEP:
		if off+wepIVLen+wepICVLen > len(buf) {
			return Crypt{}, 0, 0, newTruncated("wep", wepIVLen+wepICVLen, len(buf)-off)
		}
		iv, err := u32le(buf, off)
		if err != nil {
			return Crypt{}, 0, 0, err
		}
		keyID := b3 >> 6
		c := Crypt{Variant: CryptWEP, IV: iv & 0xffffff, KeyID: keyID}
		return c, wepIVLen, wepICVLen, nil

	case CryptTKIP:
		if off+tkipIVLen+tkipMICLen+tkipICVLen > len(buf) {
			return Crypt{}, 0, 0, newTruncated("tkip", tkipIVLen+tkipMICLen+tkipICVLen, len(buf)-off)
		}
		tsc1, tsc0 := b0, buf[off+2]
		tsc2, tsc3, tsc4, tsc5 := buf[off+4], buf[off+5], buf[off+6], buf[off+7]
		keyByte := buf[off+3]
		keyID := bitsOf(uint32(keyByte), 6, 2)
		tsc := uint64(tsc5)<<40 | uint64(tsc4)<<32 | uint64(tsc3)<<24 |
			uint64(tsc2)<<16 | uint64(tsc0)<<8 | uint64(tsc1)
		c := Crypt{Variant: CryptTKIP, KeyID: uint8(keyID), ExtIV: true, TSC: tsc}
		return c, tkipIVLen, tkipMICLen + tkipICVLen, nil

	default: // CryptCCMP
		if off+ccmpIVLen+ccmpMICLen > len(buf) {
			return Crypt{}, 0, 0, newTruncated("ccmp", ccmpIVLen+ccmpMICLen, len(buf)-off)
		}
		pn0, pn1 := b0, b1
		keyByte := buf[off+3]
		keyID := bitsOf(uint32(keyByte), 6, 2)
		pn2, pn3, pn4, pn5 := buf[off+4], buf[off+5], buf[off+6], buf[off+7]
		pn := uint64(pn0) | uint64(pn1)<<8 | uint64(pn2)<<16 | uint64(pn3)<<24 |
			uint64(pn4)<<32 | uint64(pn5)<<40
		c := Crypt{Variant: CryptCCMP, KeyID: uint8(keyID), ExtIV: true, PN: pn}
		return c, ccmpIVLen, ccmpMICLen, nil
	}
}
