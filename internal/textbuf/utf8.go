package textbuf

// utf8SeqLen returns the sequence length implied by a UTF-8 lead byte,
// or 0 for a byte that cannot start a sequence.
func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

// IsValidUTF8 reports whether the buffer is well-formed UTF-8. It walks
// the byte sequence rejecting invalid lead bytes, sequences truncated by
// the buffer end, malformed continuation bytes, overlong encodings, and
// encoded surrogates (U+D800–U+DFFF); anything through U+10FFFF is
// accepted.
func (t *TextBuffer) IsValidUTF8() bool {
	data := t.gb.Elems()
	for i := 0; i < len(data); {
		n := utf8SeqLen(data[i])
		if n == 0 || i+n > len(data) {
			return false
		}
		for j := 1; j < n; j++ {
			if data[i+j]&0xC0 != 0x80 {
				return false
			}
		}
		switch n {
		case 2:
			cp := uint32(data[i]&0x1F)<<6 | uint32(data[i+1]&0x3F)
			if cp < 0x80 {
				return false
			}
		case 3:
			cp := uint32(data[i]&0x0F)<<12 |
				uint32(data[i+1]&0x3F)<<6 |
				uint32(data[i+2]&0x3F)
			if cp < 0x800 {
				return false
			}
			if cp >= 0xD800 && cp <= 0xDFFF {
				return false
			}
		case 4:
			cp := uint32(data[i]&0x07)<<18 |
				uint32(data[i+1]&0x3F)<<12 |
				uint32(data[i+2]&0x3F)<<6 |
				uint32(data[i+3]&0x3F)
			if cp < 0x10000 || cp > 0x10FFFF {
				return false
			}
		}
		i += n
	}
	return true
}
