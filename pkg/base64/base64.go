package base64

// Alphabet is the RFC 4648 standard base64 alphabet, indexed by 6-bit value.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Padding is appended to encoded output when the input length
// is not a multiple of 3.
const Padding = '='

const invalidIndex = 0xFF

var decodeMap = func() [256]byte {
	var m [256]byte
	for i := range m {
		m[i] = invalidIndex
	}
	for i := 0; i < len(Alphabet); i++ {
		m[Alphabet[i]] = byte(i)
	}
	return m
}()

// EncodedLen returns the length of the base64 encoding of n bytes.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum number of bytes an encoded input
// of length n can decode to.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// Encode returns the padded base64 encoded string from the given input.
//
// Empty input returns an empty string.
func Encode(input []byte) string {
	if len(input) == 0 {
		return ""
	}

	dst := make([]byte, EncodedLen(len(input)))

	di, si := 0, 0
	n := len(input) / 3 * 3
	for si < n {
		val := uint(input[si])<<16 | uint(input[si+1])<<8 | uint(input[si+2])

		dst[di+0] = Alphabet[val>>18&0x3F]
		dst[di+1] = Alphabet[val>>12&0x3F]
		dst[di+2] = Alphabet[val>>6&0x3F]
		dst[di+3] = Alphabet[val&0x3F]

		si += 3
		di += 4
	}

	remain := len(input) - si
	if remain == 0 {
		return string(dst)
	}

	// 1 or 2 bytes left, zero-filled on the right
	val := uint(input[si]) << 16
	if remain == 2 {
		val |= uint(input[si+1]) << 8
	}

	dst[di+0] = Alphabet[val>>18&0x3F]
	dst[di+1] = Alphabet[val>>12&0x3F]
	if remain == 2 {
		dst[di+2] = Alphabet[val>>6&0x3F]
	} else {
		dst[di+2] = Padding
	}
	dst[di+3] = Padding

	return string(dst)
}

// Decode returns the bytes represented by the padded base64 input.
//
// An empty input decodes to an empty slice. Malformed input, including
// input that is not in the canonical form produced by Encode, returns
// a *FormatError.
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return []byte{}, nil
	}

	if len(input)%4 != 0 {
		return nil, newFormatError(ErrLength, len(input))
	}

	pad := 0
	if input[len(input)-1] == Padding {
		pad++
		if input[len(input)-2] == Padding {
			pad++
		}
	}

	end := len(input) - pad
	dst := make([]byte, 0, DecodedLen(len(input))-pad)

	var val uint
	for i := 0; i < end; i++ {
		c := input[i]
		d := decodeMap[c]
		if d == invalidIndex {
			if c == Padding {
				return nil, newFormatError(ErrPadding, i)
			}
			return nil, newFormatError(ErrCharacter, i)
		}

		val = val<<6 | uint(d)
		if i%4 == 3 {
			dst = append(dst, byte(val>>16), byte(val>>8), byte(val))
			val = 0
		}
	}

	// val holds the data characters of a padded final block
	switch pad {
	case 1:
		// 18 bits, the low 2 are padding
		if val&0x03 != 0 {
			return nil, newFormatError(ErrTrailingBits, end-1)
		}
		dst = append(dst, byte(val>>10), byte(val>>2))
	case 2:
		// 12 bits, the low 4 are padding
		if val&0x0F != 0 {
			return nil, newFormatError(ErrTrailingBits, end-1)
		}
		dst = append(dst, byte(val>>4))
	}

	return dst, nil
}
