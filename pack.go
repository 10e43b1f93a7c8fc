package huffman

import (
	"bytes"
	"fmt"
	"strings"

	bitstream "github.com/dgryski/go-bitstream"
)

// PackBits packs a bitstream of '0' and '1' digits into bytes, eight bits per
// byte with the first bit in the most significant position.  The last byte is
// padded with zero bits.  Any other digit fails with a *BitError.
func PackBits(bits string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow((len(bits) + 7) / 8)
	w := bitstream.NewWriter(&buf)
	for index := 0; index < len(bits); index++ {
		var bit bitstream.Bit
		switch bits[index] {
		case '0':
			bit = bitstream.Zero
		case '1':
			bit = bitstream.One
		default:
			return nil, &BitError{Offset: index, Bit: bits[index]}
		}
		if err := w.WriteBit(bit); err != nil {
			return nil, err
		}
	}
	if err := w.Flush(bitstream.Zero); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnpackBits reverses PackBits, returning the first n bits of data as '0' and
// '1' digits.
func UnpackBits(data []byte, n int) (string, error) {
	if n < 0 || n > 8*len(data) {
		return "", fmt.Errorf("%w: cannot unpack %d bits from %d bytes", ErrInvalidInput, n, len(data))
	}

	var sb strings.Builder
	sb.Grow(n)
	r := bitstream.NewReader(bytes.NewReader(data))
	for index := 0; index < n; index++ {
		bit, err := r.ReadBit()
		if err != nil {
			return "", err
		}
		if bit == bitstream.One {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String(), nil
}
