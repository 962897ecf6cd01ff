package contrast

import (
	"encoding/binary"
	"math"

	"gocontrast/domain/core"
)

// Fingerprint hashes names, shapes and the exact bit patterns of every
// weight. Two sets with equal fingerprints are bit-identical.
func (s Set) Fingerprint() core.Hash {
	var buf []byte
	for _, name := range s.Names() {
		c := s[name]
		buf = append(buf, name...)
		buf = append(buf, 0, kindTag(c))
		buf = binary.BigEndian.AppendUint32(buf, uint32(c.Rows()))
		for _, row := range c.RawRows() {
			buf = binary.BigEndian.AppendUint32(buf, uint32(len(row)))
			for _, w := range row {
				buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(w))
			}
		}
	}
	return core.NewHash(buf)
}

func kindTag(c Contrast) byte {
	switch {
	case c.IsStacked():
		return 's'
	case c.IsPlaceholder():
		return 'p'
	default:
		return 'v'
	}
}
