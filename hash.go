package strview

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/rawbytedev/strview/internal/unitmem"
)

// Hash64 returns a hash of the view's content, not its address: views with
// identical content hash identically regardless of which storage backs
// them. The hash is consistent with Ord equality (it ignores the traits
// strategy) and suitable for keyed containers.
//
// Wide units are fed to the hash in little-endian order so the value does
// not depend on host byte order.
func (v View[U, T]) Hash64() uint64 {
	if unitmem.Size[U]() == 1 {
		return xxhash.Sum64(unitmem.AsBytes(v.s))
	}
	var d xxhash.Digest
	d.Reset()
	var scratch [4]byte
	if unitmem.Size[U]() == 2 {
		for _, u := range v.s {
			binary.LittleEndian.PutUint16(scratch[:2], uint16(u))
			d.Write(scratch[:2])
		}
	} else {
		for _, u := range v.s {
			binary.LittleEndian.PutUint32(scratch[:4], uint32(u))
			d.Write(scratch[:4])
		}
	}
	return d.Sum64()
}
