package isap

import "github.com/isap-lwc/isap-go/internal/permute/api"

// mac implements ISAP-Mac (spec section 4.5): it absorbs associated
// data and ciphertext in r_H-byte blocks — each full block XORed in and
// followed by an s_h-round permutation, the final short block padded
// with a single 0x80 byte even when the data divides the rate exactly
// — flips a domain-separation bit between the two absorptions, and
// finalizes by rederiving a 16-byte subkey via Rk from the first 16
// bytes of the post-absorption state and permuting once more.
func (inst Instance) mac(key, nonce [16]byte, assocData, ciphertext []byte) [16]byte {
	s := inst.newState()

	init := make([]byte, 0, inst.stateSize)
	init = append(init, nonce[:]...)
	init = append(init, inst.ivA[:]...)
	s.Load(init)
	s.Permute(inst.sh)

	inst.absorb(s, assocData)
	s.FlipLastBit()
	inst.absorb(s, ciphertext)

	var y [16]byte
	copy(y[:], s.Extract(0, 16))

	finalKey := inst.rekey(key, y, rkMac)
	s.StoreBytes(0, finalKey)
	s.Permute(inst.sh)

	var tag [16]byte
	copy(tag[:], s.Extract(0, 16))
	return tag
}

// absorb XOR-accumulates data into the state's first r_H bytes in
// r_H-byte blocks, permuting with s_h rounds after each block,
// including the always-present padded final block.
func (inst Instance) absorb(s api.State, data []byte) {
	rem := data
	for len(rem) >= inst.rateH {
		s.XORBytes(0, rem[:inst.rateH])
		s.Permute(inst.sh)
		rem = rem[inst.rateH:]
	}

	padded := make([]byte, inst.rateH)
	copy(padded, rem)
	padded[len(rem)] = 0x80
	s.XORBytes(0, padded)
	s.Permute(inst.sh)
}
