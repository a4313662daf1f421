package isap

// rkMode selects which of Rk's two session keys is being derived: the
// encryption subkey Ke (paired with the nonce by Enc) or the
// authentication subkey Ka/Ka* (used to finalize a Mac).
type rkMode int

const (
	rkEnc rkMode = iota
	rkMac
)

// rekey implements ISAP-Rk (spec section 4.3, algorithm 4 of the ISAP
// specification): it derives a session subkey from the long-term key
// and a 128-bit string y by absorbing y one bit at a time, each bit
// followed by a cheap s_b-round permutation call. This bit-by-bit
// interleaving is ISAP's differential-power-analysis countermeasure —
// every long-term-key-dependent state update touches at most one bit
// of y, so an attacker cannot hold y fixed across traces and vary only
// a many-bit secret.
//
// Bit j of byte k of y (0-indexed, MSB-first: bit 0 is the top bit of
// y[0]) is absorbed in round j+8*k.
func (inst Instance) rekey(key, y [16]byte, mode rkMode) []byte {
	s := inst.newState()

	var iv [8]byte
	var z int
	if mode == rkEnc {
		iv = inst.ivKE
		z = inst.encZ()
	} else {
		iv = inst.ivKA
		z = inst.macZ()
	}

	init := make([]byte, 0, inst.stateSize)
	init = append(init, key[:]...)
	init = append(init, iv[:]...)
	s.Load(init)
	s.Permute(inst.sk)

	for i := 0; i < 127; i++ {
		byteOff := i / 8
		bitPos := 7 - (i % 8)
		bit := (y[byteOff] >> uint(bitPos)) & 1
		s.XORBit0(bit)
		s.Permute(inst.sb)
	}

	lastBit := y[15] & 1
	s.XORBit0(lastBit)
	s.Permute(inst.sk)

	return s.Extract(0, z)
}
