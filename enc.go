package isap

// enc implements ISAP-Enc (spec section 4.4): it derives the
// encryption session key Ke = Rk(K, N, ENC), initializes the state to
// Ke||N and then, for each r_H-byte block of x, permutes first and
// duplexes the keystream byte-for-byte into the block. The keystream
// depends only on (key, nonce), never on x, which is what lets
// Encrypt and Decrypt both call enc with identical arguments.
func (inst Instance) enc(key, nonce [16]byte, x []byte) []byte {
	sessionKey := inst.rekey(key, nonce, rkEnc)

	s := inst.newState()
	init := make([]byte, 0, inst.stateSize)
	init = append(init, sessionKey...)
	init = append(init, nonce[:]...)
	s.Load(init)

	out := make([]byte, len(x))
	rem := x
	pos := 0
	for len(rem) > 0 {
		s.Permute(inst.se)

		n := inst.rateH
		if n > len(rem) {
			n = len(rem)
		}
		keystream := s.Extract(0, n)
		for i := 0; i < n; i++ {
			out[pos+i] = rem[i] ^ keystream[i]
		}

		rem = rem[n:]
		pos += n
	}
	return out
}
