package isap

import "crypto/subtle"

// Encrypt implements the ISAP AEAD driver's encryption side (spec
// section 4.6, algorithm 1 of the ISAP specification): it derives the
// ciphertext via Enc and the tag via Mac over the resulting ciphertext,
// for whichever of the four ISAP instances inst selects.
func Encrypt(inst Instance, key, nonce [16]byte, assocData, plaintext []byte) (ciphertext []byte, tag [16]byte) {
	ciphertext = inst.enc(key, nonce, plaintext)
	tag = inst.mac(key, nonce, assocData, ciphertext)
	return ciphertext, tag
}

// Decrypt implements the ISAP AEAD driver's decryption side (spec
// section 4.6, algorithm 2): it recomputes the tag over the supplied
// ciphertext and associated data, compares it against tag in constant
// time, and only calls Enc to recover the plaintext if the tag
// verifies. On a verification failure it returns (nil, false) without
// ever running Enc, so no keystream-derived bytes are computed from
// attacker-controlled ciphertext that fails authentication.
func Decrypt(inst Instance, key, nonce, tag [16]byte, assocData, ciphertext []byte) (plaintext []byte, ok bool) {
	expected := inst.mac(key, nonce, assocData, ciphertext)

	if subtle.ConstantTimeCompare(tag[:], expected[:]) != 1 {
		return nil, false
	}

	return inst.enc(key, nonce, ciphertext), true
}
