package isap

// This file binds the generic Encrypt/Decrypt pair to each of the four
// concrete instances, the way original_source/include/isap_a_128a.hpp
// and isap_k_128.hpp each bind isap::encrypt/decrypt to one template
// instantiation, and the way github.com/magical/go-ascon exposes
// NewAEAD and NewAEAD128 as two concrete constructors over one
// generic permutation round function.

// EncryptA128A encrypts with ISAP-A-128A.
func EncryptA128A(key, nonce [16]byte, assocData, plaintext []byte) ([]byte, [16]byte) {
	return Encrypt(InstanceA128A, key, nonce, assocData, plaintext)
}

// DecryptA128A decrypts with ISAP-A-128A.
func DecryptA128A(key, nonce, tag [16]byte, assocData, ciphertext []byte) ([]byte, bool) {
	return Decrypt(InstanceA128A, key, nonce, tag, assocData, ciphertext)
}

// EncryptA128 encrypts with ISAP-A-128.
func EncryptA128(key, nonce [16]byte, assocData, plaintext []byte) ([]byte, [16]byte) {
	return Encrypt(InstanceA128, key, nonce, assocData, plaintext)
}

// DecryptA128 decrypts with ISAP-A-128.
func DecryptA128(key, nonce, tag [16]byte, assocData, ciphertext []byte) ([]byte, bool) {
	return Decrypt(InstanceA128, key, nonce, tag, assocData, ciphertext)
}

// EncryptK128A encrypts with ISAP-K-128A.
func EncryptK128A(key, nonce [16]byte, assocData, plaintext []byte) ([]byte, [16]byte) {
	return Encrypt(InstanceK128A, key, nonce, assocData, plaintext)
}

// DecryptK128A decrypts with ISAP-K-128A.
func DecryptK128A(key, nonce, tag [16]byte, assocData, ciphertext []byte) ([]byte, bool) {
	return Decrypt(InstanceK128A, key, nonce, tag, assocData, ciphertext)
}

// EncryptK128 encrypts with ISAP-K-128.
func EncryptK128(key, nonce [16]byte, assocData, plaintext []byte) ([]byte, [16]byte) {
	return Encrypt(InstanceK128, key, nonce, assocData, plaintext)
}

// DecryptK128 decrypts with ISAP-K-128.
func DecryptK128(key, nonce, tag [16]byte, assocData, ciphertext []byte) ([]byte, bool) {
	return Decrypt(InstanceK128, key, nonce, tag, assocData, ciphertext)
}
