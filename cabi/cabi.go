// Command libisap builds the ISAP C ABI: a stable, cgo-exported binary
// interface exposing the four ISAP variants' encrypt/decrypt entry
// points with exactly the C signatures spec.md section 6 describes.
//
// This package is a thin adapter, not a reimplementation: every
// exported function does nothing but turn raw pointer/length pairs
// into Go slices and arrays and call straight into the isap package's
// Encrypt/Decrypt. No algorithmic logic lives here. It is built
// separately from the core module (`go build -buildmode=c-shared` or
// `-buildmode=c-archive`) so that the default build of the core module
// never needs cgo.
package main

/*
#include <stdint.h>
#include <stdbool.h>
*/
import "C"

import (
	"unsafe"

	"github.com/isap-lwc/isap-go"
)

// cBytes views a C pointer/length pair as a Go byte slice without
// copying. A nil pointer with a zero length is valid and yields a nil
// slice, matching spec.md section 6's "length arguments must not
// exceed the host's addressable buffer range" contract: callers pass
// NULL only when the corresponding length is zero.
func cBytes(ptr *C.uint8_t, length C.size_t) []byte {
	if length == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), int(length))
}

func cKey16(ptr *C.uint8_t) (out [16]byte) {
	copy(out[:], unsafe.Slice((*byte)(unsafe.Pointer(ptr)), 16))
	return out
}

func exportEncrypt(inst isap.Instance, key, nonce *C.uint8_t, assocData *C.uint8_t, adLen C.size_t, plaintext *C.uint8_t, mLen C.size_t, ciphertext, tag *C.uint8_t) {
	c, t := isap.Encrypt(inst, cKey16(key), cKey16(nonce), cBytes(assocData, adLen), cBytes(plaintext, mLen))
	copy(cBytes(ciphertext, mLen), c)
	copy(cBytes(tag, 16), t[:])
}

func exportDecrypt(inst isap.Instance, key, nonce, tag *C.uint8_t, assocData *C.uint8_t, adLen C.size_t, ciphertext *C.uint8_t, mLen C.size_t, plaintext *C.uint8_t) C.bool {
	m, ok := isap.Decrypt(inst, cKey16(key), cKey16(nonce), cKey16(tag), cBytes(assocData, adLen), cBytes(ciphertext, mLen))
	if ok {
		copy(cBytes(plaintext, mLen), m)
	}
	return C.bool(ok)
}

//export isap_a_128a_encrypt
func isap_a_128a_encrypt(key, nonce *C.uint8_t, assocData *C.uint8_t, adLen C.size_t, plaintext *C.uint8_t, mLen C.size_t, ciphertext, tag *C.uint8_t) {
	exportEncrypt(isap.InstanceA128A, key, nonce, assocData, adLen, plaintext, mLen, ciphertext, tag)
}

//export isap_a_128a_decrypt
func isap_a_128a_decrypt(key, nonce, tag *C.uint8_t, assocData *C.uint8_t, adLen C.size_t, ciphertext *C.uint8_t, mLen C.size_t, plaintext *C.uint8_t) C.bool {
	return exportDecrypt(isap.InstanceA128A, key, nonce, tag, assocData, adLen, ciphertext, mLen, plaintext)
}

//export isap_a_128_encrypt
func isap_a_128_encrypt(key, nonce *C.uint8_t, assocData *C.uint8_t, adLen C.size_t, plaintext *C.uint8_t, mLen C.size_t, ciphertext, tag *C.uint8_t) {
	exportEncrypt(isap.InstanceA128, key, nonce, assocData, adLen, plaintext, mLen, ciphertext, tag)
}

//export isap_a_128_decrypt
func isap_a_128_decrypt(key, nonce, tag *C.uint8_t, assocData *C.uint8_t, adLen C.size_t, ciphertext *C.uint8_t, mLen C.size_t, plaintext *C.uint8_t) C.bool {
	return exportDecrypt(isap.InstanceA128, key, nonce, tag, assocData, adLen, ciphertext, mLen, plaintext)
}

//export isap_k_128a_encrypt
func isap_k_128a_encrypt(key, nonce *C.uint8_t, assocData *C.uint8_t, adLen C.size_t, plaintext *C.uint8_t, mLen C.size_t, ciphertext, tag *C.uint8_t) {
	exportEncrypt(isap.InstanceK128A, key, nonce, assocData, adLen, plaintext, mLen, ciphertext, tag)
}

//export isap_k_128a_decrypt
func isap_k_128a_decrypt(key, nonce, tag *C.uint8_t, assocData *C.uint8_t, adLen C.size_t, ciphertext *C.uint8_t, mLen C.size_t, plaintext *C.uint8_t) C.bool {
	return exportDecrypt(isap.InstanceK128A, key, nonce, tag, assocData, adLen, ciphertext, mLen, plaintext)
}

//export isap_k_128_encrypt
func isap_k_128_encrypt(key, nonce *C.uint8_t, assocData *C.uint8_t, adLen C.size_t, plaintext *C.uint8_t, mLen C.size_t, ciphertext, tag *C.uint8_t) {
	exportEncrypt(isap.InstanceK128, key, nonce, assocData, adLen, plaintext, mLen, ciphertext, tag)
}

//export isap_k_128_decrypt
func isap_k_128_decrypt(key, nonce, tag *C.uint8_t, assocData *C.uint8_t, adLen C.size_t, ciphertext *C.uint8_t, mLen C.size_t, plaintext *C.uint8_t) C.bool {
	return exportDecrypt(isap.InstanceK128, key, nonce, tag, assocData, adLen, ciphertext, mLen, plaintext)
}

func main() {}
