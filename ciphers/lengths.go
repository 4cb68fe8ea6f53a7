package ciphers

import "encoding/binary"

// LengthBlockSize is the byte length of the block produced by LengthBlock.
const LengthBlockSize = 16

// LengthBlock builds the final authenticated block of AEAD constructions
// that bind the lengths of their inputs: bytes 0-7 hold the additional-data
// length and bytes 8-15 the ciphertext length, both as little-endian 64-bit
// byte counts. A nil additionalData encodes as length zero.
//
// The layout is fixed little-endian on every platform. Conforming AEAD
// implementations feed this block into their MAC as the last input, which is
// what prevents an attacker from shifting bytes between the additional data
// and the ciphertext or truncating either without detection.
func LengthBlock(ciphertext, additionalData []byte) [LengthBlockSize]byte {
	var block [LengthBlockSize]byte

	binary.LittleEndian.PutUint64(block[0:8], uint64(len(additionalData)))
	binary.LittleEndian.PutUint64(block[8:16], uint64(len(ciphertext)))

	return block
}
