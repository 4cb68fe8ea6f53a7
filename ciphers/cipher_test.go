//go:build unit

package ciphers

import (
	"crypto/cipher"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/mirceanis/noble-ciphers/ciphers/codec"
)

const (
	testKeyHex   = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	testNonceHex = "000102030405060708090a0b"
)

// aeadCipher adapts a stdlib AEAD to the Cipher and CipherWithOutput
// contracts for conformance testing. The nonce is fixed per instance, which
// is fine for tests and nothing else.
type aeadCipher struct {
	aead  cipher.AEAD
	nonce []byte
	aad   []byte
}

var (
	_ Cipher           = (*aeadCipher)(nil)
	_ CipherWithOutput = (*aeadCipher)(nil)
)

func newAEADCipher(t *testing.T, aad []byte) *aeadCipher {
	t.Helper()

	key, err := codec.HexToBytes(testKeyHex)
	require.NoError(t, err)

	nonce, err := codec.HexToBytes(testNonceHex)
	require.NoError(t, err)

	aead, err := chacha20poly1305.New(key)
	require.NoError(t, err)

	return &aeadCipher{aead: aead, nonce: nonce, aad: aad}
}

func (c *aeadCipher) Encrypt(plaintext []byte) ([]byte, error) {
	return c.EncryptInto(nil, plaintext)
}

func (c *aeadCipher) EncryptInto(dst, plaintext []byte) ([]byte, error) {
	out, err := Output(dst, len(plaintext)+c.aead.Overhead())
	if err != nil {
		return nil, err
	}

	return c.aead.Seal(out[:0], c.nonce, plaintext, c.aad), nil
}

func (c *aeadCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	return c.DecryptInto(nil, ciphertext)
}

func (c *aeadCipher) DecryptInto(dst, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < c.aead.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext shorter than tag", ErrInvalidLength)
	}

	out, err := Output(dst, len(ciphertext)-c.aead.Overhead())
	if err != nil {
		return nil, err
	}

	plaintext, err := c.aead.Open(out[:0], c.nonce, ciphertext, c.aad)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	return plaintext, nil
}

func TestCipherContract_RoundTrip(t *testing.T) {
	t.Parallel()

	c := newAEADCipher(t, nil)
	plaintext := []byte("attack at dawn")

	ciphertext, err := c.Encrypt(plaintext)
	require.NoError(t, err)
	require.NotEqual(t, plaintext, ciphertext[:len(plaintext)])

	decrypted, err := c.Decrypt(ciphertext)
	require.NoError(t, err)

	assert.Equal(t, plaintext, decrypted)
}

func TestCipherContract_RoundTripWithAAD(t *testing.T) {
	t.Parallel()

	aad := []byte("header-v1")
	c := newAEADCipher(t, aad)

	ciphertext, err := c.Encrypt([]byte("payload"))
	require.NoError(t, err)

	decrypted, err := c.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), decrypted)

	// The same ciphertext must not verify under different additional data.
	other := newAEADCipher(t, []byte("header-v2"))

	_, err = other.Decrypt(ciphertext)
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestCipherContract_TamperedCiphertext(t *testing.T) {
	t.Parallel()

	c := newAEADCipher(t, nil)

	ciphertext, err := c.Encrypt([]byte("secret"))
	require.NoError(t, err)

	ciphertext[0] ^= 1

	decrypted, err := c.Decrypt(ciphertext)

	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Nil(t, decrypted, "forged plaintext must never be returned")
}

func TestCipherContract_TruncatedCiphertext(t *testing.T) {
	t.Parallel()

	c := newAEADCipher(t, nil)

	_, err := c.Decrypt(make([]byte, 8))

	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestCipherWithOutput_WritesIntoDst(t *testing.T) {
	t.Parallel()

	c := newAEADCipher(t, nil)
	plaintext := []byte("buffer reuse")
	dst := make([]byte, len(plaintext)+c.aead.Overhead())

	ciphertext, err := c.EncryptInto(dst, plaintext)
	require.NoError(t, err)

	assert.Same(t, &dst[0], &ciphertext[0], "result must live in the caller's buffer")

	decrypted, err := c.Decrypt(dst)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestCipherWithOutput_ShortDst(t *testing.T) {
	t.Parallel()

	c := newAEADCipher(t, nil)

	_, err := c.EncryptInto(make([]byte, 4), []byte("too big for dst"))

	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestCipherWithOutput_InPlace(t *testing.T) {
	t.Parallel()

	c := newAEADCipher(t, nil)
	plaintext := []byte("in place")

	buf := make([]byte, len(plaintext)+c.aead.Overhead())
	copy(buf, plaintext)

	ciphertext, err := c.EncryptInto(buf, buf[:len(plaintext)])
	require.NoError(t, err)
	require.Same(t, &buf[0], &ciphertext[0])

	decrypted, err := c.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestCipherWithOutput_NilDstAllocates(t *testing.T) {
	t.Parallel()

	c := newAEADCipher(t, nil)

	ciphertext, err := c.EncryptInto(nil, []byte("fresh"))
	require.NoError(t, err)

	assert.Len(t, ciphertext, len("fresh")+c.aead.Overhead())
}

func TestCipherContract_DecryptIntoReusesBuffer(t *testing.T) {
	t.Parallel()

	c := newAEADCipher(t, nil)
	plaintext := []byte("round and round")

	ciphertext, err := c.Encrypt(plaintext)
	require.NoError(t, err)

	dst := make([]byte, len(plaintext))

	decrypted, err := c.DecryptInto(dst, ciphertext)
	require.NoError(t, err)

	assert.Same(t, &dst[0], &decrypted[0])
	assert.Equal(t, plaintext, decrypted)
}
