package sched

import (
	"context"

	"github.com/mirceanis/noble-ciphers/ciphers"
)

// asyncCipher delivers a synchronous cipher's results through scheduler
// tasks.
type asyncCipher struct {
	sched  *Scheduler
	cipher ciphers.Cipher
}

// Async adapts a synchronous cipher to the ciphers.AsyncCipher contract by
// submitting each operation to s. The scheduler must be draining tasks, via
// Run or Serve, for calls to complete. Operations on one adapted instance
// are serialized in submission order because the scheduler executes a single
// task at a time.
//
//nolint:ireturn
func Async(s *Scheduler, c ciphers.Cipher) ciphers.AsyncCipher {
	return &asyncCipher{sched: s, cipher: c}
}

func (a *asyncCipher) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	return a.submit(ctx, "async-encrypt", func() ([]byte, error) {
		return a.cipher.Encrypt(plaintext)
	})
}

func (a *asyncCipher) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	return a.submit(ctx, "async-decrypt", func() ([]byte, error) {
		return a.cipher.Decrypt(ciphertext)
	})
}

func (a *asyncCipher) submit(ctx context.Context, name string, op func() ([]byte, error)) ([]byte, error) {
	var out []byte

	handle, err := a.sched.Submit(name, func(context.Context, func()) error {
		result, opErr := op()
		if opErr != nil {
			return opErr
		}

		out = result

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := handle.Wait(ctx); err != nil {
		return nil, err
	}

	return out, nil
}
