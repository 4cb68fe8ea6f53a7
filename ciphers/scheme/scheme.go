package scheme

import (
	"errors"

	"github.com/mirceanis/noble-ciphers/ciphers"
	"github.com/mirceanis/noble-ciphers/ciphers/check"
)

// ErrNilConstructor is returned when a scheme is built without a constructor.
var ErrNilConstructor = errors.New("scheme: nil constructor")

// Constructor builds a cipher instance from key and nonce material. The
// merged construction options are never nil. Constructors must validate key
// length themselves; nonce length has already been gated against the
// scheme's Params when the scheme declares supported nonce sizes.
type Constructor func(key, nonce []byte, opts *Options) (ciphers.Cipher, error)

// Options carries per-instance construction settings. Constructors honor
// the fields they understand and ignore the rest.
type Options struct {
	// AdditionalData is authenticated but not encrypted by AEAD schemes.
	AdditionalData []byte
}

// Option adjusts construction Options.
type Option func(*Options)

// WithAdditionalData sets the additional data an AEAD instance binds into
// its authentication tag.
func WithAdditionalData(aad []byte) Option {
	return func(o *Options) {
		o.AdditionalData = aad
	}
}

// BuildOptions merges opts in order over zero-value defaults. Later options
// override earlier ones; nil options are skipped.
func BuildOptions(opts ...Option) Options {
	var merged Options

	for _, opt := range opts {
		if opt != nil {
			opt(&merged)
		}
	}

	return merged
}

// Scheme is a cipher constructor with its parameter metadata attached. The
// metadata is read-only: it is copied in on construction and copied out on
// access, so no caller can change what another caller observes.
type Scheme struct {
	name   string
	params Params
	ctor   Constructor
}

// New builds a Scheme from a validated name, parameter record and
// constructor.
func New(name string, params Params, ctor Constructor) (*Scheme, error) {
	if ctor == nil {
		return nil, ErrNilConstructor
	}

	if err := validateName(name); err != nil {
		return nil, err
	}

	if err := params.Validate(); err != nil {
		return nil, err
	}

	return &Scheme{name: name, params: params.clone(), ctor: ctor}, nil
}

// Name returns the registry key of the scheme.
func (s *Scheme) Name() string {
	return s.name
}

// Params returns a copy of the scheme's parameter record.
func (s *Scheme) Params() Params {
	return s.params.clone()
}

// New constructs a cipher instance. The key must be non-nil; when the scheme
// declares supported nonce sizes the nonce length is gated against them
// before the constructor runs, so every scheme misuse fails with the same
// error regardless of the underlying implementation.
//
//nolint:ireturn
func (s *Scheme) New(key, nonce []byte, opts ...Option) (ciphers.Cipher, error) {
	if err := check.Bytes("key", key); err != nil {
		return nil, err
	}

	if len(s.params.NonceSizes) > 0 {
		if err := check.Bytes("nonce", nonce, s.params.NonceSizes...); err != nil {
			return nil, err
		}
	}

	merged := BuildOptions(opts...)

	return s.ctor(key, nonce, &merged)
}
