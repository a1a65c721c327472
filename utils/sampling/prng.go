package sampling

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// PRNG is a source of random bytes.
type PRNG interface {
	io.Reader
}

// KeyedPRNG is the infinite output stream of the blake2b XOF keyed with a
// user-provided key: two instances created with the same key read the same bytes.
// Reads are serialized, but concurrent readers make the split of the stream
// between them non-deterministic.
type KeyedPRNG struct {
	mu  sync.Mutex
	xof blake2b.XOF
}

// NewKeyedPRNG returns a new [KeyedPRNG] keyed with key, which must be at most 64 bytes long.
// A nil key is the empty key.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, fmt.Errorf("cannot NewKeyedPRNG: %w", err)
	}
	return &KeyedPRNG{xof: xof}, nil
}

// Read fills p with the next len(p) bytes of the stream.
func (prng *KeyedPRNG) Read(p []byte) (n int, err error) {
	prng.mu.Lock()
	defer prng.mu.Unlock()
	return prng.xof.Read(p)
}
