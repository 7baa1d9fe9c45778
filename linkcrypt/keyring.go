package linkcrypt

import (
	"fmt"

	"github.com/arloliu/go-meterkit/internal/util"
	"github.com/puzpuzpuz/xsync/v3"
)

// Key is a cipher registered in a KeyRing together with the IV it uses.
type Key struct {
	Cipher Cipher
	IV     []byte
}

// KeyRing maps cipher slots to keys. It is safe for concurrent use.
type KeyRing struct {
	keys *xsync.MapOf[int8, Key]
}

// NewKeyRing creates an empty KeyRing.
func NewKeyRing() *KeyRing {
	return &KeyRing{keys: xsync.NewMapOf[int8, Key]()}
}

// Register stores c with iv under slot, replacing any previous key.
func (r *KeyRing) Register(slot int8, c Cipher, iv []byte) error {
	if slot < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, slot)
	}
	if c == nil {
		return fmt.Errorf("%w: nil cipher for slot %d", ErrCrypto, slot)
	}
	if c.Mode().needsIV() && len(iv) != c.BlockSize() {
		return fmt.Errorf("%w: slot %d needs %d bytes, got %d", ErrInvalidIVLength, slot, c.BlockSize(), len(iv))
	}

	r.keys.Store(slot, Key{Cipher: c, IV: util.CloneSlice(iv, 0)})

	return nil
}

// Get returns the key of slot.
func (r *KeyRing) Get(slot int8) (Key, bool) {
	return r.keys.Load(slot)
}

// Remove drops the key of slot.
func (r *KeyRing) Remove(slot int8) {
	r.keys.Delete(slot)
}

// Len returns the number of registered slots.
func (r *KeyRing) Len() int {
	return r.keys.Size()
}

// Encrypt encrypts data with the key of slot.
func (r *KeyRing) Encrypt(slot int8, data []byte) ([]byte, error) {
	k, ok := r.keys.Load(slot)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrSlotNotFound, slot)
	}

	return k.Cipher.Encrypt(data, k.IV)
}

// Decrypt decrypts data with the key of slot.
func (r *KeyRing) Decrypt(slot int8, data []byte) ([]byte, error) {
	k, ok := r.keys.Load(slot)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrSlotNotFound, slot)
	}

	return k.Cipher.Decrypt(data, k.IV)
}
