package linkcrypt

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/arloliu/go-meterkit/hexutil"
)

// Algorithm is a block cipher algorithm.
type Algorithm uint8

const (
	AlgorithmAES Algorithm = iota
	AlgorithmDES
	AlgorithmTripleDES
)

// String returns the name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmAES:
		return "aes"
	case AlgorithmDES:
		return "des"
	case AlgorithmTripleDES:
		return "3des"
	default:
		return fmt.Sprintf("algorithm(%d)", uint8(a))
	}
}

// ParseAlgorithm converts a name such as "aes", "des" or "3des" into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aes":
		return AlgorithmAES, nil
	case "des":
		return AlgorithmDES, nil
	case "3des", "tripledes", "des3":
		return AlgorithmTripleDES, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}

// Mode is a block cipher mode of operation.
type Mode uint8

const (
	// ModeNone passes data through unchanged.
	ModeNone Mode = iota
	ModeECB
	ModeCBC
	ModeCFB
	ModeCTR
	ModeOFB
)

var modeNames = [...]string{"none", "ecb", "cbc", "cfb", "ctr", "ofb"}

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}

	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ParseMode converts a name such as "cbc" into a Mode.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}

// needsIV reports whether the mode consumes an IV.
func (m Mode) needsIV() bool { return m > ModeECB }

// padded reports whether the mode works on whole blocks.
func (m Mode) padded() bool { return m == ModeECB || m == ModeCBC }

// Cipher encrypts and decrypts frame payloads.
//
// The iv argument is ignored by ModeNone and ModeECB and must be one block long otherwise.
// Empty input yields empty output in every mode.
type Cipher interface {
	Encrypt(data, iv []byte) ([]byte, error)
	Decrypt(data, iv []byte) ([]byte, error)
	Algorithm() Algorithm
	Mode() Mode
	BlockSize() int
}

type blockCipher struct {
	block     cipher.Block
	algorithm Algorithm
	mode      Mode
}

var _ Cipher = (*blockCipher)(nil)

// New creates a cipher for algorithm and mode.
func New(algorithm Algorithm, mode Mode, key []byte) (Cipher, error) {
	switch algorithm {
	case AlgorithmAES:
		return NewAES(key, mode)
	case AlgorithmDES:
		return NewDES(key, mode)
	case AlgorithmTripleDES:
		return NewTripleDES(key, mode)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, algorithm)
	}
}

// NewAES creates an AES cipher. The key must be 16, 24 or 32 bytes.
func NewAES(key []byte, mode Mode) (Cipher, error) {
	if int(mode) >= len(modeNames) {
		return nil, fmt.Errorf("%w: %s for aes", ErrUnsupportedMode, mode)
	}
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: aes needs 16, 24 or 32 bytes, got %d", ErrInvalidKeyLength, len(key))
	}

	b, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCrypto, err.Error())
	}

	return &blockCipher{block: b, algorithm: AlgorithmAES, mode: mode}, nil
}

// NewDES creates a DES cipher with an 8 byte key. Only ModeNone, ModeECB and ModeCBC are supported.
func NewDES(key []byte, mode Mode) (Cipher, error) {
	if mode > ModeCBC {
		return nil, fmt.Errorf("%w: %s for des", ErrUnsupportedMode, mode)
	}
	if len(key) != 8 {
		return nil, fmt.Errorf("%w: des needs 8 bytes, got %d", ErrInvalidKeyLength, len(key))
	}

	b, err := des.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCrypto, err.Error())
	}

	return &blockCipher{block: b, algorithm: AlgorithmDES, mode: mode}, nil
}

// NewTripleDES creates a Triple DES cipher with a 24 byte key. Only ModeNone, ModeECB and
// ModeCBC are supported.
func NewTripleDES(key []byte, mode Mode) (Cipher, error) {
	if mode > ModeCBC {
		return nil, fmt.Errorf("%w: %s for 3des", ErrUnsupportedMode, mode)
	}
	if len(key) != 24 {
		return nil, fmt.Errorf("%w: 3des needs 24 bytes, got %d", ErrInvalidKeyLength, len(key))
	}

	b, err := des.NewTripleDESCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCrypto, err.Error())
	}

	return &blockCipher{block: b, algorithm: AlgorithmTripleDES, mode: mode}, nil
}

func (c *blockCipher) Algorithm() Algorithm { return c.algorithm }

func (c *blockCipher) Mode() Mode { return c.mode }

func (c *blockCipher) BlockSize() int { return c.block.BlockSize() }

func (c *blockCipher) Encrypt(data, iv []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}
	if err := c.checkIV(iv); err != nil {
		return nil, err
	}

	bs := c.block.BlockSize()
	if c.mode.padded() {
		padded, err := pkcs7Pad(data, bs)
		if err != nil {
			return nil, err
		}
		data = padded
	}

	out := make([]byte, len(data))
	switch c.mode {
	case ModeNone:
		copy(out, data)
	case ModeECB:
		for i := 0; i < len(data); i += bs {
			c.block.Encrypt(out[i:i+bs], data[i:i+bs])
		}
	case ModeCBC:
		cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(out, data)
	case ModeCFB:
		cipher.NewCFBEncrypter(c.block, iv).XORKeyStream(out, data) //nolint:staticcheck
	case ModeCTR:
		cipher.NewCTR(c.block, iv).XORKeyStream(out, data)
	case ModeOFB:
		cipher.NewOFB(c.block, iv).XORKeyStream(out, data) //nolint:staticcheck
	}

	return out, nil
}

func (c *blockCipher) Decrypt(data, iv []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}
	if err := c.checkIV(iv); err != nil {
		return nil, err
	}

	bs := c.block.BlockSize()
	if c.mode.padded() && len(data)%bs != 0 {
		return nil, fmt.Errorf("%w: data length %d is not a multiple of %d", ErrCrypto, len(data), bs)
	}

	out := make([]byte, len(data))
	switch c.mode {
	case ModeNone:
		copy(out, data)
		return out, nil
	case ModeECB:
		for i := 0; i < len(data); i += bs {
			c.block.Decrypt(out[i:i+bs], data[i:i+bs])
		}
	case ModeCBC:
		cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(out, data)
	case ModeCFB:
		cipher.NewCFBDecrypter(c.block, iv).XORKeyStream(out, data) //nolint:staticcheck
		return out, nil
	case ModeCTR:
		cipher.NewCTR(c.block, iv).XORKeyStream(out, data)
		return out, nil
	case ModeOFB:
		cipher.NewOFB(c.block, iv).XORKeyStream(out, data) //nolint:staticcheck
		return out, nil
	}

	return pkcs7Unpad(out, bs)
}

func (c *blockCipher) checkIV(iv []byte) error {
	if !c.mode.needsIV() {
		return nil
	}
	if bs := c.block.BlockSize(); len(iv) != bs {
		return fmt.Errorf("%w: %s %s needs %d bytes, got %d", ErrInvalidIVLength, c.algorithm, c.mode, bs, len(iv))
	}

	return nil
}

// pkcs7Pad always adds padding, a full block when data is already aligned.
func pkcs7Pad(data []byte, blockSize int) ([]byte, error) {
	n := blockSize - len(data)%blockSize
	return hexutil.PadBytesToLength(data, len(data)+n, true, hexutil.PKCS7)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, fmt.Errorf("%w: invalid padding", ErrCrypto)
	}
	if !bytes.Equal(data[len(data)-n:], bytes.Repeat([]byte{byte(n)}, n)) {
		return nil, fmt.Errorf("%w: invalid padding", ErrCrypto)
	}

	return data[:len(data)-n], nil
}

// GenerateIV returns size random bytes.
func GenerateIV(size int) ([]byte, error) {
	iv := make([]byte, size)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCrypto, err.Error())
	}

	return iv, nil
}
