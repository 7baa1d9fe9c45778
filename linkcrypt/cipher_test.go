package linkcrypt

import (
	"testing"

	"github.com/arloliu/go-meterkit/hexutil"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hexutil.HexToBytes(s)
	require.NoError(t, err)

	return b
}

func TestCipher_KnownVectors(t *testing.T) {
	const (
		nistKey   = "2b7e151628aed2a6abf7158809cf4f3c"
		nistPlain = "6bc1bee22e409f96e93d7e117393172a"
		seqIV     = "000102030405060708090a0b0c0d0e0f"
	)

	tests := []struct {
		description string
		algorithm   Algorithm
		mode        Mode
		key         string
		iv          string
		plain       string
		prefix      string
	}{
		{"aes ecb fips-197", AlgorithmAES, ModeECB, seqIV, "", "00112233445566778899aabbccddeeff", "69C4E0D86A7B0430D8CDB78070B4C55A"},
		{"aes cbc", AlgorithmAES, ModeCBC, nistKey, seqIV, nistPlain, "7649ABAC8119B246CEE98E9B12E9197D"},
		{"aes cfb", AlgorithmAES, ModeCFB, nistKey, seqIV, nistPlain, "3B3FD92EB72DAD20333449F8E83CFB4A"},
		{"aes ofb", AlgorithmAES, ModeOFB, nistKey, seqIV, nistPlain, "3B3FD92EB72DAD20333449F8E83CFB4A"},
		{"aes ctr", AlgorithmAES, ModeCTR, nistKey, "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff", nistPlain, "874D6191B620E3261BEF6864990DB6CE"},
		{"des ecb", AlgorithmDES, ModeECB, "133457799BBCDFF1", "", "0123456789ABCDEF", "85E813540F0AB405"},
	}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		require := require.New(t)

		c, err := New(test.algorithm, test.mode, mustHex(t, test.key))
		require.NoError(err)

		var iv []byte
		if test.iv != "" {
			iv = mustHex(t, test.iv)
		}
		plain := mustHex(t, test.plain)

		enc, err := c.Encrypt(plain, iv)
		require.NoError(err)
		require.Equal(test.prefix, hexutil.BytesToHex(enc[:len(plain)]))
		if test.mode.padded() {
			require.Len(enc, len(plain)+c.BlockSize())
		} else {
			require.Len(enc, len(plain))
		}

		dec, err := c.Decrypt(enc, iv)
		require.NoError(err)
		require.Equal(plain, dec)
	}
}

func TestCipher_RoundTrip(t *testing.T) {
	key16 := []byte("0123456789abcdef")
	key24 := []byte("0123456789abcdef01234567")
	iv16 := []byte("fedcba9876543210")
	iv8 := []byte("87654321")

	tests := []struct {
		description string
		algorithm   Algorithm
		mode        Mode
		key         []byte
		iv          []byte
	}{
		{"aes none", AlgorithmAES, ModeNone, key16, nil},
		{"aes-192 cbc", AlgorithmAES, ModeCBC, key24, iv16},
		{"aes ctr", AlgorithmAES, ModeCTR, key16, iv16},
		{"des cbc", AlgorithmDES, ModeCBC, key16[:8], iv8},
		{"3des ecb", AlgorithmTripleDES, ModeECB, key24, nil},
		{"3des cbc", AlgorithmTripleDES, ModeCBC, key24, iv8},
	}

	payloads := [][]byte{{0x01}, []byte("exactly 16 bytes"), []byte("a payload that spans several cipher blocks")}

	for i, test := range tests {
		t.Logf("Test #%d: %s", i, test.description)
		require := require.New(t)

		c, err := New(test.algorithm, test.mode, test.key)
		require.NoError(err)
		require.Equal(test.mode, c.Mode())
		require.Equal(test.algorithm, c.Algorithm())

		for _, p := range payloads {
			enc, err := c.Encrypt(p, test.iv)
			require.NoError(err)
			dec, err := c.Decrypt(enc, test.iv)
			require.NoError(err)
			require.Equal(p, dec)
		}

		enc, err := c.Encrypt(nil, test.iv)
		require.NoError(err)
		require.Empty(enc)
	}
}

func TestCipher_Errors(t *testing.T) {
	require := require.New(t)

	_, err := NewAES(make([]byte, 15), ModeECB)
	require.ErrorIs(err, ErrInvalidKeyLength)

	_, err = NewDES(make([]byte, 16), ModeECB)
	require.ErrorIs(err, ErrInvalidKeyLength)

	_, err = NewTripleDES(make([]byte, 24), ModeCTR)
	require.ErrorIs(err, ErrUnsupportedMode)

	_, err = New(Algorithm(9), ModeECB, make([]byte, 16))
	require.ErrorIs(err, ErrUnsupportedAlgorithm)

	c, err := NewAES(make([]byte, 16), ModeCBC)
	require.NoError(err)

	_, err = c.Encrypt([]byte{1}, make([]byte, 8))
	require.ErrorIs(err, ErrInvalidIVLength)

	_, err = c.Decrypt(make([]byte, 17), make([]byte, 16))
	require.ErrorIs(err, ErrCrypto)

	ecb, err := NewAES(make([]byte, 16), ModeECB)
	require.NoError(err)
	enc, err := ecb.Encrypt(make([]byte, 16), nil)
	require.NoError(err)
	// the first block alone decrypts to zeros, which is not a valid padding
	_, err = ecb.Decrypt(enc[:16], nil)
	require.ErrorIs(err, ErrCrypto)
}

func TestParseAlgorithmAndMode(t *testing.T) {
	require := require.New(t)

	a, err := ParseAlgorithm(" AES ")
	require.NoError(err)
	require.Equal(AlgorithmAES, a)

	a, err = ParseAlgorithm("3des")
	require.NoError(err)
	require.Equal("3des", a.String())

	_, err = ParseAlgorithm("rc4")
	require.ErrorIs(err, ErrUnsupportedAlgorithm)

	m, err := ParseMode("CBC")
	require.NoError(err)
	require.Equal(ModeCBC, m)

	_, err = ParseMode("cts")
	require.ErrorIs(err, ErrUnsupportedMode)
}

func TestGenerateIV(t *testing.T) {
	require := require.New(t)

	a, err := GenerateIV(16)
	require.NoError(err)
	b, err := GenerateIV(16)
	require.NoError(err)
	require.Len(a, 16)
	require.NotEqual(a, b)
}
