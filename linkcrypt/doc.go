// Package linkcrypt provides the link-layer ciphers and digests used by meter protocols.
//
// A Cipher encrypts and decrypts whole frame payloads with AES (ECB, CBC, CFB, CTR, OFB)
// or DES and Triple DES (ECB, CBC). Block modes use PKCS#7 padding, stream modes keep
// the payload length. Ciphers are registered in a KeyRing under the slot number a device
// carries, so sessions can look them up concurrently:
//
//	ring := linkcrypt.NewKeyRing()
//	c, _ := linkcrypt.NewAES(key, linkcrypt.ModeCBC)
//	_ = ring.Register(0, c, iv)
//	plain, err := ring.Decrypt(0, payload)
//
// MD5, SHA256 and HMAC-SHA256 produce the lower-case hex digests protocols embed in
// sign-in frames.
package linkcrypt
