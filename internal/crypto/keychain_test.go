package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	s1, err := svc.GenerateEncryptionSalt()
	require.NoError(t, err)
	s2, err := svc.GenerateEncryptionSalt()
	require.NoError(t, err)

	assert.Len(t, s1, 16)
	assert.Len(t, s2, 16)
	assert.NotEqual(t, s1, s2)
}

func TestGenerateDEK_LengthAndRandomness(t *testing.T) {
	svc := NewKeyChainService()

	d1, err := svc.GenerateDEK()
	require.NoError(t, err)
	d2, err := svc.GenerateDEK()
	require.NoError(t, err)

	assert.Len(t, d1, 32)
	assert.NotEqual(t, d1, d2)
}

func TestGenerateKEK_DeterministicForSameInputs(t *testing.T) {
	svc := NewKeyChainService()
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1 := svc.GenerateKEK("correct horse battery staple", salt)
	k2 := svc.GenerateKEK("correct horse battery staple", salt)

	assert.Len(t, k1, 32)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, svc.GenerateKEK("correct horse battery staple", bytes.Repeat([]byte{0x01}, 16)))
}

func TestWrapDEK_RoundTrip(t *testing.T) {
	svc := NewKeyChainService()
	dek := bytes.Repeat([]byte{0xDD}, 32)
	kek := bytes.Repeat([]byte{0x2A}, 32)

	blob, err := svc.WrapDEK(dek, kek)
	require.NoError(t, err)

	got, err := svc.UnwrapDEK(blob, kek)
	require.NoError(t, err)
	assert.Equal(t, dek, got)
}

func TestUnwrapDEK_WrongKEK(t *testing.T) {
	svc := NewKeyChainService()
	dek := bytes.Repeat([]byte{0xDD}, 32)

	blob, err := svc.WrapDEK(dek, bytes.Repeat([]byte{0x2A}, 32))
	require.NoError(t, err)

	_, err = svc.UnwrapDEK(blob, bytes.Repeat([]byte{0x2B}, 32))
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestUnwrapDEK_TooShort(t *testing.T) {
	svc := NewKeyChainService()

	_, err := svc.UnwrapDEK([]byte{1, 2, 3}, bytes.Repeat([]byte{0x2A}, 32))
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestSeal_RoundTripAndNonceRandomness(t *testing.T) {
	svc := NewKeyChainService()
	dek := bytes.Repeat([]byte{0x42}, 32)
	ad := []byte("go-lockpad/lockedText")

	s1, err := svc.Seal("hello", dek, ad)
	require.NoError(t, err)
	s2, err := svc.Seal("hello", dek, ad)
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2, "two seals of the same text must differ")

	plain, err := svc.Open(s1, dek, ad)
	require.NoError(t, err)
	assert.Equal(t, "hello", plain)
}

func TestOpen_RejectsOtherLocation(t *testing.T) {
	svc := NewKeyChainService()
	dek := bytes.Repeat([]byte{0x42}, 32)

	sealed, err := svc.Seal("hello", dek, []byte("ns/a"))
	require.NoError(t, err)

	_, err = svc.Open(sealed, dek, []byte("ns/b"))
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestOpen_BadBase64(t *testing.T) {
	svc := NewKeyChainService()

	_, err := svc.Open("%%%", bytes.Repeat([]byte{0x42}, 32), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode base64")
}

func TestSeal_InvalidKeyLength(t *testing.T) {
	svc := NewKeyChainService()

	_, err := svc.Seal("hello", []byte("short"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create cipher")
}
