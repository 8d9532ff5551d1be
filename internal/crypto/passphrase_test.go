package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassphraseHasher_HashAndVerify(t *testing.T) {
	h := NewPassphraseHasher()

	encoded, err := h.Hash("open sesame")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=65536,t=1,p=4$"))

	ok, err := h.Verify("open sesame", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("open barley", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPassphraseHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewPassphraseHasher()

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestPassphraseHasher_VerifyMalformed(t *testing.T) {
	h := NewPassphraseHasher()

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "wrong algorithm", encoded: "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$a2V5"},
		{name: "wrong version", encoded: "$argon2id$v=16$m=1,t=1,p=1$c2FsdA$a2V5"},
		{name: "bad params", encoded: "$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5"},
		{name: "bad salt", encoded: "$argon2id$v=19$m=8,t=1,p=1$!!$a2V5"},
		{name: "bad key", encoded: "$argon2id$v=19$m=8,t=1,p=1$c2FsdA$!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := h.Verify("anything", tt.encoded)
			assert.False(t, ok)
			assert.ErrorIs(t, err, ErrInvalidHash)
		})
	}
}
