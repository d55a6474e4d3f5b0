package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMD5Hasher_LegacyParity(t *testing.T) {
	h := MD5Hasher{}

	cases := map[string]string{
		"123456":    "e10adc3949ba59abbe56e057f20f883e",
		"Secret123": "5c90b96a75d4f9d5a1cfaa6f532afdc8",
		"":          "d41d8cd98f00b204e9800998ecf8427e",
	}
	for plain, want := range cases {
		got, err := h.Hash(plain)
		require.NoError(t, err)
		assert.Equal(t, want, got, "hash(%q)", plain)
	}
}

func TestMD5Hasher_DeterministicAndVerifies(t *testing.T) {
	h := MD5Hasher{}

	a, _ := h.Hash("Secret123")
	b, _ := h.Hash("Secret123")
	c, _ := h.Hash("Other456")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	assert.True(t, h.Verify("Secret123", a))
	assert.True(t, h.Verify("Secret123", "5C90B96A75D4F9D5A1CFAA6F532AFDC8"))
	assert.False(t, h.Verify("WrongPass", a))
	assert.NotEqual(t, "Secret123", a)
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: 4}

	hash, err := h.Hash("Secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", hash)
	assert.True(t, h.Verify("Secret123", hash))
	assert.False(t, h.Verify("Other456", hash))
	assert.False(t, h.Verify("Secret123", "5c90b96a75d4f9d5a1cfaa6f532afdc8"))
}

func TestNewPasswordHasher(t *testing.T) {
	h, err := NewPasswordHasher("")
	require.NoError(t, err)
	assert.IsType(t, MD5Hasher{}, h)

	h, err = NewPasswordHasher("BCRYPT")
	require.NoError(t, err)
	assert.IsType(t, BcryptHasher{}, h)

	_, err = NewPasswordHasher("sha1")
	assert.Error(t, err)
}
