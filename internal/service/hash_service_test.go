package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2HashService_HashAndVerify(t *testing.T) {
	svc := NewArgon2HashService()

	encoded, err := svc.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$m=65536,t=1,p=4$"))

	ok, err := svc.Verify("correct horse battery staple", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify("wrong password", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2HashService_SaltMakesHashesUnique(t *testing.T) {
	svc := NewArgon2HashService()

	first, err := svc.Hash("secret")
	require.NoError(t, err)
	second, err := svc.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestArgon2HashService_MalformedHashRejected(t *testing.T) {
	svc := NewArgon2HashService()

	for _, encoded := range []string{
		"",
		"plainhash",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$not-base64!$aGFzaA",
	} {
		_, err := svc.Verify("secret", encoded)
		assert.Error(t, err, "encoded=%q", encoded)
	}
}
