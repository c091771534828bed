package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueDecodeRoundTrip(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	token, err := codec.Issue(Session{Language: "ar", Admin: true})
	require.NoError(t, err)

	s := codec.Decode(token)
	assert.Equal(t, "ar", s.Language)
	assert.True(t, s.Admin)
}

func TestDecodeInvalidToken(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "Empty", token: ""},
		{name: "Garbage", token: "not-a-token"},
		{name: "Tampered", token: mustIssue(t, codec, Session{Language: "en", Admin: true}) + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := codec.Decode(tt.token)
			assert.Equal(t, "tr", s.Language)
			assert.False(t, s.Admin)
		})
	}
}

func TestDecodeWrongSecret(t *testing.T) {
	signer := NewCodec("secret-a", time.Hour)
	verifier := NewCodec("secret-b", time.Hour)

	token := mustIssue(t, signer, Session{Language: "en", Admin: true})
	s := verifier.Decode(token)
	assert.False(t, s.Admin)
	assert.Equal(t, "tr", s.Language)
}

func TestDecodeExpiredToken(t *testing.T) {
	codec := NewCodec("test-secret", -time.Minute)

	token := mustIssue(t, codec, Session{Language: "en", Admin: true})
	s := codec.Decode(token)
	assert.False(t, s.Admin)
	assert.Equal(t, "tr", s.Language)
}

func TestIssueNormalizesLanguage(t *testing.T) {
	codec := NewCodec("test-secret", time.Hour)

	token, err := codec.Issue(Session{Language: "fr"})
	require.NoError(t, err)
	assert.Equal(t, "tr", codec.Decode(token).Language)

	token, err = codec.Issue(Session{})
	require.NoError(t, err)
	assert.Equal(t, "tr", codec.Decode(token).Language)
}

func mustIssue(t *testing.T, c *Codec, s Session) string {
	t.Helper()
	token, err := c.Issue(s)
	require.NoError(t, err)
	return token
}
