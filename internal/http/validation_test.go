package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCredentials(t *testing.T) {
	assert.NoError(t, validateCredentials("alice01", "Secret123"))
	assert.NoError(t, validateCredentials("abcde", "0123456789abcdef"))

	err := validateCredentials("abcd", "0123456789abcdefg")
	require.Error(t, err)
	verrs, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, verrs, 2)
	assert.Equal(t, "username", verrs[0].Field)
	assert.Equal(t, "password", verrs[1].Field)

	assert.Error(t, validateCredentials("has space", "Secret123"))
}

func TestValidateArticle(t *testing.T) {
	ok := articleRequest{
		Title: "hello", Content: "body", CoverImg: "https://cdn.example.com/c.png",
		State: "草稿", CategoryID: 1,
	}
	assert.NoError(t, validateArticle(ok, false))

	err := validateArticle(ok, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id")

	bad := ok
	bad.State = "published"
	assert.ErrorContains(t, validateArticle(bad, false), "state")

	assert.NoError(t, validateArticleState(""))
	assert.NoError(t, validateArticleState("已发布"))
	assert.Error(t, validateArticleState("deleted"))
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"":                  "",
		"abc.def.ghi":       "abc.def.ghi",
		"Bearer abc.def":    "abc.def",
		"bearer  abc.def ":  "abc.def",
		"  raw-with-space ": "raw-with-space",
	}
	for header, want := range cases {
		assert.Equal(t, want, bearerToken(header), header)
	}
}
