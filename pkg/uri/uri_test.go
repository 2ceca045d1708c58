package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Plain", "abcXYZ019", "abcXYZ019"},
		{"Unreserved marks", "-_.!~*'()", "-_.!~*'()"},
		{"JSON", `{"value":"hello world"}`, "%7B%22value%22%3A%22hello%20world%22%7D"},
		{"Percent", "100%", "100%25"},
		{"Multibyte", "привет", "%D0%BF%D1%80%D0%B8%D0%B2%D0%B5%D1%82"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeComponent(tt.input))

			decoded, err := DecodeComponent(tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.input, decoded)
		})
	}
}

func TestEncodeToken(t *testing.T) {
	assert.Equal(t, "user.name", EncodeToken("user.name"))
	assert.Equal(t, "a%20b%28c%29%3Dd%3B", EncodeToken("a b(c)=d;"))
	assert.Equal(t, "50%25", EncodeToken("50%"))

	decoded, err := DecodeComponent(EncodeToken("a b(c)=d;"))
	require.NoError(t, err)
	assert.Equal(t, "a b(c)=d;", decoded)
}

func TestDecodeComponent(t *testing.T) {
	t.Run("Plus is literal", func(t *testing.T) {
		decoded, err := DecodeComponent("a+b")
		require.NoError(t, err)
		assert.Equal(t, "a+b", decoded)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, input := range []string{"%", "%zz", "abc%4", "%FF%FE"} {
			_, err := DecodeComponent(input)
			assert.ErrorIs(t, err, ErrMalformed, input)
		}
	})
}
