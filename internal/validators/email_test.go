package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasEmailShape(t *testing.T) {
	t.Parallel()

	valid := []string{
		"user@example.com",
		"first.last@sub.example.co",
		"a@b.io",
	}
	for _, email := range valid {
		assert.True(t, HasEmailShape(email), "expected %q to pass", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@nodot",
		"user name@example.com",
	}
	for _, email := range invalid {
		assert.False(t, HasEmailShape(email), "expected %q to fail", email)
	}
}
