package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	a := assert.New(t)

	a.NoError(os.Unsetenv("SCUM_TEST_KEY"))
	a.Equal("fallback", Getenv("SCUM_TEST_KEY", "fallback"))

	a.NoError(os.Setenv("SCUM_TEST_KEY", "value"))
	defer func() {
		_ = os.Unsetenv("SCUM_TEST_KEY")
	}()
	a.Equal("value", Getenv("SCUM_TEST_KEY", "fallback"))
}
