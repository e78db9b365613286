package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetEnv(t *testing.T) {
	a := assert.New(t)
	_, found := os.LookupEnv("DPS_TEST_FOO")
	a.False(found)

	unset1 := SetEnv("DPS_TEST_FOO", "bar")
	a.Equal("bar", os.Getenv("DPS_TEST_FOO"))

	unset2 := SetEnv("DPS_TEST_FOO", "bar2")
	a.Equal("bar2", os.Getenv("DPS_TEST_FOO"))
	unset2()
	a.Equal("bar", os.Getenv("DPS_TEST_FOO"))
	unset1()

	_, found = os.LookupEnv("DPS_TEST_FOO")
	a.False(found)

	// an empty value is restored as empty, not removed
	unset3 := SetEnv("DPS_TEST_EMPTY", "")
	unset4 := SetEnv("DPS_TEST_EMPTY", "x")
	unset4()
	val, found := os.LookupEnv("DPS_TEST_EMPTY")
	a.True(found)
	a.Equal("", val)
	unset3()
}

func TestGetenv(t *testing.T) {
	defer SetEnv("DPS_TEST_GETENV", "set")()

	assert.Equal(t, "set", Getenv("DPS_TEST_GETENV", "default"))
	assert.Equal(t, "default", Getenv("DPS_TEST_MISSING", "default"))
}
