package wire

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrame(t *testing.T) {
	assert.Equal(t, "2\nTotal Pot: 10\nMin Bet: 5\n", string(Frame([]string{"Total Pot: 10", "Min Bet: 5"})))
	assert.Equal(t, "1\n\n", string(Frame([]string{""})))
	assert.Equal(t, "0\n", string(Frame(nil)))

	// embedded newlines are counted
	assert.Equal(t, "3\na\nb\nc\n", string(Frame([]string{"a\nb", "c\n"})))
}

func TestReadFrame(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(string(Frame([]string{"Winning hands", "", "\t\"a\""})) + "0\n"))

	lines, err := ReadFrame(r)
	require.NoError(t, err)
	assert.Equal(t, []string{"Winning hands", "", "\t\"a\""}, lines)

	lines, err = ReadFrame(r)
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, err = ReadFrame(r)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadFrame_Errors(t *testing.T) {
	_, err := ReadFrame(bufio.NewReader(strings.NewReader("two\na\nb\n")))
	assert.ErrorIs(t, err, ErrBadFrame)

	_, err = ReadFrame(bufio.NewReader(strings.NewReader("-1\n")))
	assert.ErrorIs(t, err, ErrBadFrame)

	_, err = ReadFrame(bufio.NewReader(strings.NewReader("3\na\nb\n")))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
