package wire

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MaxFrameLines is the most lines ReadFrame accepts in a single frame
const MaxFrameLines = 1024

// ErrBadFrame is returned when a frame header is not a line count
var ErrBadFrame = errors.New("malformed frame header")

// Conn is a connection to a single client
// Lines is closed once the client is gone.
type Conn interface {
	Lines() <-chan string
	Send(lines ...string) error
	Close() error
	RemoteAddr() string
}

// Frame encodes lines as a line count followed by the lines
// Embedded newlines split a line in two.
func Frame(lines []string) []byte {
	var split []string
	for _, line := range lines {
		split = append(split, strings.Split(strings.TrimRight(line, "\r\n"), "\n")...)
	}

	var buf bytes.Buffer
	buf.WriteString(strconv.Itoa(len(split)))
	buf.WriteByte('\n')
	for _, line := range split {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

// ReadFrame reads a single frame
func ReadFrame(r *bufio.Reader) ([]string, error) {
	header, err := r.ReadString('\n')
	if err != nil {
		return nil, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || n < 0 || n > MaxFrameLines {
		return nil, fmt.Errorf("%w: %q", ErrBadFrame, strings.TrimSpace(header))
	}

	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		line, err := r.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}

			return nil, err
		}

		lines = append(lines, strings.TrimRight(line, "\r\n"))
	}

	return lines, nil
}
