package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"

	"drawpoker-server/pkg/wire"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var addr = flag.String("addr", "localhost:5000", "the server address")

func main() {
	flag.Parse()

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect")
	}
	defer conn.Close()

	// only show an input cue to a person at a terminal
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	done := make(chan struct{})
	go func() {
		defer close(done)
		printFrames(conn, interactive)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(conn, scanner.Text()); err != nil {
			logrus.WithError(err).Error("could not send")
			break
		}
	}

	if tcp, ok := conn.(*net.TCPConn); ok {
		_ = tcp.CloseWrite()
	}

	<-done
}

func printFrames(conn net.Conn, interactive bool) {
	r := bufio.NewReader(conn)
	for {
		lines, err := wire.ReadFrame(r)
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				logrus.WithError(err).Error("could not read from server")
			}

			return
		}

		for _, line := range lines {
			fmt.Println(line)
		}

		if interactive {
			fmt.Print("> ")
		}
	}
}
