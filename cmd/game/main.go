package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/tomz197/blaster/internal/loop/client"
	"github.com/tomz197/blaster/internal/loop/server"
	"golang.org/x/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}

	err = run()
	_ = term.Restore(fd, oldState)
	if err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// run plays a single local session on stdin/stdout.
func run() error {
	gs := server.NewServer(1)
	c, err := client.NewClient(gs, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Username: os.Getenv("USER"),
	})
	if err != nil {
		return err
	}
	return c.Run()
}
