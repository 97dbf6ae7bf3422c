package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/driftblast/driftblast/internal/draw"
	"github.com/driftblast/driftblast/internal/loop"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, draw.DefaultTermSizeFunc); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
