package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type termPrompter struct {
	in     *os.File
	out    io.Writer
	reader *bufio.Reader
}

// NewTermPrompter prompts on out and reads from in. Secrets are read without
// echo when in is a terminal and as plain lines otherwise, so piped input
// keeps working.
func NewTermPrompter(in *os.File, out io.Writer) Prompter {
	return &termPrompter{in: in, out: out, reader: bufio.NewReader(in)}
}

func (p *termPrompter) Secret(prompt string) (string, error) {
	fd := int(p.in.Fd())
	if !term.IsTerminal(fd) {
		return p.Line(prompt)
	}

	fmt.Fprint(p.out, prompt)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return trimLineEnd(string(secret)), nil
}

func (p *termPrompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return trimLineEnd(line), nil
}

func trimLineEnd(s string) string {
	return strings.TrimRight(s, "\r\n")
}
