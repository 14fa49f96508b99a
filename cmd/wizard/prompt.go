package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type prompter struct {
	r *bufio.Reader
	w io.Writer
}

func newPrompter(r *bufio.Reader, w io.Writer) *prompter {
	return &prompter{r: r, w: w}
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// ask prints label with the current value and returns the trimmed answer,
// or def when the answer is empty. io.EOF ends the session.
func (p *prompter) ask(label, def string) (string, error) {
	if def != "" {
		p.printf("%s [%s]: ", label, def)
	} else {
		p.printf("%s: ", label)
	}
	line, err := p.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// yes asks a y/n question; anything but y/ya counts as no.
func (p *prompter) yes(label string) (bool, error) {
	ans, err := p.ask(label+" (y/n)", "")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(ans) {
	case "y", "ya", "yes":
		return true, nil
	}
	return false, nil
}
