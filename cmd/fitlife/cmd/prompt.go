package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/Dianagomez24/FrontFilLife/internal/questionnaire"
)

var errAborted = errors.New("entrada cancelada")

func (e *env) reader() *bufio.Reader {
	if e.lines == nil {
		e.lines = bufio.NewReader(e.in)
	}
	return e.lines
}

// ask prints label and returns the trimmed answer, or def when the answer is empty.
func (e *env) ask(label, def string) (string, error) {
	if def != "" {
		e.printf("%s [%s]: ", label, def)
	} else {
		e.printf("%s: ", label)
	}

	line, err := e.reader().ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", errAborted
		}
		return "", err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

// askSecret reads a password without echoing it. Piped input is read as a plain line.
func (e *env) askSecret(label string) (string, error) {
	f, ok := e.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return e.ask(label, "")
	}

	e.printf("%s: ", label)
	b, err := term.ReadPassword(int(f.Fd()))
	e.printf("\n")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// choose lists opts and returns the value of the picked one. The answer may be the
// option number or its value.
func (e *env) choose(label string, opts []questionnaire.Option, def string) (string, error) {
	e.printf("%s\n", label)
	for i, o := range opts {
		if o.Description != "" {
			e.printf("  %d) %s - %s\n", i+1, o.Label, o.Description)
		} else {
			e.printf("  %d) %s\n", i+1, o.Label)
		}
	}

	answer, err := e.ask("Opción", def)
	if err != nil {
		return "", err
	}
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(opts) {
		return opts[n-1].Value, nil
	}
	return answer, nil
}

// confirm asks a yes/no question. Anything but s/si/y/yes is a no.
func (e *env) confirm(label string) (bool, error) {
	answer, err := e.ask(label+" (s/N)", "")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "s", "si", "sí", "y", "yes":
		return true, nil
	}
	return false, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido: %q", s)
	}
	return id, nil
}
