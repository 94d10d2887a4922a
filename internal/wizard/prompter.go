package wizard

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	ricerrors "github.com/ricelabs/rice-cli/internal/errors"

	"golang.org/x/term"
)

// Prompter supplies answers to the wizard. The flow in Run is the same
// whether answers come from an interactive terminal or a script; commands
// use Terminal, tests use Scripted.
type Prompter interface {
	// Confirm asks a yes/no question. There is no default: the prompter
	// must keep asking until it has an explicit answer.
	Confirm(prompt string) (bool, error)

	// Input asks for a line of text. An empty answer yields def.
	Input(prompt, def string) (string, error)

	// Secret asks for a sensitive value without echoing it. An empty
	// answer means "keep the current value"; the caller decides what
	// that is.
	Secret(prompt string) (string, error)
}

// Terminal is the interactive Prompter reading from stdin.
type Terminal struct {
	reader *bufio.Reader
}

// NewTerminal returns a Prompter backed by stdin.
func NewTerminal() *Terminal {
	return &Terminal{reader: bufio.NewReader(os.Stdin)}
}

func (t *Terminal) Confirm(prompt string) (bool, error) {
	for {
		fmt.Printf("%s [y/n]: ", prompt)
		line, err := t.reader.ReadString('\n')
		if err != nil {
			return false, promptErr(err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

func (t *Terminal) Input(prompt, def string) (string, error) {
	if def != "" {
		fmt.Printf("%s [%s]: ", prompt, def)
	} else {
		fmt.Printf("%s: ", prompt)
	}

	line, err := t.reader.ReadString('\n')
	if err != nil {
		return "", promptErr(err)
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (t *Terminal) Secret(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		// Piped input: hidden reads are impossible, fall back to a
		// plain line read.
		return t.Input(prompt, "")
	}

	fmt.Printf("%s: ", prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Println() // newline after hidden input
	if err != nil {
		return "", fmt.Errorf("reading secret input: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Scripted is a Prompter that replays a fixed sequence of answers, one per
// prompt, in order. It exists so the wizard flow is testable without a
// terminal.
type Scripted struct {
	answers []string
	next    int
}

// NewScripted returns a Prompter that answers prompts from the given list.
func NewScripted(answers ...string) *Scripted {
	return &Scripted{answers: answers}
}

func (s *Scripted) Confirm(prompt string) (bool, error) {
	for {
		answer, err := s.pop()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

func (s *Scripted) Input(prompt, def string) (string, error) {
	answer, err := s.pop()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (s *Scripted) Secret(prompt string) (string, error) {
	return s.pop()
}

func (s *Scripted) pop() (string, error) {
	if s.next >= len(s.answers) {
		return "", ricerrors.ErrPromptClosed
	}
	answer := s.answers[s.next]
	s.next++
	return answer, nil
}

func promptErr(err error) error {
	if err == io.EOF {
		return ricerrors.ErrPromptClosed
	}
	return fmt.Errorf("reading input: %w", err)
}
