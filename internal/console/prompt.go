package console

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrBack is returned when the user asks to return to the previous question.
	ErrBack = errors.New("back")

	// ErrInvalidInput marks input that failed validation. Prompts re-ask on it.
	ErrInvalidInput = errors.New("invalid input")
)

// IsBack reports whether input is a request to go back ("b" or "back").
func IsBack(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "b", "back":
		return true
	}
	return false
}

// TabHint returns the completion hint for the current platform.
func TabHint() string {
	return tabHint(runtime.GOOS)
}

func tabHint(goos string) string {
	if goos == "windows" {
		return "(Tab for options)"
	}
	return "(Double tab for options)"
}

// ParseInt parses input as an integer within [min, max].
func ParseInt(input string, min, max int) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidInput, input)
	}
	if value < min || value > max {
		return 0, fmt.Errorf("%w: please enter a number from %d to %d", ErrInvalidInput, min, max)
	}
	return value, nil
}

// ParseFloat parses input as a number and runs check against it.
func ParseFloat(input string, check func(float64) error) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, input)
	}
	if check != nil {
		if err := check(value); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	return value, nil
}

// Prompter asks questions over a Client and re-asks until the answer validates.
type Prompter struct {
	client Client
}

// NewPrompter creates a Prompter for the given client.
func NewPrompter(client Client) *Prompter {
	return &Prompter{client: client}
}

// Client returns the underlying client.
func (p *Prompter) Client() Client {
	return p.client
}

// Say writes a formatted line.
func (p *Prompter) Say(format string, args ...any) error {
	return p.client.WriteLine(fmt.Sprintf(format, args...))
}

func (p *Prompter) ask(question string) (string, error) {
	if err := p.client.Write([]byte(question)); err != nil {
		return "", err
	}
	line, err := p.client.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// reject reports a validation failure and reports whether the prompt should retry.
func (p *Prompter) reject(err error) error {
	if !errors.Is(err, ErrInvalidInput) {
		return err
	}
	msg := strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": ")
	if msg != "" {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	return p.client.WriteLine(msg)
}

// PromptString asks until a non-empty answer is given.
func (p *Prompter) PromptString(question string) (string, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		if err := p.client.WriteLine("Please enter a value."); err != nil {
			return "", err
		}
	}
}

// PromptInt asks for an integer in [min, max]. When allowBack is set,
// "b" or "back" returns ErrBack.
func (p *Prompter) PromptInt(question string, min, max int, allowBack bool) (int, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		if allowBack && IsBack(answer) {
			return 0, ErrBack
		}
		value, err := ParseInt(answer, min, max)
		if err == nil {
			return value, nil
		}
		if err := p.reject(err); err != nil {
			return 0, err
		}
	}
}

// PromptFloat asks for a number accepted by check.
func (p *Prompter) PromptFloat(question string, check func(float64) error) (float64, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return 0, err
		}
		value, err := ParseFloat(answer, check)
		if err == nil {
			return value, nil
		}
		if err := p.reject(err); err != nil {
			return 0, err
		}
	}
}

// PromptChoice asks until the answer matches one of choices, ignoring case.
// The matching choice is returned as given.
func (p *Prompter) PromptChoice(question string, choices ...string) (string, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return "", err
		}
		for _, c := range choices {
			if strings.EqualFold(answer, c) {
				return c, nil
			}
		}
		if err := p.client.WriteLine(fmt.Sprintf("Please enter one of: %s", strings.Join(choices, ", "))); err != nil {
			return "", err
		}
	}
}

// PromptDate asks until the answer parses with layout, and returns the answer verbatim.
func (p *Prompter) PromptDate(question, layout string) (string, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return "", err
		}
		if _, err := time.Parse(layout, answer); err == nil {
			return answer, nil
		}
		example := time.Date(1990, time.April, 23, 0, 0, 0, 0, time.UTC).Format(layout)
		if err := p.client.WriteLine(fmt.Sprintf("Please enter a real date like %s.", example)); err != nil {
			return "", err
		}
	}
}
