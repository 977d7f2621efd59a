package engine

import (
	"strconv"
	"strings"
)

// Prompter asks the user for a line of text. ok is false if the prompt was
// dismissed.
type Prompter interface {
	Prompt(text string) (answer string, ok bool)
}

// RequestNumber asks for an integer. A dismissed or blank answer is
// ErrCancelled; anything that is not an integer is an *InputError.
func RequestNumber(p Prompter, text string) (int, error) {
	answer, err := requestText(p, text)
	if err != nil {
		return 0, err
	}
	return parseNumber(answer)
}

func requestText(p Prompter, text string) (string, error) {
	answer, ok := p.Prompt(text)
	if !ok || strings.TrimSpace(answer) == "" {
		return "", ErrCancelled
	}
	return answer, nil
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &InputError{Input: s, Reason: "please enter a valid number"}
	}
	return n, nil
}
