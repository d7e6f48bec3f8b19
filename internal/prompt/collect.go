package prompt

import (
	"context"
	"errors"
	"strings"
)

// CollectValues prompts for each named template variable in order and
// returns the answers keyed by name. It backs the CLI's interactive fill:
// after a render fails with missing variables, the caller prompts for
// exactly those names and retries with the merged mapping. Answers must be
// non-empty; aborting any prompt discards all answers.
func CollectValues(ctx context.Context, d Driver, names []string) (map[string]string, error) {
	if d == nil {
		return nil, errors.New("prompt: driver is required")
	}

	answers := make(map[string]string, len(names))
	for _, name := range names {
		answer, err := d.Input(ctx, InputConfig{
			Message:   name,
			Help:      "Value substituted for {{" + name + "}}",
			Validator: required(name),
		})
		if err != nil {
			return nil, err
		}
		answers[name] = answer
	}
	return answers, nil
}

func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(name + " is required")
		}
		return nil
	}
}
