package editor

import (
	"errors"

	"github.com/kjvalk/vie/internal/keys"
)

// ErrPromptCancelled is returned by Prompt when the user presses ESC.
var ErrPromptCancelled = errors.New("editor: prompt cancelled")

// PromptCallback fires after every keystroke of a Prompt session, once the
// input has already been updated for that keystroke (including on the
// terminal ESC/CR events). It is how incremental search threads state
// across keystrokes without resorting to package-level statics.
type PromptCallback func(input string, key keys.Key)

// ReadKeyFunc reads one semantic key, blocking (through terminal-read
// timeouts) until one arrives.
type ReadKeyFunc func() (keys.Key, error)

// RenderFunc paints one frame reflecting the prompt's current message.
type RenderFunc func()

// Prompt runs a modal single-line input loop: template is formatted with
// the current input and set as the status message before each render.
// Backspace/Del/Ctrl-H shrink the input; ESC cancels (invoking cb with the
// final input and ESC, then returning ErrPromptCancelled); CR on a
// non-empty input commits (invoking cb, then returning the input);
// printable bytes are appended; anything else is passed through to cb
// unchanged.
func Prompt(msg *StatusMessage, template string, readKey ReadKeyFunc, render RenderFunc, cb PromptCallback) (string, error) {
	input := make([]byte, 0, promptInitialCapacity)

	for {
		msg.SetMessage(template, string(input))
		render()

		key, err := readKey()
		if err != nil {
			return "", err
		}

		switch {
		case key == keys.Del || key == keys.Ctrl('h') || key == keys.Backspace:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case key == keys.Esc:
			msg.SetMessage("")
			if cb != nil {
				cb(string(input), key)
			}
			return "", ErrPromptCancelled
		case key == 0x0D:
			if len(input) > 0 {
				msg.SetMessage("")
				if cb != nil {
					cb(string(input), key)
				}
				return string(input), nil
			}
		case key >= 0x20 && key < 128:
			// Prompt input only accepts plain printable ASCII; unlike the
			// main editor's event loop, high-bit bytes are not spliced
			// into a prompt's filename/search query.
			input = append(input, byte(key))
		}

		if cb != nil {
			cb(string(input), key)
		}
	}
}
