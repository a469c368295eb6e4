package editor

import "time"

const (
	// Version is shown in the empty-buffer welcome banner.
	Version = "0.0.1"

	// TabStop is the fixed tab width used to expand raw tabs into render
	// spaces. The editor has no per-file or per-user configuration surface.
	TabStop = 8

	// QuitTimes is how many consecutive Ctrl-Q presses are required to
	// discard unsaved changes.
	QuitTimes = 3

	// MessageTTL is how long a status message stays visible.
	MessageTTL = 5 * time.Second

	// promptInitialCapacity is the prompt input's starting byte capacity;
	// it doubles on growth.
	promptInitialCapacity = 128
)
