package keys

// ByteSource is the minimal contract the decoder needs from a terminal
// reader: one byte at a time, with ok=false meaning "the read timed out",
// not an error. internal/term's polling reader implements this over a raw
// fd in 100ms slices; tests implement it over an in-memory byte queue.
type ByteSource interface {
	ReadByte() (b byte, ok bool, err error)
}

// Decode blocks (retrying through timeouts) until one byte arrives, then
// turns it into a Key. A bare ESC that isn't followed by a recognized CSI
// or SS3 sequence within the next couple of reads decodes as Esc itself.
func Decode(src ByteSource) (Key, error) {
	c, err := readByteBlocking(src)
	if err != nil {
		return 0, err
	}

	if c != byte(Esc) {
		return Key(c), nil
	}

	first, ok, err := src.ReadByte()
	if err != nil {
		return 0, err
	}
	if !ok {
		return Esc, nil
	}

	second, ok, err := src.ReadByte()
	if err != nil {
		return 0, err
	}
	if !ok {
		return Esc, nil
	}

	switch first {
	case '[':
		if second >= '0' && second <= '9' {
			third, ok, err := src.ReadByte()
			if err != nil {
				return 0, err
			}
			if !ok || third != '~' {
				return Esc, nil
			}
			switch second {
			case '1', '7':
				return Home, nil
			case '4', '8':
				return End, nil
			case '3':
				return Del, nil
			case '5':
				return PageUp, nil
			case '6':
				return PageDown, nil
			default:
				return Esc, nil
			}
		}
		switch second {
		case 'A':
			return ArrowUp, nil
		case 'B':
			return ArrowDown, nil
		case 'C':
			return ArrowRight, nil
		case 'D':
			return ArrowLeft, nil
		case 'H':
			return Home, nil
		case 'F':
			return End, nil
		default:
			return Esc, nil
		}
	case 'O':
		switch second {
		case 'H':
			return Home, nil
		case 'F':
			return End, nil
		default:
			return Esc, nil
		}
	default:
		return Esc, nil
	}
}

// readByteBlocking retries a timed-out read (ok=false, no error) until a
// byte actually arrives. This is the decoder's half of the ~100ms poll
// loop; the other half (VMIN=0/VTIME=1) lives in the termios setup.
func readByteBlocking(src ByteSource) (byte, error) {
	for {
		b, ok, err := src.ReadByte()
		if err != nil {
			return 0, err
		}
		if ok {
			return b, nil
		}
	}
}
