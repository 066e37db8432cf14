package input

import "github.com/eiannone/keyboard"

type Command int

const (
	None Command = iota
	Forward
	Back
	FineForward
	FineBack
	TogglePause
	Quit
)

func (c Command) String() string {
	switch c {
	case Forward:
		return "forward"
	case Back:
		return "back"
	case FineForward:
		return "fine forward"
	case FineBack:
		return "fine back"
	case TogglePause:
		return "pause"
	case Quit:
		return "quit"
	}
	return "none"
}

var keys = map[keyboard.Key]Command{
	keyboard.KeyArrowRight: Forward,
	keyboard.KeyArrowLeft:  Back,
	keyboard.KeySpace:      TogglePause,
	keyboard.KeyEsc:        Quit,
	keyboard.KeyCtrlC:      Quit,
}

var runes = map[rune]Command{
	'.': FineForward,
	',': FineBack,
	' ': TogglePause,
	'q': Quit,
}

// Map turns a key event into a playback command.
func Map(ev keyboard.KeyEvent) Command {
	if nil != ev.Err {
		return None
	}
	if c, ok := keys[ev.Key]; ok && ev.Key != 0 {
		return c
	}
	if c, ok := runes[ev.Rune]; ok {
		return c
	}
	return None
}

// Drain maps every pending event without blocking.
func Drain(events <-chan keyboard.KeyEvent) []Command {
	commands := []Command{}
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return commands
			}
			if c := Map(ev); c != None {
				commands = append(commands, c)
			}
		default:
			return commands
		}
	}
}
