package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/bsview/internal/game"
	"git.lost.host/meutraa/bsview/internal/playback"
	"git.lost.host/meutraa/bsview/internal/theme"
	"golang.org/x/term"
)

const (
	lanes     = 4
	laneWidth = 4
	topRow    = 3 // Rows above are used by the status bar
	barOffset = 4 // Rows between the hit bar and the bottom
)

type cell struct {
	row, col int
}

// sprite is the on screen representation of one active object.
type sprite struct {
	entry playback.Entry
	cells []cell
}

type DefaultRenderer struct {
	Theme theme.Theme
	Depth float64 // Distance shown between the top row and the hit bar

	out          io.Writer
	fd           int
	buffer       strings.Builder
	restoreState *term.State

	width, height int
	sprites       map[int]*sprite
}

func NewRenderer(out io.Writer, width, height int) *DefaultRenderer {
	return &DefaultRenderer{
		Theme:   &theme.DefaultTheme{},
		Depth:   1,
		out:     out,
		fd:      -1,
		width:   width,
		height:  height,
		sprites: map[int]*sprite{},
	}
}

// NewTerminalRenderer renders to stdout, sized to the terminal.
func NewTerminalRenderer() (*DefaultRenderer, error) {
	fd := int(os.Stdout.Fd())
	width, height, err := term.GetSize(fd)
	if nil != err {
		return nil, fmt.Errorf("unable to get terminal size: %w", err)
	}
	r := NewRenderer(os.Stdout, width, height)
	r.fd = fd
	return r, nil
}

func (r *DefaultRenderer) Init() error {
	if r.fd >= 0 {
		state, err := term.MakeRaw(r.fd)
		if nil != err {
			return err
		}
		r.restoreState = state
	}

	fmt.Fprintf(r.out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Fprintf(r.out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	return term.Restore(r.fd, r.restoreState)
}

func (r *DefaultRenderer) hitRow() int {
	return r.height - barOffset
}

func (r *DefaultRenderer) laneColumn(x int) int {
	left := r.width/2 - (lanes*laneWidth)/2
	return left + x*laneWidth + laneWidth/2
}

// row converts a distance along the travel axis to a screen row.
func (r *DefaultRenderer) row(distance float64) int {
	rowsPerUnit := float64(r.hitRow()-topRow) / r.Depth
	return r.hitRow() - int(math.Round(distance*rowsPerUnit))
}

func (r *DefaultRenderer) visible(c cell) bool {
	return c.row >= topRow && c.row <= r.height && c.col >= 1 && c.col <= r.width
}

func (r *DefaultRenderer) cells(o *game.Object, at playback.Placement) []cell {
	switch p := o.Payload.(type) {
	case game.Note:
		return []cell{{r.row(at.Distance), r.laneColumn(p.X)}}
	case game.Bomb:
		return []cell{{r.row(at.Distance), r.laneColumn(p.X)}}
	case game.Obstacle:
		near, far := r.row(at.Distance), r.row(at.Distance+at.Extent)
		if near > r.height {
			near = r.height
		}
		if far < topRow {
			far = topRow
		}
		width := p.Width
		if width < 1 {
			width = 1
		}
		out := []cell{}
		for row := far; row <= near; row++ {
			for x := 0; x < width; x++ {
				out = append(out, cell{row, r.laneColumn(p.X + x)})
			}
		}
		return out
	}
	return nil
}

func (r *DefaultRenderer) Spawn(e playback.Entry, at playback.Placement) {
	sp := &sprite{entry: e}
	r.sprites[e.Index] = sp
	r.place(sp, at)
}

func (r *DefaultRenderer) Despawn(e playback.Entry) {
	sp, ok := r.sprites[e.Index]
	if !ok {
		return
	}
	r.erase(sp)
	delete(r.sprites, e.Index)
}

func (r *DefaultRenderer) erase(sp *sprite) {
	for _, c := range sp.cells {
		if r.visible(c) {
			r.Fill(c.row, c.col, " ")
		}
	}
	sp.cells = sp.cells[:0]
}

func (r *DefaultRenderer) place(sp *sprite, at playback.Placement) {
	r.erase(sp)
	sp.cells = r.cells(sp.entry.Object, at)
	glyph := r.Theme.Render(sp.entry.Object)
	for _, c := range sp.cells {
		if r.visible(c) {
			r.Fill(c.row, c.col, glyph)
		}
	}
}

// Draw moves every sprite to its placement for this frame.
func (r *DefaultRenderer) Draw(entries []playback.Entry, places []playback.Placement) {
	for i, e := range entries {
		sp, ok := r.sprites[e.Index]
		if !ok {
			continue
		}
		r.place(sp, places[i])
	}

	// Render the hit bar
	for i := 0; i < lanes; i++ {
		r.Fill(r.hitRow(), r.laneColumn(i), r.Theme.RenderHitField(i))
	}
}

// Status draws the progress bar and label at the top of the screen.
func (r *DefaultRenderer) Status(label string, progress float64) {
	filled := int(float64(r.width) * progress)
	if filled < 0 {
		filled = 0
	} else if filled > r.width {
		filled = r.width
	}
	r.Fill(1, 1, strings.Repeat("━", filled)+strings.Repeat(" ", r.width-filled))
	r.Fill(2, 1, "\033[K"+label)
}

// Sprites is the number of objects currently drawn.
func (r *DefaultRenderer) Sprites() int {
	return len(r.sprites)
}

func (r *DefaultRenderer) RenderLoop(delay, period time.Duration, render func(dt time.Duration) bool) {
	time.Sleep(delay)
	last := time.Now()
	for cont := true; cont; {
		now := time.Now()
		deadline := now.Add(period)

		cont = render(now.Sub(last))
		last = now
		r.flush()

		time.Sleep(time.Until(deadline))
	}
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) flush() {
	io.WriteString(r.out, r.buffer.String())
	r.buffer.Reset()
}
