package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

type decoder func(f io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error)

// Beat Saber ships ogg vorbis songs with an .egg extension
var decoders = map[string]decoder{
	".egg": vorbis.Decode,
	".ogg": vorbis.Decode,
	".mp3": mp3.Decode,
	".wav": func(f io.ReadCloser) (beep.StreamSeekCloser, beep.Format, error) {
		return wav.Decode(f)
	},
}

// DefaultPlayer plays one song file through the beep speaker.
type DefaultPlayer struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
}

func Open(file string) (*DefaultPlayer, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(file))]
	if !ok {
		return nil, fmt.Errorf("unsupported audio file %v", file)
	}
	f, err := os.Open(file)
	if nil != err {
		return nil, err
	}
	streamer, format, err := decode(f)
	if nil != err {
		f.Close()
		return nil, fmt.Errorf("unable to decode %v: %w", file, err)
	}
	return &DefaultPlayer{streamer: streamer, format: format}, nil
}

// Init opens the audio device at the song sample rate with a buffer of
// one frame period.
func (p *DefaultPlayer) Init(period time.Duration) error {
	return speaker.Init(p.format.SampleRate, p.format.SampleRate.N(period))
}

// Length is the song length in seconds.
func (p *DefaultPlayer) Length() float64 {
	return p.format.SampleRate.D(p.streamer.Len()).Seconds()
}

// position converts seconds into a sample index within the song.
func (p *DefaultPlayer) position(at float64) int {
	if at < 0 {
		return 0
	}
	pos := p.format.SampleRate.N(time.Duration(at * float64(time.Second)))
	if pos > p.streamer.Len() {
		pos = p.streamer.Len()
	}
	return pos
}

func (p *DefaultPlayer) Play(at float64) error {
	speaker.Clear()

	speaker.Lock()
	err := p.streamer.Seek(p.position(at))
	speaker.Unlock()
	if nil != err {
		return err
	}

	speaker.Play(p.streamer)
	return nil
}

func (p *DefaultPlayer) Stop() {
	speaker.Clear()
}

func (p *DefaultPlayer) Close() error {
	return p.streamer.Close()
}
