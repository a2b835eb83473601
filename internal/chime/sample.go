package chime

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

// maxSample caps how much of a sample file is kept in memory.
const maxSample = 2 * time.Second

// ErrUnsupportedSample is returned for files that are not wav, mp3 or flac.
var ErrUnsupportedSample = errors.New("unsupported sample type")

// LoadSample decodes an audio file into a buffer at SampleRate. The
// decoder is picked by extension.
func LoadSample(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening sample: %w", err)
	}
	defer f.Close()
	return decodeSample(f, filepath.Ext(path))
}

func decodeSample(r io.ReadCloser, ext string) (*beep.Buffer, error) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
		err      error
	)
	switch strings.ToLower(ext) {
	case ".wav":
		streamer, format, err = wav.Decode(r)
	case ".mp3":
		streamer, format, err = mp3.Decode(r)
	case ".flac":
		streamer, format, err = flac.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSample, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding sample: %w", err)
	}
	defer streamer.Close()

	var s beep.Streamer = beep.Take(format.SampleRate.N(maxSample), streamer)
	if format.SampleRate != SampleRate {
		s = beep.Resample(4, format.SampleRate, SampleRate, s)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf, nil
}
