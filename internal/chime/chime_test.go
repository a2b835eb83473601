package chime

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, p *Player) [][2]float64 {
	t.Helper()
	s := p.Tone()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	require.NoError(t, s.Err())
	return out
}

func TestToneLength(t *testing.T) {
	p := New(Config{Enabled: true, Frequency: 880, Duration: 50 * time.Millisecond})
	samples := drain(t, p)
	require.Len(t, samples, SampleRate.N(50*time.Millisecond))
}

func TestToneDecays(t *testing.T) {
	p := New(Config{Enabled: true, Frequency: 440, Duration: 100 * time.Millisecond, Gain: 0.5})
	samples := drain(t, p)
	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range samples[from:to] {
			require.Equal(t, s[0], s[1])
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}
	n := len(samples)
	head, tail := peak(0, n/10), peak(n-n/10, n)
	require.LessOrEqual(t, head, 0.5)
	require.Greater(t, head, tail*5)
}

func TestToneInvalid(t *testing.T) {
	p := New(Config{Enabled: true, Frequency: 0, Duration: time.Second})
	require.Empty(t, drain(t, p))
}

func TestDisabledPlayer(t *testing.T) {
	p := New(Config{})
	require.False(t, p.Enabled())
	require.NoError(t, p.Play())
	p.Close()

	var nilPlayer *Player
	require.False(t, nilPlayer.Enabled())
	nilPlayer.Close()
}

func writeWav(t *testing.T, rate beep.SampleRate, d time.Duration) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tap.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, newTone(rate, 440, d, 0.5), format))
	return path
}

func TestLoadSample(t *testing.T) {
	buf, err := LoadSample(writeWav(t, SampleRate, 100*time.Millisecond))
	require.NoError(t, err)
	require.Equal(t, SampleRate.N(100*time.Millisecond), buf.Len())
	require.Equal(t, SampleRate, buf.Format().SampleRate)
}

func TestLoadSampleResamples(t *testing.T) {
	buf, err := LoadSample(writeWav(t, 22050, 100*time.Millisecond))
	require.NoError(t, err)
	require.InDelta(t, SampleRate.N(100*time.Millisecond), buf.Len(), 64)
}

func TestLoadSampleErrors(t *testing.T) {
	_, err := LoadSample(filepath.Join(t.TempDir(), "missing.wav"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "tap.ogg")
	require.NoError(t, os.WriteFile(path, []byte("OggS"), 0o644))
	_, err = LoadSample(path)
	require.ErrorIs(t, err, ErrUnsupportedSample)

	path = filepath.Join(t.TempDir(), "broken.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wav"), 0o644))
	_, err = LoadSample(path)
	require.Error(t, err)
}

func TestPlayerUsesSample(t *testing.T) {
	path := writeWav(t, SampleRate, 20*time.Millisecond)
	p := New(Config{Enabled: true, Frequency: 880, Duration: time.Second, Sample: path})
	require.Len(t, drain(t, p), SampleRate.N(20*time.Millisecond))

	p = New(Config{Enabled: true, Frequency: 880, Duration: 10 * time.Millisecond, Sample: path + ".missing"})
	require.Len(t, drain(t, p), SampleRate.N(10*time.Millisecond))
}
