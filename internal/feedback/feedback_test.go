package feedback

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream did not end")
	return nil
}

func TestSineLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	got := drain(t, newSine(440, 100*time.Millisecond, rate))
	if want := rate.N(100 * time.Millisecond); len(got) != want {
		t.Errorf("sine produced %d samples, want %d", len(got), want)
	}
	for i, s := range got {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("sample %d = %v", i, s)
		}
	}
}

func TestEnvelopeFadesEnds(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := 50 * time.Millisecond
	got := drain(t, newEnvelope(newSine(1000, d, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate))

	peak := 0.0
	for _, s := range got {
		peak = max(peak, math.Abs(s[0]))
	}
	if peak < 0.9 {
		t.Errorf("peak = %v, want close to 1", peak)
	}
	if first := math.Abs(got[0][0]); first != 0 {
		t.Errorf("first sample = %v, want 0", first)
	}
	if last := math.Abs(got[len(got)-1][0]); last > 0.05 {
		t.Errorf("last sample = %v, want near 0", last)
	}
}

func TestChimeSequencesNotes(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := 20 * time.Millisecond
	got := drain(t, chime(rate, d, 0.5, openNotes...))
	if want := 2 * rate.N(d); len(got) != want {
		t.Errorf("chime produced %d samples, want %d", len(got), want)
	}
	for _, s := range got {
		if math.Abs(s[0]) > 0.5+1e-9 {
			t.Fatalf("sample %v exceeds volume 0.5", s[0])
		}
	}
}

func TestSilentVolume(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, s := range drain(t, chime(rate, 10*time.Millisecond, 0, 440)) {
		if s[0] != 0 {
			t.Fatalf("silent chime produced %v", s[0])
		}
	}
}

func TestPlayBeforeInitIsSilent(t *testing.T) {
	p := New(0.3, 60*time.Millisecond)
	p.OnOpenComplete()
	p.OnCloseComplete()
	if n := p.mixer.Len(); n != 0 {
		t.Errorf("mixer holds %d streamers before Init", n)
	}
	p.Close()
}
