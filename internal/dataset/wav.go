package dataset

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/medsignal/auscultasim/internal/synth"
)

// WriteWAV renders the waveform as 16-bit mono PCM, peak-normalized to
// 90% full scale. The sampling rate comes from the waveform's own
// timestamps, falling back to 8 kHz when the record is too short to
// imply one.
func WriteWAV(f io.WriteSeeker, wf synth.Waveform) error {
	rate := int(math.Round(wf.Rate()))
	if rate <= 0 {
		rate = 8000
	}

	var peak float64
	for _, v := range wf.Y {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	scale := 1.0
	if peak > 0 {
		scale = 0.9 * 32767 / peak
	}

	data := make([]int, len(wf.Y))
	for i, v := range wf.Y {
		data[i] = int(math.Round(v * scale))
	}

	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Data:   data,
		Format: &audio.Format{SampleRate: rate, NumChannels: 1},
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}
