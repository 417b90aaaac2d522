// Package wavfile writes synthesized buffers as PCM WAV files and reads back
// their format.
package wavfile

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/Distortions81/ambient/internal/synth"
)

// FileName is the name of the drone artifact inside the output directory.
const FileName = "microtonal_bflat_syncopated_drone.wav"

const (
	bitDepth  = 16
	channels  = 1
	formatPCM = 1
)

// IOError reports a failure to write the audio artifact.
type IOError struct {
	Path string
	Op   string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("wav %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Export writes buf to path as 16-bit mono PCM. On failure the partial file
// is removed.
func Export(path string, buf *synth.PCMBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Op: "create", Err: err}
	}
	return writeFile(f, path, buf)
}

// writeFile encodes buf into f, which was created at path, and closes it.
func writeFile(f *os.File, path string, buf *synth.PCMBuffer) (err error) {
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(path)
		}
	}()

	enc := wav.NewEncoder(f, buf.SampleRate(), bitDepth, channels, formatPCM)
	samples := buf.Samples()
	intBuf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  buf.SampleRate(),
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: bitDepth,
	}
	for i, s := range samples {
		intBuf.Data[i] = int(s)
	}
	if err := enc.Write(intBuf); err != nil {
		return &IOError{Path: path, Op: "write", Err: err}
	}
	if err := enc.Close(); err != nil {
		return &IOError{Path: path, Op: "finalize", Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Path: path, Op: "close", Err: err}
	}
	return nil
}

// Info describes a WAV file on disk.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Frames     int64
	Duration   time.Duration
}

// Probe reads the header of the WAV file at path. Duration is derived from
// the PCM data chunk size.
func Probe(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return Info{}, fmt.Errorf("%s: not a valid wav file", path)
	}
	if err := d.FwdToPCM(); err != nil {
		return Info{}, fmt.Errorf("%s: locate pcm data: %w", path, err)
	}
	info := Info{
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
		BitDepth:   int(d.BitDepth),
	}
	frameBytes := int64(info.Channels * info.BitDepth / 8)
	if frameBytes == 0 || info.SampleRate == 0 {
		return info, errors.New(path + ": wav header has zero frame size or sample rate")
	}
	info.Frames = d.PCMLen() / frameBytes
	info.Duration = time.Duration(info.Frames * int64(time.Second) / int64(info.SampleRate))
	return info, nil
}

// ReadSamples decodes a 16-bit mono file written by Export.
func ReadSamples(path string) ([]int16, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: decode: %w", path, err)
	}
	if d.BitDepth != bitDepth || d.NumChans != channels {
		return nil, 0, fmt.Errorf("%s: want %d-bit mono, got %d-bit %d channels", path, bitDepth, d.BitDepth, d.NumChans)
	}
	out := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		out[i] = int16(v)
	}
	return out, int(d.SampleRate), nil
}
