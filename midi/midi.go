package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slices"

	"gitlab.com/gomidi/midi/v2/smf"
)

type Unit int

const (
	// Ticks are the file's own MIDI ticks.
	Ticks Unit = iota
	// Millis come from the tempo map of the file.
	Millis
	// Steps are ticks divided by the length of one step, see Options.
	Steps
)

// AnyKey disables the key filter of Options.
const AnyKey = -1

var (
	ErrNoMetricTicks = errors.New("midi: file does not use metric ticks")
	ErrOffGrid       = errors.New("midi: onset does not fall on the step grid")
)

type Options struct {
	Unit Unit
	// StepsPerQuarter sets the grid for Steps, 4 means sixteenth notes.
	StepsPerQuarter uint32
	// Key keeps only notes with this key, AnyKey keeps all.
	Key int
}

func DefaultOptions() Options {
	return Options{Unit: Steps, StepsPerQuarter: 4, Key: AnyKey}
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &smf.SMF{}, fmt.Errorf("error reading midi file... %w", err)
	}
	return Read(bytes.NewReader(dat))
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			s, e = &blank, errors.New(r)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file... %w", err)
	}
	return res, nil
}

// NoteStartTicks returns the absolute ticks of every note start (a NoteOn
// with non-zero velocity) across all tracks, deduplicated and sorted.
func NoteStartTicks(s *smf.SMF, key int) []int64 {
	var starts []int64
	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, k, velocity uint8
			if event.Message.GetNoteOn(&channel, &k, &velocity) && velocity > 0 {
				if key == AnyKey || int(k) == key {
					starts = append(starts, absTicks)
				}
			}
		}
	}
	slices.Sort(starts)
	return slices.Compact(starts)
}

// Onsets extracts note-start onsets of s in the unit chosen by opts.
func Onsets(s *smf.SMF, opts Options) ([]float64, error) {
	ticks := NoteStartTicks(s, opts.Key)
	onsets := make([]float64, len(ticks))

	switch opts.Unit {
	case Ticks:
		for i, t := range ticks {
			onsets[i] = float64(t)
		}
	case Millis:
		for i, t := range ticks {
			onsets[i] = float64(s.TimeAt(t)) / 1000
		}
	case Steps:
		step, err := StepTicks(s, opts.StepsPerQuarter)
		if err != nil {
			return nil, err
		}
		for i, t := range ticks {
			if t%step != 0 {
				return nil, fmt.Errorf("%w: tick %d, step %d", ErrOffGrid, t, step)
			}
			onsets[i] = float64(t / step)
		}
	default:
		return nil, fmt.Errorf("midi: unknown unit %d", opts.Unit)
	}
	return onsets, nil
}

// StepTicks is the number of ticks in one grid step.
func StepTicks(s *smf.SMF, stepsPerQuarter uint32) (int64, error) {
	mt, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return 0, ErrNoMetricTicks
	}
	if stepsPerQuarter == 0 || uint32(mt)%stepsPerQuarter != 0 {
		return 0, fmt.Errorf("midi: %d ticks per quarter can not be split into %d steps", uint32(mt), stepsPerQuarter)
	}
	return int64(uint32(mt) / stepsPerQuarter), nil
}
