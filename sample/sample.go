package sample

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/povel/povel"
)

var ErrEmptyPhrase = errors.New("sample: phrase length must be positive")

type Options struct {
	TicksPerQuarter uint16
	StepsPerQuarter uint16
	// Length of the rendered phrase in steps. Clock ticks are rendered over it.
	PhraseLength int
	Channel      uint8
	PatternKey   uint8
	ClockKey     uint8
	Velocity     uint8
}

func DefaultOptions() Options {
	return Options{
		TicksPerQuarter: 960,
		StepsPerQuarter: 4,
		PhraseLength:    16,
		Channel:         9,
		PatternKey:      76, // hi wood block
		ClockKey:        37, // side stick
		Velocity:        100,
	}
}

type note struct {
	tick uint32
	key  uint8
}

// Create renders onsets (in steps) and the ticks of clock over one phrase into
// a single-track SMF. Every note lasts one step.
func Create(onsets []int, clock povel.Hypothesis[int], opts Options) (*smf.SMF, error) {
	if opts.PhraseLength <= 0 {
		return nil, ErrEmptyPhrase
	}
	if opts.StepsPerQuarter == 0 || opts.TicksPerQuarter%opts.StepsPerQuarter != 0 {
		return nil, fmt.Errorf("sample: %d ticks per quarter can not be split into %d steps", opts.TicksPerQuarter, opts.StepsPerQuarter)
	}
	step := uint32(opts.TicksPerQuarter / opts.StepsPerQuarter)

	var notes []note
	for _, o := range onsets {
		if o >= 0 && o < opts.PhraseLength {
			notes = append(notes, note{tick: uint32(o) * step, key: opts.PatternKey})
		}
	}
	if clock.Period > 0 {
		for t := clock.Phase; t < opts.PhraseLength; t += clock.Period {
			if t >= 0 {
				notes = append(notes, note{tick: uint32(t) * step, key: opts.ClockKey})
			}
		}
	}

	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(opts.TicksPerQuarter)
	res.Tracks = append(res.Tracks, render(notes, step, opts))
	return &res, nil
}

// render orders note on/off events in time, note offs first on equal ticks.
func render(notes []note, step uint32, opts Options) smf.Track {
	type event struct {
		tick uint32
		off  bool
		key  uint8
	}
	var events []event
	for _, n := range notes {
		events = append(events, event{tick: n.tick, key: n.key}, event{tick: n.tick + step, off: true, key: n.key})
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].off && !events[j].off
	})

	var track smf.Track
	var last uint32
	for _, evt := range events {
		delta := evt.tick - last
		last = evt.tick
		if evt.off {
			track.Add(delta, midi.NoteOff(opts.Channel, evt.key))
		} else {
			track.Add(delta, midi.NoteOn(opts.Channel, evt.key, opts.Velocity))
		}
	}
	track.Close(0)
	return track
}

// Write renders the SMF to w.
func Write(s *smf.SMF, w io.Writer) error {
	_, err := s.WriteTo(w)
	return err
}
