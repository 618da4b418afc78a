package file

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsphweid/povel/midi"
	"github.com/jsphweid/povel/rhythm"
)

var MidiExts = []string{".mid", ".midi"}

// Sequence is the YAML form of a single rhythm: either absolute onsets or
// beat durations with an inter-beat interval.
type Sequence struct {
	Onsets []float64 `yaml:"onsets"`
	Beats  []float64 `yaml:"beats"`
	IBI    float64   `yaml:"ibi"`
}

func (s Sequence) ToOnsets() ([]float64, error) {
	if len(s.Onsets) > 0 {
		return s.Onsets, nil
	}
	ibi := s.IBI
	if ibi == 0 {
		ibi = 1
	}
	return rhythm.SeqToBeats(ibi, s.Beats)
}

// LoadOnsets reads onsets from a MIDI file, a YAML sequence or a text file of
// numbers separated by whitespace or commas (# starts a comment).
func LoadOnsets(path string, opts midi.Options) ([]float64, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); {
	case hasExt(MidiExts, ext):
		s, err := midi.ReadMidiFile(path)
		if err != nil {
			return nil, err
		}
		return midi.Onsets(s, opts)
	case ext == ".yaml" || ext == ".yml":
		dat, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var seq Sequence
		if err := yaml.Unmarshal(dat, &seq); err != nil {
			return nil, fmt.Errorf("could not parse %v: %w", path, err)
		}
		return seq.ToOnsets()
	default:
		dat, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return ParseNumbers(dat)
	}
}

func ParseNumbers(dat []byte) ([]float64, error) {
	var res []float64
	scanner := bufio.NewScanner(bytes.NewReader(dat))
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			res = append(res, v)
		}
	}
	return res, scanner.Err()
}

// GatherPaths walks dir and returns files with one of exts, at most maxNum
// of them (0 means all).
func GatherPaths(dir string, exts []string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasExt(exts, strings.ToLower(filepath.Ext(s))) {
			if maxNum == 0 || len(res) < maxNum {
				res = append(res, s)
			}
		}
		return nil
	}
	if err := filepath.WalkDir(dir, walk); err != nil {
		return nil, fmt.Errorf("error walking %v: %w", dir, err)
	}
	return res, nil
}

func hasExt(exts []string, ext string) bool {
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}
