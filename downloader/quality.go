package downloader

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

type Quality int

var _ pflag.Value = (*Quality)(nil)

const (
	QualityBest Quality = iota
	Quality1080p
	Quality720p
	Quality480p
)

var qualities = map[Quality]struct {
	label  string
	height int
}{
	QualityBest:  {"best", 0},
	Quality1080p: {"1080p", 1080},
	Quality720p:  {"720p", 720},
	Quality480p:  {"480p", 480},
}

// Qualities lists the accepted quality labels, best first
func Qualities() []string {
	return []string{
		QualityBest.String(),
		Quality1080p.String(),
		Quality720p.String(),
		Quality480p.String(),
	}
}

func ParseQuality(label string) (Quality, error) {
	for quality, data := range qualities {
		if label == data.label {
			return quality, nil
		}
	}
	return QualityBest, fmt.Errorf("invalid quality %q (choose from %s)", label, strings.Join(Qualities(), ", "))
}

func (q Quality) String() string {
	return qualities[q].label
}

// Height returns the maximum vertical resolution, 0 meaning uncapped
func (q Quality) Height() int {
	return qualities[q].height
}

func (q *Quality) Set(label string) error {
	quality, err := ParseQuality(label)
	if err != nil {
		return err
	}
	*q = quality
	return nil
}

func (*Quality) Type() string {
	return "quality"
}
