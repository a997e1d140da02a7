package prompt

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/streambinder/ytfetch/downloader"
	"github.com/streambinder/ytfetch/sys"
)

type choice struct {
	label     string
	quality   downloader.Quality
	audioOnly bool
}

var choices = []choice{
	{"Best (highest quality available)", downloader.QualityBest, false},
	{"1080p (Full HD)", downloader.Quality1080p, false},
	{"720p (HD)", downloader.Quality720p, false},
	{"480p (SD)", downloader.Quality480p, false},
	{"Audio only (" + strings.ToUpper(downloader.AudioFormat) + ")", downloader.QualityBest, true},
}

// Quality shows the quality menu and blocks until a valid choice is read.
// Closing the input yields sys.ErrCancelled.
func Quality(in io.Reader, out io.Writer) (downloader.Quality, bool, error) {
	sys.ErrSuppress(sys.ErrOnly(color.New(color.FgCyan, color.Bold).Fprintf(out, "\nSelect video quality:\n")))
	for i, choice := range choices {
		fmt.Fprintf(out, "  %d. %s\n", i+1, choice.label)
	}

	for {
		fmt.Fprintf(out, "\nEnter your choice (1-%d): ", len(choices))
		text, err := readLine(in)
		if err != nil && (!errors.Is(err, io.EOF) || len(text) == 0) {
			return downloader.QualityBest, false, sys.Ternary(errors.Is(err, io.EOF), sys.ErrCancelled, err)
		}

		if index, err := strconv.Atoi(strings.TrimSpace(text)); err == nil && index >= 1 && index <= len(choices) {
			log.Printf("[prompt]\tselected %q", choices[index-1].label)
			return choices[index-1].quality, choices[index-1].audioOnly, nil
		}
		sys.ErrSuppress(sys.ErrOnly(color.New(color.FgRed).Fprintf(out, "Invalid choice. Please enter a number between 1-%d.\n", len(choices))))
	}
}

// readLine consumes one byte at a time so that nothing past
// the newline is taken away from whoever reads in next
func readLine(in io.Reader) (string, error) {
	var (
		line strings.Builder
		char = make([]byte, 1)
	)
	for {
		n, err := in.Read(char)
		if n > 0 {
			if char[0] == '\n' {
				return line.String(), nil
			}
			line.WriteByte(char[0])
		}
		if err != nil {
			return line.String(), err
		}
	}
}
