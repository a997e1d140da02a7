package downloader

import (
	"fmt"
	"path/filepath"
)

const (
	AudioFormat     = "mp3"
	OutputTemplate  = "%(title)s.%(ext)s"
	formatAudio     = "bestaudio"
	formatBest      = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"
	formatCapped    = "bestvideo[height<=%[1]d][ext=mp4]+bestaudio[ext=m4a]/best[height<=%[1]d]"
	flagNoPlaylist  = "--no-playlist"
	flagListFormats = "-F"
)

// Arguments maps a request to the downloader command line,
// the URL being always the last element
func Arguments(request Request) []string {
	var args []string
	if request.AudioOnly {
		args = append(args,
			"-f", formatAudio,
			"--extract-audio",
			"--audio-format", AudioFormat,
			"--audio-quality", "0",
		)
	} else {
		args = append(args, "-f", Selector(request.Quality))
	}

	args = append(args, "-o", filepath.Join(request.OutputDir, OutputTemplate))
	if !request.Playlist {
		args = append(args, flagNoPlaylist)
	}
	return append(args, request.URL)
}

// Selector returns the format fallback chain for the given video quality
func Selector(quality Quality) string {
	if quality.Height() == 0 {
		return formatBest
	}
	return fmt.Sprintf(formatCapped, quality.Height())
}
