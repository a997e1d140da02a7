package downloader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func BenchmarkArguments(b *testing.B) {
	for i := 0; i < b.N; i++ {
		TestArguments720p(&testing.T{})
		TestArgumentsAudioOnly(&testing.T{})
	}
}

func requests() []Request {
	var requests []Request
	for _, quality := range []Quality{QualityBest, Quality1080p, Quality720p, Quality480p} {
		for _, audioOnly := range []bool{false, true} {
			for _, playlist := range []bool{false, true} {
				requests = append(requests, Request{
					URL:       "https://x/watch?v=1",
					Quality:   quality,
					AudioOnly: audioOnly,
					Playlist:  playlist,
					OutputDir: "/tmp/videos",
				})
			}
		}
	}
	return requests
}

func TestArguments720p(t *testing.T) {
	args := Arguments(Request{URL: "https://x/watch?v=1", Quality: Quality720p, OutputDir: "/tmp/videos"})
	assert.Equal(t, []string{
		"-f", "bestvideo[height<=720][ext=mp4]+bestaudio[ext=m4a]/best[height<=720]",
		"-o", "/tmp/videos/%(title)s.%(ext)s",
		"--no-playlist",
		"https://x/watch?v=1",
	}, args)
}

func TestArgumentsBest(t *testing.T) {
	args := Arguments(Request{URL: "https://x/playlist?list=1", Playlist: true, OutputDir: "/tmp/videos"})
	assert.Equal(t, []string{
		"-f", "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best",
		"-o", "/tmp/videos/%(title)s.%(ext)s",
		"https://x/playlist?list=1",
	}, args)
}

func TestArgumentsAudioOnly(t *testing.T) {
	args := Arguments(Request{URL: "https://x/watch?v=1", Quality: Quality480p, AudioOnly: true, OutputDir: "/tmp/videos"})
	assert.Equal(t, []string{
		"-f", "bestaudio",
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", "0",
		"-o", "/tmp/videos/%(title)s.%(ext)s",
		"--no-playlist",
		"https://x/watch?v=1",
	}, args)
}

func TestArgumentsDeterministic(t *testing.T) {
	for _, request := range requests() {
		assert.Equal(t, Arguments(request), Arguments(request))
	}
}

func TestArgumentsModesExclusive(t *testing.T) {
	for _, request := range requests() {
		joined := strings.Join(Arguments(request), " ")
		if request.AudioOnly {
			assert.NotContains(t, joined, "height<=")
			assert.NotContains(t, joined, "bestvideo")
		} else {
			assert.NotContains(t, joined, "--extract-audio")
			assert.NotContains(t, joined, "--audio-format")
		}
	}
}

func TestArgumentsOutputTemplate(t *testing.T) {
	for _, request := range requests() {
		args := Arguments(request)
		for i, arg := range args {
			if arg == "-o" {
				assert.True(t, strings.HasPrefix(args[i+1], request.OutputDir+"/"))
				assert.Contains(t, args[i+1], "%(title)s")
				assert.Contains(t, args[i+1], "%(ext)s")
			}
		}
	}
}

func TestArgumentsPlaylist(t *testing.T) {
	for _, request := range requests() {
		args := Arguments(request)
		assert.Equal(t, !request.Playlist, contains(args, "--no-playlist"))
		assert.Equal(t, request.URL, args[len(args)-1])
	}
}

func contains(args []string, flag string) bool {
	for _, arg := range args {
		if arg == flag {
			return true
		}
	}
	return false
}

func TestSelector(t *testing.T) {
	assert.Equal(t, formatBest, Selector(QualityBest))
	assert.Contains(t, Selector(Quality1080p), "bestvideo[height<=1080]")
	assert.Contains(t, Selector(Quality1080p), "/best[height<=1080]")
}
