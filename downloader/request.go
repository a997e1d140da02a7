package downloader

// Request describes a single download, built once per run
type Request struct {
	URL       string
	Quality   Quality
	AudioOnly bool
	Playlist  bool
	OutputDir string
}
