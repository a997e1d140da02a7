package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/streambinder/ytfetch/config"
	"github.com/streambinder/ytfetch/downloader"
	"github.com/streambinder/ytfetch/prompt"
	"github.com/streambinder/ytfetch/sys"
	syscmd "github.com/streambinder/ytfetch/sys/cmd"
)

const version = "1.0.0"

func Execute() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return run(cmdRoot(cfg, syscmd.System()), cfg)
}

func run(cmd *cobra.Command, cfg *config.Config) int {
	return report(cmd.ErrOrStderr(), cmd.Execute(), cfg.DependencyPackages())
}

func cmdRoot(cfg *config.Config, runner syscmd.Runner) *cobra.Command {
	var quality downloader.Quality
	cmd := &cobra.Command{
		Use:   "ytfetch URL",
		Short: "Download videos from YouTube",
		Example: strings.Join([]string{
			`  ytfetch "https://www.youtube.com/watch?v=VIDEO_ID"`,
			`  ytfetch "URL" -q 720p -o ~/Downloads`,
			`  ytfetch "URL" --audio-only`,
			`  ytfetch "URL" --list-formats`,
			`  ytfetch "PLAYLIST_URL" --playlist`,
		}, "\n"),
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				url            = args[0]
				outputDir, _   = cmd.Flags().GetString("output-dir")
				audioOnly, _   = cmd.Flags().GetBool("audio-only")
				playlist, _    = cmd.Flags().GetBool("playlist")
				listFormats, _ = cmd.Flags().GetBool("list-formats")
				verbose, _     = cmd.Flags().GetBool("verbose")
				ctx            = cmd.Context()
			)
			log.SetOutput(sys.Ternary(verbose, cmd.ErrOrStderr(), io.Discard))

			if err := syscmd.ValidateEnvironment(ctx, runner, cfg.Dependencies()...); err != nil {
				return err
			}

			client := downloader.New(cfg.Downloader, runner)
			if listFormats {
				return interruptible(ctx, func(ctx context.Context) error {
					return client.ListFormats(ctx, url)
				})
			}

			if !cmd.Flags().Changed("quality") && !audioOnly {
				stop := sys.TrapSignal(os.Interrupt, func() {
					os.Exit(report(cmd.ErrOrStderr(), sys.ErrCancelled, cfg.DependencyPackages()))
				})
				var err error
				quality, audioOnly, err = prompt.Quality(cmd.InOrStdin(), cmd.OutOrStdout())
				stop()
				if err != nil {
					return err
				}
			}

			request := downloader.Request{
				URL:       url,
				Quality:   quality,
				AudioOnly: audioOnly,
				Playlist:  playlist,
				OutputDir: outputDir,
			}
			summary(cmd.OutOrStdout(), request)
			if err := interruptible(ctx, func(ctx context.Context) error {
				return client.Download(ctx, request)
			}); err != nil {
				return err
			}

			return sys.ErrOnly(color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "\nDownload complete!\n"))
		},
	}
	cmd.Flags().VarP(&quality, "quality", "q", "Video quality: "+strings.Join(downloader.Qualities(), ", ")+" (default: prompt user)")
	cmd.Flags().StringP("output-dir", "o", cfg.OutputDir, "Output directory")
	cmd.Flags().BoolP("audio-only", "a", false, "Download audio only ("+strings.ToUpper(downloader.AudioFormat)+")")
	cmd.Flags().BoolP("playlist", "p", false, "Download entire playlist")
	cmd.Flags().BoolP("list-formats", "l", false, "List available formats and exit")
	cmd.Flags().BoolP("verbose", "v", false, "Print debug logs")
	return cmd
}

// interruptible runs f with a context cancelled on SIGINT,
// leaving the child process to react to the interrupt itself
func interruptible(ctx context.Context, f func(context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	return f(ctx)
}

func summary(w io.Writer, request downloader.Request) {
	fmt.Fprintln(w, "Downloading from:", request.URL)
	if request.AudioOnly {
		fmt.Fprintf(w, "Mode: Audio only (%s)\n", strings.ToUpper(downloader.AudioFormat))
	} else {
		fmt.Fprintln(w, "Quality:", request.Quality)
	}
	fmt.Fprintf(w, "Output directory: %s\n\n", sys.AbsPath(request.OutputDir))
}
