package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/mccutchen/vokram/pkg/words"
)

// feedCorpus ingests the named corpus files into the chain, or stdin when no
// files are given. Reading from an interactive terminal is almost always a
// mistake, so a terminal stdin is refused.
func feedCorpus(chain *words.Chain, paths []string) error {
	if len(paths) == 0 {
		fd := os.Stdin.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return errors.New("no corpus files given and stdin is a terminal; pass files or pipe text in")
		}
		if err := chain.Feed(os.Stdin); err != nil {
			return fmt.Errorf("read corpus from stdin: %w", err)
		}
		return nil
	}

	showProgress := shouldShowProgress()
	for _, path := range paths {
		if err := feedFile(chain, path, showProgress); err != nil {
			return err
		}
	}
	return nil
}

func feedFile(chain *words.Chain, path string, showProgress bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open corpus file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if showProgress {
		// Only regular files have a useful size to count down from.
		if info, statErr := f.Stat(); statErr == nil && info.Mode().IsRegular() {
			bar := newCorpusBar(info.Size(), filepath.Base(path))
			reader = io.TeeReader(f, bar)
			defer func() { _ = bar.Finish() }()
		}
	}

	if err := chain.Feed(reader); err != nil {
		return fmt.Errorf("read corpus file %s: %w", path, err)
	}
	return nil
}

func shouldShowProgress() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func newCorpusBar(size int64, name string) *progressbar.ProgressBar {
	return progressbar.NewOptions64(size,
		progressbar.OptionSetDescription("Reading "+name),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
