// Package fetch makes the raw access log available locally: it downloads
// the gzip archive when missing, decompresses it and transcodes the
// ISO-8859-1 text to UTF-8.
package fetch

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type Fetcher struct {
	url     string
	gzPath  string
	logPath string
}

func NewFetcher(url, gzPath, logPath string) *Fetcher {
	return &Fetcher{
		url:     url,
		gzPath:  gzPath,
		logPath: logPath,
	}
}

// Ensure is a no-op when the plain log file already exists.
func (f *Fetcher) Ensure() error {
	if _, err := os.Stat(f.logPath); err == nil {
		return nil
	}

	if _, err := os.Stat(f.gzPath); err != nil {
		log.Printf("Downloading %s", f.url)
		if err := f.download(); err != nil {
			return err
		}
	}

	log.Printf("Decompressing %s", f.gzPath)
	return f.decompress()
}

func (f *Fetcher) download() error {
	resp, err := http.Get(f.url)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", f.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download %s: unexpected status %s", f.url, resp.Status)
	}

	out, err := os.Create(f.gzPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", f.gzPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to save %s: %w", f.gzPath, err)
	}
	return nil
}

func (f *Fetcher) decompress() error {
	in, err := os.Open(f.gzPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", f.gzPath, err)
	}
	defer in.Close()

	gz, err := gzip.NewReader(in)
	if err != nil {
		return fmt.Errorf("failed to read gzip %s: %w", f.gzPath, err)
	}
	defer gz.Close()

	out, err := os.Create(f.logPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", f.logPath, err)
	}
	defer out.Close()

	// The NASA traces are ISO-8859-1; transcode so the parser sees UTF-8.
	decoded := transform.NewReader(gz, charmap.ISO8859_1.NewDecoder())
	if _, err := io.Copy(out, decoded); err != nil {
		return fmt.Errorf("failed to decompress %s: %w", f.gzPath, err)
	}
	return nil
}
