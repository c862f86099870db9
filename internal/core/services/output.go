package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/domain"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driven"
	"github.com/VNAZZARENO/scraping-crowd-lending/internal/core/ports/driving"
)

// formatFor resolves the output format: an explicit format wins, then the
// path extension, then csv.
func formatFor(path, format string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return domain.FormatXLSX
	}
	return domain.FormatCSV
}

func writerIndex(writers []driven.DatasetWriter) map[string]driven.DatasetWriter {
	m := make(map[string]driven.DatasetWriter, len(writers))
	for _, w := range writers {
		m[w.Format()] = w
	}
	return m
}

func lookupWriter(writers map[string]driven.DatasetWriter, format string) (driven.DatasetWriter, error) {
	w, ok := writers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	return w, nil
}

// writeDataset writes ds to path through a hidden temporary file in the same
// directory, so readers never see a half-written table. It returns the hex
// SHA-256 of the bytes written.
func writeDataset(ctx context.Context, w driven.DatasetWriter, path string, ds *domain.Dataset) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempPattern(path))
	if err != nil {
		return "", fmt.Errorf("creating temporary output: %w", err)
	}
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}

	h := sha256.New()
	if err := w.Write(ctx, io.MultiWriter(tmp, h), ds); err != nil {
		cleanup()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		cleanup()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("replacing %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func tempPattern(path string) string {
	return "." + filepath.Base(path) + ".*.tmp"
}

// discoveryFor returns the request's discovery options with the output
// table and its temporary files excluded.
func discoveryFor(req driving.RunRequest) domain.DiscoveryOptions {
	opts := req.Discovery
	if req.Output == "" {
		return opts
	}
	exclude := opts.Exclude
	opts.Exclude = func(path string) bool {
		return isOutputFile(path, req.Output) || (exclude != nil && exclude(path))
	}
	return opts
}

// isOutputFile reports whether path is the output table or one of its
// temporary files.
func isOutputFile(path, output string) bool {
	if output == "" {
		return false
	}
	p, err1 := filepath.Abs(path)
	o, err2 := filepath.Abs(output)
	if err1 != nil || err2 != nil {
		return false
	}
	if p == o {
		return true
	}
	if filepath.Dir(p) != filepath.Dir(o) {
		return false
	}
	base := filepath.Base(p)
	return strings.HasPrefix(base, "."+filepath.Base(o)+".") && strings.HasSuffix(base, ".tmp")
}
