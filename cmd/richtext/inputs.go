package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/richtext"
)

// inputs concatenates every input argument. All of them are opened before the
// first byte is read so a bad argument fails before any output is written.
type inputs struct {
	io.Reader
	closers []io.Closer
}

func (in *inputs) Close() error {
	errs := make([]error, 0, len(in.closers))
	for _, c := range in.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// openInputs opens args in order; no args, or "-", means stdin.
func openInputs(ctx context.Context, args []string) (*inputs, error) {
	if len(args) == 0 {
		return &inputs{Reader: os.Stdin}, nil
	}
	in := &inputs{}
	readers := make([]io.Reader, 0, len(args))
	for _, arg := range args {
		rc, err := openInput(ctx, strings.TrimSpace(arg))
		if err != nil {
			_ = in.Close()
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		readers = append(readers, rc)
		in.closers = append(in.closers, rc)
	}
	in.Reader = io.MultiReader(readers...)
	return in, nil
}

func openInput(ctx context.Context, arg string) (io.ReadCloser, error) {
	switch {
	case arg == "":
		return nil, errors.New("empty input argument")
	case arg == "-":
		return io.NopCloser(os.Stdin), nil
	}
	if u, err := url.Parse(arg); err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return richtext.OpenURL(ctx, nil, arg)
		case "file":
			p := u.Path
			if p == "" {
				p = u.Opaque
			}
			return os.Open(filepath.FromSlash(p))
		}
	}
	p, err := localPath(arg)
	if err != nil {
		return nil, err
	}
	return os.Open(p)
}

type stdoutWriter struct{ io.Writer }

func (stdoutWriter) Close() error { return nil }

// createOutput returns stdout for "" or "-", otherwise it creates path and any
// missing parent directories.
func createOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return stdoutWriter{os.Stdout}, nil
	}
	p, err := localPath(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return nil, err
	}
	return os.Create(p)
}

// localPath expands a leading ~ and makes p absolute.
func localPath(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, "~"+string(filepath.Separator)) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(home, p[1:])
	}
	return filepath.Abs(p)
}
