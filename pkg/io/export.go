package io

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/matzehuels/drawrows/pkg/core/rows"
	"github.com/matzehuels/drawrows/pkg/errors"
)

// Default output file names.
const (
	DefaultRowsFile     = "PartA.txt"
	DefaultSegmentsFile = "PartB.txt"
)

// WriteRows writes one row number per line.
func WriteRows(w io.Writer, rowNums []int) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, r := range rowNums {
		buf = strconv.AppendInt(buf[:0], int64(r), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("write rows: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return nil
}

// WriteSegments writes one "low<TAB>high<TAB>depth" line per segment.
func WriteSegments(w io.Writer, segs []rows.Segment) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, s := range segs {
		buf = strconv.AppendInt(buf[:0], s.Low, 10)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, s.High, 10)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(s.Depth), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("write segments: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write segments: %w", err)
	}
	return nil
}

// RenderText renders both text outputs of res into memory.
func RenderText(res *rows.Result) (rowData, segData []byte, err error) {
	var rb, sb bytes.Buffer
	if err := WriteRows(&rb, res.Rows); err != nil {
		return nil, nil, err
	}
	if err := WriteSegments(&sb, res.Segments); err != nil {
		return nil, nil, err
	}
	return rb.Bytes(), sb.Bytes(), nil
}

// Export writes every file in files (name to content) into dir and returns
// the written paths sorted by name. Files are staged as temporaries and
// renamed only once all of them were written. On failure the staged files
// and any file already moved into place by this call are removed.
func Export(dir string, files map[string][]byte) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeResourceUnavailable, err, "create output directory %s", dir)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		if err := errors.ValidateFilename(name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	sort.Strings(names)

	staged := make(map[string]string, len(names))
	cleanup := func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}

	for _, name := range names {
		tmp, err := stage(dir, name, files[name])
		if err != nil {
			cleanup()
			return nil, err
		}
		staged[name] = tmp
	}

	paths := make([]string, 0, len(names))
	for _, name := range names {
		dst := filepath.Join(dir, name)
		if err := os.Rename(staged[name], dst); err != nil {
			cleanup()
			for _, done := range paths {
				_ = os.Remove(done)
			}
			return nil, errors.Wrap(errors.ErrCodeResourceUnavailable, err, "create %s", dst)
		}
		delete(staged, name)
		paths = append(paths, dst)
	}
	return paths, nil
}

func stage(dir, name string, data []byte) (string, error) {
	f, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeResourceUnavailable, err, "create %s", filepath.Join(dir, name))
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", errors.Wrap(errors.ErrCodeResourceUnavailable, err, "write %s", filepath.Join(dir, name))
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", errors.Wrap(errors.ErrCodeResourceUnavailable, err, "write %s", filepath.Join(dir, name))
	}
	if err := os.Chmod(f.Name(), 0644); err != nil {
		os.Remove(f.Name())
		return "", errors.Wrap(errors.ErrCodeResourceUnavailable, err, "write %s", filepath.Join(dir, name))
	}
	return f.Name(), nil
}
