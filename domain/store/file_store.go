package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// DefaultPath is where discovered links are appended when nothing else is configured.
const DefaultPath = "edstem_links.txt"

var ErrClosed = errors.New("store closed")

// FileStore appends one link per line to a text file. Links already present
// in the file when it is opened count as stored, so reruns never duplicate them.
type FileStore struct {
	mu       sync.Mutex
	file     *os.File
	seenUrls map[string]struct{}
	links    []string
}

func OpenFileStore(path string) (*FileStore, error) {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	s := &FileStore{
		file:     f,
		seenUrls: make(map[string]struct{}),
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, ok := s.seenUrls[line]; ok {
			continue
		}
		s.seenUrls[line] = struct{}{}
		s.links = append(s.links, line)
	}
	if err := scanner.Err(); err != nil {
		f.Close()
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := terminateLastLine(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("repairing %s: %w", path, err)
	}
	return s, nil
}

// terminateLastLine appends a newline when the file ends mid-line, so the
// next link starts on a line of its own.
func terminateLastLine(f *os.File) error {
	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return err
	}
	if last[0] == '\n' {
		return nil
	}
	_, err = f.WriteString("\n")
	return err
}

// InsertIfAbsent writes link as a new line unless it has been stored before.
// The duplicate check and the write happen under one lock.
func (s *FileStore) InsertIfAbsent(_ context.Context, link string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return false, ErrClosed
	}
	if _, ok := s.seenUrls[link]; ok {
		return false, nil
	}
	if _, err := s.file.WriteString(link + "\n"); err != nil {
		return false, fmt.Errorf("appending to %s: %w", s.file.Name(), err)
	}
	s.seenUrls[link] = struct{}{}
	s.links = append(s.links, link)
	return true, nil
}

func (s *FileStore) Links(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.links))
	copy(out, s.links)
	return out, nil
}

// Close flushes the file to disk. Further inserts fail with ErrClosed.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	f := s.file
	s.file = nil
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
