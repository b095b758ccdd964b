package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	domain "github.com/agencyhub/lead-import/internal/domain/lead"
)

// ColumnFiles names one local text file per column. Only Usernames is
// required; empty paths leave the column blank.
type ColumnFiles struct {
	Usernames   string
	Followers   string
	Following   string
	Posts       string
	FullNames   string
	Bios        string
	ProfileURLs string
}

type LocalColumnSource struct {
	BaseDir string
}

func NewLocalColumnSource(baseDir string) *LocalColumnSource {
	if baseDir == "" {
		baseDir = "."
	}
	return &LocalColumnSource{BaseDir: baseDir}
}

// Read loads the named files into a raw column set for the pipeline.
func (s *LocalColumnSource) Read(ctx context.Context, files ColumnFiles) (domain.ColumnSet, error) {
	_ = ctx

	if files.Usernames == "" {
		return domain.ColumnSet{}, errors.New("usernames file is required")
	}

	columns := domain.ColumnSet{}
	for _, col := range []struct {
		path string
		dst  *string
	}{
		{files.Usernames, &columns.Usernames},
		{files.Followers, &columns.Followers},
		{files.Following, &columns.Following},
		{files.Posts, &columns.Posts},
		{files.FullNames, &columns.FullNames},
		{files.Bios, &columns.Bios},
		{files.ProfileURLs, &columns.ProfileURLs},
	} {
		if col.path == "" {
			continue
		}
		raw, err := s.readFile(col.path)
		if err != nil {
			return domain.ColumnSet{}, err
		}
		*col.dst = raw
	}

	return columns, nil
}

func (s *LocalColumnSource) readFile(path string) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.BaseDir, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read column file %s: %w", path, err)
	}
	return string(raw), nil
}
