package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	infrafile "github.com/agencyhub/lead-import/internal/infrastructure/file"
)

func TestLocalColumnSourceRead(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "usernames.txt", "alice\nbob\n")
	writeFile(t, dir, "followers.txt", "100\n200\n")

	source := infrafile.NewLocalColumnSource(dir)
	columns, err := source.Read(context.Background(), infrafile.ColumnFiles{
		Usernames: "usernames.txt",
		Followers: "followers.txt",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if columns.Usernames != "alice\nbob\n" {
		t.Fatalf("unexpected usernames column: %q", columns.Usernames)
	}
	if columns.Followers != "100\n200\n" {
		t.Fatalf("unexpected followers column: %q", columns.Followers)
	}
	if columns.Bios != "" {
		t.Fatalf("expected empty bios column, got %q", columns.Bios)
	}
}

func TestLocalColumnSourceRequiresUsernames(t *testing.T) {
	t.Parallel()

	source := infrafile.NewLocalColumnSource(t.TempDir())

	if _, err := source.Read(context.Background(), infrafile.ColumnFiles{}); err == nil {
		t.Fatal("expected error without a usernames file")
	}
}

func TestLocalColumnSourceMissingFile(t *testing.T) {
	t.Parallel()

	source := infrafile.NewLocalColumnSource(t.TempDir())

	_, err := source.Read(context.Background(), infrafile.ColumnFiles{Usernames: "missing.txt"})
	if err == nil {
		t.Fatal("expected error for a missing file")
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
