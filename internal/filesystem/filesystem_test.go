package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/minigrep/internal/pathfilter"
	"github.com/taigrr/minigrep/internal/types"
)

func setupTestRoot(t *testing.T) (string, *Service) {
	t.Helper()
	tmpDir := t.TempDir()
	return tmpDir, New(tmpDir, nil)
}

func writeFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
}

func TestReadFile(t *testing.T) {
	t.Run("reads whole file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "poem.txt")
		want := "Rust:\nsafe, fast, productive.\nPick three.\n"
		writeFile(t, path, []byte(want))

		got, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if got != want {
			t.Errorf("ReadFile() = %q, want %q", got, want)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		writeFile(t, path, nil)

		got, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if got != "" {
			t.Errorf("ReadFile() = %q, want empty", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.txt")

		_, err := ReadFile(path)
		var re *ReadError
		if !errors.As(err, &re) {
			t.Fatalf("ReadFile() error = %v, want *ReadError", err)
		}
		if re.Kind != KindNotFound {
			t.Errorf("Kind = %q, want %q", re.Kind, KindNotFound)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Error("errors.Is(err, fs.ErrNotExist) = false, want true")
		}
		if !strings.Contains(err.Error(), "nope.txt") {
			t.Errorf("Error() = %q, want it to name the file", err.Error())
		}
	})

	t.Run("directory", func(t *testing.T) {
		_, err := ReadFile(t.TempDir())
		var re *ReadError
		if !errors.As(err, &re) {
			t.Fatalf("ReadFile() error = %v, want *ReadError", err)
		}
		if re.Kind != KindIsDirectory {
			t.Errorf("Kind = %q, want %q", re.Kind, KindIsDirectory)
		}
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bin.dat")
		writeFile(t, path, []byte{'o', 'k', '\n', 0xff, 0xfe, '\n'})

		_, err := ReadFile(path)
		var re *ReadError
		if !errors.As(err, &re) {
			t.Fatalf("ReadFile() error = %v, want *ReadError", err)
		}
		if re.Kind != KindInvalidEncoding {
			t.Errorf("Kind = %q, want %q", re.Kind, KindInvalidEncoding)
		}
		if !errors.Is(err, ErrInvalidEncoding) {
			t.Error("errors.Is(err, ErrInvalidEncoding) = false, want true")
		}
	})

	t.Run("permission denied", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("root ignores file permissions")
		}
		path := filepath.Join(t.TempDir(), "locked.txt")
		writeFile(t, path, []byte("secret"))
		if err := os.Chmod(path, 0o000); err != nil {
			t.Fatalf("Chmod() error = %v", err)
		}

		_, err := ReadFile(path)
		var re *ReadError
		if !errors.As(err, &re) {
			t.Fatalf("ReadFile() error = %v, want *ReadError", err)
		}
		if re.Kind != KindPermission {
			t.Errorf("Kind = %q, want %q", re.Kind, KindPermission)
		}
	})
}

func TestService_ResolvePath(t *testing.T) {
	tmpDir, svc := setupTestRoot(t)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"simple", "poem.txt", filepath.Join(tmpDir, "poem.txt"), false},
		{"nested", "a/b/c.txt", filepath.Join(tmpDir, "a", "b", "c.txt"), false},
		{"leading slash", "/poem.txt", filepath.Join(tmpDir, "poem.txt"), false},
		{"whitespace trimmed", "  poem.txt ", filepath.Join(tmpDir, "poem.txt"), false},
		{"dot dot inside root", "a/../poem.txt", filepath.Join(tmpDir, "poem.txt"), false},
		{"dotted file name", "..notes.txt", filepath.Join(tmpDir, "..notes.txt"), false},
		{"traversal", "../outside.txt", "", true},
		{"deep traversal", "a/../../outside.txt", "", true},
		{"parent", "..", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ResolvePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolvePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolvePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestService_ReadFile(t *testing.T) {
	t.Run("reads inside root", func(t *testing.T) {
		tmpDir, svc := setupTestRoot(t)
		writeFile(t, filepath.Join(tmpDir, "docs", "poem.txt"), []byte("Pick three."))

		got, err := svc.ReadFile("docs/poem.txt")
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if got != "Pick three." {
			t.Errorf("ReadFile() = %q, want %q", got, "Pick three.")
		}
	})

	t.Run("rejects traversal", func(t *testing.T) {
		_, svc := setupTestRoot(t)

		_, err := svc.ReadFile("../../etc/passwd")
		if err == nil || !strings.Contains(err.Error(), "path traversal") {
			t.Errorf("ReadFile() error = %v, want path traversal error", err)
		}
	})

	t.Run("rejects filtered path", func(t *testing.T) {
		tmpDir, svc := setupTestRoot(t)
		writeFile(t, filepath.Join(tmpDir, ".git", "config"), []byte("[core]"))

		_, err := svc.ReadFile(".git/config")
		if err == nil || !strings.Contains(err.Error(), "access denied") {
			t.Errorf("ReadFile() error = %v, want access denied", err)
		}
	})

	t.Run("honors custom filter", func(t *testing.T) {
		tmpDir := t.TempDir()
		svc := New(tmpDir, pathfilter.New(&types.PathFilterConfig{
			AllowedExtensions: []string{".txt"},
		}))
		writeFile(t, filepath.Join(tmpDir, "main.go"), []byte("package main"))

		if _, err := svc.ReadFile("main.go"); err == nil {
			t.Error("ReadFile(main.go) error = nil, want access denied")
		}
	})

	t.Run("filters the resolved path", func(t *testing.T) {
		tmpDir := t.TempDir()
		svc := New(tmpDir, pathfilter.New(&types.PathFilterConfig{
			IgnoredPatterns: []string{"secret/*"},
		}))
		writeFile(t, filepath.Join(tmpDir, "secret", "keys.txt"), []byte("hunter2"))

		for _, path := range []string{"secret/keys.txt", "sub/../secret/keys.txt", "./secret/./keys.txt"} {
			_, err := svc.ReadFile(path)
			if err == nil || !strings.Contains(err.Error(), "access denied") {
				t.Errorf("ReadFile(%q) error = %v, want access denied", path, err)
			}
		}
	})

	t.Run("missing file reports relative path", func(t *testing.T) {
		_, svc := setupTestRoot(t)

		_, err := svc.ReadFile("missing.txt")
		var re *ReadError
		if !errors.As(err, &re) {
			t.Fatalf("ReadFile() error = %v, want *ReadError", err)
		}
		if re.Path != "missing.txt" {
			t.Errorf("Path = %q, want %q", re.Path, "missing.txt")
		}
	})
}
