package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.txt")

	var content strings.Builder
	var all []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		all = append(all, line)
	}
	if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		want     []string
	}{
		{"zero", 0, nil},
		{"negative", -1, nil},
		{"partial", 5, all[5:]},
		{"exact", 10, all},
		{"more than exists", 20, all},
		{"one", 1, all[9:]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadTail(path, tt.maxLines)
			if err != nil {
				t.Fatalf("ReadTail() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ReadTail() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadTail_MissingFile(t *testing.T) {
	got, err := ReadTail(filepath.Join(t.TempDir(), "nope.txt"), 10)
	if err != nil {
		t.Fatalf("ReadTail() error = %v, want nil", err)
	}
	if got != nil {
		t.Fatalf("ReadTail() = %v, want nil", got)
	}
}

func TestReadTail_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := ReadTail(path, 10)
	if err != nil {
		t.Fatalf("ReadTail() error = %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ReadTail() = %v, want empty", got)
	}
}
