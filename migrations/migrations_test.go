package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func TestFSListsMigrationsInOrder(t *testing.T) {
	entries, err := fs.ReadDir(FS(), ".")
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no migrations embedded")
	}

	prev := ""
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".sql") {
			t.Errorf("unexpected file %q", name)
		}
		if name <= prev {
			t.Errorf("%q sorts before %q", name, prev)
		}
		prev = name

		body, err := fs.ReadFile(FS(), name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !strings.Contains(string(body), "-- +goose Up") || !strings.Contains(string(body), "-- +goose Down") {
			t.Errorf("%s is missing goose annotations", name)
		}
	}
}
