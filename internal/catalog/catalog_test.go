package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zhubert/launchpad/internal/errors"
)

func writeFile(t *testing.T, path, content string, mode os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestNew_SortsAndNormalizes(t *testing.T) {
	c, err := New(
		Item{Name: "vim", Command: "vim"},
		Item{Name: "Btop", Command: "btop"},
		Item{Command: "/usr/bin/htop"},
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	want := []string{"Btop", "htop", "vim"}
	if c.Size() != len(want) {
		t.Fatalf("Size() = %d, want %d", c.Size(), len(want))
	}
	for i, name := range want {
		it, ok := c.At(i)
		if !ok {
			t.Fatalf("At(%d) missing", i)
		}
		if it.Name != name {
			t.Errorf("At(%d).Name = %q, want %q", i, it.Name, name)
		}
		if it.ID == "" {
			t.Errorf("At(%d) has no ID", i)
		}
	}

	if it, _ := c.At(1); it.Icon != "H" {
		t.Errorf("default icon = %q, want %q", it.Icon, "H")
	}
}

func TestNew_StableIDs(t *testing.T) {
	a, err := New(Item{Name: "htop", Command: "htop"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	b, err := New(Item{Name: "htop", Command: "htop"}, Item{Name: "top", Command: "top"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ia, _ := a.At(0)
	ib, _ := b.At(b.IndexOf(ia.ID))
	if ia.ID != ib.ID {
		t.Errorf("IDs differ across loads: %q vs %q", ia.ID, ib.ID)
	}
	if b.IndexOf("missing") != -1 {
		t.Error("IndexOf of unknown ID should be -1")
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		item Item
	}{
		{"missing command", Item{Name: "nothing"}},
		{"blank command", Item{Name: "blank", Command: "   "}},
		{"icon too wide", Item{Name: "wide", Command: "wide", Icon: "ABCDE"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.item)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.KindInvalid) {
				t.Errorf("kind = %v, want invalid", errors.GetKind(err))
			}
		})
	}
}

func TestAt_OutOfRange(t *testing.T) {
	c, _ := New(Item{Name: "a", Command: "a"})
	for _, i := range []int{-1, 1, 99} {
		if _, ok := c.At(i); ok {
			t.Errorf("At(%d) should report false", i)
		}
	}

	var nilCatalog *Catalog
	if nilCatalog.Size() != 0 {
		t.Error("nil catalog should be empty")
	}
}

func TestItem_CommandLine(t *testing.T) {
	tests := []struct {
		item Item
		want string
	}{
		{Item{Command: "htop"}, "htop"},
		{Item{Command: "ssh", Args: []string{"-t", "box", "tmux"}}, "ssh -t box tmux"},
	}
	for _, tt := range tests {
		if got := tt.item.CommandLine(); got != tt.want {
			t.Errorf("CommandLine() = %q, want %q", got, tt.want)
		}
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	writeFile(t, path, `{
		"entries": [
			{"name": "Tetris", "command": "tetris", "icon": "▦", "dir": "games"},
			{"name": "Editor", "command": "vim", "args": ["-u", "NONE"], "description": "plain vim"},
			{"name": "Browser", "command": "firefox", "detach": true}
		]
	}`, 0644)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", c.Size())
	}

	browser, _ := c.At(0)
	if browser.Name != "Browser" || !browser.Detach {
		t.Errorf("At(0) = %+v, want detached Browser", browser)
	}
	editor, _ := c.At(1)
	if editor.CommandLine() != "vim -u NONE" {
		t.Errorf("editor command line = %q", editor.CommandLine())
	}
	tetris, _ := c.At(2)
	if tetris.Dir != filepath.Join(dir, "games") {
		t.Errorf("relative dir = %q, want resolved against manifest", tetris.Dir)
	}
	if tetris.Source != path {
		t.Errorf("Source = %q, want %q", tetris.Source, path)
	}
}

func TestLoadManifest_RelativeCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	writeFile(t, path, `{
		"entries": [
			{"name": "a-tool", "command": "./bin/tool"},
			{"name": "b-nested", "command": "scripts/run.sh"},
			{"name": "c-bare", "command": "vim"},
			{"name": "d-absolute", "command": "/usr/bin/env"}
		]
	}`, 0644)

	c, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}

	tests := []struct {
		index int
		want  string
	}{
		{0, filepath.Join(dir, "bin", "tool")},
		{1, filepath.Join(dir, "scripts", "run.sh")},
		{2, "vim"},
		{3, "/usr/bin/env"},
	}
	for _, tt := range tests {
		it, ok := c.At(tt.index)
		if !ok {
			t.Fatalf("At(%d) missing", tt.index)
		}
		if it.Command != tt.want {
			t.Errorf("%s command = %q, want %q", it.Name, it.Command, tt.want)
		}
	}
}

func TestLoadManifest_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")
	writeFile(t, path, `entries:
  - name: Tetris
    command: tetris
    icon: "▦"
    dir: games
  - name: Editor
    command: vim
    args: [-u, NONE]
  - name: Browser
    command: firefox
    detach: true
`, 0644)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", c.Size())
	}

	browser, _ := c.At(0)
	if browser.Name != "Browser" || !browser.Detach {
		t.Errorf("At(0) = %+v, want detached Browser", browser)
	}
	editor, _ := c.At(1)
	if editor.CommandLine() != "vim -u NONE" {
		t.Errorf("editor command line = %q", editor.CommandLine())
	}
	tetris, _ := c.At(2)
	if tetris.Icon != "▦" || tetris.Dir != filepath.Join(dir, "games") {
		t.Errorf("At(2) = %+v", tetris)
	}
}

func TestLoadManifest_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.json"))
		if !errors.Is(err, errors.KindCatalog) {
			t.Errorf("kind = %v, want catalog", errors.GetKind(err))
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		writeFile(t, path, `{"entries": [`, 0644)
		_, err := Load(path)
		if !errors.Is(err, errors.KindCatalog) {
			t.Errorf("kind = %v, want catalog", errors.GetKind(err))
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		writeFile(t, path, "entries: [\n", 0644)
		_, err := Load(path)
		if !errors.Is(err, errors.KindCatalog) {
			t.Errorf("kind = %v, want catalog", errors.GetKind(err))
		}
	})

	t.Run("entry without command", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.json")
		writeFile(t, path, `{"entries": [{"name": "ghost"}]}`, 0644)
		_, err := Load(path)
		if !errors.Is(err, errors.KindInvalid) {
			t.Errorf("kind = %v, want invalid", errors.GetKind(err))
		}
	})
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "snake.sh"), "#!/bin/sh\n", 0755)
	writeFile(t, filepath.Join(dir, "README.md"), "not executable", 0644)
	writeFile(t, filepath.Join(dir, ".hidden"), "#!/bin/sh\n", 0755)
	writeFile(t, filepath.Join(dir, "doom", ManifestFile),
		`{"name": "Doom", "command": "./bin/doom", "args": ["-iwad", "doom1.wad"]}`, 0644)
	writeFile(t, filepath.Join(dir, "assets", "icon.png"), "", 0644)

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Size() != 2 {
		t.Fatalf("Size() = %d, want 2: %+v", c.Size(), c.Items())
	}

	doom, _ := c.At(0)
	if doom.Name != "Doom" {
		t.Fatalf("At(0).Name = %q, want Doom", doom.Name)
	}
	if want := filepath.Join(dir, "doom", "bin", "doom"); doom.Command != want {
		t.Errorf("doom command = %q, want %q", doom.Command, want)
	}
	if doom.Dir != filepath.Join(dir, "doom") {
		t.Errorf("doom dir = %q", doom.Dir)
	}

	snake, _ := c.At(1)
	if snake.Name != "snake" {
		t.Errorf("At(1).Name = %q, want snake", snake.Name)
	}
	if snake.Command != filepath.Join(dir, "snake.sh") {
		t.Errorf("snake command = %q", snake.Command)
	}
}

func TestScan_YAMLEntryFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "quake", ManifestFileYAML),
		"name: Quake\ncommand: ./quake\ndescription: first person shooter\n", 0644)
	// entry.json wins over entry.yaml
	writeFile(t, filepath.Join(dir, "both", ManifestFile), `{"name": "JSON", "command": "j"}`, 0644)
	writeFile(t, filepath.Join(dir, "both", ManifestFileYAML), "name: YAML\ncommand: y\n", 0644)

	c, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if c.Size() != 2 {
		t.Fatalf("Size() = %d, want 2: %+v", c.Size(), c.Items())
	}

	first, _ := c.At(0)
	if first.Name != "JSON" {
		t.Errorf("At(0).Name = %q, want JSON", first.Name)
	}
	quake, _ := c.At(1)
	if quake.Name != "Quake" || quake.Command != filepath.Join(dir, "quake", "quake") {
		t.Errorf("At(1) = %+v", quake)
	}
	if quake.Source != filepath.Join(dir, "quake", ManifestFileYAML) {
		t.Errorf("Source = %q", quake.Source)
	}
}

func TestScan_BadEntryFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken", ManifestFile), `{`, 0644)

	_, err := Scan(dir)
	if !errors.Is(err, errors.KindCatalog) {
		t.Errorf("kind = %v, want catalog", errors.GetKind(err))
	}
}
