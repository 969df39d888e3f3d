// Package catalog loads the ordered list of launchable entries shown in the
// grid. A catalog is fixed once loaded; the grid only ever asks for its size
// and for an entry by index.
package catalog

import (
	"cmp"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"
	"gopkg.in/yaml.v3"

	"github.com/zhubert/launchpad/internal/errors"
	"github.com/zhubert/launchpad/internal/logger"
)

// ManifestFile is the per-entry metadata file looked up in subdirectories
// during a directory scan. ManifestFileYAML is tried when it is absent.
const (
	ManifestFile     = "entry.json"
	ManifestFileYAML = "entry.yaml"
)

// MaxIconWidth is the widest icon glyph, in terminal cells, an entry may use.
const MaxIconWidth = 4

// namespace seeds the name-based entry IDs so they are stable across runs.
var namespace = uuid.MustParse("6f1c8f0e-52d4-4c8e-9a57-0f3ad2c0b7a1")

// Item is one launchable entry.
type Item struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string   `json:"name" yaml:"name"`
	Command     string   `json:"command" yaml:"command"`
	Args        []string `json:"args,omitempty" yaml:"args,omitempty"`
	Dir         string   `json:"dir,omitempty" yaml:"dir,omitempty"`
	Icon        string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Detach      bool     `json:"detach,omitempty" yaml:"detach,omitempty"`

	// Source is the file the entry was read from.
	Source string `json:"source,omitempty" yaml:"-"`
}

// CommandLine returns the command and its arguments joined for display.
func (it Item) CommandLine() string {
	if len(it.Args) == 0 {
		return it.Command
	}
	return it.Command + " " + strings.Join(it.Args, " ")
}

// Manifest is the on-disk catalog format.
type Manifest struct {
	Entries []Item `json:"entries" yaml:"entries"`
}

// isYAML reports whether path names a YAML document.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// decode unmarshals data as YAML or JSON depending on the extension of path.
func decode(path string, data []byte, v any) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, v)
	}
	return json.Unmarshal(data, v)
}

// Catalog is an immutable, ordered set of entries.
type Catalog struct {
	items []Item
}

// New builds a catalog from items, normalizing and sorting them by name.
func New(items ...Item) (*Catalog, error) {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		norm, err := normalize(it)
		if err != nil {
			return nil, err
		}
		out = append(out, norm)
	}
	slices.SortStableFunc(out, func(a, b Item) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return &Catalog{items: out}, nil
}

// Size returns the number of entries.
func (c *Catalog) Size() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// At returns the entry at index i. The second result is false when i is out
// of range.
func (c *Catalog) At(i int) (Item, bool) {
	if c == nil || i < 0 || i >= len(c.items) {
		return Item{}, false
	}
	return c.items[i], true
}

// Items returns a copy of every entry in order.
func (c *Catalog) Items() []Item {
	if c == nil {
		return nil
	}
	return slices.Clone(c.items)
}

// IndexOf returns the index of the entry with the given ID, or -1.
func (c *Catalog) IndexOf(id string) int {
	if c == nil {
		return -1
	}
	return slices.IndexFunc(c.items, func(it Item) bool { return it.ID == id })
}

// Load reads a catalog from path. A directory is scanned; a file is parsed
// as a manifest.
func Load(path string) (*Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.CatalogLoadFailed(path, err)
	}
	if info.IsDir() {
		return Scan(path)
	}
	return LoadManifest(path)
}

// LoadManifest parses a manifest file, YAML when its extension is .yaml or
// .yml and JSON otherwise. Relative dirs, and relative commands that name a
// path, are resolved against the manifest's directory.
func LoadManifest(path string) (*Catalog, error) {
	log := logger.WithComponent("catalog")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.CatalogLoadFailed(path, err)
	}

	var m Manifest
	if err := decode(path, data, &m); err != nil {
		return nil, errors.CatalogLoadFailed(path, err)
	}

	base := filepath.Dir(path)
	for i := range m.Entries {
		e := &m.Entries[i]
		e.Source = path
		if e.Command != "" && !filepath.IsAbs(e.Command) && strings.ContainsRune(e.Command, filepath.Separator) {
			e.Command = filepath.Join(base, e.Command)
		}
		if e.Dir != "" && !filepath.IsAbs(e.Dir) {
			e.Dir = filepath.Join(base, e.Dir)
		}
	}

	c, err := New(m.Entries...)
	if err != nil {
		return nil, err
	}
	log.Info("loaded manifest", "path", path, "entries", c.Size())
	return c, nil
}

// Scan builds a catalog from a directory: every executable regular file
// becomes an entry, and every subdirectory holding an entry.json becomes the
// entry it describes. Hidden files and other subdirectories are skipped.
func Scan(dir string) (*Catalog, error) {
	log := logger.WithComponent("catalog")

	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.CatalogLoadFailed(dir, err)
	}

	var items []Item
	for _, de := range dirents {
		name := de.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		full := filepath.Join(dir, name)

		if de.IsDir() {
			it, ok, err := readEntryDir(full)
			if err != nil {
				return nil, err
			}
			if ok {
				items = append(items, it)
			}
			continue
		}

		info, err := de.Info()
		if err != nil {
			log.Warn("skipping unreadable entry", "path", full, "error", err)
			continue
		}
		if !info.Mode().IsRegular() || info.Mode().Perm()&0o111 == 0 {
			continue
		}
		items = append(items, Item{
			Name:    strings.TrimSuffix(name, filepath.Ext(name)),
			Command: full,
			Dir:     dir,
			Source:  full,
		})
	}

	c, err := New(items...)
	if err != nil {
		return nil, err
	}
	log.Info("scanned directory", "path", dir, "entries", c.Size())
	return c, nil
}

// readEntryDir reads dir/entry.json, or dir/entry.yaml. Relative commands
// that name a path are resolved against dir, and dir is the default working
// directory.
func readEntryDir(dir string) (Item, bool, error) {
	var (
		path string
		data []byte
	)
	for _, name := range []string{ManifestFile, ManifestFileYAML} {
		p := filepath.Join(dir, name)
		b, err := os.ReadFile(p)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return Item{}, false, errors.CatalogLoadFailed(p, err)
		}
		path, data = p, b
		break
	}
	if path == "" {
		return Item{}, false, nil
	}

	var it Item
	if err := decode(path, data, &it); err != nil {
		return Item{}, false, errors.CatalogLoadFailed(path, err)
	}
	it.Source = path
	if it.Name == "" {
		it.Name = filepath.Base(dir)
	}
	if it.Command != "" && !filepath.IsAbs(it.Command) && strings.ContainsRune(it.Command, filepath.Separator) {
		it.Command = filepath.Join(dir, it.Command)
	}
	if it.Dir == "" {
		it.Dir = dir
	} else if !filepath.IsAbs(it.Dir) {
		it.Dir = filepath.Join(dir, it.Dir)
	}
	return it, true, nil
}

// normalize fills defaults and validates a single entry.
func normalize(it Item) (Item, error) {
	it.Name = strings.TrimSpace(it.Name)
	it.Command = strings.TrimSpace(it.Command)

	where := it.Source
	if where == "" {
		where = "entry"
	}
	if it.Command == "" {
		return Item{}, errors.CatalogEntryInvalid(where, "command is required")
	}
	if it.Name == "" {
		it.Name = filepath.Base(it.Command)
	}

	if it.Icon == "" {
		it.Icon = defaultIcon(it.Name)
	}
	if w := uniseg.StringWidth(it.Icon); w > MaxIconWidth {
		return Item{}, errors.CatalogEntryInvalid(where,
			"icon "+it.Icon+" is wider than the cell allows")
	}

	if it.ID == "" {
		it.ID = uuid.NewSHA1(namespace, []byte(it.Name+"\x00"+it.Command)).String()
	}
	return it, nil
}

// defaultIcon is the first grapheme cluster of name, upper-cased.
func defaultIcon(name string) string {
	g := uniseg.NewGraphemes(name)
	if !g.Next() {
		return "?"
	}
	return strings.ToUpper(g.Str())
}
