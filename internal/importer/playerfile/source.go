// Package playerfile converts legacy player saves into one document per
// player: the character record plus the worn and carried objects from its
// companion object file.
package playerfile

import (
	"context"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cory-johannsen/mudconvert/internal/importer"
	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
	"github.com/cory-johannsen/mudconvert/internal/legacy/player"
	"github.com/cory-johannsen/mudconvert/internal/legacy/values"
)

const (
	playerExt = ".plr"
	objectExt = ".objs"
)

var _ importer.Source = (*Source)(nil)

// Document is the normalized output for one player. Map keys are sorted by
// both encoders, so output is stable across runs.
type Document struct {
	Player    player.Record            `json:"player" yaml:"player"`
	Inventory []player.Record          `json:"inventory" yaml:"inventory"`
	Equipment map[string]player.Record `json:"equipment" yaml:"equipment"`
}

// Options configure a Source.
type Options struct {
	Encoding importer.Encoding
	Layout   values.Layout
	// Filter drops objects (and everything inside them); nil keeps everything.
	Filter importer.Filter
}

// Source implements importer.Source for a directory tree of player saves.
// Saves are commonly bucketed by initial (players/A-E/aldric.plr); any depth
// is accepted.
type Source struct {
	opts Options
}

// NewSource constructs a Source.
//
// Postcondition: unset options take their defaults.
func NewSource(opts Options) *Source {
	if opts.Filter == nil {
		opts.Filter = importer.KeepAll{}
	}
	if opts.Encoding == "" {
		opts.Encoding = importer.EncodingASCII
	}
	if opts.Layout.Name == "" {
		opts.Layout = values.DefaultLayout
	}
	return &Source{opts: opts}
}

// Discover finds every player file under root and pairs it with the object
// file of the same name in the same directory, when there is one.
//
// Postcondition: units are sorted by key; each unit's first file is the
// player file. Two saves that normalize to the same key are an error.
func (s *Source) Discover(root string) ([]importer.Unit, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("player directory not accessible: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("player directory %s is not a directory", root)
	}

	seen := map[string]string{}
	var units []importer.Unit
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != playerExt {
			return nil
		}
		key := importer.NameToID(strings.TrimSuffix(d.Name(), playerExt))
		if key == "" {
			return nil
		}
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("player files %s and %s both map to %q", prev, path, key)
		}
		seen[key] = path

		u := importer.Unit{Kind: importer.KindPlayer, Key: key, Files: []string{path}}
		objs := strings.TrimSuffix(path, playerExt) + objectExt
		if _, err := os.Stat(objs); err == nil {
			u.Files = append(u.Files, objs)
		}
		units = append(units, u)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	if len(units) == 0 {
		return nil, fmt.Errorf("no player files found in %s", root)
	}
	slices.SortFunc(units, func(a, b importer.Unit) int { return strings.Compare(a.Key, b.Key) })
	return units, nil
}

// Convert decodes the player file and its object file.
//
// Postcondition: a player file that fails to decode fails the unit, naming
// the offending key. An object file that fails to decode is recorded as a
// fatal on the report and the player is still emitted without objects.
func (s *Source) Convert(ctx context.Context, u importer.Unit) (importer.Document, error) {
	if len(u.Files) == 0 {
		return importer.Document{}, fmt.Errorf("player %s has no files", u.Key)
	}
	plr := u.Files[0]
	rep := diag.NewReport(plr)

	c, err := importer.OpenCursor(plr, s.opts.Encoding)
	if err != nil {
		return importer.Document{}, err
	}
	rec, err := player.Decode(c, player.KindPlayer, s.opts.Layout, rep)
	if err != nil {
		return importer.Document{}, err
	}
	rep.Records++

	name, _ := rec.Text("name")
	if importer.NameToID(name) != u.Key {
		rep.Warn(diag.Integrity, diag.At(plr, 0), "player name %q does not match file name %q", name, u.Key)
	}

	doc := Document{Player: rec, Inventory: []player.Record{}, Equipment: map[string]player.Record{}}
	if len(u.Files) > 1 {
		if err := ctx.Err(); err != nil {
			return importer.Document{}, err
		}
		objRep := diag.NewReport(u.Files[1])
		objs, err := s.objects(u.Files[1], objRep)
		if err != nil {
			objRep.Fatal(err)
		} else {
			doc.Inventory, doc.Equipment = objs.Inventory, objs.Equipment
		}
		rep.Merge(objRep)
	}

	return importer.Document{Kind: importer.KindPlayer, Key: u.Key, Body: doc, Report: rep}, nil
}

func (s *Source) objects(path string, rep *diag.Report) (player.Objects, error) {
	c, err := importer.OpenCursor(path, s.opts.Encoding)
	if err != nil {
		return player.Objects{}, err
	}
	objs, err := player.DecodeObjects(c, s.opts.Layout, rep)
	if err != nil {
		return player.Objects{}, err
	}
	rep.Records += count(objs.Inventory)
	for _, r := range objs.Equipment {
		rep.Records += count([]player.Record{r})
	}

	out := player.Objects{Equipment: map[string]player.Record{}}
	if out.Inventory, err = s.keep(objs.Inventory); err != nil {
		return player.Objects{}, err
	}
	// Slots are visited in order so filters see the same call sequence every run.
	for _, slot := range slices.Sorted(maps.Keys(objs.Equipment)) {
		kept, err := s.keep([]player.Record{objs.Equipment[slot]})
		if err != nil {
			return player.Objects{}, err
		}
		if len(kept) == 1 {
			out.Equipment[slot] = kept[0]
		}
	}
	return out, nil
}

// keep returns the objects the filter accepts, descending into containers.
// A rejected container takes its contents with it. The input is not modified.
func (s *Source) keep(in []player.Record) ([]player.Record, error) {
	out := make([]player.Record, 0, len(in))
	for _, r := range in {
		id, _ := r.Int("id")
		name, _ := r.Text("name_list")
		ok, err := s.opts.Filter.Keep("object", id, name)
		if err != nil {
			return nil, fmt.Errorf("filtering object %d: %w", id, err)
		}
		if !ok {
			continue
		}
		contents, has := r["contains"].([]player.Record)
		if !has {
			out = append(out, r)
			continue
		}
		kept, err := s.keep(contents)
		if err != nil {
			return nil, err
		}
		cp := make(player.Record, len(r))
		for k, v := range r {
			cp[k] = v
		}
		if len(kept) > 0 {
			cp["contains"] = kept
		} else {
			delete(cp, "contains")
		}
		out = append(out, cp)
	}
	return out, nil
}

func count(in []player.Record) int {
	n := len(in)
	for _, r := range in {
		if contents, ok := r["contains"].([]player.Record); ok {
			n += count(contents)
		}
	}
	return n
}
