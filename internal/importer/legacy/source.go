// Package legacy converts legacy world files (rooms, mobiles, objects, shops,
// triggers and zone resets) into one normalized document per zone.
package legacy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/cory-johannsen/mudconvert/internal/importer"
	"github.com/cory-johannsen/mudconvert/internal/legacy/cursor"
	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
	"github.com/cory-johannsen/mudconvert/internal/legacy/records"
	"github.com/cory-johannsen/mudconvert/internal/legacy/values"
	"github.com/cory-johannsen/mudconvert/internal/legacy/zone"
)

var _ importer.Source = (*Source)(nil)

// File extensions of a zone's file set, in conversion order.
var extensions = []string{"zon", "wld", "mob", "obj", "shp", "trg"}

// Options configure a Source.
type Options struct {
	Encoding importer.Encoding
	Layout   values.Layout
	// Zones restricts discovery to these zone numbers; empty means all.
	Zones []int
	// Filter drops records before conversion; nil keeps everything.
	Filter importer.Filter
}

// Source implements importer.Source for the legacy world layout. It accepts
// either per-type subdirectories:
//
//	root/
//	  zon/ wld/ mob/ obj/ shp/ trg/   <- files named <zone>.<ext>
//
// or a single flat directory holding all of them.
type Source struct {
	opts Options
}

// NewSource constructs a Source.
//
// Postcondition: unset options take their defaults; a nil Filter keeps everything.
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

// Discover groups the files under root by zone number.
//
// Postcondition: units are ordered by ascending zone number; each unit's
// files follow the order zon, wld, mob, obj, shp, trg. Returns an error when
// root holds no legacy world files.
func (s *Source) Discover(root string) ([]importer.Unit, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("source directory not accessible: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", root)
	}

	byZone := map[int]map[string]string{}
	scan := func(dir string) error {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("reading %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			ext := strings.TrimPrefix(filepath.Ext(e.Name()), ".")
			if !slices.Contains(extensions, ext) {
				continue
			}
			n, err := strconv.Atoi(strings.TrimSuffix(e.Name(), "."+ext))
			if err != nil || n < 0 {
				continue
			}
			if byZone[n] == nil {
				byZone[n] = map[string]string{}
			}
			byZone[n][ext] = filepath.Join(dir, e.Name())
		}
		return nil
	}

	if err := scan(root); err != nil {
		return nil, err
	}
	for _, ext := range extensions {
		sub := filepath.Join(root, ext)
		if fi, err := os.Stat(sub); err == nil && fi.IsDir() {
			if err := scan(sub); err != nil {
				return nil, err
			}
		}
	}
	if len(byZone) == 0 {
		return nil, fmt.Errorf("no legacy world files found in %s", root)
	}

	zones := make([]int, 0, len(byZone))
	for n := range byZone {
		if len(s.opts.Zones) > 0 && !slices.Contains(s.opts.Zones, n) {
			continue
		}
		zones = append(zones, n)
	}
	slices.Sort(zones)

	units := make([]importer.Unit, 0, len(zones))
	for _, n := range zones {
		u := importer.Unit{Kind: importer.KindZone, Key: strconv.Itoa(n)}
		for _, ext := range extensions {
			if p, ok := byZone[n][ext]; ok {
				u.Files = append(u.Files, p)
			}
		}
		units = append(units, u)
	}
	return units, nil
}

// zoneSet holds the decoded contents of one zone's files.
type zoneSet struct {
	header    zone.Header
	hasHeader bool
	tree      zone.Tree
	rooms     []records.Room
	mobiles   []records.Mobile
	objects   []records.Object
	shops     []records.Shop
	triggers  []records.Trigger
}

// Convert decodes every file of the unit and builds its ZoneDocument.
// Record failures are collected on the document's report; only an unreadable
// file fails the whole unit.
func (s *Source) Convert(ctx context.Context, u importer.Unit) (importer.Document, error) {
	n, err := strconv.Atoi(u.Key)
	if err != nil {
		return importer.Document{}, fmt.Errorf("zone key %q: %w", u.Key, err)
	}
	rep := diag.NewReport(u.Key)
	if len(u.Files) > 0 {
		rep = diag.NewReport(u.Files[0])
	}

	var set zoneSet
	for _, path := range u.Files {
		if err := ctx.Err(); err != nil {
			return importer.Document{}, err
		}
		c, err := importer.OpenCursor(path, s.opts.Encoding)
		if err != nil {
			return importer.Document{}, err
		}
		fileRep := diag.NewReport(path)
		s.decode(c, strings.TrimPrefix(filepath.Ext(path), "."), &set, fileRep)
		rep.Merge(fileRep)
	}

	if !set.hasHeader {
		set.header = zone.Header{ID: n, Name: fmt.Sprintf("zone %d", n), Top: n*100 + 99, ZoneFactor: zone.DefaultZoneFactor}
		rep.Warn(diag.Integrity, diag.At(rep.File, 0), "zone %d has no readable zone file; header defaulted", n)
	}

	if err := s.filter(&set, rep); err != nil {
		return importer.Document{}, err
	}
	return importer.Document{
		Kind:   importer.KindZone,
		Key:    u.Key,
		Body:   build(set, rep),
		Report: rep,
	}, nil
}

func (s *Source) decode(c *cursor.Cursor, ext string, set *zoneSet, rep *diag.Report) {
	switch ext {
	case "zon":
		f, err := zone.DecodeFile(c, rep)
		if err != nil {
			rep.Fatal(err)
			return
		}
		rep.Records++
		set.header, set.hasHeader = f.Header, true
		set.tree = zone.Assemble(f, rep)
	case "wld":
		set.rooms = records.DecodeAll(c, rep, records.DecodeRoom)
	case "mob":
		set.mobiles = records.DecodeAll(c, rep, records.DecodeMobile)
	case "obj":
		set.objects = records.DecodeAll(c, rep, records.ObjectDecoder{Layout: s.opts.Layout}.Decode)
	case "shp":
		set.shops = records.DecodeAll(c, rep, records.NewShopDecoder(c).Decode)
	case "trg":
		set.triggers = records.DecodeAll(c, rep, records.DecodeTrigger)
	}
}

// filter replaces each record slice with the records the Filter keeps. The
// decoded slices are never modified while being traversed.
func (s *Source) filter(set *zoneSet, rep *diag.Report) error {
	var err error
	if set.rooms, err = keep(s.opts.Filter, "room", set.rooms, func(r records.Room) (int, string) { return r.ID, r.Name }); err != nil {
		return err
	}
	if set.mobiles, err = keep(s.opts.Filter, "mobile", set.mobiles, func(m records.Mobile) (int, string) { return m.ID, m.ShortDescription }); err != nil {
		return err
	}
	if set.objects, err = keep(s.opts.Filter, "object", set.objects, func(o records.Object) (int, string) { return o.ID, o.ShortDescription }); err != nil {
		return err
	}
	if set.shops, err = keep(s.opts.Filter, "shop", set.shops, func(sh records.Shop) (int, string) { return sh.ID, "" }); err != nil {
		return err
	}
	set.triggers, err = keep(s.opts.Filter, "trigger", set.triggers, func(t records.Trigger) (int, string) { return t.ID, t.Name })
	return err
}

func keep[T any](f importer.Filter, kind string, in []T, key func(T) (int, string)) ([]T, error) {
	out := make([]T, 0, len(in))
	for _, v := range in {
		id, name := key(v)
		ok, err := f.Keep(kind, id, name)
		if err != nil {
			return nil, fmt.Errorf("filtering %s %d: %w", kind, id, err)
		}
		if ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// build assembles the zone document from decoded records.
func build(set zoneSet, rep *diag.Report) ZoneDocument {
	doc := ZoneDocument{
		Zone:     ConvertHeader(set.header),
		Rooms:    make([]RoomDoc, 0, len(set.rooms)),
		Mobiles:  make([]MobileDoc, 0, len(set.mobiles)),
		Objects:  make([]ObjectDoc, 0, len(set.objects)),
		Shops:    make([]ShopDoc, 0, len(set.shops)),
		Triggers: make([]TriggerDoc, 0, len(set.triggers)),
		Resets:   ConvertResets(set.tree),
	}
	doc.Zone.FirstRoom, doc.Zone.LastRoom = roomRange(set.rooms, set.header)
	if lo, hi, ok := levelRange(set.mobiles); ok {
		doc.Zone.MinLevel, doc.Zone.MaxLevel = lo, hi
	}

	for _, r := range set.rooms {
		doc.Rooms = append(doc.Rooms, ConvertRoom(r))
	}
	MergeDoors(doc.Rooms, set.tree, rep, set.header.ID)
	for _, m := range set.mobiles {
		doc.Mobiles = append(doc.Mobiles, ConvertMobile(m))
	}
	for _, o := range set.objects {
		doc.Objects = append(doc.Objects, ConvertObject(o))
	}
	for _, sh := range set.shops {
		doc.Shops = append(doc.Shops, ConvertShop(sh))
	}
	for _, t := range set.triggers {
		doc.Triggers = append(doc.Triggers, ConvertTrigger(t))
	}
	return doc
}
