// Package player decodes legacy player save files: the free-form "key: value"
// character file and the companion object file holding worn and carried items.
//
// Both formats share one key table. Each key dispatches to a scalar cast, a
// sentinel-terminated block or a tilde-terminated long string. Keys are
// renamed to their normalized output names as they are read.
package player

import (
	"strconv"
	"strings"

	"github.com/cory-johannsen/mudconvert/internal/legacy/cursor"
	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
	"github.com/cory-johannsen/mudconvert/internal/legacy/flags"
	"github.com/cory-johannsen/mudconvert/internal/legacy/tables"
	"github.com/cory-johannsen/mudconvert/internal/legacy/values"
)

// Kind selects how keys shared by players and objects are interpreted.
type Kind int

const (
	KindPlayer Kind = iota
	KindObject
)

// Record is one decoded key/value section keyed by normalized field name.
type Record map[string]any

// Int returns the integer stored under key.
func (r Record) Int(key string) (int, bool) {
	v, ok := r[key].(int)
	return v, ok
}

// Text returns the string stored under key.
func (r Record) Text(key string) (string, bool) {
	v, ok := r[key].(string)
	return v, ok
}

type decoder struct {
	c      *cursor.Cursor
	rep    *diag.Report
	kind   Kind
	layout values.Layout
	rec    Record

	effects   flags.Set
	objType   int
	hasType   bool
	rawValues []int
}

type handler func(d *decoder, key, value string) error

// Decode reads key/value lines until c is exhausted.
//
// Postcondition: an unrecognized key fails the whole section with a
// *diag.UnknownTagError naming the key.
func Decode(c *cursor.Cursor, kind Kind, layout values.Layout, rep *diag.Report) (Record, error) {
	d := &decoder{c: c, rep: rep, kind: kind, layout: layout, rec: Record{}, effects: flags.Empty(tables.Effects)}
	for {
		key, value, ok := c.ReadKeyValue()
		if !ok {
			break
		}
		h, found := handlers[key]
		if !found {
			return nil, c.UnknownTag("player file key", key)
		}
		if err := h(d, key, value); err != nil {
			return nil, err
		}
	}
	d.finish()
	return d.rec, nil
}

func (d *decoder) finish() {
	if !d.effects.IsEmpty() {
		d.rec["effect_flags"] = d.effects.Names()
	}
	if d.rawValues == nil {
		return
	}
	if !d.hasType {
		d.rec["values"] = d.rawValues
		return
	}
	block := values.Resolve(values.ObjectType(d.objType), values.TupleFrom(d.rawValues), d.layout)
	if _, ok := block.(values.Unknown); ok {
		d.rep.Warn(diag.Fallback, d.c.Pos(), "object type %d unknown; values passed through raw", d.objType)
	}
	d.rec["values"] = block
}

func (d *decoder) atoi(key, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, d.c.Wrap(err, "%s", key)
	}
	return n, nil
}

func (d *decoder) ints(key, value string, want int) ([]int, error) {
	f := strings.Fields(strings.ReplaceAll(value, "/", " "))
	if len(f) != want {
		return nil, d.c.Errorf("%s: expected %d numbers, got %q", key, want, value)
	}
	return d.c.Atoi(key, f...)
}

func intField(name string) handler {
	return func(d *decoder, key, value string) error {
		n, err := d.atoi(key, value)
		if err != nil {
			return err
		}
		d.rec[name] = n
		return nil
	}
}

func stringField(name string) handler {
	return func(d *decoder, _, value string) error {
		d.rec[name] = value
		return nil
	}
}

func enumField(name string, table tables.Table) handler {
	return func(d *decoder, key, value string) error {
		n, err := d.atoi(key, value)
		if err != nil {
			return err
		}
		d.rec[name] = table.EnumName(name, n)
		return nil
	}
}

func timeField(name string) handler {
	return func(d *decoder, key, value string) error {
		n, err := d.atoi(key, value)
		if err != nil {
			return err
		}
		d.rec[name] = epoch(n)
		return nil
	}
}

func flagField(name string, table tables.Table) handler {
	return func(d *decoder, key, value string) error {
		s, err := flags.Decode(strings.TrimSpace(value), table, 0)
		if err != nil {
			return d.c.Wrap(err, "%s", key)
		}
		d.rec[name] = s.Names()
		return nil
	}
}

func longString(name string) handler {
	return func(d *decoder, _, _ string) error {
		s, err := d.c.ReadString()
		if err != nil {
			return err
		}
		d.rec[name] = s
		return nil
	}
}

func discard(*decoder, string, string) error { return nil }

func currentMax(name string) handler {
	return func(d *decoder, key, value string) error {
		v, err := d.ints(key, value, 2)
		if err != nil {
			return err
		}
		d.rec[name] = map[string]int{"current": v[0], "max": v[1]}
		return nil
	}
}

func money(name string) handler {
	return func(d *decoder, key, value string) error {
		v, err := d.ints(key, value, 4)
		if err != nil {
			return err
		}
		d.rec[name] = map[string]int{"platinum": v[0], "gold": v[1], "silver": v[2], "copper": v[3]}
		return nil
	}
}

func stat(d *decoder, key, value string) error {
	n, err := d.atoi(key, value)
	if err != nil {
		return err
	}
	stats, _ := d.rec["stats"].(map[string]int)
	if stats == nil {
		stats = map[string]int{}
		d.rec["stats"] = stats
	}
	stats[key] = n
	return nil
}

var handlers = map[string]handler{
	"ac":            intField("armor_class"),
	"adesc":         longString("action_description"),
	"aggression":    intField("aggression"),
	"aliases":       readAliases,
	"alignment":     intField("alignment"),
	"applies":       readApplies,
	"autoinvis":     intField("auto_invis"),
	"badpasswords":  intField("bad_passwords"),
	"bank":          money("bank"),
	"base_height":   intField("base_height"),
	"base_size":     intField("base_size"),
	"base_weight":   intField("base_weight"),
	"birthtime":     timeField("birth_time"),
	"cash":          money("money"),
	"charisma":      stat,
	"clan":          stringField("clan"),
	"class":         enumField("class", tables.Classes),
	"composition":   enumField("composition", tables.Compositions),
	"concealment":   intField("concealment"),
	"constitution":  stat,
	"cooldowns":     readCooldowns,
	"cost":          intField("cost"),
	"current_title": stringField("current_title"),
	"currenttitle":  stringField("current_title"),
	"damroll":       intField("damage_roll"),
	"decomp":        intField("decompose_timer"),
	"desc":          readDescription,
	"description":   readDescription,
	"dexterity":     stat,
	"drunkenness":   intField("drunkenness"),
	"effectflags":   readEffectFlags,
	"effects":       readEffects,
	"experience":    intField("experience"),
	"extradesc":     readExtraDescription,
	"flags":         readFlags,
	"freezelevel":   intField("freeze_level"),
	"gossips":       readMessages,
	"grantgroups":   readGrants("grant_groups"),
	"grants":        readGrants("grants"),
	"height":        intField("height"),
	"hiddenness":    intField("concealment"),
	"hitpoints":     currentMax("hit_points"),
	"hitroll":       intField("hit_roll"),
	"home":          stringField("home"),
	"host":          readHost,
	"hunger":        intField("hunger"),
	"id":            intField("id"),
	"intelligence":  stat,
	"invislevel":    intField("invis_level"),
	"lastlevel":     intField("last_level"),
	"lastlogintime": timeField("last_login_time"),
	"level":         intField("level"),
	"lifeforce":     enumField("life_force", tables.LifeForces),
	"loadroom":      intField("load_room"),
	"location":      intField("location"),
	"logview":       intField("log_view"),
	"mana":          discard,
	"mem":           skipMemorized,
	"move":          currentMax("move"),
	"name":          readName,
	"name_list":     stringField("name_list"),
	"natural_size":  intField("natural_size"),
	"olczones":      readIntList("olc_zones"),
	"pagelength":    intField("page_length"),
	"password":      stringField("password"),
	"playerflags":   flagField("player_flags", tables.PlayerFlags),
	"poofin":        stringField("poof_in"),
	"poofout":       stringField("poof_out"),
	"prefflags":     flagField("preference_flags", tables.PreferenceFlags),
	"privflags":     flagField("privilege_flags", tables.PrivilegeFlags),
	"prompt":        stringField("prompt"),
	"quit_reason":   enumField("quit_reason", tables.QuitReasons),
	"race":          enumField("race", tables.Races),
	"saveroom":      intField("save_room"),
	"savingthrows":  readSavingThrows,
	"sex":           enumField("gender", tables.Genders),
	"shortdesc":     stringField("short_description"),
	"size":          intField("size"),
	"skills":        readSkills,
	"spellcasts":    readSpellCasts,
	"spells":        readSpells,
	"strength":      stat,
	"tells":         readMessages,
	"thirst":        intField("thirst"),
	"timeplayed":    intField("time_played"),
	"timer":         intField("timer"),
	"title":         stringField("title"),
	"triggers":      readTildeInts("triggers"),
	"trophy":        readTrophy,
	"type":          readType,
	"values":        readValues,
	"variables":     readVariables,
	"wear":          flagField("wear_flags", tables.WearFlags),
	"weight":        readWeight,
	"wimpy":         intField("wimpy"),
	"wisdom":        stat,
	"wiztitle":      stringField("wiz_title"),
	"~~":            discard,
}
