package player

import (
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
	"github.com/cory-johannsen/mudconvert/internal/legacy/flags"
	"github.com/cory-johannsen/mudconvert/internal/legacy/tables"
)

// Block terminators used by the save format.
const (
	endZeroPair  = "0 0"
	endEffects   = "0 0 0"
	endCooldowns = "-1 0"
	endTilde     = "~"
	endMessages  = "$"
	endAliases   = "0"
)

func epoch(n int) time.Time {
	return time.Unix(int64(n), 0).UTC()
}

func readAliases(d *decoder, _, _ string) error {
	lines, err := d.c.ReadUntilMatch(endAliases)
	if err != nil {
		return err
	}
	aliases := map[string]string{}
	for _, l := range lines {
		alias, command, ok := strings.Cut(l, " ")
		if !ok {
			continue
		}
		aliases[alias] = strings.TrimSpace(command)
	}
	d.rec["aliases"] = aliases
	return nil
}

func readApplies(d *decoder, key, _ string) error {
	lines, err := d.c.ReadUntilStarts(endTilde)
	if err != nil {
		return err
	}
	applies := map[string]int{}
	for _, l := range lines {
		v, err := d.ints(key, l, 2)
		if err != nil {
			return err
		}
		applies[tables.ApplyTypes.EnumName("apply", v[0])] = v[1]
	}
	d.rec["applies"] = applies
	return nil
}

func readCooldowns(d *decoder, key, _ string) error {
	lines, err := d.c.ReadUntilStarts(endCooldowns)
	if err != nil {
		return err
	}
	cooldowns := map[string]map[string]int{}
	for _, l := range lines {
		v, err := d.ints(key, l, 3)
		if err != nil {
			return err
		}
		cooldowns[tables.Cooldowns.EnumName("cooldown", v[0])] = map[string]int{"time": v[1], "max": v[2]}
	}
	d.rec["cooldowns"] = cooldowns
	return nil
}

// readDescription takes an inline value when present and a long string otherwise.
func readDescription(d *decoder, _, value string) error {
	if value != "" {
		d.rec["description"] = value
		return nil
	}
	s, err := d.c.ReadString()
	if err != nil {
		return err
	}
	d.rec["description"] = s
	return nil
}

func decodeEffectWords(words []string) (flags.Set, error) {
	set := flags.Empty(tables.Effects)
	for i, w := range words {
		s, err := flags.Decode(w, tables.Effects, i*flags.GenerationWidth)
		if err != nil {
			return flags.Set{}, err
		}
		set = set.Union(s)
	}
	return set, nil
}

func readEffectFlags(d *decoder, key, value string) error {
	s, err := decodeEffectWords(strings.Fields(value))
	if err != nil {
		return d.c.Wrap(err, "%s", key)
	}
	d.effects = d.effects.Union(s)
	return nil
}

// readEffects reads an effect block when the value is empty; an inline value
// is a plain effect flag word.
func readEffects(d *decoder, key, value string) error {
	if value != "" {
		return readEffectFlags(d, key, value)
	}
	lines, err := d.c.ReadUntilStarts(endEffects)
	if err != nil {
		return err
	}
	effects := []map[string]any{}
	for _, l := range lines {
		f := strings.Fields(l)
		if len(f) < 4 {
			return d.c.Errorf("%s: expected at least 4 fields, got %q", key, l)
		}
		v, err := d.c.Atoi(key, f[:4]...)
		if err != nil {
			return err
		}
		set, err := decodeEffectWords(f[4:])
		if err != nil {
			return d.c.Wrap(err, "%s flags", key)
		}
		effects = append(effects, map[string]any{
			"type":     d.skill(v[0]),
			"duration": v[1],
			"modifier": v[2],
			"location": tables.ApplyTypes.EnumName("apply", v[3]),
			"flags":    set.Names(),
		})
	}
	d.rec["effects"] = effects
	return nil
}

// skill names a skill number, warning when the number is not in the table.
func (d *decoder) skill(n int) string {
	if _, ok := tables.Skills[n]; !ok {
		d.rep.Warn(diag.Fallback, d.c.Pos(), "unknown skill number %d", n)
	}
	return tables.SkillName(n)
}

func readExtraDescription(d *decoder, _, value string) error {
	desc, err := d.c.ReadString()
	if err != nil {
		return err
	}
	eds, _ := d.rec["extra_descriptions"].([]map[string]string)
	d.rec["extra_descriptions"] = append(eds, map[string]string{"keywords": value, "description": desc})
	return nil
}

func readFlags(d *decoder, key, value string) error {
	table := tables.ObjectFlags
	if d.kind == KindPlayer {
		table = tables.PlayerFlags
	}
	s, err := decodeWords(value, table)
	if err != nil {
		return d.c.Wrap(err, "%s", key)
	}
	d.rec["flags"] = s.Names()
	return nil
}

// decodeWords decodes one flag word per generation.
func decodeWords(value string, table tables.Table) (flags.Set, error) {
	set := flags.Empty(table)
	for i, w := range strings.Fields(value) {
		s, err := flags.Decode(w, table, i*flags.GenerationWidth)
		if err != nil {
			return flags.Set{}, err
		}
		set = set.Union(s)
	}
	return set, nil
}

// readMessages reads "<epoch> <text>" lines until "$" into gossips or tells.
func readMessages(d *decoder, key, _ string) error {
	lines, err := d.c.ReadUntilStarts(endMessages)
	if err != nil {
		return err
	}
	msgs := []map[string]any{}
	for _, l := range lines {
		ts, text, _ := strings.Cut(l, " ")
		n, err := d.atoi(key, ts)
		if err != nil {
			return err
		}
		msgs = append(msgs, map[string]any{"time": epoch(n), "text": text})
	}
	d.rec[key] = msgs
	return nil
}

func readGrants(name string) handler {
	return func(d *decoder, key, _ string) error {
		lines, err := d.c.ReadUntilStarts(endTilde)
		if err != nil {
			return err
		}
		grants := []map[string]any{}
		for _, l := range lines {
			f := strings.Fields(l)
			if len(f) != 3 {
				return d.c.Errorf("%s: expected command, grantor and level, got %q", key, l)
			}
			lvl, err := d.atoi(key, f[2])
			if err != nil {
				return err
			}
			grants = append(grants, map[string]any{"command": f[0], "granted_by": f[1], "level": lvl})
		}
		d.rec[name] = grants
		return nil
	}
}

// readHost normalizes zero-padded octets ("010.001.002.003" to "10.1.2.3").
func readHost(d *decoder, key, value string) error {
	parts := strings.Split(strings.TrimSpace(value), ".")
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return d.c.Wrap(err, "%s octet %q", key, p)
		}
		parts[i] = strconv.Itoa(n)
	}
	addr, err := netip.ParseAddr(strings.Join(parts, "."))
	if err != nil || !addr.Is4() {
		return d.c.Errorf("%s: %q is not an IPv4 address", key, value)
	}
	d.rec["host"] = addr.String()
	return nil
}

// skipMemorized drops the memorized-spell block, which no longer has a meaning.
func skipMemorized(d *decoder, _, _ string) error {
	_, err := d.c.ReadUntilStarts(endZeroPair)
	return err
}

func readName(d *decoder, _, value string) error {
	if d.kind == KindPlayer {
		d.rec["name"] = value
	} else {
		d.rec["name_list"] = value
	}
	return nil
}

func readIntList(name string) handler {
	return func(d *decoder, key, value string) error {
		v, err := d.c.Atoi(key, strings.Fields(value)...)
		if err != nil {
			return err
		}
		d.rec[name] = v
		return nil
	}
}

func readSavingThrows(d *decoder, key, value string) error {
	v, err := d.ints(key, value, 5)
	if err != nil {
		return err
	}
	d.rec["saving_throws"] = map[string]int{
		"paralysis":     v[0],
		"rod":           v[1],
		"petrification": v[2],
		"breath":        v[3],
		"spell":         v[4],
	}
	return nil
}

func readSkills(d *decoder, key, _ string) error {
	lines, err := d.c.ReadUntilStarts(endZeroPair)
	if err != nil {
		return err
	}
	skills := map[string]int{}
	for _, l := range lines {
		v, err := d.ints(key, l, 2)
		if err != nil {
			return err
		}
		skills[d.skill(v[0])] = v[1]
	}
	d.rec["skills"] = skills
	return nil
}

// readSpells reads the spellbook block. Spell numbers beyond the table are
// dropped with a warning.
func readSpells(d *decoder, key, _ string) error {
	lines, err := d.c.ReadUntilStarts(endTilde)
	if err != nil {
		return err
	}
	spells, _ := d.rec["spells"].(map[string]int)
	if spells == nil {
		spells = map[string]int{}
	}
	for _, l := range lines {
		v, err := d.ints(key, l, 2)
		if err != nil {
			return err
		}
		if v[0] < 0 || v[0] >= len(tables.Spells) {
			d.rep.Warn(diag.Fallback, d.c.Pos(), "unknown spell number %d; dropped", v[0])
			continue
		}
		spells[tables.Spells[v[0]]] = v[1]
	}
	d.rec["spells"] = spells
	return nil
}

// readSpellCasts is stricter than readSpells: an unknown spell fails the record.
func readSpellCasts(d *decoder, key, _ string) error {
	lines, err := d.c.ReadUntilStarts(endZeroPair)
	if err != nil {
		return err
	}
	casts := map[string]int{}
	for _, l := range lines {
		v, err := d.ints(key, l, 2)
		if err != nil {
			return err
		}
		if v[0] < 0 || v[0] >= len(tables.Spells) {
			return d.c.Errorf("%s: unknown spell number %d", key, v[0])
		}
		casts[tables.Spells[v[0]]] = v[1]
	}
	d.rec["spell_casts"] = casts
	return nil
}

// readTildeInts reads whitespace-separated integers from lines up to "~".
func readTildeInts(name string) handler {
	return func(d *decoder, key, _ string) error {
		v, err := d.tildeInts(key)
		if err != nil {
			return err
		}
		d.rec[name] = v
		return nil
	}
}

func (d *decoder) tildeInts(key string) ([]int, error) {
	lines, err := d.c.ReadUntilStarts(endTilde)
	if err != nil {
		return nil, err
	}
	out := []int{}
	for _, l := range lines {
		v, err := d.c.Atoi(key, strings.Fields(l)...)
		if err != nil {
			return nil, err
		}
		out = append(out, v...)
	}
	return out, nil
}

func readTrophy(d *decoder, key, _ string) error {
	lines, err := d.c.ReadUntilStarts(endZeroPair)
	if err != nil {
		return err
	}
	trophy := []map[string]any{}
	for _, l := range lines {
		f := strings.Fields(l)
		if len(f) != 3 {
			return d.c.Errorf("%s: expected kind, id and count, got %q", key, l)
		}
		v, err := d.c.Atoi(key, f[:2]...)
		if err != nil {
			return err
		}
		count, err := d.c.Float(key, f[2])
		if err != nil {
			return err
		}
		trophy = append(trophy, map[string]any{
			"type":  tables.KillTypes.EnumName("kill_type", v[0]),
			"id":    v[1],
			"count": count,
		})
	}
	d.rec["trophy"] = trophy
	return nil
}

func readType(d *decoder, key, value string) error {
	n, err := d.atoi(key, value)
	if err != nil {
		return err
	}
	d.objType, d.hasType = n, true
	d.rec["type"] = tables.ObjectTypes.EnumName("object_type", n)
	return nil
}

func readValues(d *decoder, key, _ string) error {
	v, err := d.tildeInts(key)
	if err != nil {
		return err
	}
	d.rawValues = v
	return nil
}

func readVariables(d *decoder, _, _ string) error {
	lines, err := d.c.ReadUntilStarts(endTilde)
	if err != nil {
		return err
	}
	vars := map[string]string{}
	for _, l := range lines {
		k, v, _ := strings.Cut(l, " ")
		vars[k] = strings.TrimSpace(v)
	}
	d.rec["script_variables"] = vars
	return nil
}

func readWeight(d *decoder, key, value string) error {
	w, err := d.c.Float(key, strings.TrimSpace(value))
	if err != nil {
		return err
	}
	d.rec["weight"] = w
	return nil
}
