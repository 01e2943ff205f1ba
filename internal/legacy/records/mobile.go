package records

import (
	"strconv"
	"strings"

	"github.com/cory-johannsen/mudconvert/internal/legacy/dice"
	"github.com/cory-johannsen/mudconvert/internal/legacy/cursor"
	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
	"github.com/cory-johannsen/mudconvert/internal/legacy/flags"
	"github.com/cory-johannsen/mudconvert/internal/legacy/tables"
)

// Defaults applied to mobiles whose records predate the class and race fields.
const (
	DefaultMobileClass  = 24 // layman
	DefaultMobileRace   = 0  // human
	DefaultMobileSize   = 2  // medium
	DefaultMobileStance = 6  // alert
	positionStanding    = 3
)

// Mobile is a decoded mobile prototype.
type Mobile struct {
	ID               int
	Keywords         []string
	ShortDescription string
	LongDescription  string
	Description      string

	MobFlags    flags.Set
	EffectFlags flags.Set
	Alignment   int
	Enhanced    bool

	Level      int
	HitRoll    int
	ArmorClass int
	HitPoints  dice.Expression
	Damage     dice.Expression

	Gold     int
	Platinum int
	Zone     int

	Position        int
	DefaultPosition int
	Gender          int
	Class           int
	Race            int
	RaceAlignment   int
	Size            int

	BareHandAttack int
	Abilities      map[string]int
	Perception     int
	Concealment    int
	LifeForce      int
	Composition    int
	Stance         int

	Triggers []int
}

// DecodeMobile decodes one mobile record.
//
// Precondition: c is positioned at the record's "#id" line.
func DecodeMobile(c *cursor.Cursor, rep *diag.Report) (Mobile, error) {
	id, err := c.ReadID("#")
	if err != nil {
		return Mobile{}, err
	}
	m := Mobile{
		ID:        id,
		Class:     DefaultMobileClass,
		Race:      DefaultMobileRace,
		Size:      DefaultMobileSize,
		Stance:    DefaultMobileStance,
		Abilities: map[string]int{},
		Triggers:  []int{},
	}

	namelist, err := c.ReadString()
	if err != nil {
		return Mobile{}, err
	}
	m.Keywords = Keywords(namelist)
	if m.ShortDescription, err = c.ReadString(); err != nil {
		return Mobile{}, err
	}
	if m.LongDescription, err = c.ReadString(); err != nil {
		return Mobile{}, err
	}
	if m.Description, err = c.ReadString(); err != nil {
		return Mobile{}, err
	}

	fields, err := c.Fields("mobile flags line", 4)
	if err != nil {
		return Mobile{}, err
	}
	if m.MobFlags, err = flags.Decode(fields[0], tables.MobFlags, 0); err != nil {
		return Mobile{}, c.Wrap(err, "mobile flags")
	}
	if m.EffectFlags, err = flags.Decode(fields[1], tables.Effects, 0); err != nil {
		return Mobile{}, c.Wrap(err, "effect flags")
	}
	align, err := c.Atoi("alignment", fields[2])
	if err != nil {
		return Mobile{}, err
	}
	m.Alignment = align[0]

	switch kind := strings.ToUpper(fields[3]); kind {
	case "S":
	case "E":
		m.Enhanced = true
	default:
		return Mobile{}, c.UnknownTag("mobile type", fields[3])
	}

	if err := decodeSimpleMobile(c, &m); err != nil {
		return Mobile{}, err
	}
	if m.Enhanced {
		if err := decodeEnhancedSection(c, rep, &m); err != nil {
			return Mobile{}, err
		}
	}

	for {
		line, ok := c.NextLine()
		if !ok {
			break
		}
		switch line[0] {
		case 'T':
			tid, err := readTriggerRef(c, line)
			if err != nil {
				return Mobile{}, err
			}
			m.Triggers = append(m.Triggers, tid)
		case '>':
			rep.Warn(diag.Deprecated, c.Pos(), "mobile %d still carries a mobprog; skipped", m.ID)
			for !strings.HasSuffix(line, "|") {
				if line, ok = c.NextLine(); !ok {
					break
				}
			}
		default:
			return Mobile{}, c.UnknownTag("mobile tail", line)
		}
	}

	if m.DefaultPosition < 0 || m.DefaultPosition >= len(tables.Positions) {
		rep.Warn(diag.Integrity, c.Pos(), "mobile %d default position %d out of range; using standing", m.ID, m.DefaultPosition)
		m.DefaultPosition = positionStanding
	}
	if m.Position < 0 || m.Position >= len(tables.Positions) {
		rep.Warn(diag.Integrity, c.Pos(), "mobile %d position %d out of range; using standing", m.ID, m.Position)
		m.Position = positionStanding
	}
	return m, nil
}

func decodeSimpleMobile(c *cursor.Cursor, m *Mobile) error {
	fields, err := c.Fields("mobile level line", 5)
	if err != nil {
		return err
	}
	nums, err := c.Atoi("mobile level line", fields[:3]...)
	if err != nil {
		return err
	}
	m.Level, m.HitRoll, m.ArmorClass = nums[0], nums[1], nums[2]
	if m.HitPoints, err = dice.Parse(fields[3]); err != nil {
		return c.Wrap(err, "hit point dice")
	}
	if m.Damage, err = dice.Parse(fields[4]); err != nil {
		return c.Wrap(err, "damage dice")
	}

	money, err := c.Ints("mobile money line", 1)
	if err != nil {
		return err
	}
	m.Gold = money[0]
	if len(money) > 3 {
		m.Platinum, m.Zone = money[1], money[2]
	} else {
		m.Zone = m.ID / 100
	}

	pos, err := c.Ints("mobile position line", 3)
	if err != nil {
		return err
	}
	m.Position, m.DefaultPosition, m.Gender = pos[0], pos[1], pos[2]
	if len(pos) > 3 {
		if len(pos) < 7 {
			return c.Errorf("mobile position line: expected 3 or 7 fields, got %d", len(pos))
		}
		m.Class, m.Race, m.RaceAlignment, m.Size = pos[3], pos[4], pos[5], pos[6]
	}
	return nil
}

// decodeEnhancedSection reads "Key: value" lines until a line equal to "E".
// Later lines override earlier ones and the static defaults.
func decodeEnhancedSection(c *cursor.Cursor, rep *diag.Report, m *Mobile) error {
	for {
		line, ok := c.NextLine()
		if !ok {
			return c.Errorf("unterminated E section in mobile %d", m.ID)
		}
		if line == "E" {
			return nil
		}
		if strings.HasPrefix(line, "#") {
			return c.Errorf("unterminated E section in mobile %d", m.ID)
		}
		key, value, _ := strings.Cut(line, ":")
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if err := applyEspec(c, rep, m, key, value); err != nil {
			return err
		}
	}
}

func applyEspec(c *cursor.Cursor, rep *diag.Report, m *Mobile, key, value string) error {
	lower := strings.ToLower(key)
	switch lower {
	case "aff2", "aff3", "mob2":
		table, offset := tables.Effects, flags.GenerationWidth
		switch lower {
		case "aff3":
			offset = 2 * flags.GenerationWidth
		case "mob2":
			table = tables.MobFlags
		}
		ext, err := flags.Decode(value, table, offset)
		if err != nil {
			return c.Wrap(err, "%s flags", key)
		}
		if lower == "mob2" {
			m.MobFlags = m.MobFlags.Union(ext)
		} else {
			m.EffectFlags = m.EffectFlags.Union(ext)
		}
		return nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return c.Wrap(err, "%s value", key)
	}
	switch lower {
	case "barehandattack":
		v, clamped := clamp(n, 0, 99)
		if clamped {
			rep.Warn(diag.Integrity, c.Pos(), "mobile %d %s %d clamped to %d", m.ID, key, n, v)
		}
		m.BareHandAttack = v
	case "str", "int", "wis", "dex", "con", "cha":
		v, clamped := clamp(n, 30, 100)
		if clamped {
			rep.Warn(diag.Integrity, c.Pos(), "mobile %d %s %d clamped to %d", m.ID, key, n, v)
		}
		m.Abilities[lower] = v
	case "perc":
		m.Perception = n
	case "hide":
		m.Concealment = n
	case "lifeforce":
		m.LifeForce = n
	case "composition":
		m.Composition = n
	case "stance":
		m.Stance = n
	default:
		return c.UnknownTag("mobile espec", key)
	}
	return nil
}
