package records

import (
	"github.com/cory-johannsen/mudconvert/internal/legacy/cursor"
	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
	"github.com/cory-johannsen/mudconvert/internal/legacy/flags"
	"github.com/cory-johannsen/mudconvert/internal/legacy/tables"
	"github.com/cory-johannsen/mudconvert/internal/legacy/values"
)

// MaxObjectApplies is the most A lines an object may carry.
const MaxObjectApplies = 6

// Apply is one stat modifier granted by an object.
type Apply struct {
	Location int
	Modifier int
}

// Object is a decoded object prototype.
type Object struct {
	ID                int
	Keywords          []string
	ShortDescription  string
	GroundDescription string
	ActionDescription string

	Type       values.ObjectType
	ExtraFlags flags.Set
	WearFlags  flags.Set
	Level      int

	Values values.Tuple
	Block  values.Block

	Weight  float64
	Cost    int
	Timer   int
	Effects flags.Set

	ExtraDescriptions []ExtraDescription
	Applies           []Apply
	Concealment       int
	Triggers          []int
}

// ObjectDecoder decodes objects against a value layout.
type ObjectDecoder struct {
	Layout values.Layout
}

// Decode decodes one object record. The value tuple is resolved only after
// the type tag has been read.
//
// Precondition: c is positioned at the record's "#id" line.
func (d ObjectDecoder) Decode(c *cursor.Cursor, rep *diag.Report) (Object, error) {
	id, err := c.ReadID("#")
	if err != nil {
		return Object{}, err
	}
	o := Object{ID: id, ExtraDescriptions: []ExtraDescription{}, Applies: []Apply{}, Triggers: []int{}}

	kw, err := c.ReadString()
	if err != nil {
		return Object{}, err
	}
	o.Keywords = Keywords(kw)
	if o.ShortDescription, err = c.ReadString(); err != nil {
		return Object{}, err
	}
	if o.GroundDescription, err = c.ReadString(); err != nil {
		return Object{}, err
	}
	if o.ActionDescription, err = c.ReadString(); err != nil {
		return Object{}, err
	}

	fields, err := c.Fields("object type line", 3)
	if err != nil {
		return Object{}, err
	}
	typ, err := c.Atoi("object type", fields[0])
	if err != nil {
		return Object{}, err
	}
	o.Type = values.ObjectType(typ[0])
	if o.ExtraFlags, err = flags.Decode(fields[1], tables.ObjectFlags, 0); err != nil {
		return Object{}, c.Wrap(err, "object extra flags")
	}
	if o.WearFlags, err = flags.Decode(fields[2], tables.WearFlags, 0); err != nil {
		return Object{}, c.Wrap(err, "object wear flags")
	}
	if len(fields) > 3 {
		lvl, err := c.Atoi("object level", fields[3])
		if err != nil {
			return Object{}, err
		}
		o.Level = lvl[0]
	} else {
		rep.Warn(diag.Integrity, c.Pos(), "object %d has no level; using 0", o.ID)
	}

	vals, err := c.Ints("object values line", 7)
	if err != nil {
		return Object{}, err
	}
	o.Values = values.TupleFrom(vals)

	misc, err := c.Fields("object weight line", 4)
	if err != nil {
		return Object{}, err
	}
	if o.Weight, err = c.Float("object weight", misc[0]); err != nil {
		return Object{}, err
	}
	nums, err := c.Atoi("object cost line", misc[1:3]...)
	if err != nil {
		return Object{}, err
	}
	o.Cost, o.Timer = nums[0], nums[1]
	if o.Effects, err = decodeEffectWords(misc); err != nil {
		return Object{}, c.Wrap(err, "object effect flags")
	}

	o.Block = values.Resolve(o.Type, o.Values, d.Layout)
	if _, ok := o.Block.(values.Unknown); ok {
		rep.Warn(diag.Fallback, c.Pos(), "object %d has unknown type %d; values passed through raw", o.ID, typ[0])
	}

	for {
		line, ok := c.NextLine()
		if !ok {
			return o, nil
		}
		switch line[0] {
		case 'E':
			ed, err := readExtraDescription(c)
			if err != nil {
				return Object{}, err
			}
			o.ExtraDescriptions = append(o.ExtraDescriptions, ed)
		case 'A':
			if len(o.Applies) >= MaxObjectApplies {
				return Object{}, c.Errorf("object %d has more than %d A fields", o.ID, MaxObjectApplies)
			}
			a, err := c.Ints("object apply line", 2)
			if err != nil {
				return Object{}, err
			}
			o.Applies = append(o.Applies, Apply{Location: a[0], Modifier: a[1]})
		case 'H':
			h, err := c.Ints("object concealment line", 1)
			if err != nil {
				return Object{}, err
			}
			o.Concealment = h[0]
		case 'T':
			tid, err := readTriggerRef(c, line)
			if err != nil {
				return Object{}, err
			}
			o.Triggers = append(o.Triggers, tid)
		case 'X':
			raw, err := c.RequireLine("object extension flags")
			if err != nil {
				return Object{}, err
			}
			ext, err := flags.Decode(raw, tables.ObjectFlags, flags.GenerationWidth)
			if err != nil {
				return Object{}, c.Wrap(err, "object extension flags")
			}
			o.ExtraFlags = o.ExtraFlags.Union(ext)
		case '#', '$':
			return o, nil
		default:
			return Object{}, c.UnknownTag("object tail", line)
		}
	}
}

// decodeEffectWords reads the effect words of the weight line: field 3 is
// word 0 and fields 6 and 7, when present, are words 1 and 2.
func decodeEffectWords(misc []string) (flags.Set, error) {
	set, err := flags.Decode(misc[3], tables.Effects, 0)
	if err != nil {
		return flags.Set{}, err
	}
	for i, idx := range []int{6, 7} {
		if idx >= len(misc) {
			break
		}
		w, err := flags.Decode(misc[idx], tables.Effects, (i+1)*flags.GenerationWidth)
		if err != nil {
			return flags.Set{}, err
		}
		set = set.Union(w)
	}
	return set, nil
}
