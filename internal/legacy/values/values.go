// Package values resolves an object's seven-integer value tuple into a typed
// block according to the object's type tag.
package values

import (
	"github.com/cory-johannsen/mudconvert/internal/legacy/dice"
	"github.com/cory-johannsen/mudconvert/internal/legacy/tables"
)

// ObjectType is the numeric object type tag.
type ObjectType int

const (
	TypeNothing ObjectType = iota
	TypeLight
	TypeScroll
	TypeWand
	TypeStaff
	TypeWeapon
	TypeFireWeapon
	TypeMissile
	TypeTreasure
	TypeArmor
	TypePotion
	TypeWorn
	TypeOther
	TypeTrash
	TypeTrap
	TypeContainer
	TypeNote
	TypeDrinkContainer
	TypeKey
	TypeFood
	TypeMoney
	TypePen
	TypeBoat
	TypeFountain
	TypePortal
	TypeRope
	TypeSpellbook
	TypeWall
	TypeTouchstone
	TypeBoard
	TypeInstrument
)

// String returns the legacy tag name, e.g. "DRINKCON".
func (t ObjectType) String() string {
	return tables.ObjectTypes.Name(int(t))
}

// Known reports whether t is inside the object type table.
func (t ObjectType) Known() bool {
	return t >= 0 && int(t) < len(tables.ObjectTypes)
}

// Tuple is the raw value tuple of an object.
type Tuple [7]int

// Block is the closed set of typed value blocks. The unexported method keeps
// the set closed to this package.
type Block interface {
	Kind() string
	isBlock()
}

// Armor covers armor and treasure.
type Armor struct {
	AC int `json:"armor_class" yaml:"armor_class"`
}

type Light struct {
	Lit       bool `json:"lit" yaml:"lit"`
	Capacity  int  `json:"capacity" yaml:"capacity"`
	Remaining int  `json:"remaining" yaml:"remaining"`
	Permanent bool `json:"permanent" yaml:"permanent"`
}

type Container struct {
	Capacity        int  `json:"capacity" yaml:"capacity"`
	Closeable       bool `json:"closeable" yaml:"closeable"`
	PickProof       bool `json:"pickproof" yaml:"pickproof"`
	Closed          bool `json:"closed" yaml:"closed"`
	Locked          bool `json:"locked" yaml:"locked"`
	KeyID           int  `json:"key_id" yaml:"key_id"`
	Corpse          bool `json:"corpse" yaml:"corpse"`
	WeightReduction int  `json:"weight_reduction" yaml:"weight_reduction"`
}

// DrinkContainer covers drink containers and fountains.
type DrinkContainer struct {
	Capacity  int    `json:"capacity" yaml:"capacity"`
	Remaining int    `json:"remaining" yaml:"remaining"`
	Liquid    string `json:"liquid" yaml:"liquid"`
	Poisoned  bool   `json:"poisoned" yaml:"poisoned"`
}

type Food struct {
	Filling  int  `json:"filling" yaml:"filling"`
	Poisoned bool `json:"poisoned" yaml:"poisoned"`
}

// SpellItem covers scrolls and potions.
type SpellItem struct {
	Level  int      `json:"level" yaml:"level"`
	Spells []string `json:"spells" yaml:"spells"`
}

// Device covers wands, staves and instruments.
type Device struct {
	Level       int    `json:"level" yaml:"level"`
	MaxCharges  int    `json:"max_charges" yaml:"max_charges"`
	ChargesLeft int    `json:"charges_left" yaml:"charges_left"`
	Spell       string `json:"spell" yaml:"spell"`
}

type Money struct {
	Platinum int `json:"platinum" yaml:"platinum"`
	Gold     int `json:"gold" yaml:"gold"`
	Silver   int `json:"silver" yaml:"silver"`
	Copper   int `json:"copper" yaml:"copper"`
}

type Portal struct {
	Destination      int `json:"destination" yaml:"destination"`
	EntryMessage     int `json:"entry_message" yaml:"entry_message"`
	CharacterMessage int `json:"character_message" yaml:"character_message"`
	ExitMessage      int `json:"exit_message" yaml:"exit_message"`
}

type Wall struct {
	Direction   string `json:"direction" yaml:"direction"`
	Dispellable bool   `json:"dispellable" yaml:"dispellable"`
	HitPoints   int    `json:"hit_points" yaml:"hit_points"`
	Spell       string `json:"spell" yaml:"spell"`
}

type Trap struct {
	Spell     string `json:"spell" yaml:"spell"`
	HitPoints int    `json:"hit_points" yaml:"hit_points"`
}

type Note struct {
	Tongue int `json:"tongue" yaml:"tongue"`
}

type Board struct {
	Pages int `json:"pages" yaml:"pages"`
}

type Spellbook struct {
	Pages int `json:"pages" yaml:"pages"`
}

type Weapon struct {
	HitRoll    int             `json:"hit_roll" yaml:"hit_roll"`
	Dice       dice.Expression `json:"damage_dice" yaml:"damage_dice"`
	Average    float64         `json:"average" yaml:"average"`
	DamageType string          `json:"damage_type" yaml:"damage_type"`
}

// Plain is the block of types that carry no value data.
type Plain struct{}

// Unknown passes an unrecognized type's tuple through untouched.
type Unknown struct {
	Type int   `json:"-" yaml:"-"`
	Raw  []int `json:"_raw_values" yaml:"_raw_values"`
}

func (Armor) Kind() string { return "armor" }
func (Light) Kind() string { return "light" }
func (Container) Kind() string { return "container" }
func (DrinkContainer) Kind() string { return "drink_container" }
func (Food) Kind() string { return "food" }
func (SpellItem) Kind() string { return "spell_item" }
func (Device) Kind() string { return "device" }
func (Money) Kind() string { return "money" }
func (Portal) Kind() string { return "portal" }
func (Wall) Kind() string { return "wall" }
func (Trap) Kind() string { return "trap" }
func (Note) Kind() string { return "note" }
func (Board) Kind() string { return "board" }
func (Spellbook) Kind() string { return "spellbook" }
func (Weapon) Kind() string { return "weapon" }
func (Plain) Kind() string { return "plain" }
func (Unknown) Kind() string { return "unknown" }

func (Armor) isBlock() {}
func (Light) isBlock() {}
func (Container) isBlock() {}
func (DrinkContainer) isBlock() {}
func (Food) isBlock() {}
func (SpellItem) isBlock() {}
func (Device) isBlock() {}
func (Money) isBlock() {}
func (Portal) isBlock() {}
func (Wall) isBlock() {}
func (Trap) isBlock() {}
func (Note) isBlock() {}
func (Board) isBlock() {}
func (Spellbook) isBlock() {}
func (Weapon) isBlock() {}
func (Plain) isBlock() {}
func (Unknown) isBlock() {}

// WeaponAverage is the average damage figure reported for a weapon:
// (count+1) * (sides+1) / 2, so 2d6 gives 10.5. This is not the
// (count+1)/2 * sides form, which gives 9 for 2d6, and not the mean roll
// count*(sides+1)/2.
func WeaponAverage(count, sides int) float64 {
	return float64(count+1) * float64(sides+1) / 2
}

// Resolve interprets v according to t. It is total: a type outside the table
// yields Unknown, which callers report as a fallback.
//
// Precondition: t is the object's final type tag.
func Resolve(t ObjectType, v Tuple, layout Layout) Block {
	switch t {
	case TypeArmor, TypeTreasure:
		return Armor{AC: v[0]}
	case TypeLight:
		remaining := v[layout.LightRemaining]
		return Light{Lit: v[0] != 0, Capacity: v[1], Remaining: remaining, Permanent: remaining == -1}
	case TypeContainer:
		c := Container{Capacity: v[0], KeyID: v[2], Corpse: v[3] != 0, WeightReduction: v[4]}
		for bit, flag := range layout.ContainerBits {
			if v[1]&(1<<uint(bit)) == 0 {
				continue
			}
			switch flag {
			case Closeable:
				c.Closeable = true
			case PickProof:
				c.PickProof = true
			case Closed:
				c.Closed = true
			case Locked:
				c.Locked = true
			}
		}
		return c
	case TypeDrinkContainer, TypeFountain:
		return DrinkContainer{
			Capacity:  v[0],
			Remaining: v[layout.DrinkRemaining],
			Liquid:    tables.Liquids.Name(v[2]),
			Poisoned:  v[3] != 0,
		}
	case TypeFood:
		return Food{Filling: v[0], Poisoned: v[1] != 0}
	case TypeSpellbook:
		return Spellbook{Pages: v[0]}
	case TypeBoard:
		return Board{Pages: v[0]}
	case TypeScroll, TypePotion:
		spells := []string{}
		for _, n := range v[1:4] {
			if n != 0 {
				spells = append(spells, tables.Spells.Name(n))
			}
		}
		return SpellItem{Level: v[0], Spells: spells}
	case TypeWand, TypeStaff, TypeInstrument:
		return Device{Level: v[0], MaxCharges: v[1], ChargesLeft: v[2], Spell: tables.Spells.Name(v[3])}
	case TypeMoney:
		return Money{Platinum: v[0], Gold: v[1], Silver: v[2], Copper: v[3]}
	case TypePortal:
		return Portal{Destination: v[0], EntryMessage: v[1], CharacterMessage: v[2], ExitMessage: v[3]}
	case TypeWall:
		return Wall{
			Direction:   tables.Directions.EnumName("direction", v[0]),
			Dispellable: v[1] != 0,
			HitPoints:   v[2],
			Spell:       tables.Spells.Name(v[3]),
		}
	case TypeWeapon:
		return Weapon{
			HitRoll:    v[0],
			Dice:       dice.Expression{Count: v[1], Sides: v[2]},
			Average:    WeaponAverage(v[1], v[2]),
			DamageType: tables.DamageTypes.Name(v[3]),
		}
	case TypeTrap:
		return Trap{Spell: tables.Spells.Name(v[0]), HitPoints: v[1]}
	case TypeNote:
		return Note{Tongue: v[0]}
	case TypeWorn, TypeTrash, TypeOther, TypeKey, TypeNothing, TypePen, TypeBoat,
		TypeRope, TypeTouchstone, TypeMissile, TypeFireWeapon:
		return Plain{}
	default:
		raw := make([]int, len(v))
		copy(raw, v[:])
		return Unknown{Type: int(t), Raw: raw}
	}
}

// TupleFrom copies up to seven values into a Tuple; missing values are zero.
func TupleFrom(vals []int) Tuple {
	var t Tuple
	copy(t[:], vals)
	return t
}
