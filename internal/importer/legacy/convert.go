package legacy

import (
	"fmt"

	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
	"github.com/cory-johannsen/mudconvert/internal/legacy/records"
	"github.com/cory-johannsen/mudconvert/internal/legacy/tables"
	"github.com/cory-johannsen/mudconvert/internal/legacy/zone"
)

// levelMargin widens the zone level range derived from its mobiles.
const levelMargin = 2

var attachTypes = tables.Table{"mobile", "object", "world"}

func extraDescs(in []records.ExtraDescription) []ExtraDescDoc {
	if len(in) == 0 {
		return nil
	}
	out := make([]ExtraDescDoc, 0, len(in))
	for _, e := range in {
		out = append(out, ExtraDescDoc{Keywords: e.Keywords, Description: e.Description})
	}
	return out
}

func idList(in []int) []int {
	if len(in) == 0 {
		return nil
	}
	return append([]int(nil), in...)
}

// ConvertRoom normalizes a room. Door state is merged in later by MergeDoors.
func ConvertRoom(r records.Room) RoomDoc {
	doc := RoomDoc{
		ID:                r.ID,
		Name:              r.Name,
		Description:       r.Description,
		Sector:            tables.Sectors.EnumName("sector", r.Sector),
		Flags:             r.Flags.Names(),
		Exits:             make([]ExitDoc, 0, len(r.Exits)),
		ExtraDescriptions: extraDescs(r.ExtraDescriptions),
		Triggers:          idList(r.Triggers),
	}
	for _, e := range r.Exits {
		ex := ExitDoc{
			Direction:   tables.Directions.EnumName("direction", e.Direction),
			ToRoom:      e.ToRoom,
			Description: e.Description,
			Keywords:    e.Keywords,
		}
		if ex.Keywords == nil {
			ex.Keywords = []string{}
		}
		if e.IsDoor() {
			door := &DoorDoc{PickProof: e.Flags.Has(records.ExitPickProof)}
			if e.Key > 0 {
				key := e.Key
				door.KeyID = &key
			}
			ex.Door = door
		}
		doc.Exits = append(doc.Exits, ex)
	}
	return doc
}

// ConvertMobile normalizes a mobile prototype.
func ConvertMobile(m records.Mobile) MobileDoc {
	doc := MobileDoc{
		ID:               m.ID,
		Keywords:         m.Keywords,
		ShortDescription: m.ShortDescription,
		LongDescription:  m.LongDescription,
		Description:      m.Description,
		Flags:            m.MobFlags.Names(),
		Effects:          m.EffectFlags.Names(),
		Alignment:        m.Alignment,
		Level:            m.Level,
		HitRoll:          m.HitRoll,
		ArmorClass:       m.ArmorClass,
		HitPoints:        m.HitPoints,
		Damage:           m.Damage,
		Money:            MoneyDoc{Platinum: m.Platinum, Gold: m.Gold},
		Position:         tables.Positions.EnumName("position", m.Position),
		DefaultPosition:  tables.Positions.EnumName("position", m.DefaultPosition),
		Gender:           tables.Genders.EnumName("gender", m.Gender),
		Class:            tables.Classes.EnumName("class", m.Class),
		Race:             tables.Races.EnumName("race", m.Race),
		RaceAlignment:    m.RaceAlignment,
		Size:             tables.Sizes.EnumName("size", m.Size),
		Stance:           tables.Stances.EnumName("stance", m.Stance),
		LifeForce:        tables.LifeForces.EnumName("life_force", m.LifeForce),
		Composition:      tables.Compositions.EnumName("composition", m.Composition),
		BareHandAttack:   m.BareHandAttack,
		Perception:       m.Perception,
		Concealment:      m.Concealment,
		Triggers:         idList(m.Triggers),
	}
	if len(m.Abilities) > 0 {
		doc.Abilities = make(map[string]int, len(m.Abilities))
		for k, v := range m.Abilities {
			doc.Abilities[k] = v
		}
	}
	return doc
}

// ConvertObject normalizes an object prototype.
func ConvertObject(o records.Object) ObjectDoc {
	doc := ObjectDoc{
		ID:                o.ID,
		Keywords:          o.Keywords,
		ShortDescription:  o.ShortDescription,
		GroundDescription: o.GroundDescription,
		ActionDescription: o.ActionDescription,
		Type:              tables.ObjectTypes.EnumName("object_type", int(o.Type)),
		Flags:             o.ExtraFlags.Names(),
		WearFlags:         o.WearFlags.Names(),
		Level:             o.Level,
		Values:            o.Block,
		Weight:            o.Weight,
		Cost:              o.Cost,
		Timer:             o.Timer,
		Effects:           o.Effects.Names(),
		ExtraDescriptions: extraDescs(o.ExtraDescriptions),
		Concealment:       o.Concealment,
		Triggers:          idList(o.Triggers),
	}
	for _, a := range o.Applies {
		doc.Applies = append(doc.Applies, ApplyDoc{
			Location: tables.Affects.EnumName("apply", a.Location),
			Modifier: a.Modifier,
		})
	}
	return doc
}

// ConvertShop normalizes a shop.
func ConvertShop(s records.Shop) ShopDoc {
	doc := ShopDoc{
		ID:         s.ID,
		Keeper:     s.Keeper,
		Produces:   make([]ShopItemDoc, 0, len(s.Produces)),
		BuyProfit:  s.BuyProfit,
		SellProfit: s.SellProfit,
		Trades:     make([]ShopTradeDoc, 0, len(s.Trades)),
		Messages:   ShopMessagesDoc(s.Messages),
		Temper:     s.Temper,
		Flags:      s.Flags.Names(),
		TradesWith: s.TradesWith.Names(),
		Rooms:      append([]int{}, s.Rooms...),
		Hours:      make([]ShopHoursDoc, 0, len(s.Hours)),
	}
	for _, p := range s.Produces {
		doc.Produces = append(doc.Produces, ShopItemDoc(p))
	}
	for _, t := range s.Trades {
		doc.Trades = append(doc.Trades, ShopTradeDoc{
			Type:     tables.ObjectTypes.EnumName("object_type", t.Type),
			Keywords: t.Keywords,
		})
	}
	for _, h := range s.Hours {
		doc.Hours = append(doc.Hours, ShopHoursDoc(h))
	}
	return doc
}

// ConvertTrigger normalizes a trigger.
func ConvertTrigger(t records.Trigger) TriggerDoc {
	cmds := t.Commands
	if cmds == nil {
		cmds = []string{}
	}
	return TriggerDoc{
		ID:         t.ID,
		Name:       t.Name,
		AttachType: attachTypes.EnumName("attach_type", t.AttachType),
		Types:      t.Types.Names(),
		NumericArg: t.NumericArg,
		Arguments:  t.Arguments,
		Commands:   cmds,
	}
}

// ConvertHeader normalizes a zone header. Derived ranges are filled in by the caller.
func ConvertHeader(h zone.Header) ZoneInfo {
	return ZoneInfo{
		ID:         h.ID,
		Name:       h.Name,
		Top:        h.Top,
		Lifespan:   h.Lifespan,
		ResetMode:  tables.ResetModes.EnumName("reset_mode", h.ResetMode),
		ZoneFactor: h.ZoneFactor,
		Hemisphere: tables.Hemispheres.EnumName("hemisphere", h.Hemisphere),
		Climate:    tables.Climates.EnumName("climate", h.Climate),
	}
}

func convertItem(it *zone.Item) ItemDoc {
	doc := ItemDoc{ObjectID: it.ObjectID, Max: it.Max, Comment: it.Name}
	if it.Slot >= 0 {
		doc.Slot = tables.WearLocations.EnumName("wear_location", it.Slot)
	}
	for _, c := range it.Contents {
		doc.Contents = append(doc.Contents, convertItem(c))
	}
	return doc
}

func convertItems(in []*zone.Item) []ItemDoc {
	var out []ItemDoc
	for _, it := range in {
		out = append(out, convertItem(it))
	}
	return out
}

// ConvertResets flattens an assembled reset tree into program-ordered
// documents, preserving item nesting.
func ConvertResets(t zone.Tree) []ResetDoc {
	out := make([]ResetDoc, 0, len(t.Nodes))
	for _, n := range t.Nodes {
		switch n := n.(type) {
		case *zone.MobileLoad:
			out = append(out, ResetDoc{LoadMobile: &LoadMobileDoc{
				MobileID: n.MobileID,
				Max:      n.Max,
				Room:     n.Room,
				Comment:  n.Name,
				Equipped: convertItems(n.Equipped),
				Carried:  convertItems(n.Carried),
			}})
		case *zone.ObjectLoad:
			out = append(out, ResetDoc{LoadObject: &LoadObjectDoc{Room: n.Room, ItemDoc: convertItem(n.Object)}})
		case *zone.DoorReset:
			out = append(out, ResetDoc{SetDoor: &SetDoorDoc{
				Room:      n.Room,
				Direction: tables.Directions.EnumName("direction", n.Direction),
				States:    doorStateNames(n.States),
				Comment:   n.Name,
			}})
		case *zone.RemoveObject:
			out = append(out, ResetDoc{RemoveObject: &RemoveObjectDoc{Room: n.Room, ObjectID: n.ObjectID, Comment: n.Name}})
		case *zone.Force:
			out = append(out, ResetDoc{Force: &ForceDoc{MobileID: n.MobileID, Command: n.Command}})
		}
	}
	return out
}

// doorStateNames unions the conditions of every state, in first-seen order.
func doorStateNames(states []int) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, s := range states {
		names, ok := zone.DoorStateNames(s)
		if !ok {
			names = []string{fmt.Sprintf("unknown_door_state_%d", s)}
		}
		for _, n := range names {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

// MergeDoors folds the zone's door resets into the matching room exits.
// A reset naming a room outside the zone, or a direction without a door,
// is reported as an integrity warning and otherwise ignored.
//
// Postcondition: rooms is modified in place; no room or exit is added.
func MergeDoors(rooms []RoomDoc, t zone.Tree, rep *diag.Report, zoneID int) {
	index := make(map[int]int, len(rooms))
	for i, r := range rooms {
		index[r.ID] = i
	}
	for _, d := range t.Doors() {
		pos := diag.Position{File: rep.File, Line: d.Line, Record: zoneID}
		i, ok := index[d.Room]
		if !ok {
			rep.Warn(diag.Integrity, pos, "door reset names room %d, which is not in the zone", d.Room)
			continue
		}
		dir := tables.Directions.EnumName("direction", d.Direction)
		var door *DoorDoc
		for j := range rooms[i].Exits {
			if rooms[i].Exits[j].Direction == dir {
				door = rooms[i].Exits[j].Door
				break
			}
		}
		if door == nil {
			rep.Warn(diag.Integrity, pos, "door reset for room %d %s, which has no door", d.Room, dir)
			continue
		}
		door.Closed, door.Locked, door.Hidden = false, false, false
		for _, s := range doorStateNames(d.States) {
			switch s {
			case "CLOSED":
				door.Closed = true
			case "LOCKED":
				door.Locked = true
			case "HIDDEN":
				door.Hidden = true
			}
		}
	}
}

// levelRange derives the zone's level range from its mobiles.
func levelRange(mobs []records.Mobile) (lo, hi int, ok bool) {
	if len(mobs) == 0 {
		return 0, 0, false
	}
	lo, hi = mobs[0].Level, mobs[0].Level
	for _, m := range mobs[1:] {
		lo = min(lo, m.Level)
		hi = max(hi, m.Level)
	}
	return max(1, lo-levelMargin), hi + levelMargin, true
}

// roomRange derives the first and last room, falling back to the span the
// zone number and top allot when the zone has no rooms.
func roomRange(rooms []records.Room, h zone.Header) (first, last int) {
	if len(rooms) == 0 {
		return h.ID * 100, h.Top
	}
	first, last = rooms[0].ID, rooms[0].ID
	for _, r := range rooms[1:] {
		first = min(first, r.ID)
		last = max(last, r.ID)
	}
	return first, last
}
