package legacy

import (
	"github.com/cory-johannsen/mudconvert/internal/legacy/dice"
	"github.com/cory-johannsen/mudconvert/internal/legacy/values"
)

// ZoneDocument is the normalized output for one zone. Its JSON and YAML tags
// match the embedded zone schema.
type ZoneDocument struct {
	Zone     ZoneInfo     `json:"zone" yaml:"zone"`
	Rooms    []RoomDoc    `json:"rooms" yaml:"rooms"`
	Mobiles  []MobileDoc  `json:"mobiles" yaml:"mobiles"`
	Objects  []ObjectDoc  `json:"objects" yaml:"objects"`
	Shops    []ShopDoc    `json:"shops" yaml:"shops"`
	Triggers []TriggerDoc `json:"triggers" yaml:"triggers"`
	Resets   []ResetDoc   `json:"resets" yaml:"resets"`
}

// ZoneInfo is the zone header plus the ranges derived from its contents.
type ZoneInfo struct {
	ID         int    `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Top        int    `json:"top" yaml:"top"`
	Lifespan   int    `json:"lifespan" yaml:"lifespan"`
	ResetMode  string `json:"reset_mode" yaml:"reset_mode"`
	ZoneFactor int    `json:"zone_factor" yaml:"zone_factor"`
	Hemisphere string `json:"hemisphere" yaml:"hemisphere"`
	Climate    string `json:"climate" yaml:"climate"`
	FirstRoom  int    `json:"first_room" yaml:"first_room"`
	LastRoom   int    `json:"last_room" yaml:"last_room"`
	MinLevel   int    `json:"min_level,omitempty" yaml:"min_level,omitempty"`
	MaxLevel   int    `json:"max_level,omitempty" yaml:"max_level,omitempty"`
}

type ExtraDescDoc struct {
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Description string   `json:"description" yaml:"description"`
}

type RoomDoc struct {
	ID                int            `json:"id" yaml:"id"`
	Name              string         `json:"name" yaml:"name"`
	Description       string         `json:"description" yaml:"description"`
	Sector            string         `json:"sector" yaml:"sector"`
	Flags             []string       `json:"flags" yaml:"flags"`
	Exits             []ExitDoc      `json:"exits" yaml:"exits"`
	ExtraDescriptions []ExtraDescDoc `json:"extra_descriptions,omitempty" yaml:"extra_descriptions,omitempty"`
	Triggers          []int          `json:"triggers,omitempty" yaml:"triggers,omitempty"`
}

type ExitDoc struct {
	Direction   string   `json:"direction" yaml:"direction"`
	ToRoom      int      `json:"to_room" yaml:"to_room"`
	Description string   `json:"description" yaml:"description"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Door        *DoorDoc `json:"door,omitempty" yaml:"door,omitempty"`
}

// DoorDoc describes a door. Closed, Locked and Hidden are the reset state
// folded in from the zone's door resets.
type DoorDoc struct {
	KeyID     *int `json:"key_id,omitempty" yaml:"key_id,omitempty"`
	PickProof bool `json:"pickproof" yaml:"pickproof"`
	Closed    bool `json:"closed" yaml:"closed"`
	Locked    bool `json:"locked" yaml:"locked"`
	Hidden    bool `json:"hidden" yaml:"hidden"`
}

type MoneyDoc struct {
	Platinum int `json:"platinum" yaml:"platinum"`
	Gold     int `json:"gold" yaml:"gold"`
}

type MobileDoc struct {
	ID               int             `json:"id" yaml:"id"`
	Keywords         []string        `json:"keywords" yaml:"keywords"`
	ShortDescription string          `json:"short_description" yaml:"short_description"`
	LongDescription  string          `json:"long_description" yaml:"long_description"`
	Description      string          `json:"description" yaml:"description"`
	Flags            []string        `json:"flags" yaml:"flags"`
	Effects          []string        `json:"effects" yaml:"effects"`
	Alignment        int             `json:"alignment" yaml:"alignment"`
	Level            int             `json:"level" yaml:"level"`
	HitRoll          int             `json:"hit_roll" yaml:"hit_roll"`
	ArmorClass       int             `json:"armor_class" yaml:"armor_class"`
	HitPoints        dice.Expression `json:"hit_points" yaml:"hit_points"`
	Damage           dice.Expression `json:"damage" yaml:"damage"`
	Money            MoneyDoc        `json:"money" yaml:"money"`
	Position         string          `json:"position" yaml:"position"`
	DefaultPosition  string          `json:"default_position" yaml:"default_position"`
	Gender           string          `json:"gender" yaml:"gender"`
	Class            string          `json:"class" yaml:"class"`
	Race             string          `json:"race" yaml:"race"`
	RaceAlignment    int             `json:"race_alignment" yaml:"race_alignment"`
	Size             string          `json:"size" yaml:"size"`
	Stance           string          `json:"stance" yaml:"stance"`
	LifeForce        string          `json:"life_force" yaml:"life_force"`
	Composition      string          `json:"composition" yaml:"composition"`
	BareHandAttack   int             `json:"bare_hand_attack" yaml:"bare_hand_attack"`
	Perception       int             `json:"perception" yaml:"perception"`
	Concealment      int             `json:"concealment" yaml:"concealment"`
	Abilities        map[string]int  `json:"abilities,omitempty" yaml:"abilities,omitempty"`
	Triggers         []int           `json:"triggers,omitempty" yaml:"triggers,omitempty"`
}

type ApplyDoc struct {
	Location string `json:"location" yaml:"location"`
	Modifier int    `json:"modifier" yaml:"modifier"`
}

type ObjectDoc struct {
	ID                int            `json:"id" yaml:"id"`
	Keywords          []string       `json:"keywords" yaml:"keywords"`
	ShortDescription  string         `json:"short_description" yaml:"short_description"`
	GroundDescription string         `json:"ground_description" yaml:"ground_description"`
	ActionDescription string         `json:"action_description" yaml:"action_description"`
	Type              string         `json:"type" yaml:"type"`
	Flags             []string       `json:"flags" yaml:"flags"`
	WearFlags         []string       `json:"wear_flags" yaml:"wear_flags"`
	Level             int            `json:"level" yaml:"level"`
	Values            values.Block   `json:"values" yaml:"values"`
	Weight            float64        `json:"weight" yaml:"weight"`
	Cost              int            `json:"cost" yaml:"cost"`
	Timer             int            `json:"timer" yaml:"timer"`
	Effects           []string       `json:"effects" yaml:"effects"`
	Applies           []ApplyDoc     `json:"applies,omitempty" yaml:"applies,omitempty"`
	ExtraDescriptions []ExtraDescDoc `json:"extra_descriptions,omitempty" yaml:"extra_descriptions,omitempty"`
	Concealment       int            `json:"concealment,omitempty" yaml:"concealment,omitempty"`
	Triggers          []int          `json:"triggers,omitempty" yaml:"triggers,omitempty"`
}

type ShopItemDoc struct {
	ObjectID int `json:"object_id" yaml:"object_id"`
	Amount   int `json:"amount" yaml:"amount"`
}

type ShopTradeDoc struct {
	Type     string `json:"type" yaml:"type"`
	Keywords string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

type ShopMessagesDoc struct {
	NoSuchItemKeeper  string `json:"no_such_item_keeper" yaml:"no_such_item_keeper"`
	NoSuchItemPlayer  string `json:"no_such_item_player" yaml:"no_such_item_player"`
	DoNotBuy          string `json:"do_not_buy" yaml:"do_not_buy"`
	MissingCashKeeper string `json:"missing_cash_keeper" yaml:"missing_cash_keeper"`
	MissingCashPlayer string `json:"missing_cash_player" yaml:"missing_cash_player"`
	Buy               string `json:"buy" yaml:"buy"`
	Sell              string `json:"sell" yaml:"sell"`
}

type ShopHoursDoc struct {
	Open  int `json:"open" yaml:"open"`
	Close int `json:"close" yaml:"close"`
}

type ShopDoc struct {
	ID         int             `json:"id" yaml:"id"`
	Keeper     int             `json:"keeper" yaml:"keeper"`
	Produces   []ShopItemDoc   `json:"produces" yaml:"produces"`
	BuyProfit  float64         `json:"buy_profit" yaml:"buy_profit"`
	SellProfit float64         `json:"sell_profit" yaml:"sell_profit"`
	Trades     []ShopTradeDoc  `json:"trades" yaml:"trades"`
	Messages   ShopMessagesDoc `json:"messages" yaml:"messages"`
	Temper     int             `json:"temper" yaml:"temper"`
	Flags      []string        `json:"flags" yaml:"flags"`
	TradesWith []string        `json:"trades_with" yaml:"trades_with"`
	Rooms      []int           `json:"rooms" yaml:"rooms"`
	Hours      []ShopHoursDoc  `json:"hours" yaml:"hours"`
}

type TriggerDoc struct {
	ID         int      `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	AttachType string   `json:"attach_type" yaml:"attach_type"`
	Types      []string `json:"types" yaml:"types"`
	NumericArg int      `json:"numeric_arg" yaml:"numeric_arg"`
	Arguments  string   `json:"arguments" yaml:"arguments"`
	Commands   []string `json:"commands" yaml:"commands"`
}

// ItemDoc is an object placed by a reset, with the objects put inside it.
type ItemDoc struct {
	ObjectID int       `json:"object_id" yaml:"object_id"`
	Max      int       `json:"max" yaml:"max"`
	Slot     string    `json:"slot,omitempty" yaml:"slot,omitempty"`
	Comment  string    `json:"comment,omitempty" yaml:"comment,omitempty"`
	Contents []ItemDoc `json:"contents,omitempty" yaml:"contents,omitempty"`
}

type LoadMobileDoc struct {
	MobileID int       `json:"mobile_id" yaml:"mobile_id"`
	Max      int       `json:"max" yaml:"max"`
	Room     int       `json:"room" yaml:"room"`
	Comment  string    `json:"comment,omitempty" yaml:"comment,omitempty"`
	Equipped []ItemDoc `json:"equipped,omitempty" yaml:"equipped,omitempty"`
	Carried  []ItemDoc `json:"carried,omitempty" yaml:"carried,omitempty"`
}

type LoadObjectDoc struct {
	Room    int `json:"room" yaml:"room"`
	ItemDoc `yaml:",inline"`
}

type SetDoorDoc struct {
	Room      int      `json:"room" yaml:"room"`
	Direction string   `json:"direction" yaml:"direction"`
	States    []string `json:"states" yaml:"states"`
	Comment   string   `json:"comment,omitempty" yaml:"comment,omitempty"`
}

type RemoveObjectDoc struct {
	Room     int    `json:"room" yaml:"room"`
	ObjectID int    `json:"object_id" yaml:"object_id"`
	Comment  string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

type ForceDoc struct {
	MobileID int    `json:"mobile_id" yaml:"mobile_id"`
	Command  string `json:"command" yaml:"command"`
}

// ResetDoc is one reset in program order. Exactly one field is set.
type ResetDoc struct {
	LoadMobile   *LoadMobileDoc   `json:"load_mobile,omitempty" yaml:"load_mobile,omitempty"`
	LoadObject   *LoadObjectDoc   `json:"load_object,omitempty" yaml:"load_object,omitempty"`
	SetDoor      *SetDoorDoc      `json:"set_door,omitempty" yaml:"set_door,omitempty"`
	RemoveObject *RemoveObjectDoc `json:"remove_object,omitempty" yaml:"remove_object,omitempty"`
	Force        *ForceDoc        `json:"force,omitempty" yaml:"force,omitempty"`
}
