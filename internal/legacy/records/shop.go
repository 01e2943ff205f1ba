package records

import (
	"strconv"
	"strings"

	"github.com/cory-johannsen/mudconvert/internal/legacy/cursor"
	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
	"github.com/cory-johannsen/mudconvert/internal/legacy/flags"
	"github.com/cory-johannsen/mudconvert/internal/legacy/tables"
)

// Fixed list lengths of shop files written before the v3.0 format.
const (
	oldShopProduce = 5
	oldShopTrade   = 5
	shopV3Tag      = "v3.0"
)

// ShopItem is an object a shop produces, with its stock amount.
type ShopItem struct {
	ObjectID int
	Amount   int
}

// ShopTrade is an object type a shop buys, optionally narrowed by keywords.
type ShopTrade struct {
	Type     int
	Keywords string
}

// ShopMessages are the shopkeeper's fixed responses.
type ShopMessages struct {
	NoSuchItemKeeper  string
	NoSuchItemPlayer  string
	DoNotBuy          string
	MissingCashKeeper string
	MissingCashPlayer string
	Buy               string
	Sell              string
}

// ShopHours is one opening window.
type ShopHours struct {
	Open  int
	Close int
}

// Shop is a decoded shop.
type Shop struct {
	ID         int
	Produces   []ShopItem
	BuyProfit  float64
	SellProfit float64
	Trades     []ShopTrade
	Messages   ShopMessages
	Temper     int
	Flags      flags.Set
	Keeper     int
	TradesWith flags.Set
	Rooms      []int
	Hours      []ShopHours
}

// ShopDecoder decodes shops in either the v3.0 or the older list format.
type ShopDecoder struct {
	V3 bool
}

// NewShopDecoder inspects the file preamble for the v3.0 format marker.
func NewShopDecoder(c *cursor.Cursor) ShopDecoder {
	for _, l := range c.Preamble("#") {
		if strings.Contains(l, shopV3Tag) {
			return ShopDecoder{V3: true}
		}
	}
	return ShopDecoder{}
}

// Decode decodes one shop record. Shops have no optional sections, so the
// first malformed line fails the whole record.
//
// Precondition: c is positioned at the record's "#id" line.
func (d ShopDecoder) Decode(c *cursor.Cursor, _ *diag.Report) (Shop, error) {
	id, err := c.ReadID("#")
	if err != nil {
		return Shop{}, err
	}
	s := Shop{ID: id}

	if s.Produces, err = d.readProduce(c); err != nil {
		return Shop{}, err
	}
	if s.BuyProfit, err = readFloatLine(c, "buy profit"); err != nil {
		return Shop{}, err
	}
	if s.SellProfit, err = readFloatLine(c, "sell profit"); err != nil {
		return Shop{}, err
	}
	if s.Trades, err = d.readTrades(c); err != nil {
		return Shop{}, err
	}

	msgs := []*string{
		&s.Messages.NoSuchItemKeeper, &s.Messages.NoSuchItemPlayer, &s.Messages.DoNotBuy,
		&s.Messages.MissingCashKeeper, &s.Messages.MissingCashPlayer,
		&s.Messages.Buy, &s.Messages.Sell,
	}
	for _, m := range msgs {
		if *m, err = c.ReadString(); err != nil {
			return Shop{}, err
		}
	}

	if s.Temper, err = readIntLine(c, "shop temper"); err != nil {
		return Shop{}, err
	}
	raw, err := c.RequireLine("shop flags")
	if err != nil {
		return Shop{}, err
	}
	if s.Flags, err = flags.Decode(firstField(raw), tables.ShopFlags, 0); err != nil {
		return Shop{}, c.Wrap(err, "shop flags")
	}
	if s.Keeper, err = readIntLine(c, "shop keeper"); err != nil {
		return Shop{}, err
	}
	if raw, err = c.RequireLine("shop trades-with"); err != nil {
		return Shop{}, err
	}
	if s.TradesWith, err = flags.Decode(firstField(raw), tables.ShopTradesWith, 0); err != nil {
		return Shop{}, c.Wrap(err, "shop trades-with")
	}
	if s.Rooms, err = d.readRooms(c); err != nil {
		return Shop{}, err
	}

	open1, err := readIntLine(c, "shop open hour")
	if err != nil {
		return Shop{}, err
	}
	close1, err := readIntLine(c, "shop close hour")
	if err != nil {
		return Shop{}, err
	}
	s.Hours = []ShopHours{{Open: open1, Close: close1}}
	if !c.Done() {
		open2, err := readIntLine(c, "shop second open hour")
		if err != nil {
			return Shop{}, err
		}
		close2, err := readIntLine(c, "shop second close hour")
		if err != nil {
			return Shop{}, err
		}
		if open2 != 0 || close2 != 0 {
			s.Hours = append(s.Hours, ShopHours{Open: open2, Close: close2})
		}
	}
	return s, nil
}

func (d ShopDecoder) readProduce(c *cursor.Cursor) ([]ShopItem, error) {
	out := []ShopItem{}
	if !d.V3 {
		for i := 0; i < oldShopProduce; i++ {
			n, err := readIntLine(c, "shop produce")
			if err != nil {
				return nil, err
			}
			if n >= 0 {
				out = append(out, ShopItem{ObjectID: n})
			}
		}
		return out, nil
	}
	for {
		v, err := c.Ints("shop produce", 1)
		if err != nil {
			return nil, err
		}
		if v[0] < 0 {
			return out, nil
		}
		item := ShopItem{ObjectID: v[0]}
		if len(v) > 1 {
			item.Amount = v[1]
		}
		out = append(out, item)
	}
}

func (d ShopDecoder) readTrades(c *cursor.Cursor) ([]ShopTrade, error) {
	out := []ShopTrade{}
	if !d.V3 {
		for i := 0; i < oldShopTrade; i++ {
			n, err := readIntLine(c, "shop trade type")
			if err != nil {
				return nil, err
			}
			if n >= 0 {
				out = append(out, ShopTrade{Type: n})
			}
		}
		return out, nil
	}
	for {
		line, err := c.RequireLine("shop trade type")
		if err != nil {
			return nil, err
		}
		t, err := parseTradeLine(c, line)
		if err != nil {
			return nil, err
		}
		if t.Type < 0 {
			return out, nil
		}
		out = append(out, t)
	}
}

// parseTradeLine reads "<TYPE|number> [keywords] [; comment]".
func parseTradeLine(c *cursor.Cursor, line string) (ShopTrade, error) {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if idx, n, ok := tables.ObjectTypes.LeadingName(line); ok {
		return ShopTrade{Type: idx, Keywords: strings.TrimSpace(line[n:])}, nil
	}
	num, rest, _ := strings.Cut(line, " ")
	n, err := strconv.Atoi(num)
	if err != nil {
		return ShopTrade{}, c.Wrap(err, "shop trade type %q", line)
	}
	return ShopTrade{Type: n, Keywords: strings.TrimSpace(rest)}, nil
}

func (d ShopDecoder) readRooms(c *cursor.Cursor) ([]int, error) {
	out := []int{}
	if !d.V3 {
		n, err := readIntLine(c, "shop room")
		if err != nil {
			return nil, err
		}
		if n >= 0 {
			out = append(out, n)
		}
		return out, nil
	}
	for {
		n, err := readIntLine(c, "shop room")
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return out, nil
		}
		out = append(out, n)
	}
}

func firstField(line string) string {
	if f := strings.Fields(line); len(f) > 0 {
		return f[0]
	}
	return ""
}

// readIntLine reads the leading integer of the next line; trailing text is ignored.
func readIntLine(c *cursor.Cursor, what string) (int, error) {
	f, err := c.Fields(what, 1)
	if err != nil {
		return 0, err
	}
	v, err := c.Atoi(what, f[0])
	if err != nil {
		return 0, err
	}
	return v[0], nil
}

func readFloatLine(c *cursor.Cursor, what string) (float64, error) {
	f, err := c.Fields(what, 1)
	if err != nil {
		return 0, err
	}
	return c.Float(what, f[0])
}
