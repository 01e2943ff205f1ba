package records

import (
	"strings"

	"github.com/cory-johannsen/mudconvert/internal/legacy/cursor"
	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
	"github.com/cory-johannsen/mudconvert/internal/legacy/flags"
	"github.com/cory-johannsen/mudconvert/internal/legacy/tables"
)

// Trigger attach types.
const (
	AttachMobile = 0
	AttachObject = 1
	AttachWorld  = 2
)

// Trigger is a decoded script trigger.
type Trigger struct {
	ID         int
	Name       string
	AttachType int
	Types      flags.Set
	NumericArg int
	Arguments  string
	Commands   []string
}

// DecodeTrigger decodes one trigger record.
//
// Precondition: c is positioned at the record's "#id" line.
func DecodeTrigger(c *cursor.Cursor, _ *diag.Report) (Trigger, error) {
	id, err := c.ReadID("#")
	if err != nil {
		return Trigger{}, err
	}
	t := Trigger{ID: id}
	if t.Name, err = c.ReadString(); err != nil {
		return Trigger{}, err
	}

	fields, err := c.Fields("trigger type line", 2)
	if err != nil {
		return Trigger{}, err
	}
	attach, err := c.Atoi("trigger attach type", fields[0])
	if err != nil {
		return Trigger{}, err
	}
	t.AttachType = attach[0]
	if t.Types, err = flags.Decode(fields[1], tables.TriggerTypes, 0); err != nil {
		return Trigger{}, c.Wrap(err, "trigger types")
	}
	if len(fields) > 2 {
		narg, err := c.Atoi("trigger numeric argument", fields[2])
		if err != nil {
			return Trigger{}, err
		}
		t.NumericArg = narg[0]
	}

	if t.Arguments, err = c.ReadString(); err != nil {
		return Trigger{}, err
	}
	body, err := c.ReadString()
	if err != nil {
		return Trigger{}, err
	}
	t.Commands = splitCommands(body)
	return t, nil
}

// splitCommands breaks a script body into its non-empty lines.
func splitCommands(body string) []string {
	out := []string{}
	for _, l := range strings.Split(body, "\n") {
		l = strings.TrimRight(l, " \t\r")
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}
