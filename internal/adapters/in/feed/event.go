package feed

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidLine = errors.New("invalid input line")

type Kind int

const (
	KindOrder Kind = iota + 1
	KindReady
	KindScan
	KindRescan
	KindDiscard
	KindFinish
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindOrder:   "order",
		KindReady:   "ready",
		KindScan:    "scan",
		KindRescan:  "rescan",
		KindDiscard: "discard",
		KindFinish:  "finish",
	}
}

func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "unknown"
}

var workerRoles = map[string]struct{}{
	"Picker":      {},
	"Sequencer":   {},
	"Loader":      {},
	"Replenisher": {},
}

var scanVerbs = map[string]struct{}{
	"picked":      {},
	"sequenced":   {},
	"loaded":      {},
	"replenished": {},
}

// Event is one parsed feed line. Only the fields of its Kind are set.
type Event struct {
	Kind  Kind
	Color string
	Model string
	Role  string
	Name  string
	SKU   string
	// Destination is set for "to" lines.
	Destination string
}

// ParseLine parses a single line. The colour of an order is everything after
// the model, so it may contain spaces. The scan verb is not checked against
// the role.
func ParseLine(line string) (Event, error) {
	line = strings.TrimSpace(line)
	object, data, ok := strings.Cut(line, " ")
	if !ok {
		return Event{}, invalid(line)
	}

	if object == "Order" {
		model, color, ok := strings.Cut(strings.TrimSpace(data), " ")
		color = strings.TrimSpace(color)
		if !ok || model == "" || color == "" {
			return Event{}, invalid(line)
		}
		return Event{Kind: KindOrder, Model: model, Color: color}, nil
	}

	if _, ok := workerRoles[object]; !ok {
		return Event{}, invalid(line)
	}

	fields := strings.Fields(data)
	if len(fields) < 2 {
		return Event{}, invalid(line)
	}
	ev := Event{Role: object, Name: fields[0]}
	verb, args := fields[1], fields[2:]

	switch {
	case verb == "ready" && len(args) == 0:
		ev.Kind = KindReady
	case verb == "discarded" && len(args) == 0:
		ev.Kind = KindDiscard
	case verb == "finished" && len(args) == 0:
		ev.Kind = KindFinish
	case verb == "to" && len(args) > 0:
		ev.Kind = KindFinish
		ev.Destination = strings.Join(args, " ")
	case verb == "rescanned" && len(args) <= 1:
		ev.Kind = KindRescan
		if len(args) == 1 {
			ev.SKU = args[0]
		}
	default:
		if _, ok := scanVerbs[verb]; !ok || len(args) != 1 {
			return Event{}, invalid(line)
		}
		ev.Kind = KindScan
		ev.SKU = args[0]
	}
	return ev, nil
}

func invalid(line string) error {
	return fmt.Errorf("%w: %q", ErrInvalidLine, line)
}
