package core

// EventKind identifies a notification emitted by the simulation.
type EventKind uint8

const (
	EventPlanetOwnerChanged EventKind = iota + 1
	EventPlanetShipsChanged
	EventFleetLaunched
	EventFleetMoved
	EventFleetArrived
	EventSelectionChanged
	EventGameEnded
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventPlanetOwnerChanged:
		return "PlanetOwnerChanged"
	case EventPlanetShipsChanged:
		return "PlanetShipsChanged"
	case EventFleetLaunched:
		return "FleetLaunched"
	case EventFleetMoved:
		return "FleetMoved"
	case EventFleetArrived:
		return "FleetArrived"
	case EventSelectionChanged:
		return "SelectionChanged"
	case EventGameEnded:
		return "GameEnded"
	default:
		return "Unknown"
	}
}

// Outcome describes how an arriving fleet was resolved.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeReinforced
	OutcomeConquered
	OutcomeCaptured // Attacker beat a hostile garrison
	OutcomeRepelled // Defender held, ties included
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeReinforced:
		return "reinforced"
	case OutcomeConquered:
		return "conquered"
	case OutcomeCaptured:
		return "captured"
	case OutcomeRepelled:
		return "repelled"
	default:
		return "none"
	}
}

// Event is a single notification for the rendering collaborator.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind EventKind

	PlanetID  int     // -1 when not about a planet
	Owner     Faction // New owner, fleet owner, or selection owner
	PrevOwner Faction
	Ships     int // Floored garrison, or fleet ship count

	Fleet   *Fleet
	Pos     Vec
	Outcome Outcome
	Result  Result
}

// Handler receives events.
type Handler func(Event)

// Bus dispatches events to subscribers synchronously, in subscription order.
// It is not safe for concurrent use; the simulation runs on a single
// execution context.
type Bus struct {
	handlers map[EventKind][]Handler
	all      []Handler
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[EventKind][]Handler)}
}

// Subscribe registers a handler for one event kind.
func (b *Bus) Subscribe(kind EventKind, h Handler) {
	b.handlers[kind] = append(b.handlers[kind], h)
}

// SubscribeAll registers a handler for every event kind.
func (b *Bus) SubscribeAll(h Handler) {
	b.all = append(b.all, h)
}

// Publish delivers e to matching handlers. A nil bus drops the event.
func (b *Bus) Publish(e Event) {
	if b == nil {
		return
	}
	for _, h := range b.handlers[e.Kind] {
		h(e)
	}
	for _, h := range b.all {
		h(e)
	}
}
