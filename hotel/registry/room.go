package registry

// Status is a room's lifecycle state. The listed constants are the states the
// desk transitions between; the operator override path may set any other text
// (e.g. a maintenance note), which is treated as a custom status.
type Status string

const (
	StatusAvailable        Status = "Available"
	StatusReserved         Status = "Reserved"
	StatusOccupied         Status = "Occupied"
	StatusUnderMaintenance Status = "UnderMaintenance"
)

// Known reports whether s is one of the recognized lifecycle states.
func (s Status) Known() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusOccupied, StatusUnderMaintenance:
		return true
	}
	return false
}

type Room struct {
	ID       int
	Type     string
	Price    float64
	Capacity int
	Status   Status
}

// Registry is the fixed room catalog. Rooms are created once by Seed and never
// removed; only their status changes.
type Registry struct {
	rooms []*Room
}

// Seed builds the room catalog with every room available.
func Seed() *Registry {
	return &Registry{rooms: []*Room{
		{ID: 1, Type: "Single", Price: 100, Capacity: 1, Status: StatusAvailable},
		{ID: 2, Type: "Single", Price: 100, Capacity: 1, Status: StatusAvailable},
		{ID: 3, Type: "Double", Price: 230, Capacity: 2, Status: StatusAvailable},
		{ID: 4, Type: "Double", Price: 230, Capacity: 2, Status: StatusAvailable},
		{ID: 5, Type: "Deluxe", Price: 520, Capacity: 3, Status: StatusAvailable},
		{ID: 6, Type: "Deluxe", Price: 520, Capacity: 3, Status: StatusAvailable},
		{ID: 7, Type: "Family", Price: 800, Capacity: 5, Status: StatusAvailable},
	}}
}

func (r *Registry) FindByID(id int) (*Room, bool) {
	for _, room := range r.rooms {
		if room.ID == id {
			return room, true
		}
	}
	return nil, false
}

// SetStatus overwrites the room's status unconditionally and reports whether
// the room exists. Callers are responsible for passing recognized values on
// lifecycle paths; free text is accepted here.
func (r *Registry) SetStatus(id int, status Status) bool {
	room, ok := r.FindByID(id)
	if !ok {
		return false
	}
	room.Status = status
	return true
}

// Available returns rooms whose status is Available, in catalog order.
func (r *Registry) Available() []*Room {
	var out []*Room
	for _, room := range r.rooms {
		if room.Status == StatusAvailable {
			out = append(out, room)
		}
	}
	return out
}

// Rooms returns the full catalog in seed order.
func (r *Registry) Rooms() []*Room {
	return r.rooms
}
