package notices

// Slot receives emitted notices.
type Slot func(*Notice)

// Signal delivers notices to connected slots in connection order. A
// signal may relay another so that one slot set observes emissions from
// many sources.
type Signal struct {
	slots []Slot
}

func (s *Signal) Connect(slot Slot) {
	s.slots = append(s.slots, slot)
}

func (s *Signal) Emit(n *Notice) {
	for _, slot := range s.slots {
		slot(n)
	}
}

// Relay forwards every emission of other onto this signal.
func (s *Signal) Relay(other *Signal) {
	other.Connect(s.Emit)
}
