package domain

// Id allocation is max-based: 1 + the highest id in the collection, never the
// smallest gap. A deleted id is never reused, and an id is spent the moment
// the entity is appended, so validation must run before allocation.

func (d *Document) NextRegionID() int {
	max := 0
	for _, r := range d.Regions {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

func (d *Document) NextHotelID() int {
	max := 0
	for _, h := range d.Hotels {
		if h.ID > max {
			max = h.ID
		}
	}
	return max + 1
}

func (d *Document) NextOperationID() int {
	max := 0
	for _, o := range d.Operations {
		if o.ID > max {
			max = o.ID
		}
	}
	return max + 1
}

func (d *Document) NextReservationID() int {
	max := 0
	for _, r := range d.Reservations {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

// NextAgentID allocates from the shared agents ∪ pending_agents id space so a
// pending account keeps its id when confirmed.
func (d *Document) NextAgentID() int {
	max := 0
	for _, a := range d.Agents {
		if a.ID > max {
			max = a.ID
		}
	}
	for _, a := range d.PendingAgents {
		if a.ID > max {
			max = a.ID
		}
	}
	return max + 1
}
