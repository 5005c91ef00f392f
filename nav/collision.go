package nav

// ResolveCollision returns the velocity an entity at pos may actually use this
// tick. A blocked move slides along the wall: horizontal-only is tried before
// vertical-only, and if both are blocked the entity stops.
func ResolveCollision(m *WalkabilityMap, pos Position, vel Velocity) Velocity {
	if m.IsWalkableAt(pos.Add(vel)) {
		return vel
	}
	if h := vel.Horizontal(); m.IsWalkableAt(pos.Add(h)) {
		return h
	}
	if v := vel.Vertical(); m.IsWalkableAt(pos.Add(v)) {
		return v
	}
	return Velocity{}
}
