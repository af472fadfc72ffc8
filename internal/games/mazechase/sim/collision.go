package sim

// Touching reports whether two agents overlap: their pixel centers are
// closer than radius.
func Touching(a, b *Agent, radius float64) bool {
	return a.Pos.Dist(b.Pos) < radius
}

// Evaluate resolves player-ghost overlaps for one tick in identity order.
// A frightened ghost is eaten, an eaten or house-bound ghost is ignored and
// any other ghost catches the player, which ends the evaluation.
func Evaluate(p *Player, ghosts []*Ghost, radius float64) []Event {
	var events []Event
	for _, g := range ghosts {
		if g.InHouse() || !Touching(&p.Agent, &g.Agent, radius) {
			continue
		}
		switch g.Mode() {
		case ModeEaten:
		case ModeFrightened:
			if g.Eat() {
				events = append(events, Event{Kind: EventGhostCaught, Ghost: g.ID, Tile: g.Tile()})
			}
		default:
			return append(events, Event{Kind: EventPlayerCaught, Ghost: g.ID, Tile: p.Tile()})
		}
	}
	return events
}
