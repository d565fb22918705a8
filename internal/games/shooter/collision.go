package shooter

// resolveHits destroys bullet/enemy pairs that overlap and returns how many
// enemies were destroyed. Each enemy slot is tested against the live bullets
// in order; the first overlapping bullet dies and the slot is refilled with a
// new enemy, which is not tested again in this pass. A bullet destroys at
// most one enemy.
func resolveHits(enemies, bullets []Entity, sp *Spawner) int {
	hits := 0
	for i := range enemies {
		er := enemies[i].Rect()
		for j := range bullets {
			if !bullets[j].Alive || !bullets[j].Rect().Overlaps(er) {
				continue
			}
			bullets[j].Alive = false
			enemies[i] = sp.Enemy()
			hits++
			break
		}
	}
	return hits
}

// playerHit reports whether any enemy touches the player.
func playerHit(player Entity, enemies []Entity) bool {
	pr := player.Rect()
	for _, e := range enemies {
		if e.Alive && e.Rect().Overlaps(pr) {
			return true
		}
	}
	return false
}
