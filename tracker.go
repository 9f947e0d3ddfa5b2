package wordreel

// Tracker holds the project images of the current burst. It is only touched
// from the stage goroutine.
type Tracker struct {
	active []ActiveImage
}

// Reset drops every entry. Nodes are left alone; images still fading out
// finish on their own.
func (t *Tracker) Reset() {
	clear(t.active)
	t.active = t.active[:0]
}

// Add appends img.
func (t *Tracker) Add(img ActiveImage) {
	t.active = append(t.active, img)
}

// Remove drops the entry for n and reports whether one existed. Removing an
// untracked node is a no-op.
func (t *Tracker) Remove(n *Node) bool {
	for i, img := range t.active {
		if img.Node == n {
			copy(t.active[i:], t.active[i+1:])
			t.active[len(t.active)-1] = ActiveImage{}
			t.active = t.active[:len(t.active)-1]
			return true
		}
	}
	return false
}

// Active returns a copy of the tracked entries in insertion order.
func (t *Tracker) Active() []ActiveImage {
	return append([]ActiveImage(nil), t.active...)
}

// Len returns the number of tracked entries.
func (t *Tracker) Len() int {
	return len(t.active)
}
