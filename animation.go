package wordreel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Prop names an animatable Node property.
type Prop uint8

const (
	PropX        Prop = iota // Node.X
	PropY                    // Node.Y
	PropScale                // Node.ScaleX and Node.ScaleY together
	PropRotation             // Node.Rotation, radians
	PropAlpha                // Node.Alpha
)

// Props maps properties to values. Used as both the "from" and "to" side of a
// TweenSpec.
type Props map[Prop]float64

// fields returns pointers to the Node fields backing p.
func (p Prop) fields(n *Node) []*float64 {
	switch p {
	case PropX:
		return []*float64{&n.X}
	case PropY:
		return []*float64{&n.Y}
	case PropScale:
		return []*float64{&n.ScaleX, &n.ScaleY}
	case PropRotation:
		return []*float64{&n.Rotation}
	case PropAlpha:
		return []*float64{&n.Alpha}
	default:
		return nil
	}
}

// apply writes every value in props to n and marks it dirty.
func (props Props) apply(n *Node) {
	for p, v := range props {
		for _, f := range p.fields(n) {
			*f = v
		}
	}
	n.MarkDirty()
}

// TweenGroup animates any number of float64 fields on a Node simultaneously.
// Call Update(dt) each frame. The group writes values and marks the node
// dirty. If the target node is disposed, the group stops immediately.
type TweenGroup struct {
	tweens []*gween.Tween
	fields []*float64
	ends   []float64
	target *Node
	Done   bool
}

// TweenProps creates a TweenGroup that animates every property in to,
// starting from the node's current values.
func TweenProps(node *Node, to Props, duration float32, fn ease.TweenFunc) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	g := &TweenGroup{target: node}
	for p, v := range to {
		for _, f := range p.fields(node) {
			g.tweens = append(g.tweens, gween.New(float32(*f), float32(v), duration, fn))
			g.fields = append(g.fields, f)
			g.ends = append(g.ends, v)
		}
	}
	if duration <= 0 {
		g.finish()
	}
	return g
}

// TweenAlpha creates a TweenGroup that animates node.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenProps(node, Props{PropAlpha: to}, duration, fn)
}

// Update advances all tweens by dt seconds, writes values to the target fields,
// and marks the node dirty. If the target node has been disposed, Done is set
// to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Update(dt)
		if finished {
			// Land exactly on the target; float32 easing drifts.
			*g.fields[i] = g.ends[i]
			continue
		}
		*g.fields[i] = float64(val)
		allDone = false
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

func (g *TweenGroup) finish() {
	for i, f := range g.fields {
		*f = g.ends[i]
	}
	g.Done = true
	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenSpec describes one animation request over a set of targets, in the
// vocabulary of timeline tween engines: optional From values applied
// immediately, To values reached after Duration, a start Delay and a per-target
// Stagger.
type TweenSpec struct {
	From     Props
	To       Props
	Duration float64
	Delay    float64
	Stagger  float64
	Ease     ease.TweenFunc

	// OnStart fires once, when the first target begins moving.
	OnStart func()
	// OnComplete fires once, after the last target has arrived.
	OnComplete func()
}

// Tween is a running TweenSpec. Target i starts at Delay + i*Stagger and
// captures its starting values at that moment.
type Tween struct {
	spec    TweenSpec
	targets []*Node
	groups  []*TweenGroup
	elapsed float64
	started bool
	done    bool
}

// Done reports whether the tween completed or was stopped.
func (t *Tween) Done() bool {
	return t.done
}

// Started reports whether OnStart has fired.
func (t *Tween) Started() bool {
	return t.started
}

// Stop halts the tween where it is. OnComplete does not fire.
func (t *Tween) Stop() {
	t.done = true
}

// TotalDuration is the time from creation until the last target arrives.
func (t *Tween) TotalDuration() float64 {
	n := len(t.targets)
	if n == 0 {
		return t.spec.Delay
	}
	return t.spec.Delay + float64(n-1)*t.spec.Stagger + t.spec.Duration
}

func (t *Tween) update(dt float64) {
	if t.done {
		return
	}
	t.elapsed += dt

	if len(t.targets) == 0 {
		if t.elapsed >= t.spec.Delay {
			t.start()
			t.complete()
		}
		return
	}

	allDone := true
	for i, n := range t.targets {
		at := t.spec.Delay + float64(i)*t.spec.Stagger
		if t.elapsed < at {
			allDone = false
			continue
		}
		step := dt
		if t.groups[i] == nil {
			t.groups[i] = TweenProps(n, t.spec.To, float32(t.spec.Duration), t.spec.Ease)
			step = t.elapsed - at
			t.start()
			if t.done {
				// OnStart stopped us.
				return
			}
		}
		t.groups[i].Update(float32(step))
		if !t.groups[i].Done {
			allDone = false
		}
	}
	if allDone {
		t.complete()
	}
}

func (t *Tween) start() {
	if t.started {
		return
	}
	t.started = true
	if t.spec.OnStart != nil {
		t.spec.OnStart()
	}
}

func (t *Tween) complete() {
	t.done = true
	if t.spec.OnComplete != nil {
		t.spec.OnComplete()
	}
}

// Animator owns running tweens and advances them from Stage.Update.
// There is no global animation manager; each Stage has its own.
type Animator struct {
	tweens   []*Tween
	pending  []*Tween
	updating bool
}

// Animate starts a tween of spec over targets. From values are applied to
// every target right away.
func (a *Animator) Animate(targets []*Node, spec TweenSpec) *Tween {
	t := &Tween{
		spec:    spec,
		targets: append([]*Node(nil), targets...),
		groups:  make([]*TweenGroup, len(targets)),
	}
	if spec.From != nil {
		for _, n := range targets {
			spec.From.apply(n)
		}
	}
	if a.updating {
		a.pending = append(a.pending, t)
	} else {
		a.tweens = append(a.tweens, t)
	}
	return t
}

// Update advances every running tween by dt seconds. Tweens started from a
// callback during Update begin advancing on the next call.
func (a *Animator) Update(dt float64) {
	a.updating = true
	for _, t := range a.tweens {
		t.update(dt)
	}
	a.updating = false

	live := a.tweens[:0]
	for _, t := range a.tweens {
		if !t.done {
			live = append(live, t)
		}
	}
	clear(a.tweens[len(live):])
	a.tweens = append(live, a.pending...)
	clear(a.pending)
	a.pending = a.pending[:0]
}

// Len returns the number of running tweens.
func (a *Animator) Len() int {
	return len(a.tweens) + len(a.pending)
}
