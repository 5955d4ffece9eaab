package vtable

// EaseFunc maps linear progress t in [0,1] to eased progress.
type EaseFunc func(t float32) float32

// EaseLinear is the identity easing.
func EaseLinear(t float32) float32 { return t }

// EaseCubicOut decelerates towards the end.
func EaseCubicOut(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}

// DelayedAction is a restartable delayed transition driven by frame time.
// It stays idle for Delay seconds, then runs for Duration seconds. Restart
// always cancels first and reschedules, so a pending run never fires on a
// stale schedule.
type DelayedAction struct {
	Delay    float32 // Seconds before the action starts
	Duration float32 // Seconds the action runs

	elapsed   float32
	scheduled bool
	done      bool
}

// Cancel drops any pending or running schedule.
func (a *DelayedAction) Cancel() {
	a.scheduled = false
	a.done = false
	a.elapsed = 0
}

// Restart cancels and schedules the action again from zero.
func (a *DelayedAction) Restart() {
	a.Cancel()
	a.scheduled = true
}

// Advance moves the action forward by dt seconds. It reports whether the
// action is still pending or running afterwards.
func (a *DelayedAction) Advance(dt float32) bool {
	if !a.scheduled {
		return false
	}
	a.elapsed += dt
	if a.elapsed >= a.Delay+a.Duration {
		a.elapsed = a.Delay + a.Duration
		a.scheduled = false
		a.done = true
	}
	return a.scheduled
}

// Pending reports whether the action is scheduled and not finished.
func (a *DelayedAction) Pending() bool {
	return a.scheduled
}

// Progress returns 0 while waiting, 0..1 while running and 1 once finished.
// A cancelled action reports 0.
func (a *DelayedAction) Progress() float32 {
	if a.done {
		return 1
	}
	if a.elapsed <= a.Delay {
		return 0
	}
	if a.Duration <= 0 {
		return 1
	}
	return clampf((a.elapsed-a.Delay)/a.Duration, 0, 1)
}

// Tween interpolates a value over time.
type Tween struct {
	from, to float32
	duration float32
	elapsed  float32
	ease     EaseFunc
	active   bool
}

// NewTween returns an idle tween resting at v.
func NewTween(v float32) Tween {
	return Tween{from: v, to: v}
}

// Start animates from the current value to target.
func (tw *Tween) Start(target, duration float32, ease EaseFunc) {
	tw.from = tw.Value()
	tw.to = target
	tw.duration = duration
	tw.elapsed = 0
	tw.ease = ease
	tw.active = duration > 0 && tw.from != target
	if !tw.active {
		tw.from = target
	}
}

// Set jumps to v, cancelling any animation.
func (tw *Tween) Set(v float32) {
	tw.from, tw.to = v, v
	tw.active = false
}

// Cancel freezes the tween at its current value.
func (tw *Tween) Cancel() {
	tw.Set(tw.Value())
}

// Advance moves the tween forward; it reports whether it is still running.
func (tw *Tween) Advance(dt float32) bool {
	if !tw.active {
		return false
	}
	tw.elapsed += dt
	if tw.elapsed >= tw.duration {
		tw.Set(tw.to)
	}
	return tw.active
}

// Value returns the current interpolated value.
func (tw *Tween) Value() float32 {
	if !tw.active {
		return tw.to
	}
	t := clampf(tw.elapsed/tw.duration, 0, 1)
	ease := tw.ease
	if ease == nil {
		ease = EaseLinear
	}
	return tw.from + (tw.to-tw.from)*ease(t)
}

// Target returns the value the tween is heading to.
func (tw *Tween) Target() float32 {
	return tw.to
}

// Active reports whether the tween is animating.
func (tw *Tween) Active() bool {
	return tw.active
}
