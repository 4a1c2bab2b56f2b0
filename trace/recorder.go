package trace

// Recorder is an append-only step log. It stamps every step with its 1-based
// index and the recorder's method, and deep-copies the remaining vectors so
// callers may keep mutating their own state after Record returns.
//
// A Recorder belongs to a single solver run and is not safe for concurrent use.
type Recorder struct {
	method string
	steps  []Step
}

// NewRecorder returns an empty Recorder for method; capHint pre-sizes the log.
func NewRecorder(method string, capHint int) *Recorder {
	if capHint < 0 {
		capHint = 0
	}

	return &Recorder{method: method, steps: make([]Step, 0, capHint)}
}

// Record appends a step and returns it.
func (r *Recorder) Record(kind Kind, chosen *Cell, supplies, demands []float64, info Info) Step {
	var c *Cell
	if chosen != nil {
		cp := *chosen
		c = &cp
	}
	s := Step{
		Index:             len(r.steps) + 1,
		Kind:              kind,
		Method:            r.method,
		Chosen:            c,
		RemainingSupplies: snapshot(supplies),
		RemainingDemands:  snapshot(demands),
		Info:              info,
	}
	r.steps = append(r.steps, s)

	return s
}

// Len reports how many steps were recorded.
func (r *Recorder) Len() int { return len(r.steps) }

// Steps returns the recorded log. The slice is the recorder's own; callers
// take ownership once the solver has returned.
func (r *Recorder) Steps() []Step { return r.steps }

// Relabel returns a copy of steps with Method replaced. Indexes and payloads
// are preserved; Info maps are shallow-copied so the source stays untouched.
func Relabel(steps []Step, method string) []Step {
	out := make([]Step, len(steps))
	for i, s := range steps {
		s.Method = method
		if s.Info != nil {
			info := make(Info, len(s.Info))
			for k, v := range s.Info {
				info[k] = v
			}
			s.Info = info
		}
		out[i] = s
	}

	return out
}

// CloneFloats returns an independent copy of v; nil stays nil.
func CloneFloats(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

// snapshot is CloneFloats that never returns nil, so encoded steps always
// carry an array.
func snapshot(v []float64) []float64 {
	if v == nil {
		return []float64{}
	}

	return CloneFloats(v)
}
