package weapon

// executePhase runs every action bound to phase in declaration order and
// returns how many completed without fault. It stops early if an action tore
// the runtime down.
func (r *Runtime) executePhase(s *bindingState, phase Phase) int {
	ok := 0
	for i := range s.binding.Actions {
		if !r.active {
			break
		}
		ab := &s.binding.Actions[i]
		if ab.Phase != phase {
			continue
		}
		if r.execute(s, ab) {
			ok++
		}
	}
	return ok
}

// execute runs one action. Errors and panics are logged and contained.
func (r *Runtime) execute(s *bindingState, ab *ActionBinding) (ok bool) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Printf("Warning: weapon %s: binding %s: action %s (%T) panicked: %v", r.label(), s.label, ab.Type, ab.Action, p)
			ok = false
		}
	}()
	if err := ab.Action.Execute(r.ctx, s.binding, ab); err != nil {
		r.logger.Printf("Warning: weapon %s: binding %s: action %s (%T) failed: %v", r.label(), s.label, ab.Type, ab.Action, err)
		return false
	}
	return true
}
