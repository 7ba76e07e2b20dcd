package text

import "dmltext/dml"

// Cascading property resolution. The walk is strictly ordered: the run's
// local properties, then the enclosing shape (its inherited defaults and the
// list-style level at the paragraph's indent level), then theme defaults,
// then master and placeholder defaults. The first scope to report success
// ends the walk; absence of a value never errors - each public accessor
// applies its own documented default at the boundary.

// fetchProperty runs a probe through the cascade and reports whether any
// scope supplied a value.
func (r *Run) fetchProperty(probe Probe) bool {
	if props := r.properties(false); props != nil && probe(props) {
		return true
	}
	if r.par == nil {
		return false
	}
	if shape := r.par.Shape(); shape != nil && shape.FetchShapeProperty(probe) {
		return true
	}
	if r.par.FetchThemeProperty(probe) {
		return true
	}
	return r.par.FetchMasterProperty(probe)
}

// fetchValue adapts a typed extractor into a probe and runs the cascade.
// Every internal resolution step stays optional; defaults belong to the
// public accessors, never here.
func fetchValue[T any](r *Run, pick func(props *dml.CharacterProperties) (T, bool)) (T, bool) {
	var out T
	found := r.fetchProperty(func(props *dml.CharacterProperties) bool {
		if props == nil {
			return false
		}
		v, ok := pick(props)
		if ok {
			out = v
		}
		return ok
	})
	return out, found
}
