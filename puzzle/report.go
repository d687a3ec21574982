package puzzle

// Result is one rule's outcome. A false OK is the normal "invalid solution"
// finding, not an error.
type Result struct {
	Rule string `json:"rule"`
	OK   bool   `json:"ok"`
}

// Report collects every rule's outcome for one evaluation pass.
type Report struct {
	Results []Result `json:"results"`
}

// OK reports whether every rule passed.
func (r Report) OK() bool {
	for _, res := range r.Results {
		if !res.OK {
			return false
		}
	}
	return true
}

// Failures returns the names of the rules that failed, in evaluation order.
func (r Report) Failures() []string {
	var names []string
	for _, res := range r.Results {
		if !res.OK {
			names = append(names, res.Rule)
		}
	}
	return names
}
