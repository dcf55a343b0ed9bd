package orchestrator

import "fmt"

// Skip records one entity that was not (fully) processed and why.
type Skip struct {
	Entity string
	Reason string
	Err    error
}

func (s Skip) String() string {
	if s.Err != nil {
		return fmt.Sprintf("%s: %s: %v", s.Entity, s.Reason, s.Err)
	}
	return fmt.Sprintf("%s: %s", s.Entity, s.Reason)
}

// Report enumerates which entities were fully processed and which were
// skipped, with the reason for each skip.
type Report struct {
	Processed []string
	Skipped   []Skip
}

// Complete reports whether every requested entity was processed.
func (r Report) Complete() bool {
	return len(r.Skipped) == 0
}

func (r *Report) skip(entity, reason string, err error) {
	r.Skipped = append(r.Skipped, Skip{Entity: entity, Reason: reason, Err: err})
}
