package services

import "shraddhayatra/internal/domain"

// ActionService is the command/refetch cycle: run one write, then reload
// the whole snapshot instead of patching local state. At-most-once,
// fire-and-refresh; a failed write returns the error with no rollback
// (nothing optimistic was applied). Running the same insert twice creates
// two rows — duplicate-write semantics belong to the database.
type ActionService struct {
	Bootstrap BootstrapService
}

func (s ActionService) Run(rc domain.RequestContext, write func() error) (Snapshot, error) {
	if err := write(); err != nil {
		return Snapshot{}, err
	}
	return s.Bootstrap.Load(rc)
}
