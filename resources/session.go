// Package resources implements the list/edit session every dashboard screen
// runs: load a collection, open a create or edit dialog backed by string
// form state, submit it, and delete with confirmation.
package resources

import (
	"context"
	"fmt"
)

// Backend is the REST collection a session works against.
// *apiclient.Resource satisfies it.
type Backend[R any] interface {
	List(ctx context.Context) ([]R, error)
	Create(ctx context.Context, payload interface{}) error
	Update(ctx context.Context, id int, payload interface{}) error
	Delete(ctx context.Context, id int) error
}

// Messages are the per-resource toast texts.
type Messages struct {
	LoadFailed    string
	Created       string
	Updated       string
	Deleted       string
	ConfirmDelete string
}

// Kind binds a record type R to its form mirror F.
type Kind[R any, F any] struct {
	Name     string
	Messages Messages
	ID       func(R) int
	Empty    func() F
	// FromRecord copies the displayable fields of a record; write-only
	// fields stay blank.
	FromRecord func(R) F
	// Parse turns form state into the typed request body.
	Parse func(F, Target[R]) (interface{}, error)
}

const (
	operationFailed  = "Erro na operação"
	operationSuccess = "Operação realizada com sucesso"
	deleteFailed     = "Erro ao excluir"
)

type Session[R any, F any] struct {
	kind    Kind[R, F]
	backend Backend[R]
	notify  Notifier

	Records []R
	Open    bool
	Target  Target[R]
	Form    F
}

func NewSession[R any, F any](kind Kind[R, F], backend Backend[R], notify Notifier) *Session[R, F] {
	return &Session[R, F]{
		kind:    kind,
		backend: backend,
		notify:  notify,
		Records: []R{},
		Target:  CreateTarget[R](),
		Form:    kind.Empty(),
	}
}

// Load replaces Records with the server's collection. On failure the
// previous list is kept.
func (s *Session[R, F]) Load(ctx context.Context) error {
	records, err := s.backend.List(ctx)
	if err != nil {
		s.notify.Notify(Failure(s.kind.Messages.LoadFailed, err))
		return err
	}
	s.Records = records
	return nil
}

func (s *Session[R, F]) OpenCreate() {
	s.Target = CreateTarget[R]()
	s.Form = s.kind.Empty()
	s.Open = true
}

func (s *Session[R, F]) OpenEdit(record R) {
	s.Target = EditTarget(record)
	s.Form = s.kind.FromRecord(record)
	s.Open = true
}

// Close discards the dialog and its form state.
func (s *Session[R, F]) Close() {
	s.Open = false
	s.Target = CreateTarget[R]()
	s.Form = s.kind.Empty()
}

// Find looks a record up by identity in the loaded list.
func (s *Session[R, F]) Find(id int) (R, bool) {
	for _, r := range s.Records {
		if s.kind.ID(r) == id {
			return r, true
		}
	}
	var zero R
	return zero, false
}

// Submit creates or updates according to Target. On failure the dialog stays
// open with the form untouched; nothing was applied locally, so there is
// nothing to roll back.
func (s *Session[R, F]) Submit(ctx context.Context) error {
	payload, err := s.kind.Parse(s.Form, s.Target)
	if err != nil {
		s.notify.Notify(Failure(operationFailed, err))
		return err
	}

	created := !s.Target.IsEdit()
	if record, ok := s.Target.Record(); ok {
		err = s.backend.Update(ctx, s.kind.ID(record), payload)
	} else {
		err = s.backend.Create(ctx, payload)
	}
	if err != nil {
		s.notify.Notify(Failure(operationFailed, err))
		return err
	}

	s.Close()
	_ = s.Load(ctx)

	title := s.kind.Messages.Updated
	if created {
		title = s.kind.Messages.Created
	}
	s.notify.Notify(Success(title, operationSuccess))
	return nil
}

// Delete removes the record once the confirmer agrees. deleted reports
// whether a DELETE was actually issued and succeeded.
func (s *Session[R, F]) Delete(ctx context.Context, id int, confirm Confirmer) (deleted bool, err error) {
	if !confirm.Confirm(s.kind.Messages.ConfirmDelete) {
		return false, nil
	}

	if err := s.backend.Delete(ctx, id); err != nil {
		s.notify.Notify(Failure(deleteFailed, err))
		return false, fmt.Errorf("delete %s %d: %w", s.kind.Name, id, err)
	}

	s.notify.Notify(Success(s.kind.Messages.Deleted, ""))
	_ = s.Load(ctx)
	return true, nil
}
