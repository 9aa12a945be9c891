package usecases

import (
	"context"

	"certhub/internal/domain/request"
)

// TxRunner executes a function inside a database transaction; repository
// calls made with the inner context join that transaction. Satisfied by
// shared/db's TransactionManager.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// displaySubject gives a human-readable subject name without hitting the
// event repos. Callers that can afford the lookup resolve the event name
// instead.
func displaySubject(req *request.Request) string {
	subject := req.Subject()
	if subject.Kind().IsCourse() {
		return subject.ProductName()
	}
	return "event participation"
}
