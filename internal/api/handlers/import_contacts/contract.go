package import_contacts

import (
	"context"

	importContacts "github.com/m04kA/SMC-SalonService/internal/usecase/import_contacts"
)

type ImportContactsUseCase interface {
	Execute(ctx context.Context, req *importContacts.Request) (*importContacts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
