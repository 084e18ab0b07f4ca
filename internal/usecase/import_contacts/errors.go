package import_contacts

import "errors"

var (
	// ErrNoContacts возвращается, когда в запросе нет ни одного контакта с именем
	ErrNoContacts = errors.New("import_contacts: no contacts to import")

	// ErrTooManyContacts возвращается при превышении лимита контактов за один импорт
	ErrTooManyContacts = errors.New("import_contacts: too many contacts")

	// ErrInvalidVCard возвращается, когда файл не удалось разобрать
	ErrInvalidVCard = errors.New("import_contacts: invalid vcard file")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("import_contacts: internal error")
)
