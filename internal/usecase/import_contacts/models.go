package import_contacts

const (
	// LookupChunkSize сколько номеров проверяется одним запросом
	LookupChunkSize = 500

	// InsertBatchSize сколько клиентов вставляется одним запросом
	InsertBatchSize = 200

	// MaxContacts лимит контактов за один импорт
	MaxContacts = 20000
)

// Contact контакт из адресной книги
type Contact struct {
	FullName string
	Phone    string
}

// Request модель запроса на импорт
type Request struct {
	Contacts []Contact
}

// Response отчёт об импорте
type Response struct {
	Detected        int // контакты с именем
	Imported        int // успешно вставлены
	DuplicateInFile int // повтор номера внутри файла
	AlreadyExisting int // номер уже есть в справочнике
	WithoutPhone    int // импортированы без телефона
	Failed          int // не вставлены по другой причине
	Attempted       int // отправлены на вставку после фильтрации дублей
}
