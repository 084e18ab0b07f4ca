package import_contacts

import (
	importContacts "github.com/m04kA/SMC-SalonService/internal/usecase/import_contacts"
)

// ImportContactsRequest HTTP request model для JSON импорта
type ImportContactsRequest struct {
	Contacts []ContactRequest `json:"contacts"`
}

// ContactRequest контакт из адресной книги
type ContactRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
}

// ImportReportResponse HTTP response model
type ImportReportResponse struct {
	Detected        int `json:"detected"`
	Imported        int `json:"imported"`
	DuplicateInFile int `json:"duplicateInFile"`
	AlreadyExisting int `json:"alreadyExisting"`
	WithoutPhone    int `json:"withoutPhone"`
	Failed          int `json:"failed"`
	Attempted       int `json:"attempted"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ImportContactsRequest) ToUseCaseRequest() *importContacts.Request {
	contacts := make([]importContacts.Contact, len(r.Contacts))
	for i, c := range r.Contacts {
		contacts[i] = importContacts.Contact{FullName: c.FullName, Phone: c.Phone}
	}
	return &importContacts.Request{Contacts: contacts}
}

// FromUseCaseResponse конвертирует отчёт use case в HTTP response
func FromUseCaseResponse(resp *importContacts.Response) *ImportReportResponse {
	return &ImportReportResponse{
		Detected:        resp.Detected,
		Imported:        resp.Imported,
		DuplicateInFile: resp.DuplicateInFile,
		AlreadyExisting: resp.AlreadyExisting,
		WithoutPhone:    resp.WithoutPhone,
		Failed:          resp.Failed,
		Attempted:       resp.Attempted,
	}
}
