package import_contacts

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	importContacts "github.com/m04kA/SMC-SalonService/internal/usecase/import_contacts"
)

// MaxVCardBytes ограничение размера загружаемого .vcf файла
const MaxVCardBytes = 20 << 20

const (
	msgInvalidRequestBody = "cuerpo de la petición no válido"
	msgInvalidVCard       = "no se pudo leer el archivo de contactos"
	msgNoContacts         = "no se encontraron contactos con nombre"
	msgTooManyContacts    = "demasiados contactos en un solo archivo"
)

type Handler struct {
	useCase ImportContactsUseCase
	logger  Logger
}

func NewHandler(useCase ImportContactsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients/import
// Content-Type: application/json ({"contacts":[...]}) или text/vcard (.vcf файл)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := h.parseRequest(r)
	if err != nil {
		h.logger.Warn("POST /clients/import - Invalid request body: %v", err)
		if errors.Is(err, importContacts.ErrInvalidVCard) {
			handlers.RespondBadRequest(w, msgInvalidVCard)
		} else {
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, importContacts.ErrNoContacts):
			h.logger.Warn("POST /clients/import - No contacts")
			handlers.RespondBadRequest(w, msgNoContacts)

		case errors.Is(err, importContacts.ErrTooManyContacts):
			h.logger.Warn("POST /clients/import - Too many contacts: count=%d", len(useCaseReq.Contacts))
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgTooManyContacts)

		default:
			h.logger.Error("POST /clients/import - Failed to import contacts: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients/import - Contacts imported: detected=%d, imported=%d, existing=%d, failed=%d",
		result.Detected, result.Imported, result.AlreadyExisting, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) parseRequest(r *http.Request) (*importContacts.Request, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "text/vcard", "text/x-vcard", "text/directory":
		contacts, err := importContacts.ParseVCard(io.LimitReader(r.Body, MaxVCardBytes))
		if err != nil {
			return nil, err
		}
		return &importContacts.Request{Contacts: contacts}, nil

	default:
		var req ImportContactsRequest
		if err := handlers.DecodeJSON(r, &req); err != nil {
			return nil, err
		}
		return req.ToUseCaseRequest(), nil
	}
}
