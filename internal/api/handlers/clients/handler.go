package clients

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	clientsService "github.com/m04kA/SMC-SalonService/internal/service/clients"
	"github.com/m04kA/SMC-SalonService/internal/service/clients/models"
)

const (
	msgInvalidClientID    = "identificador de cliente no válido"
	msgInvalidRequestBody = "cuerpo de la petición no válido"
	msgInvalidQuery       = "parámetros de consulta no válidos"
	msgNotFound           = "cliente no encontrado"
	msgInvalidData        = "datos del cliente no válidos"
	msgDuplicatePhone     = "ya existe un cliente con ese teléfono"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Search GET /api/v1/clients?q=&limit=
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	limit, err := handlers.QueryInt(r, "limit", 0)
	if err != nil {
		h.logger.Warn("GET /clients - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.Search(r.Context(), &models.SearchRequest{Query: r.URL.Query().Get("q"), Limit: limit})
	if err != nil {
		h.logger.Error("GET /clients - Failed to search clients: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients - Clients retrieved successfully: count=%d", len(result.Clients))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// GetByID GET /api/v1/clients/{clientId}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "clientId")
	if err != nil {
		h.logger.Warn("GET /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, "GET /clients/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create POST /api/v1/clients
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /clients", err)
		return
	}

	h.logger.Info("POST /clients - Client created successfully: client_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PUT /api/v1/clients/{clientId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "clientId")
	if err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req models.ClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /clients/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /clients/{id}", err)
		return
	}

	h.logger.Info("PUT /clients/{id} - Client updated successfully: client_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/clients/{clientId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "clientId")
	if err != nil {
		h.logger.Warn("DELETE /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondServiceError(w, "DELETE /clients/{id}", err)
		return
	}

	h.logger.Info("DELETE /clients/{id} - Client deleted successfully: client_id=%s", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, clientsService.ErrClientNotFound):
		h.logger.Warn("%s - Client not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, clientsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid data: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	case errors.Is(err, clientsService.ErrDuplicatePhone):
		h.logger.Warn("%s - Duplicate phone", route)
		handlers.RespondConflict(w, msgDuplicatePhone)

	default:
		h.logger.Error("%s - Client service error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
