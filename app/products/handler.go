package products

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/webpanel/deploy/app/api"
	"github.com/webpanel/deploy/models"
)

type ProductHandler struct {
	service *ProductService
	log     *logrus.Logger
}

func NewProductHandler(service *ProductService, log *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

func (h *ProductHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var dto CreateProductDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if ferr := dto.Validate(); ferr != nil {
		api.WriteFieldError(w, ferr)
		return
	}

	created, err := h.service.Create(dto)
	if err != nil {
		h.log.WithError(err).Error("failed to create product")
		api.WriteError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	api.WriteJSON(w, http.StatusCreated, created)
}

func (h *ProductHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.GetAll()
	if err != nil {
		h.log.WithError(err).Error("failed to list products")
		api.WriteError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}

	api.WriteJSON(w, http.StatusOK, list)
}

func (h *ProductHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	dto, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.log.WithError(err).Error("failed to get product")
		api.WriteError(w, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}

	api.WriteJSON(w, http.StatusOK, dto)
}

func (h *ProductHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			api.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.log.WithError(err).Error("failed to delete product")
		api.WriteError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid product ID")
		return 0, false
	}
	return uint(id), true
}
