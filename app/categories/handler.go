package categories

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/webpanel/deploy/app/api"
	"github.com/webpanel/deploy/models"
)

type CategoryHandler struct {
	service *CategoryService
	log     *logrus.Logger
}

func NewCategoryHandler(service *CategoryService, log *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log,
	}
}

func (h *CategoryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var dto CreateCategoryDto
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
		if errors.Is(err, ErrNameExists) {
			api.WriteError(w, http.StatusConflict, err.Error())
			return
		}
		h.log.WithError(err).Error("failed to create category")
		api.WriteError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	api.WriteJSON(w, http.StatusCreated, created)
}

func (h *CategoryHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.GetAll()
	if err != nil {
		h.log.WithError(err).Error("failed to list categories")
		api.WriteError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	api.WriteJSON(w, http.StatusOK, list)
}

func (h *CategoryHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	dto, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			api.WriteError(w, http.StatusNotFound, "Category not found")
			return
		}
		h.log.WithError(err).Error("failed to get category")
		api.WriteError(w, http.StatusInternalServerError, "Failed to retrieve category")
		return
	}

	api.WriteJSON(w, http.StatusOK, dto)
}

func (h *CategoryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var dto CreateCategoryDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if ferr := dto.Validate(); ferr != nil {
		api.WriteFieldError(w, ferr)
		return
	}

	updated, err := h.service.Update(id, dto)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			api.WriteError(w, http.StatusNotFound, "Category not found")
			return
		}
		h.log.WithError(err).Error("failed to update category")
		api.WriteError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}

	api.WriteJSON(w, http.StatusOK, updated)
}

func (h *CategoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			api.WriteError(w, http.StatusNotFound, "Category not found")
			return
		}
		h.log.WithError(err).Error("failed to delete category")
		api.WriteError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid category ID")
		return 0, false
	}
	return uint(id), true
}
