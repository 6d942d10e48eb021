package images

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/webpanel/deploy/app/api"
	"github.com/webpanel/deploy/models"
)

type ImageHandler struct {
	service *ImageService
	log     *logrus.Logger
}

func NewImageHandler(service *ImageService, log *logrus.Logger) *ImageHandler {
	return &ImageHandler{
		service: service,
		log:     log,
	}
}

func (h *ImageHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var dto CreateImageDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	created, err := h.service.Create(dto)
	if err != nil {
		h.log.WithError(err).Error("failed to create image")
		api.WriteError(w, http.StatusInternalServerError, "Failed to create image")
		return
	}

	api.WriteJSON(w, http.StatusCreated, created)
}

func (h *ImageHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.GetAll()
	if err != nil {
		h.log.WithError(err).Error("failed to list images")
		api.WriteError(w, http.StatusInternalServerError, "Failed to fetch images")
		return
	}

	api.WriteJSON(w, http.StatusOK, list)
}

func (h *ImageHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	dto, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrImageNotFound) {
			api.WriteError(w, http.StatusNotFound, "Image not found")
			return
		}
		h.log.WithError(err).Error("failed to get image")
		api.WriteError(w, http.StatusInternalServerError, "Failed to retrieve image")
		return
	}

	api.WriteJSON(w, http.StatusOK, dto)
}

func (h *ImageHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var dto CreateImageDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	updated, err := h.service.Update(id, dto)
	if err != nil {
		if errors.Is(err, models.ErrImageNotFound) {
			api.WriteError(w, http.StatusNotFound, "Image not found")
			return
		}
		h.log.WithError(err).Error("failed to update image")
		api.WriteError(w, http.StatusInternalServerError, "Failed to update image")
		return
	}

	api.WriteJSON(w, http.StatusOK, updated)
}

func (h *ImageHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, models.ErrImageNotFound) {
			api.WriteError(w, http.StatusNotFound, "Image not found")
			return
		}
		h.log.WithError(err).Error("failed to delete image")
		api.WriteError(w, http.StatusInternalServerError, "Failed to delete image")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid image ID")
		return 0, false
	}
	return uint(id), true
}
