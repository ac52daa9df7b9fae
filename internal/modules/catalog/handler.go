package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"staybook/internal/pkg/filestore"
	"staybook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/hotels", h.ListHotels)
	v1.GET("/hotels/:slug", h.GetHotel)
	v1.GET("/amenities", h.ListAmenities)
}

// RegisterVendorRoutes expects the group to already carry auth + the
// vendor role guard.
func (h *Handler) RegisterVendorRoutes(vendor *gin.RouterGroup) {
	vendor.GET("/hotels", h.VendorHotels)
	vendor.POST("/hotels", h.CreateHotel)
	vendor.PUT("/hotels/:slug", h.UpdateHotel)
	vendor.DELETE("/hotels/:slug", h.DeleteHotel)
	vendor.POST("/hotels/:slug/images", h.UploadImages)
	vendor.DELETE("/images/:id", h.DeleteImage)
}

func (h *Handler) ListHotels(c *gin.Context) {
	hotels, err := h.service.ListHotels(c.Request.Context(), c.Query("search"), c.Query("sort"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list hotels")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) GetHotel(c *gin.Context) {
	hotel, err := h.service.GetHotel(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrHotelNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found or is no longer available")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", "Failed to load hotel")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotel": hotel})
}

func (h *Handler) ListAmenities(c *gin.Context) {
	amenities, err := h.service.ListAmenities(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list amenities")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"amenities": amenities})
}

func (h *Handler) VendorHotels(c *gin.Context) {
	hotels, err := h.service.VendorHotels(c.Request.Context(), c.GetInt64("account_id"))
	if err != nil {
		if errors.Is(err, ErrNotVendor) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only vendors can manage hotels")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list hotels")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotels": hotels})
}

func (h *Handler) CreateHotel(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please fill in all required fields (name, location, price, offer price)")
		return
	}

	hotel, err := h.service.CreateHotel(c.Request.Context(), c.GetInt64("account_id"), req)
	if err != nil {
		h.writeMutationError(c, err, "CREATE_FAILED", "Failed to create hotel")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"hotel": hotel})
}

func (h *Handler) UpdateHotel(c *gin.Context) {
	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Please fill in all required fields (name, location, price, offer price)")
		return
	}

	hotel, err := h.service.UpdateHotel(c.Request.Context(), c.GetInt64("account_id"), c.Param("slug"), req)
	if err != nil {
		h.writeMutationError(c, err, "UPDATE_FAILED", "Failed to update hotel")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"hotel": hotel})
}

func (h *Handler) DeleteHotel(c *gin.Context) {
	err := h.service.DeleteHotel(c.Request.Context(), c.GetInt64("account_id"), c.Param("slug"))
	if err != nil {
		h.writeMutationError(c, err, "DELETE_FAILED", "Failed to delete hotel")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Hotel deleted"})
}

func (h *Handler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Failed to parse form")
		return
	}

	files := form.File["images"]
	images, err := h.service.AddImages(c.Request.Context(), c.GetInt64("account_id"), c.Param("slug"), files)
	if err != nil {
		switch {
		case errors.Is(err, filestore.ErrFileTooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "Image exceeds the size limit")
		case errors.Is(err, filestore.ErrInvalidMimeType), errors.Is(err, filestore.ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE", "Only image files are accepted")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "NO_FILES", "No files uploaded")
		default:
			h.writeMutationError(c, err, "UPLOAD_FAILED", "Failed to upload images")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"images": images})
}

func (h *Handler) DeleteImage(c *gin.Context) {
	imageID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid image ID")
		return
	}

	if err := h.service.DeleteImage(c.Request.Context(), c.GetInt64("account_id"), imageID); err != nil {
		if errors.Is(err, ErrImageNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Image not found")
			return
		}
		h.writeMutationError(c, err, "DELETE_FAILED", "Failed to delete image")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Image deleted"})
}

func (h *Handler) writeMutationError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	switch {
	case errors.Is(err, ErrHotelNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
	case errors.Is(err, ErrNotOwner):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only manage your own hotels")
	case errors.Is(err, ErrNotVendor):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only vendors can manage hotels")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Offer price must not exceed the regular price")
	default:
		response.Error(c, http.StatusInternalServerError, fallbackCode, fallbackMsg)
	}
}
