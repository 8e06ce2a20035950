package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/property-portal/internal/api/middleware"
	"github.com/linskybing/property-portal/internal/application"
	"github.com/linskybing/property-portal/internal/domain/property"
	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/internal/repository"
)

type PropertyHandler struct {
	base
	svc *application.PropertyService
}

func NewPropertyHandler(b base, svc *application.PropertyService) *PropertyHandler {
	return &PropertyHandler{base: b, svc: svc}
}

// propertyFilter reads the listing query. A userId that is not a number is
// ignored rather than rejected.
func propertyFilter(c *gin.Context) repository.PropertyFilter {
	f := repository.PropertyFilter{
		OwnerID:  queryUint(c, "userId"),
		Featured: queryBool(c, "featured"),
		City:     queryString(c, "city"),
	}
	if raw := queryString(c, "role"); raw != nil {
		r := user.Role(*raw)
		f.Role = &r
	}
	if raw := queryString(c, "status"); raw != nil {
		s := property.Status(*raw)
		f.Status = &s
	}
	return f
}

// ListProperties godoc
// @Summary List properties
// @Tags properties
// @Produce json
// @Param userId query int false "Owner user ID"
// @Param role query string false "Owner role (landlord or agent)"
// @Param featured query bool false "Featured only"
// @Param status query string false "Listing status"
// @Param city query string false "City"
// @Success 200 {array} property.Property
// @Router /api/properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	props, err := h.svc.FetchProperties(c.Request.Context(), propertyFilter(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, props)
}

// GetProperty godoc
// @Summary Get a property
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} property.Property
// @Failure 404 {object} response.ErrorResponse "Property not found"
// @Router /api/properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	p, err := h.svc.GetProperty(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateProperty godoc
// @Summary Create a property
// @Tags properties
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body property.CreatePropertyInput true "Property"
// @Success 201 {object} property.Property
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /api/properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var in property.CreatePropertyInput
	if err := bind(c, &in); err != nil {
		h.fail(c, err)
		return
	}
	p, err := h.svc.CreateProperty(c.Request.Context(), middleware.SessionFrom(c), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProperty godoc
// @Summary Partially update a property
// @Tags properties
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param input body property.UpdatePropertyInput true "Fields to change"
// @Success 200 {object} property.Property
// @Failure 400 {object} response.ValidationErrorResponse
// @Failure 404 {object} response.ErrorResponse "Property not found"
// @Router /api/properties/{id} [patch]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	var in property.UpdatePropertyInput
	if err := bind(c, &in); err != nil {
		h.fail(c, err)
		return
	}
	p, err := h.svc.UpdateProperty(c.Request.Context(), middleware.SessionFrom(c), id, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProperty godoc
// @Summary Delete a property
// @Tags properties
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse "Property not found"
// @Router /api/properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.svc.DeleteProperty(c.Request.Context(), middleware.SessionFrom(c), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
