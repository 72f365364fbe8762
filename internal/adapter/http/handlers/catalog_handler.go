package handlers

import (
	"net/http"

	request "workshop_xpto/internal/adapter/http/dto/request"
	response "workshop_xpto/internal/adapter/http/dto/response"
	"workshop_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListCatalog godoc
// @Summary  List catalog entries ordered by name
// @Tags     catalog
// @Produce  json
// @Success  200  {array}  response.CatalogEntryResponse
// @Router   /catalog [get]
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	entries, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogEntries(entries))
}

// CreateCatalogEntry godoc
// @Summary  Add a catalog entry
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    body  body      request.CatalogEntryRequest  true  "Catalog entry"
// @Success  201   {object}  response.CatalogEntryResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  409   {object}  pkg.HTTPError
// @Router   /catalog [post]
func (h *CatalogHandler) CreateCatalogEntry(c *gin.Context) {
	var payload request.CatalogEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}
	entry, err := payload.ToEntity()
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), entry)
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCatalogEntry(created))
}

// DeleteCatalogEntry godoc
// @Summary   Delete a catalog entry
// @Tags      catalog
// @Security  AdminKey
// @Param     id  path  string  true  "Catalog entry id"
// @Success   204
// @Failure   403  {object}  pkg.HTTPError
// @Failure   404  {object}  pkg.HTTPError
// @Router    /catalog/{id} [delete]
func (h *CatalogHandler) DeleteCatalogEntry(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
