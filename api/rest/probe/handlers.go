// Package probe exposes endpoints that deliberately fail, so API clients can
// exercise their handling of every error kind against a live service.
package probe

import (
	"net/http"
	"strings"

	"codeberg.org/algopatterns/apierrors/api/rest/errorhandler"
	"codeberg.org/algopatterns/apierrors/api/rest/pagination"
	"codeberg.org/algopatterns/apierrors/apierr"
	"codeberg.org/algopatterns/apierrors/internal/auth"
	"codeberg.org/algopatterns/apierrors/internal/errors"
	"github.com/gin-gonic/gin"
)

const (
	// prefix of query parameters copied into the error info
	infoQueryPrefix = "info."

	defaultKindsLimit = 20
	maxKindsLimit     = 100
)

// ListKinds godoc
// @Summary List error kinds
// @Description Returns the error taxonomy with status, code and disclosure tier of each kind
// @Tags probe
// @Produce json
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Items to skip"
// @Success 200 {object} ListKindsResponse
// @Failure 400 {object} apierr.Output
// @Router /api/v1/probe/kinds [get]
func ListKinds(c *gin.Context) {
	params, err := pagination.FromQuery(c, defaultKindsLimit, maxKindsLimit)
	if err != nil {
		errorhandler.Abort(c, err)
		return
	}

	all := apierr.Kinds()
	page := pagination.Window(all, params)

	kinds := make([]KindResponse, 0, len(page))
	for _, kind := range page {
		kinds = append(kinds, KindResponse{
			Name:       kind.Name(),
			StatusCode: kind.StatusCode(),
			Code:       kind.Code(),
			Safe:       kind.IsSafe(),
		})
	}

	c.JSON(http.StatusOK, ListKindsResponse{
		Kinds:      kinds,
		Pagination: pagination.NewMeta(params, len(all)),
	})
}

// RaiseKind godoc
// @Summary Raise an error of the given kind
// @Description Responds with the named error kind. Query "message" sets the message,
// @Description "detail" the validation detail, and every "info.<key>" parameter becomes an info entry.
// @Tags probe
// @Produce json
// @Param kind path string true "Kind name or code, e.g. NotFoundError or ERR_NOT_FOUND"
// @Failure 400 {object} apierr.Output
// @Failure 404 {object} apierr.Output
// @Failure 500 {object} apierr.Output
// @Router /api/v1/probe/kinds/{kind} [get]
func RaiseKind(c *gin.Context) {
	name := c.Param("kind")

	kind, ok := apierr.ParseKind(name)
	if !ok {
		errorhandler.Abort(c, apierr.NewNotFoundErrorf("unknown error kind %q", name))
		return
	}

	message := c.DefaultQuery("message", "raised by probe")

	var err *apierr.Error
	if kind == apierr.KindValidation {
		var detail any
		if d, ok := c.GetQuery("detail"); ok {
			detail = d
		}

		err = apierr.NewValidationError(message, detail)
	} else {
		err = apierr.NewKind(kind, message)
	}

	if info := infoFromQuery(c); info != nil {
		err.WithInfo(info)
	}

	errorhandler.Abort(c, err)
}

// Validate godoc
// @Summary Validate a request body
// @Description Binds the body and reports field-level failures as a ValidationError
// @Tags probe
// @Accept json
// @Produce json
// @Param request body ValidateRequest true "Body to validate"
// @Success 200 {object} ValidateResponse
// @Failure 400 {object} apierr.Output
// @Router /api/v1/probe/validate [post]
func Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorhandler.Abort(c, errors.FromBinding(err))
		return
	}

	c.JSON(http.StatusOK, ValidateResponse{Name: req.Name, Email: req.Email})
}

// GetItem godoc
// @Summary Look up an item by UUID
// @Description Malformed ids are reported as not found
// @Tags probe
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} ItemResponse
// @Failure 404 {object} apierr.Output
// @Router /api/v1/probe/items/{id} [get]
func GetItem(c *gin.Context) {
	id := c.Param("id")

	if err := errors.ValidateUUID(id, "item"); err != nil {
		errorhandler.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, ItemResponse{ID: strings.ToLower(id)})
}

// WhoAmI godoc
// @Summary Admin-only identity check
// @Tags probe
// @Produce json
// @Success 200 {object} WhoAmIResponse
// @Failure 401 {object} apierr.Output
// @Failure 403 {object} apierr.Output
// @Router /api/v1/probe/admin [get]
// @Security BearerAuth
func WhoAmI(c *gin.Context) {
	userID, _ := auth.GetUserID(c)
	c.JSON(http.StatusOK, WhoAmIResponse{UserID: userID})
}

func infoFromQuery(c *gin.Context) map[string]any {
	var info map[string]any

	for key, values := range c.Request.URL.Query() {
		name, ok := strings.CutPrefix(key, infoQueryPrefix)
		if !ok || name == "" || len(values) == 0 {
			continue
		}

		if info == nil {
			info = make(map[string]any)
		}

		info[name] = values[0]
	}

	return info
}
