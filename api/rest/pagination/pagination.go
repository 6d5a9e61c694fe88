package pagination

import (
	"strconv"

	"codeberg.org/algopatterns/apierrors/apierr"
	"github.com/gin-gonic/gin"
)

// Params holds the window requested through the limit and offset query parameters
type Params struct {
	Limit  int
	Offset int
}

// Meta is returned alongside every paginated list
type Meta struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// InvalidParam names a query parameter that could not be used
type InvalidParam struct {
	Param string `json:"param"`
	Value string `json:"value"`
}

// builds the metadata for a window over total items
func NewMeta(params Params, total int) Meta {
	return Meta{
		Total:   total,
		Limit:   params.Limit,
		Offset:  params.Offset,
		HasMore: params.Offset+params.Limit < total,
	}
}

// reads limit and offset from the query string.
// missing values fall back to defaultLimit and 0, a limit above maxLimit is clamped.
// anything that is not a non-negative integer is reported as a validation error
// listing every offending parameter.
func FromQuery(c *gin.Context, defaultLimit, maxLimit int) (Params, *apierr.Error) {
	params := Params{Limit: defaultLimit}

	var invalid []InvalidParam

	if raw, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			invalid = append(invalid, InvalidParam{Param: "limit", Value: raw})
		} else {
			params.Limit = min(n, maxLimit)
		}
	}

	if raw, ok := c.GetQuery("offset"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			invalid = append(invalid, InvalidParam{Param: "offset", Value: raw})
		} else {
			params.Offset = n
		}
	}

	if len(invalid) > 0 {
		return Params{}, apierr.NewValidationError("invalid pagination parameters", invalid)
	}

	return params, nil
}

// returns the [offset, offset+limit) window of items, clipped to the slice bounds
func Window[T any](items []T, params Params) []T {
	if params.Offset >= len(items) {
		return []T{}
	}

	end := min(params.Offset+params.Limit, len(items))

	return items[params.Offset:end]
}
