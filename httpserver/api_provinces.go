package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"

	"github.com/AnkaWorks/kulturharita/catalog"
)

// APIProvince is one row of the region table as served to clients: the
// joined fields plus the row's categorical fill color.
type APIProvince struct {
	Name        string `json:"name"`
	FeatureName string `json:"feature_name"`
	Culture     string `json:"culture"`
	Color       string `json:"color"`
	Matched     bool   `json:"matched"`
}

// APIFocus is a point inside a region's boundary, for panning the viewport.
type APIFocus struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type getProvincesResponse struct {
	Provinces        []APIProvince `json:"provinces"`
	DefaultSelection string        `json:"default_selection"`
	FeatureKey       string        `json:"feature_key"`
	Matched          int           `json:"matched"`
	Total            int           `json:"total"`
}

type getOneProvinceResponse struct {
	Province APIProvince `json:"province"`
	Focus    *APIFocus   `json:"focus"`
	Bound    *APIBound   `json:"bound"`
}

func rowToAPIProvince(row catalog.Row, color string) APIProvince {
	return APIProvince{
		Name:        row.Name,
		FeatureName: row.FeatureName,
		Culture:     row.Culture,
		Color:       color,
		Matched:     row.Matched,
	}
}

func pointToAPIFocus(point orb.Point) *APIFocus {
	return &APIFocus{
		Lat: point.Lat(),
		Lon: point.Lon(),
	}
}

// focusForRow returns the row's label point, or nil for rows that matched
// no boundary feature.
func focusForRow(ctl *catalog.Catalog, row catalog.Row) *APIFocus {
	point, ok := ctl.LabelPoint(row)
	if !ok {
		return nil
	}
	return pointToAPIFocus(point)
}

func (srv *HTTPServer) handleGetProvinces(c *gin.Context) {
	ctl := srv.catalogManager.GetCatalog()

	rows := ctl.Rows()
	colors := ctl.Colors()

	apiProvinces := make([]APIProvince, len(rows))
	for idx, row := range rows {
		apiProvinces[idx] = rowToAPIProvince(row, colors[idx])
	}

	c.JSON(http.StatusOK, getProvincesResponse{
		Provinces:        apiProvinces,
		DefaultSelection: ctl.DefaultName(),
		FeatureKey:       ctl.FeatureKey().FeatureIDKey(),
		Matched:          ctl.MatchedCount(),
		Total:            ctl.Len(),
	})
}

func (srv *HTTPServer) handleGetProvince(c *gin.Context) {
	ctl := srv.catalogManager.GetCatalog()

	name := c.Param("name")
	row, err := ctl.Row(name)
	if err != nil {
		var notFound *catalog.SelectionNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, &APIErrorResponse{
				Error: "province not found",
			})
			return
		}
		srv.logger.Error(err)
		c.JSON(http.StatusInternalServerError, &APIErrorResponse{
			Error: "an internal error occurred: check the logs",
		})
		return
	}

	resp := getOneProvinceResponse{
		Province: rowToAPIProvince(row, ctl.ColorOf(row.Name)),
		Focus:    focusForRow(ctl, row),
	}
	if bound, ok := ctl.FeatureBound(row); ok {
		apiBound := boundToAPIBound(bound)
		resp.Bound = &apiBound
	}

	c.JSON(http.StatusOK, resp)
}
