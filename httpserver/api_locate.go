package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gopkg.in/guregu/null.v4"
)

type locateResponse struct {
	FeatureName null.String  `json:"feature_name"`
	Province    *APIProvince `json:"province"`
}

// handleLocate answers which region contains a clicked coordinate. A click
// that lands on no region (or on a boundary feature no content row matched)
// is a normal miss: 200 with null fields, not an error.
func (srv *HTTPServer) handleLocate(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		srv.logger.Warnf("Locate: bad lat: %v", err)
		c.JSON(http.StatusBadRequest, &APIErrorResponse{
			Error: "malformed 'lat'",
		})
		return
	}

	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		srv.logger.Warnf("Locate: bad lon: %v", err)
		c.JSON(http.StatusBadRequest, &APIErrorResponse{
			Error: "malformed 'lon'",
		})
		return
	}

	row, ok := srv.catalogManager.Locate(lat, lon)
	if !ok {
		c.JSON(http.StatusOK, locateResponse{})
		return
	}

	ctl := srv.catalogManager.GetCatalog()
	province := rowToAPIProvince(row, ctl.ColorOf(row.Name))

	c.JSON(http.StatusOK, locateResponse{
		FeatureName: null.StringFrom(row.FeatureName),
		Province:    &province,
	})
}
