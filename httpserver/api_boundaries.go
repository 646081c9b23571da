package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// APIBound is a geographic bounding box in plain lat/lon fields.
type APIBound struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

func boundToAPIBound(bound orb.Bound) APIBound {
	return APIBound{
		MinLat: bound.Min.Lat(),
		MinLon: bound.Min.Lon(),
		MaxLat: bound.Max.Lat(),
		MaxLon: bound.Max.Lon(),
	}
}

type getBoundariesResponse struct {
	// FeatureProperty is the property bag key carrying region names;
	// FeatureKey is its "properties.<key>" path form.
	FeatureProperty string                     `json:"feature_property"`
	FeatureKey      string                     `json:"feature_key"`
	Bound           APIBound                   `json:"bound"`
	Collection      *geojson.FeatureCollection `json:"collection"`
}

func (srv *HTTPServer) handleGetBoundaries(c *gin.Context) {
	ctl := srv.catalogManager.GetCatalog()
	featureKey := ctl.FeatureKey()

	c.JSON(http.StatusOK, getBoundariesResponse{
		FeatureProperty: featureKey.Property,
		FeatureKey:      featureKey.FeatureIDKey(),
		Bound:           boundToAPIBound(ctl.Bound()),
		Collection:      ctl.Collection(),
	})
}
