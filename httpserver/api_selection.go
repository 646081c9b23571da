package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnkaWorks/kulturharita/catalog"
)

type getSelectionResponse struct {
	Selection catalog.Selection `json:"selection"`
	Province  APIProvince       `json:"province"`
	Focus     *APIFocus         `json:"focus"`
}

// handleGetSelection resolves the viewer's two selection inputs. A non-empty
// 'click' wins over a non-empty 'list'; with neither, the default (first)
// region is returned. The shipped viewer only submits names from the table,
// so a 404 here means the caller made one up.
func (srv *HTTPServer) handleGetSelection(c *gin.Context) {
	click := c.Query("click")
	list := c.Query("list")

	selection, row, err := srv.catalogManager.Select(click, list)
	if err != nil {
		var notFound *catalog.SelectionNotFoundError
		if errors.As(err, &notFound) {
			srv.logger.Warnf("Selection: name '%s' is not in the region table", notFound.Name)
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

	ctl := srv.catalogManager.GetCatalog()

	c.JSON(http.StatusOK, getSelectionResponse{
		Selection: selection,
		Province:  rowToAPIProvince(row, ctl.ColorOf(row.Name)),
		Focus:     focusForRow(ctl, row),
	})
}
