package httpserver

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnkaWorks/kulturharita/version"
)

//go:embed assets
var assetsFS embed.FS

// Product copy, kept in Turkish.
const (
	pageTitle       = "Türkiye 81 İl Kültür Haritası"
	pageDescription = "Haritadaki illere tıklayarak ya da listeden seçerek o ilin kültürel özelliklerini öğrenebilirsiniz."
	pageBanner      = "Bu uygulama, Türkiye'nin 81 iline ait kültürel öğeleri öğretici bir şekilde tanıtmak için hazırlanmıştır."
	selectorLabel   = "İl seç"
)

// setupViewer wires the embedded map page: the HTML template on "/" and the
// script/style assets under "/static".
func (srv *HTTPServer) setupViewer() error {
	tmpl, err := template.ParseFS(assetsFS, "assets/templates/*.tmpl")
	if err != nil {
		return fmt.Errorf("failed to parse viewer templates: %w", err)
	}
	srv.ginRouter.SetHTMLTemplate(tmpl)

	staticFiles, err := fs.Sub(assetsFS, "assets/static")
	if err != nil {
		return fmt.Errorf("failed to mount static assets: %w", err)
	}
	srv.ginRouter.StaticFS("/static", http.FS(staticFiles))

	srv.ginRouter.GET("/", srv.handleIndex)
	return nil
}

func (srv *HTTPServer) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html.tmpl", gin.H{
		"Title":         pageTitle,
		"Description":   pageDescription,
		"Banner":        pageBanner,
		"SelectorLabel": selectorLabel,
		"Version":       version.APP_VERSION,
	})
}
