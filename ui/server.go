package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trikaloudis/aquomixlab-heatmaps/adapters/tabular"
	"github.com/trikaloudis/aquomixlab-heatmaps/app"
	"github.com/trikaloudis/aquomixlab-heatmaps/internal/config"
)

//go:embed templates/*.html help.md
var embeddedFiles embed.FS

// Server is the web front end: upload form, column mapping and transform
// configuration, inline heatmap view, and artifact downloads.
type Server struct {
	router    *gin.Engine
	cfg       *config.Config
	reader    *tabular.DataReader
	service   *app.HeatmapService
	registry  *SessionRegistry
	templates *template.Template
}

// NewServer wires the server together from configuration.
func NewServer(cfg *config.Config) (*Server, error) {
	gin.SetMode(cfg.Server.GinMode)

	templates, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:    gin.Default(),
		cfg:       cfg,
		reader:    tabular.NewDataReader(),
		service:   app.NewHeatmapService(cfg.Exports.Timeout),
		registry:  NewSessionRegistry(cfg.Uploads.SessionTTL, cfg.Uploads.MaxSessions),
		templates: templates,
	}
	s.router.MaxMultipartMemory = cfg.Uploads.MaxUploadMB << 20

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/help", s.handleHelp)
	s.router.POST("/datasets/upload", s.handleUpload)
	s.router.GET("/datasets/:id", s.handleDatasetView)
	s.router.POST("/datasets/:id/view", s.handleDatasetConfigure)
	s.router.GET("/datasets/:id/export/:format", s.handleExport)
}

// Start runs the HTTP server until it fails.
func (s *Server) Start() error {
	addr := ":" + s.cfg.Server.Port
	log.Printf("[Server] Starting heatmap visualizer on %s", addr)
	return s.router.Run(addr)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) renderTemplate(c *gin.Context, name string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := s.templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		log.Printf("[Server] Template error rendering %s: %v", name, err)
		c.String(http.StatusInternalServerError, "Template error")
	}
}
