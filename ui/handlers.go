package ui

import (
	"html/template"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"

	"github.com/trikaloudis/aquomixlab-heatmaps/adapters/render"
	"github.com/trikaloudis/aquomixlab-heatmaps/domain/core"
	"github.com/trikaloudis/aquomixlab-heatmaps/domain/heatmap"
	apperrors "github.com/trikaloudis/aquomixlab-heatmaps/internal/errors"
)

// columnOption drives the column pickers in the configuration form.
type columnOption struct {
	Name         string
	IsIdentifier bool
	IsLabel      bool
	IsSample     bool
}

// datasetPage is the template payload for the dataset view.
type datasetPage struct {
	ID       string
	Filename string
	RowCount int
	Columns  []columnOption
	State    ViewState
	Palettes []string
	MinFont  int
	MaxFont  int

	SVG             template.HTML
	Warning         string
	Error           string
	CoercedCells    int
	DuplicateLabels int
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderTemplate(c, "index.html", gin.H{"Error": c.Query("error")})
}

func (s *Server) handleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		s.renderTemplate(c, "index.html", gin.H{"Error": "Please choose a CSV or XLSX file to upload"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[Upload] Failed to open upload: %v", err)
		s.renderTemplate(c, "index.html", gin.H{"Error": "Upload could not be read"})
		return
	}
	defer file.Close()

	tbl, err := s.reader.Read(file, fileHeader.Filename)
	if err != nil {
		// Critical load failure: nothing downstream runs.
		appErr := apperrors.LoadFailure(err)
		log.Printf("[Upload] %v", appErr)
		s.renderTemplate(c, "index.html", gin.H{"Error": appErr.Message})
		return
	}

	state := ViewState{
		Selection: heatmap.DefaultSelection(tbl),
		Transform: heatmap.TransformConfig{Log10: true},
		Render: heatmap.RenderConfig{
			Palette:  render.DefaultPalette,
			FontSize: heatmap.DefaultFontSize,
			Scale:    heatmap.DefaultScale,
		},
	}
	session := s.registry.Put(fileHeader.Filename, tbl, state)

	c.Redirect(http.StatusSeeOther, "/datasets/"+session.ID.String())
}

func (s *Server) handleDatasetView(c *gin.Context) {
	session, ok := s.lookupSession(c)
	if !ok {
		return
	}
	s.renderDatasetPage(c, session, session.State)
}

func (s *Server) handleDatasetConfigure(c *gin.Context) {
	session, ok := s.lookupSession(c)
	if !ok {
		return
	}

	state := parseViewState(c)
	s.registry.UpdateState(session.ID, state)
	s.renderDatasetPage(c, session, state)
}

func (s *Server) handleExport(c *gin.Context) {
	session, ok := s.lookupSession(c)
	if !ok {
		return
	}
	format := c.Param("format")

	res, err := s.service.Run(session.Table, session.State.Selection, session.State.Transform, session.State.Render)
	if err != nil {
		c.String(http.StatusBadRequest, "%s", err.Error())
		return
	}

	scale := session.State.Render.Scale
	if v, err := strconv.Atoi(c.Query("scale")); err == nil && v >= 1 {
		scale = v
	}

	data, err := s.service.ExportOne(c.Request.Context(), res.Chart, format, scale)
	if err != nil {
		log.Printf("[Export] %v", err)
		c.String(http.StatusInternalServerError, "%s", err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="heatmap.`+format+`"`)
	c.Data(http.StatusOK, exportContentType(format), data)
}

func (s *Server) handleHelp(c *gin.Context) {
	src, err := embeddedFiles.ReadFile("help.md")
	if err != nil {
		c.String(http.StatusInternalServerError, "help unavailable")
		return
	}
	body := markdown.ToHTML(src, nil, nil)
	s.renderTemplate(c, "help.html", gin.H{"Body": template.HTML(body)})
}

// lookupSession resolves the :id parameter, answering 404 for unknown or
// expired datasets.
func (s *Server) lookupSession(c *gin.Context) (*DatasetSession, bool) {
	id, err := core.ParseDatasetID(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "dataset not found")
		return nil, false
	}
	session, ok := s.registry.Get(id)
	if !ok {
		appErr := apperrors.DatasetNotFound(id.String())
		c.String(http.StatusNotFound, "%s", appErr.Message)
		return nil, false
	}
	return session, true
}

// renderDatasetPage runs one pipeline pass for the given state and renders
// the dataset view. An empty sample set is a warning, not a failure: the
// form still renders so the user can fix the configuration.
func (s *Server) renderDatasetPage(c *gin.Context, session *DatasetSession, state ViewState) {
	page := &datasetPage{
		ID:       session.ID.String(),
		Filename: session.Filename,
		RowCount: session.Table.RowCount(),
		Columns:  columnOptions(session.Table.Headers, state.Selection),
		State:    state,
		Palettes: render.PaletteNames(),
		MinFont:  heatmap.MinFontSize,
		MaxFont:  heatmap.MaxFontSize,
	}

	res, err := s.service.Run(session.Table, state.Selection, state.Transform, state.Render)
	switch {
	case err == nil:
		svg, svgErr := res.Chart.SVG()
		if svgErr != nil {
			log.Printf("[DatasetView] Inline SVG render failed: %v", svgErr)
			page.Error = "The heatmap could not be rendered"
		} else {
			page.SVG = template.HTML(svg)
			page.CoercedCells = res.Diagnostics.CoercedCells
			page.DuplicateLabels = res.Diagnostics.DuplicateLabels
		}
	case apperrors.GetCode(err) == apperrors.CodeEmptySelection:
		page.Warning = "Please select at least one sample column"
	default:
		page.Error = err.Error()
	}

	s.renderTemplate(c, "dataset.html", page)
}

// parseViewState reads the configuration form into one immutable ViewState.
func parseViewState(c *gin.Context) ViewState {
	samples := dedupe(c.PostFormArray("samples"))

	fontSize := heatmap.DefaultFontSize
	if v, err := strconv.Atoi(c.PostForm("fontsize")); err == nil {
		fontSize = heatmap.ClampFontSize(v)
	}
	scale := heatmap.DefaultScale
	if v, err := strconv.Atoi(c.PostForm("scale")); err == nil && v >= 1 {
		scale = v
	}

	return ViewState{
		Selection: heatmap.Selection{
			IdentifierColumn: c.PostForm("identifier"),
			LabelColumn:      c.PostForm("label"),
			SampleColumns:    samples,
		},
		Transform: heatmap.TransformConfig{
			Log10:       c.PostForm("log10") == "on",
			Standardize: c.PostForm("standardize") == "on",
		},
		Render: heatmap.RenderConfig{
			Palette:  c.PostForm("palette"),
			FontSize: fontSize,
			Scale:    scale,
		},
	}
}

func columnOptions(headers []string, sel heatmap.Selection) []columnOption {
	sampleSet := make(map[string]bool, len(sel.SampleColumns))
	for _, name := range sel.SampleColumns {
		sampleSet[name] = true
	}
	opts := make([]columnOption, len(headers))
	for i, h := range headers {
		opts[i] = columnOption{
			Name:         h,
			IsIdentifier: h == sel.IdentifierColumn,
			IsLabel:      h == sel.LabelColumn,
			IsSample:     sampleSet[h],
		}
	}
	return opts
}

// dedupe drops repeated sample columns while preserving selection order.
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func exportContentType(format string) string {
	switch format {
	case "svg":
		return "image/svg+xml"
	case "pdf":
		return "application/pdf"
	case "png":
		return "image/png"
	case "csv":
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
