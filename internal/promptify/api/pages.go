package api

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"promptify/internal/promptify/models"
	"promptify/internal/promptify/prompt"

	"github.com/gin-gonic/gin"
	"github.com/gomarkdown/markdown"
)

//go:embed templates/*.html
var templatesFS embed.FS

func loadTemplates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}

type accuracyBand struct {
	Range string
	Label string
}

var accuracyScale = []accuracyBand{
	{"90-100%", "Excellent"},
	{"80-89%", "Very Good"},
	{"70-79%", "Good"},
	{"Below 70%", "Basic"},
}

// Index renders the empty form.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.indexData("", "", ""))
}

// Submit handles the form post and renders either the generated text or the
// error message in place of it; the form stays filled in for a retry.
func (h *Handler) Submit(c *gin.Context) {
	var req models.GenerateRequest
	_ = c.ShouldBind(&req)

	resp, err := h.generator.Generate(c.Request.Context(), req)
	if err != nil {
		status, message := generationErrorView(err)
		c.HTML(status, "index.html", h.indexData(req.Prompt, "", message))
		return
	}

	c.HTML(http.StatusOK, "index.html", h.indexData(req.Prompt, resp.Response, ""))
}

func (h *Handler) indexData(promptText, response, errMsg string) gin.H {
	return gin.H{
		"Title":         "Advanced Prompt Generator",
		"Prompt":        promptText,
		"Response":      response,
		"Error":         errMsg,
		"Model":         h.generator.GetModelInfo().ID,
		"AccuracyScale": accuracyScale,
		"Techniques":    len(prompt.Techniques),
	}
}

// Techniques renders the technique catalogue from its markdown form.
func (h *Handler) Techniques(c *gin.Context) {
	body := markdown.ToHTML([]byte(prompt.CatalogueMarkdown()), nil, nil)
	c.HTML(
		http.StatusOK, "techniques.html", gin.H{
			"Title": "Prompting techniques",
			"Body":  template.HTML(body),
		},
	)
}

// NotFound answers unknown API routes with JSON and everything else with the
// not-found page.
func (h *Handler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		ErrorResponse(c, http.StatusNotFound, "Not found")
		return
	}
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{"Title": "Page not found"})
}
