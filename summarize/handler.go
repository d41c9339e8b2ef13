package summarize

import (
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	csrf "github.com/utrack/gin-csrf"

	"pdf-summarizer/files"
	"pdf-summarizer/llm"
	"pdf-summarizer/render"
	"pdf-summarizer/results"
)

const (
	// 18500 words times ~1.66 tokens per word keeps the prompt under the
	// model's token limit.
	wordLimit = 18500

	defaultInstruction = "Summarize the PDF."

	promptSuffix = " Use information from the PDF to respond.\n\nPDF:\n"

	rejectionMessage = "This text is too long for this application's current configuration.\n\nPlease use a shorter text."

	sessionIDKey = "summarizer_session"
)

// Extractor produces per-page text from a PDF on disk.
type Extractor func(path string) ([]string, error)

// Handler serves the upload form, runs the summarize flow, and shows results.
type Handler struct {
	llm       llm.Generator
	extract   Extractor
	store     *results.Store
	tmpDir    string
	csrfToken func(*gin.Context) string
}

func NewHandler(g llm.Generator, store *results.Store) *Handler {
	return &Handler{
		llm:       g,
		extract:   files.ExtractPages,
		store:     store,
		tmpDir:    os.TempDir(),
		csrfToken: csrf.GetToken,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Index)
	r.POST("/", h.Upload)
	r.GET("/pdf_results", h.Results)
}

// Index renders the upload form.
func (h *Handler) Index(c *gin.Context) {
	h.renderForm(c, http.StatusOK, "", defaultInstruction)
}

// Upload validates the submission, extracts the PDF's text, gates on word
// count, runs one inference call, and redirects to the results view.
func (h *Handler) Upload(c *gin.Context) {
	instruction := strings.TrimSpace(c.PostForm("text_input"))
	if instruction == "" {
		instruction = defaultInstruction
	}

	fileHeader, err := c.FormFile("pdf_file")
	if err != nil {
		h.renderForm(c, http.StatusBadRequest, "Please select a PDF.", instruction)
		return
	}
	if strings.ToLower(filepath.Ext(fileHeader.Filename)) != ".pdf" {
		h.renderForm(c, http.StatusBadRequest, "Please select a PDF.", instruction)
		return
	}

	tmp := filepath.Join(h.tmpDir, uuid.NewString()+".pdf")
	if err := c.SaveUploadedFile(fileHeader, tmp); err != nil {
		slog.Error("saving upload failed", "error", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	defer os.Remove(tmp)

	pages, err := h.extract(tmp)
	if err != nil {
		slog.Error("pdf extraction failed", "error", err, "file", fileHeader.Filename)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	combined := files.CombinePages(pages)
	words := wordCount(combined)
	slog.Debug("extracted pdf", "pages", len(pages), "wordCount", words)

	var responseText string
	if words < wordLimit {
		prompt := instruction + promptSuffix + combined
		slog.Debug("calling model", "prompt", prompt)
		out, err := h.llm.Generate(c.Request.Context(), prompt)
		if err != nil {
			slog.Error("inference failed", "error", err)
			c.String(http.StatusInternalServerError, "Internal Server Error")
			return
		}
		// Repair mis-decoded bullet glyphs into markdown list markers.
		responseText = strings.ReplaceAll(out, "•", "  *")
	} else {
		responseText = rejectionMessage
	}

	htmlFragment := render.Markdown(responseText)
	h.store.Put(sessionID(c), htmlFragment)
	slog.Debug("stored result", "html", htmlFragment)

	c.Redirect(http.StatusSeeOther, "/pdf_results")
}

// Results renders the most recently stored result for the current session.
func (h *Handler) Results(c *gin.Context) {
	htmlFragment, ok := h.store.Get(sessionID(c))
	if !ok {
		c.HTML(http.StatusNotFound, "no_result.html", nil)
		return
	}
	c.HTML(http.StatusOK, "pdf_results.html", gin.H{
		"ResponseText": template.HTML(htmlFragment),
	})
}

func (h *Handler) renderForm(c *gin.Context, status int, fileError, instruction string) {
	c.HTML(status, "index.html", gin.H{
		"FileError": fileError,
		"TextInput": instruction,
		"CSRFToken": h.csrfToken(c),
	})
}

// wordCount approximates token usage by whitespace-delimited words.
func wordCount(text string) int {
	return len(strings.Fields(text))
}

// sessionID returns the per-browser session ID, minting one on first use.
func sessionID(c *gin.Context) string {
	s := sessions.Default(c)
	if v, ok := s.Get(sessionIDKey).(string); ok && v != "" {
		return v
	}
	id := uuid.NewString()
	s.Set(sessionIDKey, id)
	if err := s.Save(); err != nil {
		slog.Error("saving session failed", "error", err)
	}
	return id
}
