package server

import (
	"net/http"

	"github.com/arthur-debert/pdarules/pkg/builder"
	"github.com/arthur-debert/pdarules/pkg/catalog"
	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/arthur-debert/pdarules/pkg/highlight"
	"github.com/arthur-debert/pdarules/pkg/rules"
	"github.com/gin-gonic/gin"
)

type catalogDTO struct {
	RuleTypes []catalog.RuleType `json:"rule_types"`
	Modes     []rules.Mode       `json:"modes"`
	Level     rules.Level        `json:"level"`
}

type previewDTO struct {
	Placeholder bool             `json:"placeholder"`
	Entries     int              `json:"entries"`
	Text        string           `json:"text"`
	HTML        string           `json:"html"`
	Lines       []highlight.Line `json:"lines"`
}

type draftDTO struct {
	Draft    rules.RuleDraft `json:"draft"`
	Missing  []rules.Field   `json:"missing"`
	Choices  []string        `json:"choices,omitempty"`
	Complete bool            `json:"complete"`
}

type fieldValue struct {
	Value *string `json:"value"`
}

type entryDTO struct {
	Entry   rules.Entry `json:"entry"`
	Entries int         `json:"entries"`
}

type formatDTO struct {
	Entry rules.Entry      `json:"entry"`
	Text  string           `json:"text"`
	Lines []highlight.Line `json:"lines"`
}

func newPreview(b *builder.Builder) previewDTO {
	lines := b.RenderPreview()
	return previewDTO{
		Placeholder: b.ShowsPlaceholder(),
		Entries:     b.Len(),
		Text:        highlight.RenderPlain(lines),
		HTML:        highlight.RenderHTML(lines),
		Lines:       lines,
	}
}

func newDraft(b *builder.Builder) draftDTO {
	d := b.Draft()
	return draftDTO{
		Draft:    d,
		Missing:  d.Missing(),
		Choices:  b.ElementChoices(),
		Complete: d.Complete(),
	}
}

// GET /api/catalog?level=basic|medium|advanced
func (s *Server) getCatalog(c *gin.Context) {
	level := rules.LevelAdvanced
	if q := c.Query("level"); q != "" {
		l, ok := rules.ParseLevel(q)
		if !ok {
			s.fail(c, errors.Newf(errors.ErrInvalidInput, "unknown mode level %q", q))
			return
		}
		level = l
	}

	var dto catalogDTO
	s.withBuilder(func(b *builder.Builder) {
		dto = catalogDTO{
			RuleTypes: b.Catalog().RuleTypes,
			Modes:     rules.ModesFor(level),
			Level:     level,
		}
	})
	c.JSON(http.StatusOK, dto)
}

// GET /api/draft
func (s *Server) getDraft(c *gin.Context) {
	var dto draftDTO
	s.withBuilder(func(b *builder.Builder) { dto = newDraft(b) })
	c.JSON(http.StatusOK, dto)
}

// PUT /api/draft {"type": "...", "element": "...", "presets": [...], "mode": "..."}
// replaces the whole draft. The buffer is not touched.
func (s *Server) putDraft(c *gin.Context) {
	var d rules.RuleDraft
	if err := c.ShouldBindJSON(&d); err != nil {
		s.fail(c, errors.Wrap(err, errors.ErrInvalidInput, "invalid draft"))
		return
	}

	var (
		preview previewDTO
		draft   draftDTO
	)
	s.withBuilder(func(b *builder.Builder) {
		b.SetDraft(d)
		preview = newPreview(b)
		draft = newDraft(b)
	})
	c.JSON(http.StatusOK, gin.H{"draft": draft, "preview": preview})
}

// PUT /api/draft/:field {"value": "..."}
func (s *Server) updateDraftField(c *gin.Context) {
	field, ok := rules.ParseField(c.Param("field"))
	if !ok {
		s.fail(c, errors.Newf(errors.ErrUnknownField, "unknown draft field %q", c.Param("field")))
		return
	}

	var body fieldValue
	if err := c.ShouldBindJSON(&body); err != nil || body.Value == nil {
		s.fail(c, errors.New(errors.ErrInvalidInput, `body must be {"value": "..."}`))
		return
	}

	var (
		err     error
		preview previewDTO
		draft   draftDTO
	)
	s.withBuilder(func(b *builder.Builder) {
		if err = b.UpdateDraftField(field, *body.Value); err == nil {
			preview = newPreview(b)
			draft = newDraft(b)
		}
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft, "preview": preview})
}

// GET /api/preview
func (s *Server) getPreview(c *gin.Context) {
	var dto previewDTO
	s.withBuilder(func(b *builder.Builder) { dto = newPreview(b) })
	c.JSON(http.StatusOK, dto)
}

// GET /api/rules
func (s *Server) listRules(c *gin.Context) {
	var entries []rules.Entry
	s.withBuilder(func(b *builder.Builder) { entries = b.Entries() })
	if entries == nil {
		entries = []rules.Entry{}
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// POST /api/rules
func (s *Server) commitRule(c *gin.Context) {
	var (
		entry rules.Entry
		count int
		err   error
	)
	s.withBuilder(func(b *builder.Builder) {
		entry, err = b.Commit()
		count = b.Len()
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, entryDTO{Entry: entry, Entries: count})
}

// DELETE /api/rules
func (s *Server) clearRules(c *gin.Context) {
	s.withBuilder(func(b *builder.Builder) { b.Clear() })
	c.Status(http.StatusNoContent)
}

// GET /api/transcript[?download=1]
func (s *Server) getTranscript(c *gin.Context) {
	var text string
	s.withBuilder(func(b *builder.Builder) { text = b.Transcript() })
	if text == "" {
		c.Status(http.StatusNoContent)
		return
	}
	if c.Query("download") != "" {
		c.Header("Content-Disposition", `attachment; filename="`+s.fileName+`"`)
	}
	c.String(http.StatusOK, "%s\n", text)
}

// POST /api/format: formats a draft without touching the buffer
func (s *Server) formatDraft(c *gin.Context) {
	var d rules.RuleDraft
	if err := c.ShouldBindJSON(&d); err != nil {
		s.fail(c, errors.Wrap(err, errors.ErrInvalidInput, "invalid draft"))
		return
	}

	entry, err := rules.FormatEntry(d)
	if err != nil {
		s.fail(c, err)
		return
	}
	text := entry.Text()
	c.JSON(http.StatusOK, formatDTO{Entry: entry, Text: text, Lines: highlight.Highlight(text)})
}
