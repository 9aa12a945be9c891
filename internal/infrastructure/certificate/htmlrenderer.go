package certificate

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"certhub/internal/domain/certificate"
	"certhub/internal/shared/logger"
)

// RenderCapability turns rendered certificate HTML into PDF bytes. The
// concrete implementation wraps an external converter; tests use a fake.
type RenderCapability interface {
	RenderPDF(ctx context.Context, html []byte) ([]byte, error)
}

// HTMLRenderer fills one of the allow-listed HTML templates with sanitized
// field values, converts the result to PDF, and persists it through the
// artifact store. Template files are resolved once per render from the
// template directory; an unknown kind never reaches the filesystem.
type HTMLRenderer struct {
	templateDir string
	pdf         RenderCapability
	store       *FSArtifactStore
	timeout     time.Duration
	sanitizer   *bluemonday.Policy
	logger      logger.Interface
}

func NewHTMLRenderer(
	templateDir string,
	pdf RenderCapability,
	store *FSArtifactStore,
	timeout time.Duration,
	log logger.Interface,
) *HTMLRenderer {
	return &HTMLRenderer{
		templateDir: templateDir,
		pdf:         pdf,
		store:       store,
		timeout:     timeout,
		sanitizer:   bluemonday.StrictPolicy(),
		logger:      log,
	}
}

func (r *HTMLRenderer) Render(
	ctx context.Context,
	kind certificate.TemplateKind,
	publicID string,
	fields certificate.Fields,
) (*certificate.Artifact, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown certificate template: %s", kind)
	}

	tmplPath := filepath.Join(r.templateDir, string(kind)+".html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate template: %w", err)
	}

	data := map[string]string{
		"RecipientName":  r.sanitizer.Sanitize(fields.RecipientName),
		"SubjectName":    r.sanitizer.Sanitize(fields.SubjectName),
		"InstructorName": r.sanitizer.Sanitize(fields.InstructorName),
		"CompletionDate": r.sanitizer.Sanitize(fields.CompletionDate),
		"PublicID":       r.sanitizer.Sanitize(fields.PublicID),
		"CompanyName":    r.sanitizer.Sanitize(fields.CompanyName),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute certificate template: %w", err)
	}

	renderCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	pdfBytes, err := r.pdf.RenderPDF(renderCtx, buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to render certificate pdf: %w", err)
	}

	filename, err := r.store.Store(kind, publicID, pdfBytes)
	if err != nil {
		return nil, err
	}

	// Token format is the 32 hex chars of a v4 UUID, matching what the
	// download endpoint expects.
	token := strings.ReplaceAll(uuid.NewString(), "-", "")

	r.logger.Infow("certificate rendered",
		"kind", kind,
		"public_id", publicID,
		"artifact", filename)

	return &certificate.Artifact{
		Filename:    filename,
		AccessToken: token,
	}, nil
}
