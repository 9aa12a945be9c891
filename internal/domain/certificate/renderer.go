package certificate

import "context"

// TemplateKind selects which certificate layout a render uses. Only the
// kinds listed here are renderable; anything else must be refused before
// touching the template directory.
type TemplateKind string

const (
	TemplateCourse TemplateKind = "course"
	TemplateEvent  TemplateKind = "event"
)

// IsValid reports whether the kind is on the render allow-list.
func (k TemplateKind) IsValid() bool {
	return k == TemplateCourse || k == TemplateEvent
}

// Fields carries the values substituted into a certificate template.
type Fields struct {
	RecipientName  string
	SubjectName    string
	InstructorName string
	CompletionDate string
	PublicID       string
	CompanyName    string
}

// Artifact describes a rendered certificate stored on disk.
type Artifact struct {
	// Filename is the stored file name, relative to the artifact directory.
	Filename string
	// AccessToken gates downloads of this artifact.
	AccessToken string
}

// Renderer turns a template kind and field set into a stored artifact.
type Renderer interface {
	Render(ctx context.Context, kind TemplateKind, publicID string, fields Fields) (*Artifact, error)
}

// ArtifactStore resolves and removes stored artifacts.
type ArtifactStore interface {
	// Path returns the absolute path of a stored artifact.
	Path(filename string) (string, error)
	// Remove deletes a stored artifact. Removing a missing artifact is not
	// an error.
	Remove(filename string) error
}
