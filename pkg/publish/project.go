package publish

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/mavenpub/pkg/artifact"
	"github.com/matzehuels/mavenpub/pkg/errors"
	"github.com/matzehuels/mavenpub/pkg/observability"
	"github.com/matzehuels/mavenpub/pkg/pom"
	"github.com/matzehuels/mavenpub/pkg/repository"
)

// Hook runs during Finalize, after all declarations are settled.
type Hook func(ctx context.Context, p *Project) error

// Project is the build-wide state that publications are declared against.
// It lives for one build invocation and is not safe for concurrent use.
type Project struct {
	Group   string
	Name    string // Default artifact id
	Version string

	Artifacts *artifact.Registry
	Logger    *log.Logger

	publications []*Publication
	byName       map[string]*Publication
	repositories []*repository.Repository
	hooks        []Hook
	setup        bool
	finalized    bool
	keyID        string
}

// NewProject creates a project in its declaration phase.
// If logger is nil, log.Default() is used.
func NewProject(group, name, version string, logger *log.Logger) *Project {
	if logger == nil {
		logger = log.Default()
	}
	return &Project{
		Group:     group,
		Name:      name,
		Version:   version,
		Artifacts: artifact.NewRegistry(),
		Logger:    logger,
		byName:    make(map[string]*Publication),
	}
}

// Declare records a publication named name. Its coordinate defaults to the
// project's group, name and version; callers may adjust it until Finalize.
func (p *Project) Declare(name string) (*Publication, error) {
	if p.finalized {
		return nil, errors.New(errors.ErrCodeFinalized, "cannot declare %q: project is finalized", name)
	}
	if err := errors.Required("publication name", name); err != nil {
		return nil, err
	}
	if _, ok := p.byName[name]; ok {
		return nil, errors.New(errors.ErrCodeAlreadyExists, "publication %q is already declared", name)
	}
	pub := &Publication{
		Name: name,
		Coordinate: pom.Coordinate{
			GroupID:    p.Group,
			ArtifactID: p.Name,
			Version:    p.Version,
		},
	}
	p.byName[name] = pub
	p.publications = append(p.publications, pub)
	return pub, nil
}

// Publication returns the publication declared under name.
func (p *Project) Publication(name string) (*Publication, bool) {
	pub, ok := p.byName[name]
	return pub, ok
}

// Publications returns all declared publications in declaration order.
func (p *Project) Publications() []*Publication {
	out := make([]*Publication, len(p.publications))
	copy(out, p.publications)
	return out
}

// Repositories returns the registered destination repositories.
func (p *Project) Repositories() []*repository.Repository {
	out := make([]*repository.Repository, len(p.repositories))
	copy(out, p.repositories)
	return out
}

// AddRepository registers a destination repository.
func (p *Project) AddRepository(r *repository.Repository) {
	p.repositories = append(p.repositories, r)
}

// AfterEvaluate registers h to run during Finalize. Hooks run in
// registration order.
func (p *Project) AfterEvaluate(h Hook) error {
	if p.finalized {
		return errors.New(errors.ErrCodeFinalized, "cannot register hook: project is finalized")
	}
	p.hooks = append(p.hooks, h)
	return nil
}

// Finalized reports whether Finalize has run.
func (p *Project) Finalized() bool { return p.finalized }

// Result is the settled outcome of a publish run.
type Result struct {
	RunID        string
	Publications []*Publication
	Repository   *repository.Repository // nil if no repository was registered
	Signed       bool
	KeyID        string
	Duration     time.Duration
}

// Snapshot reports whether the run targets the snapshot repository.
func (r *Result) Snapshot() bool {
	if len(r.Publications) == 0 {
		return false
	}
	return repository.IsSnapshot(r.Publications[0].Coordinate.Version)
}

// Finalize validates the declared coordinates, runs every registered hook
// once and returns the settled result. It can only be called once.
func (p *Project) Finalize(ctx context.Context) (*Result, error) {
	if p.finalized {
		return nil, errors.New(errors.ErrCodeFinalized, "project is already finalized")
	}
	p.finalized = true

	start := time.Now()
	runID := uuid.NewString()
	hooks := observability.Publish()
	hooks.OnFinalizeStart(ctx, runID, len(p.publications))

	res, err := p.finalize(ctx, runID)
	duration := time.Since(start)
	hooks.OnFinalizeComplete(ctx, runID, duration, err)
	if err != nil {
		return nil, err
	}
	res.Duration = duration
	return res, nil
}

func (p *Project) finalize(ctx context.Context, runID string) (*Result, error) {
	for _, pub := range p.publications {
		if err := pub.Coordinate.Validate(); err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "publication %s", pub.Name)
		}
	}

	p.Logger.Debug("finalizing project", "run", runID, "publications", len(p.publications), "hooks", len(p.hooks))
	for _, h := range p.hooks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := h(ctx, p); err != nil {
			return nil, err
		}
	}

	res := &Result{
		RunID:        runID,
		Publications: p.Publications(),
		KeyID:        p.keyID,
	}
	if len(p.repositories) > 0 {
		res.Repository = p.repositories[0]
	}
	for _, pub := range p.publications {
		if pub.Signed() {
			res.Signed = true
			break
		}
	}
	return res, nil
}
