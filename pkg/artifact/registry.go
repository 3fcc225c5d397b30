package artifact

import (
	"github.com/matzehuels/mavenpub/pkg/errors"
)

// Registry holds the artifacts declared during one build invocation,
// keyed by name. It is not safe for concurrent use; a build is a single pass.
type Registry struct {
	byName map[string]*Artifact
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Artifact)}
}

// Register adds a under a.Name. It fails with ALREADY_EXISTS if the name
// is taken; use GetOrCreate when another collaborator may have declared it.
func (r *Registry) Register(a *Artifact) error {
	if a == nil {
		return errors.New(errors.ErrCodeInvalidInput, "artifact cannot be nil")
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if _, ok := r.byName[a.Name]; ok {
		return errors.New(errors.ErrCodeAlreadyExists, "artifact %q is already registered", a.Name)
	}
	r.byName[a.Name] = a
	r.order = append(r.order, a.Name)
	return nil
}

// Named returns the artifact registered under name.
func (r *Registry) Named(name string) (*Artifact, bool) {
	a, ok := r.byName[name]
	return a, ok
}

// GetOrCreate returns the artifact registered under name. If none exists,
// create is called once, its result is registered under name and returned.
// The factory is skipped entirely when name is already registered, so any
// overrides it would apply are not applied.
func (r *Registry) GetOrCreate(name string, create func() *Artifact) *Artifact {
	if a, ok := r.byName[name]; ok {
		return a
	}
	a := create()
	if a == nil {
		a = &Artifact{}
	}
	a.Name = name
	r.byName[name] = a
	r.order = append(r.order, name)
	return a
}

// All returns the registered artifacts in registration order.
func (r *Registry) All() []*Artifact {
	out := make([]*Artifact, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Len returns the number of registered artifacts.
func (r *Registry) Len() int { return len(r.order) }

// JavadocJar returns the "javadocJar" artifact, creating an empty javadoc
// archive descriptor if no collaborator declared one.
func JavadocJar(r *Registry) *Artifact {
	return r.GetOrCreate(JavadocTask, func() *Artifact {
		return &Artifact{Classifier: ClassifierJavadoc}
	})
}

// SourcesJar returns the "sourcesJar" artifact, creating it if absent.
func SourcesJar(r *Registry) *Artifact {
	return r.GetOrCreate(SourcesTask, func() *Artifact {
		return &Artifact{Classifier: ClassifierSources}
	})
}
