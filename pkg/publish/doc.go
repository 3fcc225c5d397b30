// Package publish assembles Maven publications and prepares them for an
// external upload step.
//
// # Two phases
//
// A [Project] goes through a declaration phase and a single finalize phase:
//
//	p := publish.NewProject("io.github.nomisrev", "saga", "0.1.4-SNAPSHOT", logger)
//	pub, _ := p.Declare("mavenJava")                 // record intent
//	_ = publish.Setup(p, settings)                    // registers a deferred hook
//	result, err := p.Finalize(ctx)                    // runs hooks once, on the settled set
//
// Declarations only record intent. [Setup] does not touch publications
// directly: it registers an after-evaluate hook that runs inside
// [Project.Finalize], when the set of publications and the version are fixed.
// Finalize can be called once; later calls and later declarations fail with
// FINALIZED.
//
// # What Setup does
//
// For every declared publication (zero, one or many, treated alike):
//   - attaches the "javadocJar" artifact, created only if no one declared it
//   - builds and attaches POM metadata from [Settings]
//
// Then, once per run:
//   - registers exactly one repository, chosen from the version string
//   - if both signing inputs are present, signs every publication in the project
//
// Missing signing inputs disable signing; they are logged, not returned.
//
// # Output
//
// [Result] carries the finalized publications. [WriteBundle] writes their
// POM files, signatures and a publication.json manifest for the uploader.
package publish
