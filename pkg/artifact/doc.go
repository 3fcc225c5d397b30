// Package artifact describes the archives attached to a publication and the
// build-wide registry they are declared in.
//
// # Registry
//
// A [Registry] maps stable task names ("javadocJar", "sourcesJar") to
// [Artifact] descriptors. [Registry.Register] is the raw single-shot
// primitive and fails on a duplicate name. [Registry.GetOrCreate] is the
// idempotent accessor: it returns the existing descriptor when one is
// registered and only calls the factory otherwise.
//
//	reg := artifact.NewRegistry()
//	doc := artifact.JavadocJar(reg)  // created
//	same := artifact.JavadocJar(reg) // reused, same pointer
//
// Several collaborators can therefore declare the javadoc archive without
// failing the build.
//
// # Archives
//
// [WriteJar] packs a directory into a jar so that a declared archive has
// bytes on disk. Artifacts without a Path are still valid descriptors; their
// contents are owned by whoever produces them.
package artifact
