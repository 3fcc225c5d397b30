// Package pom assembles the metadata section of a Maven POM.
//
// # Overview
//
// [Build] turns template inputs (artifact id, project URL, description,
// developer identity, license, git URL) into a [Metadata] value. Most fields
// are straight copies; the exceptions are:
//
//   - Name defaults to the artifact id when no name was set elsewhere.
//   - The git URL defaults to the project URL with ".git" appended.
//   - The license defaults to Apache 2.0.
//   - The issue tracker is only present when the git URL starts with
//     "https://github.com". Its URL is derived from the git URL by dropping a
//     trailing ".git" and appending "/issues"; it is never supplied directly.
//
// Only the artifact id and project URL are required. Everything else has a
// default or is omitted.
//
// # Rendering
//
// [Marshal] renders a complete POM 4.0.0 document for a coordinate and its
// metadata:
//
//	meta, err := pom.Build(pom.Inputs{ArtifactID: "saga", URL: "https://github.com/nomisrev/Saga"})
//	data, err := pom.Marshal(pom.Coordinate{GroupID: "io.github.nomisrev", ArtifactID: "saga", Version: "0.1.4"}, meta)
package pom
