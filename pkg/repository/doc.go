// Package repository chooses the destination Maven repository for a
// publish run.
//
// # Routing
//
// [Resolve] is the single routing decision: a version ending in the literal
// suffix "SNAPSHOT" goes to the snapshot repository, everything else to the
// release repository. The match is exact and case-sensitive:
//
//	repository.Resolve("1.0.0-SNAPSHOT", release, snapshot) // snapshot
//	repository.Resolve("1.0.0.SNAPSHOT", release, snapshot) // snapshot
//	repository.Resolve("1.0.0-snapshot", release, snapshot) // release
//	repository.Resolve("1.0.0-SNAPSHOTX", release, snapshot) // release
//
// # Credentials
//
// Credentials are optional. [CredentialsFrom] yields a value only when both
// username and password are present.
package repository
