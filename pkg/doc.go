// Package pkg provides the libraries behind mavenpub.
//
// # Overview
//
// mavenpub turns project constants, a version string and optional secrets
// into a complete Maven publication: coordinates, auxiliary archives, POM
// metadata, one destination repository and, when both signing inputs are
// present, PGP signatures for every publication. The pkg directory is
// organized as follows:
//
//  1. [optional] - Option type and the Zip combinator for paired inputs
//  2. [artifact] - Idempotent artifact registry and jar assembly
//  3. [repository] - Release or snapshot repository selection
//  4. [pom] - POM metadata assembly and XML rendering
//  5. [signing] - Detached armored PGP signatures
//  6. [publish] - Two-phase orchestration and bundle output
//  7. [config] - Project file and environment loading
//
// # Architecture
//
// The typical data flow:
//
//	mavenpub.toml + environment
//	         ↓
//	    [config] package (project constants, optional secrets)
//	         ↓
//	    [publish] package (declare, Setup, Finalize)
//	         ↓
//	    [artifact], [pom], [repository], [signing]
//	         ↓
//	    bundle directory + publication.json
//
// # Quick Start
//
//	p := publish.NewProject("io.github.nomisrev", "saga", "0.1.4", logger)
//	_, _ = p.Declare("mavenJava")
//	_ = publish.Setup(p, settings)
//	res, err := p.Finalize(ctx)
//	if err != nil {
//	    return err
//	}
//	_, err = publish.WriteBundle("build/mavenpub", res)
//
// [optional]: github.com/matzehuels/mavenpub/pkg/optional
// [artifact]: github.com/matzehuels/mavenpub/pkg/artifact
// [repository]: github.com/matzehuels/mavenpub/pkg/repository
// [pom]: github.com/matzehuels/mavenpub/pkg/pom
// [signing]: github.com/matzehuels/mavenpub/pkg/signing
// [publish]: github.com/matzehuels/mavenpub/pkg/publish
// [config]: github.com/matzehuels/mavenpub/pkg/config
package pkg
