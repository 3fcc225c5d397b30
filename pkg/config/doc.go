// Package config loads the mavenpub project file and the publishing
// secrets from the environment.
//
// The project file is mavenpub.toml, mavenpub.yaml or mavenpub.yml. It holds
// the constants of a project: coordinates, descriptive metadata, developer,
// license, destination repositories and the publications to declare.
//
//	group = "io.github.nomisrev"
//	artifact = "saga"
//	version = "0.1.4-SNAPSHOT"
//	url = "https://github.com/nomisRev/kotlinx-coroutines-saga"
//
//	[developer]
//	id = "nomisRev"
//	name = "Simon Vergauwen"
//
// Secrets never live in the file. [LoadEnv] reads SONATYPE_USER,
// SONATYPE_PWD, SIGNINGKEY and SIGNINGPASSWORD; an unset or empty variable
// is simply absent.
package config
