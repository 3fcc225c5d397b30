// Package optional provides a small generic Option type and the Zip combinator
// used to gate a capability on two independent optional inputs.
//
// # Overview
//
// Optional inputs (environment variables, config entries) are modelled as
// [Option] values instead of pointers or empty-string checks. A capability
// that needs two inputs is built with [Zip], which only calls the constructor
// when both inputs are present:
//
//	key := optional.FromEnv(os.LookupEnv, "SIGNINGKEY")
//	pass := optional.FromEnv(os.LookupEnv, "SIGNINGPASSWORD")
//	material := optional.Zip(key, pass, func(k, p string) optional.Option[Material] {
//	    return optional.Some(Material{Key: k, Passphrase: p})
//	})
//
// The result is either None or a fully populated value; there is no
// half-configured state.
package optional
