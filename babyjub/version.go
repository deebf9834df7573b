package babyjub

import "github.com/blang/semver/v4"

// versionString is parsed and validated at package init so a malformed
// literal fails fast instead of surfacing as a confusing comparison bug in
// an embedding application.
const versionString = "0.1.0"

// Version is this library's semantic version, exposed so embedding
// applications can assert a minimum compatible release.
var Version = semver.MustParse(versionString)
