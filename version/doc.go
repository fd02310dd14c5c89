// Package version exposes the build metadata of the jobly binary.
//
// The variables are set at build time with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/jarredbaird/express-jobly/version.Version=1.2.3 \
//	  -X github.com/jarredbaird/express-jobly/version.Revision=abc123 \
//	  -X 'github.com/jarredbaird/express-jobly/version.BuiltAt=$(date)'" ./cmd/jobly
//
// When they are left unset the revision and build time fall back to the VCS
// stamp the Go toolchain embeds in the binary.
package version
