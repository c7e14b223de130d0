package version

// Version can be overridden at build time:
//
//	go build -ldflags "-X fakit/internal/version.Version=v1.2.3" ./...
var Version = "0.2.0"
