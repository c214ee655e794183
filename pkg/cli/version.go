package cli

// Version is the release version of vseg. Overridden at build time via
// -ldflags "-X github.com/Fepozopo/vseg/pkg/cli.Version=x.y.z".
var Version = "0.1.0"
