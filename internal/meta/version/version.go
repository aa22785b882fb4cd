package version

// Version is replaced at build time:
//
//	go build -ldflags "-X github.com/artuross/exprcalc/internal/meta/version.Version=v1.2.3"
var Version = "dev"
