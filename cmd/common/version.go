package common

import (
	"fmt"
	"runtime"
)

const (
	// Application information
	ProjectName    = "genepool"
	ProjectVersion = "1.0.0"
	ProjectRepo    = "github.com/evolab/genepool"

	// Build information - these would normally be set during build via -ldflags
	BuildCommit = "dev"
)

// PrintVersion prints version information in a formatted way
func PrintVersion(appName string) {
	fmt.Printf("%s v%s\n", appName, ProjectVersion)
	fmt.Printf("Build: %s\n", BuildCommit)
	fmt.Printf("Go: %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
