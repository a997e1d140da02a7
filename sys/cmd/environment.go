package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Dependency is an external executable together with
// the flag making it print its version and exit and
// the package name it gets installed with
type Dependency struct {
	Name        string
	VersionFlag string
	Package     string
}

type MissingDependencyError struct {
	Names []string
}

func (err *MissingDependencyError) Error() string {
	return "missing dependencies: " + strings.Join(err.Names, ", ")
}

// ValidateEnvironment probes every dependency and reports
// all of the ones that cannot be run at once
func ValidateEnvironment(ctx context.Context, runner Runner, dependencies ...Dependency) error {
	var missing []string
	for _, dependency := range dependencies {
		if err := runner.Probe(ctx, dependency.Name, dependency.VersionFlag); err != nil {
			log.Printf("[environment]\t%s: %s", dependency.Name, err)
			missing = append(missing, dependency.Name)
			continue
		}
		log.Printf("[environment]\t%s: found", dependency.Name)
	}

	if len(missing) > 0 {
		return &MissingDependencyError{Names: missing}
	}
	return nil
}

func InstallHint(goos string, names ...string) string {
	packages := strings.Join(names, " ")
	switch goos {
	case "darwin":
		return "brew install " + packages
	case "windows":
		return "scoop install " + packages
	case "linux":
		return fmt.Sprintf("use your distribution package manager, e.g. sudo apt install %s", packages)
	default:
		return "install " + packages + " and make sure they are in PATH"
	}
}
