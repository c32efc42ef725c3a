// Package repo initializes a git repository in a generated project.
package repo

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/nullaframework/create-nulla/internal/output"
)

// Outcome reports what Init did.
type Outcome string

const (
	// Initialized means a new repository was created in the project.
	Initialized Outcome = "initialized"

	// InsideRepository means the project already lives in a work tree and was left alone.
	InsideRepository Outcome = "inside-repository"
)

// Init creates a git repository at projectPath unless projectPath already
// belongs to an enclosing work tree.
func Init(projectPath string) (Outcome, error) {
	parent := filepath.Dir(projectPath)
	_, err := git.PlainOpenWithOptions(parent, &git.PlainOpenOptions{DetectDotGit: true})
	switch {
	case err == nil:
		output.Debug("project is inside a git work tree, skipping init", "path", projectPath)
		return InsideRepository, nil
	case !errors.Is(err, git.ErrRepositoryNotExists):
		return "", fmt.Errorf("inspecting enclosing repository: %w", err)
	}

	if _, err := git.PlainInit(projectPath, false); err != nil {
		return "", fmt.Errorf("initializing git repository: %w", err)
	}
	output.Debug("git repository initialized", "path", projectPath)
	return Initialized, nil
}
