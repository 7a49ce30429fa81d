package ports

import "go.trai.ch/libtarget/internal/core/domain"

// ProjectLoader defines the interface for loading the library project.
//
//go:generate go run go.uber.org/mock/mockgen -source=project_loader.go -destination=mocks/mock_project_loader.go -package=mocks
type ProjectLoader interface {
	// Load reads package.json and libtarget.yaml from the given working directory.
	// Both files are optional.
	Load(cwd string) (*domain.Project, error)
}
