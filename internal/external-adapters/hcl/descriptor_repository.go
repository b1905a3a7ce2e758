package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ochairo/droidspec/internal/domain/interfaces/repositories"
)

// DefaultFileName is the descriptor file looked up in a module directory
const DefaultFileName = "app.hcl"

// DescriptorRepository implements repositories.DescriptorRepository using HCL files
type DescriptorRepository struct {
	fileName string
	builtin  bool
	parser   *DescriptorParser
}

// NewDescriptorRepository creates a repository reading fileName from each
// module directory. An empty fileName means DefaultFileName.
func NewDescriptorRepository(fileName string) *DescriptorRepository {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return &DescriptorRepository{
		fileName: fileName,
		parser:   NewDescriptorParser(),
	}
}

// NewBuiltinRepository creates a repository that always serves the embedded
// descriptor, whatever the module directory holds
func NewBuiltinRepository() *DescriptorRepository {
	return &DescriptorRepository{
		fileName: DefaultFileName,
		builtin:  true,
		parser:   NewDescriptorParser(),
	}
}

// GetDescriptor loads the descriptor of the module in moduleDir
func (r *DescriptorRepository) GetDescriptor(_ context.Context, moduleDir string) (repositories.DescriptorTemplate, error) {
	var (
		tmpl *Template
		err  error
	)
	if r.builtin {
		tmpl, err = r.parser.Parse(defaultDescriptor, "<builtin>/"+DefaultFileName)
	} else {
		tmpl, err = r.parseModule(moduleDir)
	}
	if err != nil {
		return nil, err
	}
	return tmpl, nil
}

func (r *DescriptorRepository) parseModule(moduleDir string) (*Template, error) {
	filePath := r.fileName
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(moduleDir, r.fileName)
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("descriptor not found: %s", filePath)
	}

	return r.parser.ParseFile(filePath)
}
