package generator

import "github.com/toyz/scaffold/internal/models"

// ScaffoldGenerator defines the interface for producing the per-component document skeletons
type ScaffoldGenerator interface {
	Generate(opts Options) (*models.Result, error)
}
