package models

import (
	"strings"

	"github.com/toyz/scaffold/internal/utils"
)

// Component identifies the local UI unit being migrated and the names it
// goes by in the ZardUI library and the shadcn catalog
type Component struct {
	Name       string // local component directory name
	ZardUIName string // ZardUI component directory name
	ShadcnItem string // shadcn item / preview slug
}

// NewComponent trims the inputs, rejects an empty name and defaults any
// unset alias to the component name
func NewComponent(name, zarduiName, shadcnItem string) (Component, error) {
	name = strings.TrimSpace(name)
	if err := componentNameValidator().Validate(name); err != nil {
		return Component{}, err
	}

	// A blank alias falls back to the name instead of yielding "", which
	// would leave empty path segments in the generated links.
	return Component{
		Name:       name,
		ZardUIName: aliasOrDefault(zarduiName, name),
		ShadcnItem: aliasOrDefault(shadcnItem, name),
	}, nil
}

func componentNameValidator() *utils.ValidatorChain[string] {
	return utils.NewValidatorChain(utils.NotBlank("component")).
		WithHint("pass the local component directory name, e.g. --component button")
}

func aliasOrDefault(alias, fallback string) string {
	if trimmed := strings.TrimSpace(alias); trimmed != "" {
		return trimmed
	}
	return fallback
}

// PreviewRoute is the local preview route for the component
func (c Component) PreviewRoute() string {
	return "/preview?component=" + c.Name
}

// ReferenceURL is the shadcn catalog preview page for the component
func (c Component) ReferenceURL() string {
	return ShadcnPreviewBase + c.ShadcnItem + "-example"
}

// ShadcnPreviewBase is the prefix of every shadcn radix preview page
const ShadcnPreviewBase = "https://ui.shadcn.com/preview/radix/"
