package templates

import (
	"bytes"
	"fmt"

	"github.com/toyz/scaffold/internal/errors"
	"github.com/toyz/scaffold/internal/models"
)

// Render executes one template of the set for the given component
func (ts *TemplateSet) Render(fileName string, component models.Component) (string, error) {
	tmpl, ok := ts.Template(fileName)
	if !ok {
		return "", errors.NewValidationError("file", fileName,
			fmt.Sprintf("must be one of %v", FileNames()))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, component); err != nil {
		return "", errors.WrapTemplateError(fileName, "execute", err)
	}
	return buf.String(), nil
}

// RenderAll builds every document of the set in write order
func (ts *TemplateSet) RenderAll(component models.Component) ([]models.Document, error) {
	docs := make([]models.Document, 0, len(ts.templates))
	for _, name := range FileNames() {
		content, err := ts.Render(name, component)
		if err != nil {
			return nil, err
		}
		docs = append(docs, models.Document{FileName: name, Content: content})
	}
	return docs, nil
}
