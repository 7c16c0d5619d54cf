package docs

import (
	"fmt"
	"sync"

	"github.com/swaggo/swag"
	"gopkg.in/yaml.v3"
)

var infoMu sync.RWMutex

// SetInfo replaces the document's title, description and version. The
// document is process-wide, so the last call wins for every server.
func SetInfo(title, description, version string) {
	infoMu.Lock()
	defer infoMu.Unlock()

	SwaggerInfo.Title = title
	SwaggerInfo.Description = description
	SwaggerInfo.Version = version
}

// JSON renders the registered document
func JSON() ([]byte, error) {
	infoMu.RLock()
	defer infoMu.RUnlock()

	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return []byte(doc), nil
}

// YAML renders the registered document as block-style YAML, keeping key order
func YAML() ([]byte, error) {
	doc, err := JSON()
	if err != nil {
		return nil, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(doc, &node); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	resetStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return out, nil
}

// resetStyle drops the flow and quoting styles inherited from JSON
func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		resetStyle(child)
	}
}
