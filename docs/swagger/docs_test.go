package swagger

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestDocIsRegisteredAndValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc() error = %v", err)
	}

	var parsed struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}
	if parsed.BasePath != "/api" {
		t.Errorf("basePath = %q, want /api", parsed.BasePath)
	}
	if _, ok := parsed.Paths["/ticket"]["post"]; !ok {
		t.Error("missing POST /ticket operation")
	}
}
