package persist

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"dockyard/internal/jsonutil"
)

// codec converts layout documents to and from bytes.
type codec interface {
	encode(doc document) ([]byte, error)
	decode(data []byte) (document, error)
	name() string
}

type jsonCodec struct{}

func (jsonCodec) name() string { return "json" }

func (jsonCodec) encode(doc document) ([]byte, error) {
	return jsonutil.MarshalPretty(doc, "encode layout")
}

func (jsonCodec) decode(data []byte) (document, error) {
	var doc document
	err := jsonutil.UnmarshalStrict(data, &doc, "decode layout")
	return doc, err
}

type yamlCodec struct{}

func (yamlCodec) name() string { return "yaml" }

func (yamlCodec) encode(doc document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return data, nil
}

func (yamlCodec) decode(data []byte) (document, error) {
	var doc document
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.Strict()); err != nil {
		return document{}, fmt.Errorf("decode layout: %w", err)
	}
	return doc, nil
}

// codecFor picks the codec from the file extension. Anything that is not
// YAML is treated as JSON.
func codecFor(path string) codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	default:
		return jsonCodec{}
	}
}
