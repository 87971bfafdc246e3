package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"playermove/internal/loader/parser"
	"playermove/internal/loader/schema"
	"playermove/internal/loader/validator"
)

type YamlLoader struct {
	File  string
	Scene schema.Scene
}

func NewYamlLoader(fileName string) *YamlLoader {
	return &YamlLoader{
		File: fileName,
	}
}

func (l *YamlLoader) Load() error {
	file, err := os.Open(l.File)
	if err != nil {
		return fmt.Errorf("open scene: %w", err)
	}
	defer func() { _ = file.Close() }()

	scene, err := Read(bufio.NewReaderSize(file, 16*1024))
	if err != nil {
		return fmt.Errorf("%s: %w", l.File, err)
	}
	scene.Source = l.File
	l.Scene = scene
	return nil
}

func (l *YamlLoader) GetScene() schema.Scene {
	return l.Scene
}

// Read parses and validates a scene from r.
func Read(r io.Reader) (schema.Scene, error) {
	scene, err := parser.NewYamlParser().Parse(r)
	if err != nil {
		return schema.Scene{}, fmt.Errorf("invalid scene: %w", err)
	}
	if err := validator.NewYamlValidator().ValidateScene(&scene); err != nil {
		return schema.Scene{}, fmt.Errorf("invalid scene: %w", err)
	}
	return scene, nil
}
