package parser

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"playermove/internal/loader/schema"
)

type FieldType struct {
	Required bool
}

type parseState struct {
	player string
	line   int
}

var (
	SceneFields = map[string]FieldType{
		"fixed_delta_time": {Required: false},
		"ticks":            {Required: false},
		"log_every":        {Required: false},
		"camera":           {Required: false},
		"players":          {Required: true},
	}
	CameraFields = map[string]FieldType{
		"orthographic_size": {Required: true},
		"aspect":            {Required: true},
	}
	PlayerFields = map[string]FieldType{
		"name":   {Required: true},
		"speed":  {Required: false},
		"start":  {Required: false},
		"camera": {Required: false},
		"script": {Required: false},
	}
	ScriptFields = map[string]FieldType{
		"tick": {Required: true},
		"move": {Required: true},
	}
	VectorFields = map[string]FieldType{
		"x": {Required: true},
		"y": {Required: true},
	}
)

var SceneSections = map[string]map[string]FieldType{
	"scene":  SceneFields,
	"camera": CameraFields,
	"player": PlayerFields,
	"script": ScriptFields,
	"vector": VectorFields,
}

type YamlParser struct {
}

func NewYamlParser() *YamlParser {
	return &YamlParser{}
}

// Parse reads the first YAML document from r. Missing optional fields take
// the defaults from schema.DefaultScene and schema.DefaultSpeed.
func (p *YamlParser) Parse(r io.Reader) (schema.Scene, error) {
	var state parseState
	var doc yaml.Node

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return schema.Scene{}, &formatError{what: "empty document", line: 0}
		}
		return schema.Scene{}, fmt.Errorf("%w: %w", ErrInvalidYamlFormat, err)
	}

	keys, err := p.section("scene", resolve(&doc), &state)
	if err != nil {
		return schema.Scene{}, err
	}

	scene := schema.DefaultScene()
	if n, ok := keys["fixed_delta_time"]; ok {
		if scene.FixedDeltaTime, err = decodeScalar[float64](n, "scene", "fixed_delta_time", "number", &state); err != nil {
			return schema.Scene{}, err
		}
	}
	if n, ok := keys["ticks"]; ok {
		if scene.Ticks, err = decodeScalar[int](n, "scene", "ticks", "integer", &state); err != nil {
			return schema.Scene{}, err
		}
	}
	if n, ok := keys["log_every"]; ok {
		if scene.LogEvery, err = decodeScalar[int](n, "scene", "log_every", "integer", &state); err != nil {
			return schema.Scene{}, err
		}
	}
	if n, ok := keys["camera"]; ok {
		if scene.Camera, err = p.ParseCamera(n, &state); err != nil {
			return schema.Scene{}, err
		}
	}

	players := resolve(keys["players"])
	if players.Kind != yaml.SequenceNode {
		return schema.Scene{}, &fieldTypeError{section: "scene", field: "players", validType: "sequence", line: players.Line}
	}

	seen := map[string]struct{}{}
	for _, node := range players.Content {
		player, err := p.ParsePlayer(node, &state)
		if err != nil {
			return schema.Scene{}, err
		}
		if _, exists := seen[player.Name]; exists {
			return schema.Scene{}, &duplicateNameError{name: player.Name, line: state.line}
		}
		seen[player.Name] = struct{}{}
		scene.Players = append(scene.Players, player)
	}

	return scene, nil
}

func (p *YamlParser) ParsePlayer(n *yaml.Node, state *parseState) (schema.Player, error) {
	n = resolve(n)
	state.player = ""
	state.line = n.Line

	if n.Kind == yaml.MappingNode {
		// Name first, so later errors can say which player they belong to.
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == "name" {
				state.player = resolve(n.Content[i+1]).Value
				state.line = n.Content[i+1].Line
			}
		}
	}

	keys, err := p.section("player", n, state)
	if err != nil {
		return schema.Player{}, err
	}

	player := schema.Player{Speed: schema.DefaultSpeed}
	if player.Name, err = decodeScalar[string](keys["name"], "player", "name", "string", state); err != nil {
		return schema.Player{}, err
	}
	if node, ok := keys["speed"]; ok {
		if player.Speed, err = decodeScalar[float64](node, "player", "speed", "number", state); err != nil {
			return schema.Player{}, err
		}
	}
	if node, ok := keys["start"]; ok {
		if player.Start, err = p.ParseVec(node, "player", "start", state); err != nil {
			return schema.Player{}, err
		}
	}
	if node, ok := keys["camera"]; ok {
		if player.Camera, err = p.ParseCamera(node, state); err != nil {
			return schema.Player{}, err
		}
	}
	if node, ok := keys["script"]; ok {
		if player.Script, err = p.ParseScript(node, state); err != nil {
			return schema.Player{}, err
		}
	}

	return player, nil
}

func (p *YamlParser) ParseCamera(n *yaml.Node, state *parseState) (*schema.Camera, error) {
	keys, err := p.section("camera", resolve(n), state)
	if err != nil {
		return nil, err
	}
	var cam schema.Camera
	if cam.OrthographicSize, err = decodeScalar[float64](keys["orthographic_size"], "camera", "orthographic_size", "number", state); err != nil {
		return nil, err
	}
	if cam.Aspect, err = decodeScalar[float64](keys["aspect"], "camera", "aspect", "number", state); err != nil {
		return nil, err
	}
	return &cam, nil
}

func (p *YamlParser) ParseScript(n *yaml.Node, state *parseState) ([]schema.ScriptEvent, error) {
	n = resolve(n)
	if n.Kind != yaml.SequenceNode {
		return nil, &fieldTypeError{section: "player", player: state.player, field: "script", validType: "sequence", line: n.Line}
	}

	events := make([]schema.ScriptEvent, 0, len(n.Content))
	for _, item := range n.Content {
		keys, err := p.section("script", resolve(item), state)
		if err != nil {
			return nil, err
		}
		var ev schema.ScriptEvent
		if ev.Tick, err = decodeScalar[int64](keys["tick"], "script", "tick", "integer", state); err != nil {
			return nil, err
		}
		if ev.Move, err = p.ParseVec(keys["move"], "script", "move", state); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// ParseVec accepts [x, y] or {x: .., y: ..}.
func (p *YamlParser) ParseVec(n *yaml.Node, section, field string, state *parseState) (schema.Vec2, error) {
	const validType = "[x, y] or {x, y}"
	n = resolve(n)

	switch n.Kind {
	case yaml.SequenceNode:
		if len(n.Content) != 2 {
			return schema.Vec2{}, &fieldTypeError{section: section, player: state.player, field: field, validType: validType, line: n.Line,
				reason: fmt.Errorf("got %d elements", len(n.Content))}
		}
		x, err := decodeScalar[float64](n.Content[0], section, field, validType, state)
		if err != nil {
			return schema.Vec2{}, err
		}
		y, err := decodeScalar[float64](n.Content[1], section, field, validType, state)
		if err != nil {
			return schema.Vec2{}, err
		}
		return schema.Vec2{X: x, Y: y}, nil

	case yaml.MappingNode:
		keys, err := p.section("vector", n, state)
		if err != nil {
			return schema.Vec2{}, err
		}
		x, err := decodeScalar[float64](keys["x"], section, field+".x", "number", state)
		if err != nil {
			return schema.Vec2{}, err
		}
		y, err := decodeScalar[float64](keys["y"], section, field+".y", "number", state)
		if err != nil {
			return schema.Vec2{}, err
		}
		return schema.Vec2{X: x, Y: y}, nil

	default:
		return schema.Vec2{}, &fieldTypeError{section: section, player: state.player, field: field, validType: validType, line: n.Line}
	}
}

// section checks n is a mapping whose keys are all known to section and
// which carries every required key, and returns its values by key.
func (p *YamlParser) section(section string, n *yaml.Node, state *parseState) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, &formatError{what: fmt.Sprintf("%s must be a mapping, got %s", location(section, state.player), kindName(n)), line: n.Line}
	}

	keys := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		if err := isValidKey(k.Value, section); err != nil {
			return nil, &unknownFieldError{section: section, player: state.player, field: k.Value, line: k.Line}
		}
		if _, dup := keys[k.Value]; dup {
			return nil, &formatError{what: fmt.Sprintf("duplicate %s key %q", section, k.Value), line: k.Line}
		}
		keys[k.Value] = n.Content[i+1]
	}

	if key, err := checkMissingRequiredKey(section, keys); err != nil {
		return nil, &requiredFieldError{section: section, player: state.player, field: key, line: n.Line}
	}
	return keys, nil
}
