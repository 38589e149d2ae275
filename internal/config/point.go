package config

import (
	"fmt"

	"github.com/san-kum/amazeing/internal/maze"
	"gopkg.in/yaml.v3"
)

// Point is a maze coordinate that reads from YAML as either "x,y" or [x, y].
type Point maze.Coord

func ParsePoint(s string) (Point, error) {
	c, err := maze.ParseCoord(s)
	return Point(c), err
}

func (p Point) String() string { return maze.Coord(p).String() }

func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := ParsePoint(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*p = parsed
		return nil
	case yaml.SequenceNode:
		var xy []int
		if err := node.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: expected [x, y], got %d values", node.Line, len(xy))
		}
		*p = Point{X: xy[0], Y: xy[1]}
		return nil
	}
	return fmt.Errorf("line %d: expected \"x,y\" or [x, y]", node.Line)
}

func (p Point) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}
