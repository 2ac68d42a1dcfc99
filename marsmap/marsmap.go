package marsmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathseek/astar"
	"github.com/katalvlaran/pathseek/graph"
)

var (
	// ErrMalformedLine is returned by Parse for a line without a colon or
	// with an empty vertex name.
	ErrMalformedLine = errors.New("marsmap: malformed line")

	// ErrBadCoord is returned by ParseCoord for IDs that are not "x,y".
	ErrBadCoord = errors.New("marsmap: malformed coordinate")
)

// Coord is a grid cell.
type Coord struct {
	X, Y int
}

// ID formats c as a vertex ID.
func (c Coord) ID() string { return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) }

// ParseCoord parses "x,y".
func ParseCoord(id string) (Coord, error) {
	xs, ys, ok := strings.Cut(id, ",")
	if !ok {
		return Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, id)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q: %v", ErrBadCoord, id, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coord{}, fmt.Errorf("%w: %q: %v", ErrBadCoord, id, err)
	}

	return Coord{X: x, Y: y}, nil
}

// Parse reads a map from r. The returned graph is undirected with unit
// weights. Vertex IDs are taken verbatim; they are not required to be
// coordinates.
func Parse(r io.Reader) (*graph.Graph, error) {
	g := graph.New()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		name, rest, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}
		if err := g.AddVertex(name); err != nil {
			return nil, fmt.Errorf("marsmap: line %d: %w", lineNo, err)
		}
		for _, nb := range strings.Fields(rest) {
			if err := g.AddEdge(name, nb, 1); err != nil {
				return nil, fmt.Errorf("marsmap: line %d: %w", lineNo, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("marsmap: read: %w", err)
	}

	return g, nil
}

// Load opens path and parses it.
func Load(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("marsmap: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// StraightLine returns the Euclidean distance heuristic to goal.
// Vertices whose IDs are not coordinates score 0.
func StraightLine(goal Coord) astar.Heuristic {
	return func(id string) float64 {
		c, err := ParseCoord(id)
		if err != nil {
			return 0
		}

		return math.Hypot(float64(c.X-goal.X), float64(c.Y-goal.Y))
	}
}

// Manhattan returns the |dx|+|dy| heuristic to goal.
// Vertices whose IDs are not coordinates score 0.
func Manhattan(goal Coord) astar.Heuristic {
	return func(id string) float64 {
		c, err := ParseCoord(id)
		if err != nil {
			return 0
		}

		return math.Abs(float64(c.X-goal.X)) + math.Abs(float64(c.Y-goal.Y))
	}
}

// Goal returns a predicate matching goal's vertex ID.
func Goal(goal Coord) func(id string) bool {
	want := goal.ID()

	return func(id string) bool { return id == want }
}
