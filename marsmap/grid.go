package marsmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/katalvlaran/pathseek/graph"
)

var (
	// ErrEmptyGrid indicates a grid without rows or columns.
	ErrEmptyGrid = errors.New("marsmap: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("marsmap: all grid rows must have the same length")

	// ErrBadCell indicates a grid character other than Open or Blocked.
	ErrBadCell = errors.New("marsmap: unknown grid cell")
)

// Grid cell characters.
const (
	Open    = '.'
	Blocked = '#'
)

// Connectivity selects orthogonal (Conn4) or also diagonal (Conn8) moves.
type Connectivity int

const (
	// Conn4 links N, E, S, W neighbors with weight 1.
	Conn4 Connectivity = iota
	// Conn8 also links diagonal neighbors with weight √2.
	Conn8
)

var (
	offsets4 = [][2]int{{1, 0}, {0, 1}}
	offsets8 = [][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
)

// FromGrid builds a graph from rows of Open and Blocked cells. Row y
// (1-based, top first) column x (1-based) becomes vertex "x,y". Each
// undirected edge is added once by scanning forward offsets only.
//
// Complexity: O(W×H) time and space.
func FromGrid(rows []string, conn Connectivity) (*graph.Graph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	for y, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y+1, len(r), width)
		}
		for x := 0; x < width; x++ {
			if r[x] != Open && r[x] != Blocked {
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrBadCell, r[x], x+1, y+1)
			}
		}
	}

	open := func(x, y int) bool {
		return y >= 0 && y < len(rows) && x >= 0 && x < width && rows[y][x] == Open
	}
	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}

	g := graph.New()
	for y := range rows {
		for x := 0; x < width; x++ {
			if !open(x, y) {
				continue
			}
			from := Coord{X: x + 1, Y: y + 1}.ID()
			if err := g.AddVertex(from); err != nil {
				return nil, err
			}
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if !open(nx, ny) {
					continue
				}
				w := 1.0
				if d[0] != 0 && d[1] != 0 {
					w = math.Sqrt2
				}
				if err := g.AddEdge(from, Coord{X: nx + 1, Y: ny + 1}.ID(), w); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// ParseGrid reads a grid from r; blank lines are ignored and surrounding
// whitespace is trimmed.
func ParseGrid(r io.Reader, conn Connectivity) (*graph.Graph, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			rows = append(rows, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("marsmap: read: %w", err)
	}

	return FromGrid(rows, conn)
}

// LoadGrid opens path and parses it as a grid.
func LoadGrid(path string, conn Connectivity) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("marsmap: %w", err)
	}
	defer f.Close()

	return ParseGrid(f, conn)
}

// Write serializes g in the "node: neighbor ..." format, one line per
// vertex in sorted order. Weights are not preserved.
func Write(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	for _, v := range g.Vertices() {
		nb, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		ids := make([]string, len(nb))
		for i, e := range nb {
			ids[i] = e.To
		}
		line := v + ":"
		if len(ids) > 0 {
			line += " " + strings.Join(ids, " ")
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
