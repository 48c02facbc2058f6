// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"dungeoncrawl/pkg/engine/pathfind"
	"dungeoncrawl/pkg/engine/world"
	"dungeoncrawl/pkg/game/session"
)

const mapDumpFilename = "map.txt"

// Glyphs used by the text dumps
const (
	GlyphEmpty       = ' '
	GlyphFloor       = '.'
	GlyphWall        = '#'
	GlyphAvatar      = '@'
	GlyphEnemy       = 'E'
	GlyphCollectible = '*'
	GlyphPath        = '+'
	GlyphHidden      = ' '
)

var (
	ColorWall        = color.Style{color.FgGray}
	ColorFloor       = color.Style{color.FgGray, color.OpBold}
	ColorAvatar      = color.Style{color.FgGreen, color.OpBold}
	ColorEnemy       = color.Style{color.FgRed, color.OpBold}
	ColorCollectible = color.Style{color.FgYellow, color.OpBold}
	ColorPath        = color.Style{color.FgMagenta}
)

// TileGlyph returns the single-character symbol for a tile
func TileGlyph(t world.Tile) rune {
	switch t {
	case world.Floor:
		return GlyphFloor
	case world.Wall:
		return GlyphWall
	case world.Avatar:
		return GlyphAvatar
	case world.Enemy:
		return GlyphEnemy
	case world.Collectible:
		return GlyphCollectible
	default:
		return GlyphEmpty
	}
}

func tileStyle(t world.Tile) color.Style {
	switch t {
	case world.Floor:
		return ColorFloor
	case world.Wall:
		return ColorWall
	case world.Avatar:
		return ColorAvatar
	case world.Enemy:
		return ColorEnemy
	case world.Collectible:
		return ColorCollectible
	default:
		return nil
	}
}

// View selects what WriteMap draws on top of the tiles
type View struct {
	// Path is drawn over floor tiles
	Path pathfind.Path
	// Visible limits drawing to these cells; nil draws everything
	Visible *world.VisibleSet
	Colour  bool
}

// SessionView builds the view a player of s would see: the enemy path and the
// visibility window follow the session's toggles.
func SessionView(s *session.Session, colour bool) View {
	v := View{Colour: colour}
	if s.ShowEnemyPath() {
		v.Path = s.EnemyPath()
	}
	if s.LineOfSight() {
		visible := s.Visible()
		v.Visible = &visible
	}
	return v
}

// WriteMap writes m one row per line, top row (highest y) first
func WriteMap(w io.Writer, m *world.TileMap, v View) error {
	path := mapset.New[world.Point]()
	for _, p := range v.Path {
		if m.At(p) == world.Floor {
			path.Put(p)
		}
	}

	bw := bufio.NewWriter(w)
	for y := m.Height() - 1; y >= 0; y-- {
		for x := 0; x < m.Width(); x++ {
			p := world.Point{X: x, Y: y}
			glyph, style := cellGlyph(m, p, path, v)
			if v.Colour && style != nil {
				bw.WriteString(style.Sprint(string(glyph)))
			} else {
				bw.WriteRune(glyph)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func cellGlyph(m *world.TileMap, p world.Point, path mapset.Set[world.Point], v View) (rune, color.Style) {
	if v.Visible != nil && !v.Visible.Has(p) {
		return GlyphHidden, nil
	}
	if path.Has(p) {
		return GlyphPath, ColorPath
	}
	t := m.At(p)
	return TileGlyph(t), tileStyle(t)
}

// DumpToFile writes a full debug dump of s to map.txt in dir: metadata, legend,
// the player's view, the full layout, rooms, hallways and the enemy path.
func DumpToFile(s *session.Session, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteDump(f, s); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}

// WriteDump writes the dump that DumpToFile stores
func WriteDump(w io.Writer, s *session.Session) error {
	m := s.Map()
	d := s.Dungeon

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (layout, occupants, hallways) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "session: %s\n", s.ID)
	fmt.Fprintf(w, "seed: %d\n", s.Seed)
	fmt.Fprintf(w, "width: %d\n", m.Width())
	fmt.Fprintf(w, "height: %d\n", m.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, y=0 is the bottom row)\n")
	fmt.Fprintf(w, "avatar: %d,%d\n", s.Avatar().X, s.Avatar().Y)
	fmt.Fprintf(w, "avatar_start: %d,%d\n", s.AvatarStart().X, s.AvatarStart().Y)
	fmt.Fprintf(w, "enemy: %d,%d\n", s.Enemy().X, s.Enemy().Y)
	fmt.Fprintf(w, "lives: %d\n", s.Lives())
	fmt.Fprintf(w, "collectibles_left: %d\n", len(s.Remaining()))
	fmt.Fprintf(w, "won: %v\n", s.Won())
	fmt.Fprintf(w, "lost: %v\n", s.Lost())
	fmt.Fprintf(w, "history: %q\n", s.History())
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (tile symbols) ---")
	fmt.Fprintf(w, "%c = floor  %c = wall  %c = avatar  %c = enemy  %c = collectible  %c = enemy path  blank = empty or hidden\n",
		GlyphFloor, GlyphWall, GlyphAvatar, GlyphEnemy, GlyphCollectible, GlyphPath)
	fmt.Fprintln(w, "")

	// --- Map: player view ---
	fmt.Fprintln(w, "--- Map (player view; toggles applied) ---")
	if err := WriteMap(w, m, SessionView(s, false)); err != nil {
		return err
	}
	fmt.Fprintln(w, "")

	// --- Map: full ---
	fmt.Fprintln(w, "--- Map (full layout) ---")
	if err := WriteMap(w, m, View{}); err != nil {
		return err
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Rooms:")
	for i, r := range d.Rooms {
		c := r.Center()
		fmt.Fprintf(w, "  room: %d x: %d y: %d width: %d height: %d center: %d,%d\n", i, r.BottomLeft.X, r.BottomLeft.Y, r.Width, r.Height, c.X, c.Y)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Hallways:")
	for _, e := range d.Hallways {
		fmt.Fprintf(w, "  from: %d to: %d weight: %d\n", e.From, e.To, e.Weight)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Collectibles:")
	if len(s.Remaining()) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, p := range s.Remaining() {
		fmt.Fprintf(w, "  x: %d y: %d\n", p.X, p.Y)
	}
	fmt.Fprintln(w, "")

	path := s.EnemyPath()
	fmt.Fprintf(w, "Enemy path (%d moves): %q\n", path.Moves(), path.Symbols())
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Messages:")
	for _, msg := range s.Messages {
		fmt.Fprintf(w, "  %s\n", msg)
	}
	fmt.Fprintln(w, "")

	_, err := fmt.Fprintln(w, "=== END MAP DUMP ===")
	return err
}
