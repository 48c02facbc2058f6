package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dungeoncrawl/pkg/game/session"
)

// SaveScreenshotHTML saves the session's current view as an HTML file in dir
func SaveScreenshotHTML(s *session.Session, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	var page strings.Builder
	if err := WriteHTML(&page, s); err != nil {
		return "", err
	}
	if err := os.WriteFile(filename, []byte(page.String()), 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// WriteHTML renders the whole map with the session's toggles applied
func WriteHTML(w io.Writer, s *session.Session) error {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Dungeon - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .status {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .avatar { color: #00ff00; font-weight: bold; }
        .enemy { color: #ff4444; font-weight: bold; }
        .collectible { color: #ffff00; font-weight: bold; }
        .path { color: #ff66ff; }
        .wall { color: #666; }
        .floor { color: #888; }
        .void { color: #1a1a2e; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&b, `    <div class="header">Seed %d</div>`+"\n", s.Seed)
	fmt.Fprintf(&b, `    <div class="status">Lives: %d &middot; Collectibles left: %d</div>`+"\n", s.Lives(), len(s.Remaining()))

	b.WriteString(`    <div class="map-container">` + "\n")

	m := s.Map()
	v := SessionView(s, false)
	var buf strings.Builder
	if err := WriteMap(&buf, m, v); err != nil {
		return err
	}
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		b.WriteString(`        <div class="map-row">`)
		for _, glyph := range line {
			fmt.Fprintf(&b, `<span class="%s">%s</span>`, glyphClass(glyph), html.EscapeString(string(glyph)))
		}
		b.WriteString("</div>\n")
	}

	b.WriteString(`    </div>` + "\n")

	if len(s.Messages) > 0 {
		b.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range s.Messages {
			fmt.Fprintf(&b, `        <div class="message">%s</div>`+"\n", html.EscapeString(msg))
		}
		b.WriteString(`    </div>` + "\n")
	}

	b.WriteString(`</body>
</html>
`)

	_, err := io.WriteString(w, b.String())
	return err
}

// glyphClass returns the CSS class for a dump glyph
func glyphClass(g rune) string {
	switch g {
	case GlyphAvatar:
		return "avatar"
	case GlyphEnemy:
		return "enemy"
	case GlyphCollectible:
		return "collectible"
	case GlyphPath:
		return "path"
	case GlyphWall:
		return "wall"
	case GlyphFloor:
		return "floor"
	default:
		return "void"
	}
}
