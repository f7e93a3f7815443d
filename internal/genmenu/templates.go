package genmenu

import (
	"bytes"
	"fmt"
	"text/template"
)

type screenData struct {
	Name  string
	Camel string
	Title string
}

var screenTemplate = template.Must(template.New("screen").Parse(`package screen

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pokearena/arena/internal/logging/events"
	"github.com/pokearena/arena/internal/menu"
)

// {{.Camel}}Payload is the {{.Title}} screen's private data: its own option
// list with its own selection cursor, deliberately independent of the shared
// menu cursor so the screen can customize its movement rules.
type {{.Camel}}Payload struct {
	Cursor  int
	Options []string
}

func (p *{{.Camel}}Payload) Reset() {
	p.Cursor = 0
	p.Options = []string{"First Option", "Second Option"}
}

// SelectUp moves the option cursor up, wrapping at the top.
func (p *{{.Camel}}Payload) SelectUp() {
	if len(p.Options) == 0 {
		return
	}
	if p.Cursor <= 0 {
		p.Cursor = len(p.Options) - 1
		return
	}
	p.Cursor--
}

// SelectDown moves the option cursor down, wrapping at the bottom.
func (p *{{.Camel}}Payload) SelectDown() {
	if len(p.Options) == 0 {
		return
	}
	p.Cursor = (p.Cursor + 1) % len(p.Options)
}

// Selected returns the option under the cursor.
func (p *{{.Camel}}Payload) Selected() string {
	if len(p.Options) == 0 {
		return ""
	}
	if p.Cursor >= len(p.Options) {
		p.Cursor = len(p.Options) - 1
	}
	return p.Options[p.Cursor]
}

func render{{.Camel}}(ctx Context) []string {
	p := ctx.Session.Payload(menu.State{{.Camel}}).(*{{.Camel}}Payload)
	lines := []string{"{{.Title}} screen."}
	for i, option := range p.Options {
		marker := "  "
		if i == p.Cursor {
			marker = "> "
		}
		lines = append(lines, marker+option)
	}
	lines = append(lines, fmt.Sprintf("Selected: %s", p.Selected()))
	return lines
}

func input{{.Camel}}(ctx Context, msg tea.KeyMsg) tea.Cmd {
	if msg.String() != "enter" {
		return nil
	}
	item, ok := ctx.Session.SelectedItem()
	if !ok {
		return nil
	}
	events.Nav.Activate(string(menu.State{{.Camel}}), item.ID, item.Label)
	p := ctx.Session.Payload(menu.State{{.Camel}}).(*{{.Camel}}Payload)
	switch item.ID {
	case "next":
		p.SelectDown()
	case "previous":
		p.SelectUp()
	}
	return nil
}
`))

func renderScreenFile(name, camel, title string) ([]byte, error) {
	var buf bytes.Buffer
	if err := screenTemplate.Execute(&buf, screenData{Name: name, Camel: camel, Title: title}); err != nil {
		return nil, fmt.Errorf("genmenu: rendering screen file: %w", err)
	}
	return buf.Bytes(), nil
}

var docTemplate = template.Must(template.New("doc").Parse(`# Adding a menu screen

Run the generator from the repository root:

    menugen <name>

The name must match ` + "`[a-z][a-z0-9_]*`" + ` and not collide with a built-in
state. One run touches every artifact that declares states:

| Artifact | Change |
| --- | --- |
| internal/menu/state.go | state constant and All() entry, before StateHelp |
| internal/menu/definitions.go | menu block before StateHelp, main-menu item before Help |
| internal/screen/render.go | render handler entry |
| internal/screen/input.go | input handler entry |
| internal/screen/payload.go | payload constructor entry |
| internal/screen/<name>.go | new screen file (never overwritten) |

Every splice checks for prior application first, so re-running the generator
for the same name is a no-op. Insertions anchor on the StateHelp entries,
which keeps Help and Quit at the tail of the main menu. If a fork's main-menu
dispatch still switches on item positions, the arms at or past the new item's
position are renumbered in the same run.

After generating, flesh out the placeholder items in the menu block and the
handlers in the new screen file, then gofmt the touched files.
`))

func renderDoc() ([]byte, error) {
	var buf bytes.Buffer
	if err := docTemplate.Execute(&buf, nil); err != nil {
		return nil, fmt.Errorf("genmenu: rendering doc: %w", err)
	}
	return buf.Bytes(), nil
}
