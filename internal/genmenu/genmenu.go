// Package genmenu adds a new screen to the application by splicing it into
// every artifact that declares states: the state set, the menu definition
// table, the three screen handler tables, and a fresh screen file. Every
// splice is anchored and idempotent, so re-running the generator for an
// existing name changes nothing.
package genmenu

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pokearena/arena/internal/genmenu/splice"
)

var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// reservedNames can never become generated states: the built-in states plus
// the item IDs with hard-wired meaning on the main menu.
var reservedNames = map[string]bool{
	"main":     true,
	"settings": true,
	"pokedex":  true,
	"auth":     true,
	"help":     true,
	"quit":     true,
	"back":     true,
}

const (
	statePath       = "internal/menu/state.go"
	definitionsPath = "internal/menu/definitions.go"
	renderPath      = "internal/screen/render.go"
	inputPath       = "internal/screen/input.go"
	payloadPath     = "internal/screen/payload.go"
	mainMenuPath    = "internal/screen/mainmenu.go"
	docPath         = "docs/menu_creation.md"
)

// Generator splices a new state into the repository rooted at Root.
type Generator struct {
	Root string
}

// Result reports which files a run touched.
type Result struct {
	Changed []string
	Skipped []string
}

// New returns a generator for the repository at root.
func New(root string) *Generator {
	return &Generator{Root: root}
}

// Run adds the named state everywhere it must appear. The name becomes the
// state string, the main-menu item ID, and the screen file name.
func (g *Generator) Run(name string) (*Result, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	camel := camelCase(name)
	title := titleCase(name)
	result := &Result{}

	if err := g.spliceState(name, camel, result); err != nil {
		return nil, err
	}
	insertedMainItem, err := g.spliceDefinitions(name, camel, title, result)
	if err != nil {
		return nil, err
	}
	if err := g.spliceHandlerTable(renderPath, camel, fmt.Sprintf("\t\tmenu.State%s: render%s,", camel, camel), result); err != nil {
		return nil, err
	}
	if err := g.spliceHandlerTable(inputPath, camel, fmt.Sprintf("\t\tmenu.State%s: input%s,", camel, camel), result); err != nil {
		return nil, err
	}
	if err := g.spliceHandlerTable(payloadPath, camel,
		fmt.Sprintf("\t\tmenu.State%s: func() session.Payload { return &%sPayload{} },", camel, camel), result); err != nil {
		return nil, err
	}
	if insertedMainItem > 0 {
		if err := g.renumberMainMenu(insertedMainItem, result); err != nil {
			return nil, err
		}
	}
	if err := g.writeScreenFile(name, camel, title, result); err != nil {
		return nil, err
	}
	if err := g.writeDoc(result); err != nil {
		return nil, err
	}
	return result, nil
}

// ValidateName rejects names that cannot become states: bad shapes and the
// reserved built-in identifiers.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("genmenu: name %q must match %s", name, namePattern)
	}
	if reservedNames[name] {
		return fmt.Errorf("genmenu: name %q is reserved", name)
	}
	return nil
}

func (g *Generator) spliceState(name, camel string, result *Result) error {
	a, err := splice.Load(filepath.Join(g.Root, statePath))
	if err != nil {
		return err
	}
	if !a.Has(fmt.Sprintf("State = %q", name)) {
		if err := a.InsertBefore(`State = "help"`, fmt.Sprintf("\tState%s State = %q", camel, name)); err != nil {
			return err
		}
	}
	if !a.Has(fmt.Sprintf("State%s,", camel)) {
		if err := a.InsertBefore("StateHelp,", fmt.Sprintf("\t\tState%s,", camel)); err != nil {
			return err
		}
	}
	return g.save(a, result)
}

// spliceDefinitions adds the state's menu block and its main-menu item.
// It returns the ordinal the new main-menu item took, or 0 when the item was
// already present.
func (g *Generator) spliceDefinitions(name, camel, title string, result *Result) (int, error) {
	a, err := splice.Load(filepath.Join(g.Root, definitionsPath))
	if err != nil {
		return 0, err
	}
	if !a.Has(fmt.Sprintf("State%s: {", camel)) {
		block := []string{
			fmt.Sprintf("\t\tState%s: {", camel),
			fmt.Sprintf("\t\t\tTitle: %q,", title),
			"\t\t\tItems: []Item{",
			"\t\t\t\t{ID: \"next\", Label: \"Next Option\"},",
			"\t\t\t\t{ID: \"previous\", Label: \"Previous Option\"},",
			"\t\t\t\t{ID: \"back\", Label: \"Back to Main Menu\", Back: true},",
			"\t\t\t},",
			"\t\t},",
		}
		if err := a.InsertBefore("StateHelp: {", block...); err != nil {
			return 0, err
		}
	}
	inserted := 0
	if !mainMenuHasItem(a, name) {
		inserted = mainMenuHelpOrdinal(a)
		item := fmt.Sprintf("\t\t\t\t{ID: %q, Label: %q},", name, title)
		if err := a.InsertBefore(`{ID: "help", Label: "Help"},`, item); err != nil {
			return 0, err
		}
	}
	return inserted, g.save(a, result)
}

func (g *Generator) spliceHandlerTable(path, camel, entry string, result *Result) error {
	a, err := splice.Load(filepath.Join(g.Root, path))
	if err != nil {
		return err
	}
	if !a.Has(fmt.Sprintf("menu.State%s:", camel)) {
		if err := a.InsertBefore("menu.StateHelp:", entry); err != nil {
			return err
		}
	}
	return g.save(a, result)
}

// renumberMainMenu shifts any positional dispatch arms at or past the new
// item's ordinal. The shipped main menu dispatches on item IDs and has no
// such arms, so this is a no-op there; forks that kept ordinal arms get the
// tail renumbered instead of silently misrouted.
func (g *Generator) renumberMainMenu(ordinal int, result *Result) error {
	a, err := splice.Load(filepath.Join(g.Root, mainMenuPath))
	if err != nil {
		return err
	}
	a.RenumberOrdinalCases(ordinal, 1)
	return g.save(a, result)
}

func (g *Generator) writeScreenFile(name, camel, title string, result *Result) error {
	path := filepath.Join(g.Root, "internal/screen", name+".go")
	rel := filepath.Join("internal/screen", name+".go")
	if _, err := os.Stat(path); err == nil {
		result.Skipped = append(result.Skipped, rel)
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("genmenu: checking %s: %w", path, err)
	}
	content, err := renderScreenFile(name, camel, title)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("genmenu: writing %s: %w", path, err)
	}
	result.Changed = append(result.Changed, rel)
	return nil
}

func (g *Generator) writeDoc(result *Result) error {
	path := filepath.Join(g.Root, docPath)
	content, err := renderDoc()
	if err != nil {
		return err
	}
	existing, err := os.ReadFile(path)
	if err == nil && string(existing) == string(content) {
		result.Skipped = append(result.Skipped, docPath)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("genmenu: creating docs dir: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("genmenu: writing %s: %w", path, err)
	}
	result.Changed = append(result.Changed, docPath)
	return nil
}

func (g *Generator) save(a *splice.Artifact, result *Result) error {
	rel, err := filepath.Rel(g.Root, a.Path())
	if err != nil {
		rel = a.Path()
	}
	if !a.Dirty() {
		result.Skipped = append(result.Skipped, rel)
		return nil
	}
	if err := a.Save(); err != nil {
		return err
	}
	result.Changed = append(result.Changed, rel)
	return nil
}

// mainMenuHasItem reports whether the main menu block already carries an item
// with the given ID. Item IDs repeat across menus (the pokedex also has a
// "next", the help menu a "settings"), so a whole-file scan would mistake one
// of those for the main-menu entry and skip the insert.
func mainMenuHasItem(a *splice.Artifact, id string) bool {
	marker := fmt.Sprintf("{ID: %q,", id)
	inMainMenu := false
	for _, line := range a.Lines() {
		switch {
		case strings.Contains(line, "StateMainMenu: {"):
			inMainMenu = true
		case inMainMenu && line == "\t\t},":
			return false
		case inMainMenu && strings.Contains(line, marker):
			return true
		}
	}
	return false
}

// mainMenuHelpOrdinal counts the items ahead of the Help entry inside the
// StateMainMenu block; that is the ordinal a new item inserted before Help
// will take.
func mainMenuHelpOrdinal(a *splice.Artifact) int {
	inMainMenu := false
	ordinal := 0
	for _, line := range a.Lines() {
		switch {
		case strings.Contains(line, "StateMainMenu: {"):
			inMainMenu = true
		case inMainMenu && strings.Contains(line, `{ID: "help",`):
			return ordinal
		case inMainMenu && strings.Contains(line, "{ID: "):
			ordinal++
		}
	}
	return ordinal
}

func camelCase(name string) string {
	parts := strings.Split(name, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "")
}

func titleCase(name string) string {
	parts := strings.Split(name, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
