package genmenu

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupFixture copies the real generator artifacts into a scratch root so
// runs exercise the exact shapes the generator meets in this repository.
func setupFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, rel := range []string{statePath, definitionsPath, renderPath, inputPath, payloadPath, mainMenuPath} {
		src := filepath.Join("../..", rel)
		content, err := os.ReadFile(src)
		if err != nil {
			t.Fatalf("reading %s: %v", src, err)
		}
		dst := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			t.Fatalf("creating %s: %v", filepath.Dir(dst), err)
		}
		if err := os.WriteFile(dst, content, 0o644); err != nil {
			t.Fatalf("writing %s: %v", dst, err)
		}
	}
	return root
}

func read(t *testing.T, root, rel string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(content)
}

func TestRunAddsStateEverywhere(t *testing.T) {
	root := setupFixture(t)
	g := New(root)
	if _, err := g.Run("battle_log"); err != nil {
		t.Fatalf("run: %v", err)
	}

	state := read(t, root, statePath)
	for _, want := range []string{`StateBattleLog State = "battle_log"`, "StateBattleLog,"} {
		if !strings.Contains(state, want) {
			t.Fatalf("state.go missing %q:\n%s", want, state)
		}
	}
	if strings.Index(state, "StateBattleLog,") > strings.Index(state, "StateHelp,") {
		t.Fatalf("generated state must precede StateHelp in All()")
	}

	defs := read(t, root, definitionsPath)
	for _, want := range []string{"StateBattleLog: {", `Title: "Battle Log",`, `{ID: "battle_log", Label: "Battle Log"},`} {
		if !strings.Contains(defs, want) {
			t.Fatalf("definitions.go missing %q:\n%s", want, defs)
		}
	}
	if strings.Index(defs, `{ID: "battle_log",`) > strings.Index(defs, `{ID: "help",`) {
		t.Fatalf("generated main-menu item must precede Help")
	}

	for rel, want := range map[string]string{
		renderPath:  "menu.StateBattleLog: renderBattleLog,",
		inputPath:   "menu.StateBattleLog: inputBattleLog,",
		payloadPath: "menu.StateBattleLog: func() session.Payload { return &BattleLogPayload{} },",
	} {
		content := read(t, root, rel)
		if !strings.Contains(content, want) {
			t.Fatalf("%s missing %q:\n%s", rel, want, content)
		}
		if strings.Index(content, want) > strings.Index(content, "menu.StateHelp:") {
			t.Fatalf("%s: generated entry must precede StateHelp", rel)
		}
	}

	screenFile := read(t, root, "internal/screen/battle_log.go")
	for _, want := range []string{"type BattleLogPayload struct", "func renderBattleLog(ctx Context)", "func inputBattleLog(ctx Context, msg tea.KeyMsg)"} {
		if !strings.Contains(screenFile, want) {
			t.Fatalf("screen file missing %q:\n%s", want, screenFile)
		}
	}

	doc := read(t, root, docPath)
	if !strings.Contains(doc, "menugen <name>") {
		t.Fatalf("doc missing usage:\n%s", doc)
	}
}

func TestRunNameMatchingForeignItemIDStillGetsMainMenuItem(t *testing.T) {
	// The pokedex menu already has an item with ID "next"; a state of the
	// same name must still land on the main menu.
	root := setupFixture(t)
	g := New(root)
	if _, err := g.Run("next"); err != nil {
		t.Fatalf("run: %v", err)
	}

	defs := read(t, root, definitionsPath)
	item := `{ID: "next", Label: "Next"},`
	if !strings.Contains(defs, item) {
		t.Fatalf("definitions.go missing main-menu item %q:\n%s", item, defs)
	}
	if strings.Index(defs, item) > strings.Index(defs, `{ID: "help", Label: "Help"},`) {
		t.Fatalf("generated main-menu item must precede Help:\n%s", defs)
	}

	result, err := g.Run("next")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(result.Changed) != 0 {
		t.Fatalf("second run changed files: %v", result.Changed)
	}
}

func TestRunTwiceChangesNothing(t *testing.T) {
	root := setupFixture(t)
	g := New(root)
	if _, err := g.Run("battle_log"); err != nil {
		t.Fatalf("first run: %v", err)
	}

	snapshot := map[string]string{}
	for _, rel := range []string{statePath, definitionsPath, renderPath, inputPath, payloadPath, mainMenuPath, docPath, "internal/screen/battle_log.go"} {
		snapshot[rel] = read(t, root, rel)
	}

	result, err := g.Run("battle_log")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(result.Changed) != 0 {
		t.Fatalf("second run changed files: %v", result.Changed)
	}
	for rel, want := range snapshot {
		if got := read(t, root, rel); got != want {
			t.Fatalf("%s changed on second run", rel)
		}
	}
}

func TestRunRenumbersOrdinalDispatch(t *testing.T) {
	root := setupFixture(t)

	// A definitions table whose main menu has five entries ahead of Help,
	// paired with a dispatcher that still switches on item positions.
	defs := `package menu

func Definitions() map[State]Menu {
	return map[State]Menu{
		StateMainMenu: {
			Title: "Main Menu",
			Items: []Item{
				{ID: "settings", Label: "Settings"},
				{ID: "pokedex", Label: "Pokedex"},
				{ID: "auth", Label: "Auth"},
				{ID: "stats", Label: "Stats"},
				{ID: "replay", Label: "Replay"},
				{ID: "help", Label: "Help"},
				{ID: "quit", Label: "Quit"},
			},
		},
		StateHelp: {
			Title: "Help",
			Items: []Item{
				{ID: "back", Label: "Back to Main Menu", Back: true},
			},
		},
	}
}
`
	dispatch := `package screen

func activateMainMenu(index int) {
	switch index {
	case 0:
		openSettings()
	case 5:
		openHelp()
	case 6:
		quit()
	}
}
`
	if err := os.WriteFile(filepath.Join(root, definitionsPath), []byte(defs), 0o644); err != nil {
		t.Fatalf("seeding definitions: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, mainMenuPath), []byte(dispatch), 0o644); err != nil {
		t.Fatalf("seeding dispatcher: %v", err)
	}

	if _, err := New(root).Run("battle_log"); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := read(t, root, mainMenuPath)
	for _, want := range []string{"case 0:", "case 6:\n\t\topenHelp()", "case 7:\n\t\tquit()"} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q after renumbering:\n%s", want, got)
		}
	}
	if strings.Contains(got, "case 5:") {
		t.Fatalf("stale ordinal arm survived:\n%s", got)
	}
}

func TestValidateName(t *testing.T) {
	for _, name := range []string{"battle_log", "arena2", "x"} {
		if err := ValidateName(name); err != nil {
			t.Fatalf("expected %q accepted: %v", name, err)
		}
	}
	for _, name := range []string{"", "Help", "9lives", "battle-log", "battle log", "main", "help", "quit", "back"} {
		if err := ValidateName(name); err == nil {
			t.Fatalf("expected %q rejected", name)
		}
	}
}

func TestCasing(t *testing.T) {
	if got := camelCase("battle_log"); got != "BattleLog" {
		t.Fatalf("camelCase = %q", got)
	}
	if got := titleCase("battle_log"); got != "Battle Log" {
		t.Fatalf("titleCase = %q", got)
	}
	if got := camelCase("stats"); got != "Stats" {
		t.Fatalf("camelCase = %q", got)
	}
}
