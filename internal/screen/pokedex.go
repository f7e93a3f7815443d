package screen

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pokearena/arena/internal/logging/events"
	"github.com/pokearena/arena/internal/menu"
	"github.com/pokearena/arena/internal/pokedex"
)

// PokedexPayload tracks the entry under inspection and the live search field.
type PokedexPayload struct {
	Number    int
	searching bool
	search    textinput.Model
}

func NewPokedexPayload() *PokedexPayload {
	input := textinput.New()
	input.Placeholder = "name fragment"
	input.Prompt = "Search: "
	input.CharLimit = 32
	return &PokedexPayload{Number: 1, search: input}
}

func (p *PokedexPayload) Reset() {
	p.Number = 1
	p.searching = false
	p.search.SetValue("")
	p.search.Blur()
}

// CapturingInput reports whether the search field owns the keyboard.
func (p *PokedexPayload) CapturingInput() bool {
	return p.searching
}

// Next advances to the following entry, wrapping past the last one.
func (p *PokedexPayload) Next() {
	p.Number = p.Number%pokedex.Count() + 1
}

// Previous steps back one entry, wrapping before the first one.
func (p *PokedexPayload) Previous() {
	p.Number = (p.Number+pokedex.Count()-2)%pokedex.Count() + 1
}

func renderPokedex(ctx Context) []string {
	p := ctx.Session.Payload(menu.StatePokedex).(*PokedexPayload)
	name := pokedex.NameByNumber(p.Number)
	lines := []string{fmt.Sprintf("#%03d %s", p.Number, name)}
	if stats, ok := pokedex.StatsByName(name); ok {
		lines = append(lines,
			fmt.Sprintf("Type: %v", stats.Types),
			fmt.Sprintf("HP %d  ATK %d  DEF %d  SPD %d", stats.HP, stats.Attack, stats.Defense, stats.Speed),
		)
	} else {
		lines = append(lines, "No stat data for this entry.")
	}
	if p.searching {
		lines = append(lines, "", p.search.View(), "enter jump  esc cancel")
	}
	return lines
}

func inputPokedex(ctx Context, msg tea.KeyMsg) tea.Cmd {
	p := ctx.Session.Payload(menu.StatePokedex).(*PokedexPayload)
	if p.searching {
		return searchPokedex(p, msg)
	}
	switch msg.String() {
	case "/":
		p.startSearch()
	case "enter":
		item, ok := ctx.Session.SelectedItem()
		if !ok {
			return nil
		}
		events.Nav.Activate(string(menu.StatePokedex), item.ID, item.Label)
		switch item.ID {
		case "next":
			p.Next()
		case "previous":
			p.Previous()
		case "search":
			p.startSearch()
		}
	}
	return nil
}

func (p *PokedexPayload) startSearch() {
	p.searching = true
	p.search.SetValue("")
	p.search.Focus()
}

// searchPokedex feeds keys to the search field until the query is submitted
// or abandoned. A submitted query jumps to the best fuzzy match.
func searchPokedex(p *PokedexPayload, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.searching = false
		p.search.Blur()
		return nil
	case "enter":
		query := p.search.Value()
		p.searching = false
		p.search.Blur()
		if number, ok := pokedex.Search(query); ok {
			p.Number = number
			events.Screen.SearchJump(query, number)
		}
		return nil
	}
	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)
	return cmd
}
