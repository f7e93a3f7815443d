package screen

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pokearena/arena/internal/menu"
	"github.com/pokearena/arena/internal/session"
)

type handlers struct {
	render RenderFunc
	input  InputFunc
}

// Registry maps every declared state to its handler pair. Construction fails
// loudly on any gap or any handler for an undeclared state, so a half-wired
// state cannot survive startup.
type Registry struct {
	handlers map[menu.State]handlers
}

// BuildRegistry assembles the registry from the handler tables and validates
// them against the declared state set.
func BuildRegistry() *Registry {
	renders := renderFuncs()
	inputs := inputFuncs()
	r := &Registry{handlers: make(map[menu.State]handlers, len(menu.All()))}
	for _, state := range menu.All() {
		render, ok := renders[state]
		if !ok || render == nil {
			panic(fmt.Sprintf("screen: state %q has no render handler", state))
		}
		input, ok := inputs[state]
		if !ok || input == nil {
			panic(fmt.Sprintf("screen: state %q has no input handler", state))
		}
		r.handlers[state] = handlers{render: render, input: input}
	}
	if len(renders) != len(menu.All()) {
		panic(fmt.Sprintf("screen: %d render handlers for %d states", len(renders), len(menu.All())))
	}
	if len(inputs) != len(menu.All()) {
		panic(fmt.Sprintf("screen: %d input handlers for %d states", len(inputs), len(menu.All())))
	}
	return r
}

// Payloads builds a fresh payload per declared state, ready for session.New.
func Payloads() map[menu.State]session.Payload {
	builders := payloadFuncs()
	out := make(map[menu.State]session.Payload, len(builders))
	for state, build := range builders {
		payload := build()
		payload.Reset()
		out[state] = payload
	}
	return out
}

// DispatchRender renders the active state's body. An unregistered state is a
// registry defect and panics.
func (r *Registry) DispatchRender(ctx Context) []string {
	h, ok := r.handlers[ctx.Session.Current()]
	if !ok {
		panic(fmt.Sprintf("screen: render dispatch for unregistered state %q", ctx.Session.Current()))
	}
	return h.render(ctx)
}

// DispatchInput routes a key press to the active state's input handler. An
// unregistered state is a registry defect and panics.
func (r *Registry) DispatchInput(ctx Context, msg tea.KeyMsg) tea.Cmd {
	h, ok := r.handlers[ctx.Session.Current()]
	if !ok {
		panic(fmt.Sprintf("screen: input dispatch for unregistered state %q", ctx.Session.Current()))
	}
	return h.input(ctx, msg)
}
