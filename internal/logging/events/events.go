// Package events exposes typed tracer facades over the shared trace log so
// call sites stay terse and event names stay consistent.
package events

import "github.com/pokearena/arena/internal/logging"

type AppTracer struct{}

type NavTracer struct{}

type EffectTracer struct{}

type ScreenTracer struct{}

var (
	App    = AppTracer{}
	Nav    = NavTracer{}
	Effect = EffectTracer{}
	Screen = ScreenTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (NavTracer) Cursor(state string, cursor int) {
	logging.Trace("nav.cursor", map[string]interface{}{"state": state, "cursor": cursor})
}

func (NavTracer) Switch(from, to string) {
	logging.Trace("nav.switch", map[string]interface{}{"from": from, "to": to})
}

func (NavTracer) Back(to string) {
	logging.Trace("nav.back", map[string]interface{}{"to": to})
}

func (NavTracer) Activate(state, itemID, label string) {
	logging.Trace("nav.activate", map[string]interface{}{
		"state": state,
		"item":  itemID,
		"label": label,
	})
}

func (EffectTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("effect.error", map[string]interface{}{"error": err.Error()})
}

func (EffectTracer) Success(info string) {
	logging.Trace("effect.success", map[string]interface{}{"info": info})
}

func (ScreenTracer) SearchJump(query string, number int) {
	logging.Trace("screen.search-jump", map[string]interface{}{"query": query, "number": number})
}

func (ScreenTracer) ThemeChange(name string) {
	logging.Trace("screen.theme", map[string]interface{}{"name": name})
}
