// Package menu holds the closed state set and the menu definition table: for
// each state, an ordered list of selectable items and a title. Labels are
// display text only; the stable identifier for dispatch is Item.ID.
package menu

// Item represents a selectable menu entry. Back marks the entry as a typed
// return-to-parent action rather than relying on its position in the list.
type Item struct {
	ID    string
	Label string
	Back  bool
}

// Menu is the ordered, titled item list belonging to one state.
type Menu struct {
	Title string
	Items []Item
}

// Size returns the number of selectable items.
func (m Menu) Size() int {
	return len(m.Items)
}

// Labels returns the display text of every item in order.
func (m Menu) Labels() []string {
	labels := make([]string, len(m.Items))
	for i, item := range m.Items {
		labels[i] = item.Label
	}
	return labels
}

// IndexOf returns the position of the item with the given ID, or -1.
func (m Menu) IndexOf(id string) int {
	for i, item := range m.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
