package economy

// Ledger is a money balance plus a stack of carried items.
type Ledger struct {
	Money     float64
	Inventory []Item
}

// Store pushes an item on top of the inventory.
func (l *Ledger) Store(item Item) {
	if l == nil || item == nil {
		return
	}
	l.Inventory = append(l.Inventory, item)
}

// Sell pops the most recently stored item and credits its value. It reports
// false and changes nothing when the inventory is empty.
func (l *Ledger) Sell() (Item, bool) {
	if l == nil || len(l.Inventory) == 0 {
		return nil, false
	}
	last := len(l.Inventory) - 1
	item := l.Inventory[last]
	l.Inventory[last] = nil
	l.Inventory = l.Inventory[:last]
	if v := item.Value(); v > 0 {
		l.Money += v
	}
	return item, true
}

// Line is one row of an inventory summary.
type Line struct {
	Name  string
	Count int
	Value float64
}

// Summary groups the inventory by item name in order of first appearance.
func (l *Ledger) Summary() []Line {
	if l == nil {
		return nil
	}
	var lines []Line
	index := map[string]int{}
	for _, item := range l.Inventory {
		i, ok := index[item.Name()]
		if !ok {
			i = len(lines)
			index[item.Name()] = i
			lines = append(lines, Line{Name: item.Name()})
		}
		lines[i].Count++
		lines[i].Value += item.Value()
	}
	return lines
}
