package pattern

var catalog = []Pattern{
	parse("glider", "Glider",
		".O.",
		"..O",
		"OOO",
	),
	parse("lwss", "Lightweight spaceship",
		".OOOO",
		"O...O",
		"....O",
		"O..O.",
	),
	parse("toad", "Toad",
		".OOO",
		"OOO.",
	),
	parse("beacon", "Beacon",
		"OO..",
		"OO..",
		"..OO",
		"..OO",
	),
	parse("pulsar", "Pulsar",
		"..OOO...OOO..",
		".............",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		"..OOO...OOO..",
		".............",
		"..OOO...OOO..",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		".............",
		"..OOO...OOO..",
	),
	parse("diehard", "Diehard",
		"......O.",
		"OO......",
		".O...OOO",
	),
	parse("acorn", "Acorn",
		".O.....",
		"...O...",
		"OO..OOO",
	),
	parse("gosper", "Gosper glider gun",
		"........................O...........",
		"......................O.O...........",
		"............OO......OO............OO",
		"...........O...O....OO............OO",
		"OO........O.....O...OO..............",
		"OO........O...O.OO....O.O...........",
		"..........O.....O.......O...........",
		"...........O...O....................",
		"............OO......................",
	),
}

var byKey = func() map[string]Pattern {
	m := make(map[string]Pattern, len(catalog))
	for _, p := range catalog {
		m[p.Key] = p
	}
	return m
}()

// Lookup returns the pattern registered under key.
func Lookup(key string) (Pattern, bool) {
	p, ok := byKey[key]
	return p, ok
}

// Keys lists the catalog keys in display order.
func Keys() []string {
	keys := make([]string, len(catalog))
	for i, p := range catalog {
		keys[i] = p.Key
	}
	return keys
}

// Next returns the key after current in the cycle None, glider, ..., gosper,
// None. Unknown keys restart the cycle at the first pattern.
func Next(current string) string {
	if current == None {
		return catalog[0].Key
	}
	for i, p := range catalog {
		if p.Key == current {
			if i+1 < len(catalog) {
				return catalog[i+1].Key
			}
			return None
		}
	}
	return catalog[0].Key
}
