package model

// Indexer interface is designed to give a unique decision-variable index to a
// combination of schedule variable's attributes and vice versa
type Indexer interface {
	// Returns a unique index to a combination of schedule variable's attributes
	Index(matchup, room, slot int) int
	// Returns a combination of schedule variable's attributes from a unique index
	Attributes(index int) (matchup int, room int, slot int)
}

func NewIndexer(matchups, rooms, slots int) Indexer {
	return &sortedIndexer{
		matchups: matchups,
		rooms:    rooms,
		slots:    slots,
	}
}
