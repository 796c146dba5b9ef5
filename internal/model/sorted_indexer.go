package model

type sortedIndexer struct {
	matchups int
	rooms    int
	slots    int
}

func (i *sortedIndexer) Index(matchup, room, slot int) int {
	return matchup + i.matchups*(room) + i.matchups*i.rooms*(slot)
}

func (i *sortedIndexer) Attributes(index int) (matchup int, room int, slot int) {
	matchup = index % i.matchups
	index = index / i.matchups

	room = index % i.rooms
	index = index / i.rooms

	slot = index % i.slots

	return matchup, room, slot
}
