package game

import "math/rand/v2"

// Deal shuffles tiles with rng and splits them into one hand of HandSize tiles
// per player plus the undealt stock. The input slice is shuffled in place.
func Deal(tiles []Tile, players int, rng *rand.Rand) ([][]Tile, []Tile) {
	if players*HandSize > len(tiles) {
		panic("not enough tiles to deal")
	}
	rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})

	hands := make([][]Tile, players)
	for p := range hands {
		hand := make([]Tile, HandSize, NumTiles)
		copy(hand, tiles[p*HandSize:(p+1)*HandSize])
		hands[p] = hand
	}
	stock := make([]Tile, len(tiles)-players*HandSize)
	copy(stock, tiles[players*HandSize:])
	return hands, stock
}

// openerDoubles lists the doubles that may open a match, highest first. Two-player
// matches open with the highest double dealt; four-player matches always open with
// 6|6, which is always dealt since the stock is empty.
func openerDoubles(players int) []Tile {
	if players == 4 {
		return []Tile{{Left: MaxPip, Right: MaxPip}}
	}
	doubles := make([]Tile, 0, MaxPip+1)
	for n := MaxPip; n >= 0; n-- {
		doubles = append(doubles, Tile{Left: n, Right: n})
	}
	return doubles
}

// placeOpener moves the forced opening double onto the board and hands the turn
// to the player after its holder. Without any eligible double the board stays
// empty and player 0 starts.
func (m *Match) placeOpener() {
	for _, double := range openerDoubles(m.players) {
		for p := range m.hands {
			i := indexOf(m.hands[p], double)
			if i < 0 {
				continue
			}
			m.hands[p] = removeAt(m.hands[p], i)
			m.board = append(m.board, double)
			m.owners = append(m.owners, p)
			m.opener = double
			m.openedBy = p
			m.current = m.next(p)
			return
		}
	}
	m.openedBy = -1
	m.current = 0
}
