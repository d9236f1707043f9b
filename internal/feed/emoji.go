package feed

// Reaction kind IDs as seeded in the react table.
const (
	ReactThumbsUp int64 = 1
	ReactHeart    int64 = 2
	ReactLaugh    int64 = 3
	ReactWow      int64 = 4
	ReactSad      int64 = 5
	ReactAngry    int64 = 6
)

var reactText = map[int64]string{
	ReactThumbsUp: "👍",
	ReactHeart:    "❤️",
	ReactLaugh:    "😂",
	ReactWow:      "😮",
	ReactSad:      "😢",
	ReactAngry:    "😡",
}

// ReactText resolves a reaction kind to its display text. Unknown kinds map
// to the empty string rather than failing the page.
func ReactText(reactID int64) string {
	return reactText[reactID]
}
