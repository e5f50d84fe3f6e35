package external

import "github.com/KirkDiggler/fiender/internal/entities/open5e"

// Collection path segments on the Open5e API
const (
	CollectionMonsters = "monsters"
	CollectionSpells   = "spells"
)

// PageFunc receives each page of a listing walk along with its 1-based
// number. Returning an error stops the walk and surfaces that error.
type PageFunc[T any] func(pageNum int, page *open5e.Page[T]) error
