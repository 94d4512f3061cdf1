package types

type Pointi struct {
	X, Y int
}

type Pointf64 struct {
	X, Y float64
}
