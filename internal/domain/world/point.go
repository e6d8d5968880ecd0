package world

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}
