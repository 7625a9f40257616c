package spheretrace

// Light is a colored point light.
type Light struct {
	Pos   Vector
	Color RGB
}

// DefaultLights returns the three fixed lights: green, red and blue.
func DefaultLights() []Light {
	return []Light{
		{Pos: V(3, -2, -2), Color: RGB{0, 1, 0}},
		{Pos: V(-3, 2, -2), Color: RGB{1, 0, 0}},
		{Pos: V(3, 2, -2), Color: RGB{0, 0, 1}},
	}
}
