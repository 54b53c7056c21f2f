package entity

// Hint tracks whether the hint was ever shown and whether it is shown right now.
// Pressed feeds the score payload and never goes back to false within a round.
type Hint struct {
	Pressed bool `json:"pressed"`
	Visible bool `json:"visible"`
}

// Press marks the hint as used and toggles its visibility.
func (that *Hint) Press() {
	that.Pressed = true
	that.Visible = !that.Visible
}
