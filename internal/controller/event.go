package controller

// Event is an input the controller reacts to
type Event interface {
	isEvent()
}

// SliderMoved sets an absolute level
type SliderMoved struct {
	Level int
}

// IncrementPressed raises the level by one unit
type IncrementPressed struct{}

// DecrementPressed lowers the level by one unit
type DecrementPressed struct{}

func (SliderMoved) isEvent()      {}
func (IncrementPressed) isEvent() {}
func (DecrementPressed) isEvent() {}
