package component

// HoldSource names the input that produced the last hold transition.
type HoldSource string

const (
	HoldSourceNone     HoldSource = ""
	HoldSourceTouch    HoldSource = "touch"
	HoldSourceMouse    HoldSource = "mouse"
	HoldSourceKeyboard HoldSource = "keyboard"
)

// Hold is the single pressed/released signal. Every source writes the same
// boolean; the last write wins.
type Hold struct {
	Holding    bool
	LastSource HoldSource
}

var HoldComponent = NewComponent[Hold]()
