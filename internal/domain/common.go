package domain

// Action represents the side of an executed portfolio transition.
type Action string

const (
	Buy  Action = "BUY"
	Sell Action = "SELL"
)
