package events

// ChangeEventArgs carries the current value of an input, textarea or select
// to @oninput / @onchange handlers.
type ChangeEventArgs struct {
	Name  string // name attribute of the element that fired the event
	Value string
}
