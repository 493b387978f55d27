package counter

// CounterOutput for every counter operation
type CounterOutput struct {
	Body Counter
}
