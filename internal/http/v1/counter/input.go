package counter

// CounterGetInput for GET /counter (no parameters)
type CounterGetInput struct{}

// CounterMutateInput for POST /counter/{increment,decrement,reset} (no body)
type CounterMutateInput struct{}
