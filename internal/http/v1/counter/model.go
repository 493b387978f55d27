package counter

// Counter is the counter widget state.
type Counter struct {
	Value     int     `json:"value"     minimum:"0"              doc:"Current value"                    example:"42"`
	Intensity float64 `json:"intensity" minimum:"0" maximum:"1" doc:"Visual intensity, min(value/100, 1)" example:"0.42"`
	Color     string  `json:"color"                              doc:"Background color"                 example:"rgba(0, 150, 255, 0.42)"`
}
