package model

// TimeSlot is one proposed activity in a schedule being customized. It only
// lives in request/response payloads; a confirmed slot becomes a UserTask.
type TimeSlot struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Category string `json:"category"`
	Color    string `json:"color,omitempty"`
}
