package model

// LineScore is the scoring result for one run formed or extended by a move
type LineScore struct {
	Direction Direction `json:"direction"`
	First     Cell      `json:"first"`
	Last      Cell      `json:"last"`
	Length    int       `json:"length"`
	Attribute int       `json:"attribute"` // Index of the attribute the run shares, -1 if none
	Complete  bool      `json:"complete"`  // Run uses every value and scores double
	Score     int       `json:"score"`
}

// MoveScore is the complete scoring result for a move
type MoveScore struct {
	Lines []LineScore `json:"lines"`
	Total int         `json:"total"`
}
