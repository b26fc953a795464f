package levels

// Level is a validated level description. Positions are tile coordinates.
type Level struct {
	Name       string     `json:"name"`
	GridWidth  int        `json:"gridWidth"`
	GridHeight int        `json:"gridHeight"`
	Platforms  []Platform `json:"platforms"`
	Gaps       []Gap      `json:"gaps"`
	Start      GridPos    `json:"start"`
	Goal       GridPos    `json:"goal"`
}

type GridPos struct {
	GridX int `json:"gridX"`
	GridY int `json:"gridY"`
}

// Platform is a horizontal run of solid tiles.
type Platform struct {
	GridX int    `json:"gridX"`
	GridY int    `json:"gridY"`
	Width int    `json:"width"`
	Tile  string `json:"tile"`
}

// Gap is a run of missing tiles that is bridged once CorrectAnswer is given.
// CorrectAnswer always equals Width.
type Gap struct {
	GridX         int `json:"gridX"`
	GridY         int `json:"gridY"`
	Width         int `json:"width"`
	CorrectAnswer int `json:"correctAnswer"`
}
