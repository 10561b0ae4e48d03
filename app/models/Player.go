package models

// Player is the lobby row linking a user to a game they joined. In-game state
// lives in the engine, not in the database.
type Player struct {
	User_id  string
	Game_id  string
	Username string
	Active   string
}
