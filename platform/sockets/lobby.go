package socket

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-pg/pg/v10"
	"github.com/gomodule/redigo/redis"

	"github.com/dm23046/Oligo-boardgame/app/models"
	"github.com/dm23046/Oligo-boardgame/platform/cache"
)

// Lobby state lives in redis keyed by game id:
//   <game>.order        list of user ids in join order
//   <game>.<user>       hash with the user's seat number
// The engine only knows seat numbers; these helpers translate.

func verifyGame(id string, db *pg.DB) bool {
	game := &models.Game{Id: id}
	return db.Model(game).WherePK().Select() == nil
}

func getUserData(userID string, db *pg.DB) (*models.User, error) {
	user := &models.User{Id: userID}
	if err := db.Model(user).WherePK().Select(); err != nil {
		return nil, err
	}
	return user, nil
}

func createPlayer(player models.Player, db *pg.DB) error {
	_, err := db.Model(&player).Insert()
	return err
}

func deletePlayer(userID, gameID string, db *pg.DB, conn *redis.Conn) error {
	player := new(models.Player)
	_, err := db.Model(player).Where("user_id = ? and game_id = ?", userID, gameID).Delete()

	cache.Del(fmt.Sprintf("%s.%s", gameID, userID), conn)
	cache.LREM(fmt.Sprintf("%s.order", gameID), userID, conn)

	length, _ := cache.LLEN(fmt.Sprintf("%s.order", gameID), conn)
	if length <= 1 {
		cleanUp(gameID, db, conn)
	}
	return err
}

// cleanUp drops every lobby row and key for a finished or abandoned game.
func cleanUp(gameID string, db *pg.DB, conn *redis.Conn) {
	player := new(models.Player)
	game := new(models.Game)
	db.Model(player).Where("game_id = ?", gameID).Delete()
	db.Model(game).Where("id = ?", gameID).Delete()

	ids, _ := cache.LGET(fmt.Sprintf("%s.order", gameID), conn)
	for _, id := range ids {
		cache.Del(fmt.Sprintf("%s.%s", gameID, string(id.([]byte))), conn)
	}
	cache.Del(fmt.Sprintf("%s.order", gameID), conn)
	cache.Del(fmt.Sprintf("%s.meta", gameID), conn)
}

// assignSeats orders the joined players and writes each one's seat number.
// Seats are numbered from 1 to match the engine's player ids.
func assignSeats(gameID string, db *pg.DB, conn *redis.Conn) ([]models.Player, error) {
	var players []models.Player
	err := db.Model(&players).Where("game_id = ?", gameID).Select()
	if err != nil || len(players) <= 1 {
		return nil, errors.New("not enough players to start")
	}

	var ids []interface{}
	for _, player := range players {
		seat, err := cache.HINCRBY(fmt.Sprintf("%s.meta", gameID), "seats", 1, conn)
		if err != nil {
			return nil, err
		}
		cache.HSET(fmt.Sprintf("%s.%s", gameID, player.User_id), "seat", seat, conn)
		ids = append(ids, player.User_id)
	}
	cache.RPUSH(fmt.Sprintf("%s.order", gameID), ids, conn)

	game := &models.Game{Id: gameID}
	if _, err := db.Model(game).WherePK().Set("status = ?", "in progress").Update(); err != nil {
		return nil, err
	}
	return players, nil
}

// seatOf resolves a user's engine seat number, 0 when unknown.
func seatOf(gameID, userID string, conn *redis.Conn) int {
	val, err := cache.HGET(fmt.Sprintf("%s.%s", gameID, userID), "seat", conn)
	if err != nil {
		return 0
	}
	seat, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return seat
}
