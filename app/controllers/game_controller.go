package controllers

import (
	log "github.com/sirupsen/logrus"

	"github.com/gofiber/fiber/v2"

	"github.com/dm23046/Oligo-boardgame/app/models"
	"github.com/dm23046/Oligo-boardgame/pkg"
	"github.com/dm23046/Oligo-boardgame/platform/database"
)

func CreateGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	gameCreateDto := new(models.GameCreateDto)
	if err := c.BodyParser(gameCreateDto); err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	game := &models.Game{
		Id:     pkg.RandString(8),
		Name:   gameCreateDto.Name,
		Type:   gameCreateDto.Type,
		Status: "false",
	}

	_, err := db.Model(game).Insert()
	if err != nil {
		log.Errorf("failed creating game: %v", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"id": game.Id})
}

func GetAllAvailGames(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	var games []models.Game
	err := db.Model(&games).Where("status = ?", "false").Select()
	if err != nil {
		log.Errorf("failed listing games: %v", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(games)
}

// FindAvailGame returns one joinable game, for quick matchmaking.
func FindAvailGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	game := new(models.Game)
	err := db.Model(game).Where("status = ?", "false").Limit(1).Select()
	if err != nil {
		return c.JSON(fiber.Map{"id": nil})
	}
	return c.JSON(fiber.Map{"id": game.Id})
}

func VerifyGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	verifyGameDto := new(models.VerifyGameDto)
	if err := c.QueryParser(verifyGameDto); err != nil {
		return err
	}

	game := &models.Game{Id: verifyGameDto.Code}

	err := db.Model(game).WherePK().Select()
	if err != nil {
		return c.JSON(fiber.Map{"status": false})
	}
	return c.JSON(fiber.Map{"status": true})
}
