package socket

import (
	"encoding/json"
	"net/http"
	"strconv"

	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"

	"github.com/dm23046/Oligo-boardgame/app/models"
	"github.com/dm23046/Oligo-boardgame/platform/cache"
	"github.com/dm23046/Oligo-boardgame/platform/database"
	"github.com/dm23046/Oligo-boardgame/platform/engine"
)

// TODO add chat

func CreateSocketIOServer() {

	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}
	db := database.PostgreSQLConnection()
	defer db.Close()

	pool := cache.CreateRedisPool()
	defer pool.Close()

	games := engine.NewRegistry()

	// broadcastState pushes the full snapshot plus any queued money changes
	// to the room.
	broadcastState := func(gameID string, g *engine.Game) {
		snap, err := json.Marshal(g.Snapshot())
		if err != nil {
			log.Errorf("failed marshaling snapshot for game %s: %v", gameID, err)
			return
		}
		server.BroadcastToRoom("/", gameID, "game-state", string(snap))
		for _, change := range g.TakeMoneyChanges() {
			changeJson, err := json.Marshal(change)
			if err != nil {
				continue
			}
			server.BroadcastToRoom("/", gameID, "money-change", string(changeJson))
		}
	}

	// parse decodes the common payload shape: a flat string map.
	parse := func(jsonStr string) map[string]string {
		var result map[string]string
		json.Unmarshal([]byte(jsonStr), &result)
		return result
	}

	// seatedGame resolves the payload's game and the sender's seat in it.
	seatedGame := func(s socketio.Conn, result map[string]string) (*engine.Game, int, bool) {
		g, ok := games.Get(result["game_id"])
		if !ok {
			s.Emit("error-message", "Game not started")
			return nil, 0, false
		}
		conn := pool.Get()
		defer conn.Close()
		seat := seatOf(result["game_id"], result["user_id"], &conn)
		if seat == 0 {
			s.Emit("error-message", "You are not seated in this game")
			return nil, 0, false
		}
		return g, seat, true
	}

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "see", func(s socketio.Conn) {
		log.Debug("pinged")
	})

	server.OnEvent("/", "join-game", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		id, ok := result["game_id"]
		if !ok {
			log.Warn("game_id not passed")
			return
		}
		if !verifyGame(id, db) {
			s.Emit("error-message", "Invalid game")
			s.Emit("failed")
			return
		}
		userID, ok := result["user_id"]
		if !ok {
			s.Emit("error-message", "User not authenticated")
			s.Emit("failed")
			return
		}

		user, err := getUserData(userID, db)
		if err != nil {
			s.Emit("error-message", "User retrieval failed")
			s.Emit("failed")
			return
		}
		err = createPlayer(models.Player{
			Game_id:  id,
			User_id:  userID,
			Username: user.Email,
		}, db)
		if err != nil {
			log.Errorf("failed creating player: %v", err)
			s.Emit("error-message", "Failed creating player")
			s.Emit("failed")
			return
		}

		server.BroadcastToRoom("/", id, "player-join")
		s.Join(id)
		players := server.RoomLen("/", id)

		s.Emit("joined-game", strconv.Itoa(players))
		log.Infof("%s joined room %s", s.ID(), id)
	})

	server.OnEvent("/", "leave-game", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		s.Leave(result["game_id"])
		go func() {
			conn := pool.Get()
			defer conn.Close()
			deletePlayer(result["user_id"], result["game_id"], db, &conn)
		}()
		server.BroadcastToRoom("/", result["game_id"], "player-left")
	})

	server.OnEvent("/", "start-game", func(s socketio.Conn, gameID string) {
		conn := pool.Get()
		defer conn.Close()

		players, err := assignSeats(gameID, db, &conn)
		if err != nil {
			s.Emit("error-message", "Unable to start game")
			log.Warnf("failed to start game %s: %v", gameID, err)
			return
		}

		g := games.GetOrCreate(gameID)
		g.InitializePlayers(len(players))
		if err := g.Start(); err != nil {
			s.Emit("error-message", err.Error())
			return
		}

		playersJson, err := json.Marshal(players)
		if err != nil {
			panic(err)
		}
		server.BroadcastToRoom("/", gameID, "game-start", string(playersJson))
		broadcastState(gameID, g)
	})

	server.OnEvent("/", "roll-dice", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		roll, err := g.RollAndMove(seat)
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		rollJson, _ := json.Marshal(roll)
		server.BroadcastToRoom("/", result["game_id"], "dice-rolled", string(rollJson))
		broadcastState(result["game_id"], g)
	})

	server.OnEvent("/", "request-buy", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		if err := g.Buy(seat); err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcastState(result["game_id"], g)
	})

	server.OnEvent("/", "buy-wager", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		stake, err := strconv.Atoi(result["stake"])
		if err != nil {
			s.Emit("error-message", "Invalid stake")
			return
		}
		wager, err := g.BuyWithWager(seat, stake)
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		wagerJson, _ := json.Marshal(wager)
		server.BroadcastToRoom("/", result["game_id"], "wager-resolved", string(wagerJson))
		broadcastState(result["game_id"], g)
	})

	server.OnEvent("/", "request-pass", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		if err := g.Pass(seat); err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcastState(result["game_id"], g)
	})

	server.OnEvent("/", "sell-card", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		price, _ := strconv.Atoi(result["price"])
		onMarket := result["on_market"] == "true"
		if err := g.Sell(seat, result["card_id"], price, onMarket); err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcastState(result["game_id"], g)
	})

	server.OnEvent("/", "take-loan", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		amount, err := strconv.Atoi(result["amount"])
		if err != nil {
			s.Emit("error-message", "Invalid loan amount")
			return
		}
		if err := g.TakeLoan(seat, amount); err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcastState(result["game_id"], g)
	})

	server.OnEvent("/", "available-loans", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		optionsJson, err := json.Marshal(g.AvailableLoans(seat))
		if err != nil {
			return
		}
		s.Emit("loan-options", string(optionsJson))
	})

	server.OnEvent("/", "pay-loan", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		installments, err := strconv.Atoi(result["installments"])
		if err != nil {
			installments = 1
		}
		if err := g.PayLoan(seat, result["loan_id"], installments); err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcastState(result["game_id"], g)
	})

	server.OnEvent("/", "end-turn", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		if err := g.EndTurn(seat); err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcastState(result["game_id"], g)
	})

	server.OnEvent("/", "jail-wait", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		if err := g.JailWait(seat); err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcastState(result["game_id"], g)
	})

	server.OnEvent("/", "jail-escape", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		escape, err := g.JailEscapeAttempt(seat)
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		escapeJson, _ := json.Marshal(escape)
		server.BroadcastToRoom("/", result["game_id"], "jail-escape-resolved", string(escapeJson))
		broadcastState(result["game_id"], g)
	})

	server.OnEvent("/", "bingo-roll", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		bingo, err := g.BingoRoll(seat)
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		bingoJson, _ := json.Marshal(bingo)
		server.BroadcastToRoom("/", result["game_id"], "bingo-resolved", string(bingoJson))
		broadcastState(result["game_id"], g)
	})

	server.OnEvent("/", "casino-bet", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		stake, err := strconv.Atoi(result["stake"])
		if err != nil {
			s.Emit("error-message", "Invalid stake")
			return
		}
		casino, err := g.CasinoBet(seat, stake)
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		casinoJson, _ := json.Marshal(casino)
		server.BroadcastToRoom("/", result["game_id"], "casino-resolved", string(casinoJson))
		broadcastState(result["game_id"], g)
	})

	server.OnEvent("/", "duel-resolve", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		conn := pool.Get()
		opponent := seatOf(result["game_id"], result["opponent_id"], &conn)
		conn.Close()
		duel, err := g.ResolveDuel(seat, opponent)
		if err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		duelJson, _ := json.Marshal(duel)
		server.BroadcastToRoom("/", result["game_id"], "duel-resolved", string(duelJson))
		broadcastState(result["game_id"], g)
	})

	server.OnEvent("/", "free-pick-select", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		if err := g.FreePickSelect(seat, models.Category(result["pool"])); err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcastState(result["game_id"], g)
	})

	server.OnEvent("/", "free-pick-execute", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		if err := g.FreePickExecute(seat); err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcastState(result["game_id"], g)
	})

	server.OnEvent("/", "free-pick-exit", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		if err := g.FreePickExit(seat); err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcastState(result["game_id"], g)
	})

	server.OnEvent("/", "activate-chance", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, seat, ok := seatedGame(s, result)
		if !ok {
			return
		}
		if err := g.ActivateChance(seat, result["card_id"]); err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcastState(result["game_id"], g)
	})

	server.OnEvent("/", "debug-force-roll", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, _, ok := seatedGame(s, result)
		if !ok {
			return
		}
		total, err := strconv.Atoi(result["total"])
		if err != nil {
			s.Emit("error-message", "Invalid roll total")
			return
		}
		if err := g.ForceNextRoll(total); err != nil {
			s.Emit("error-message", err.Error())
		}
	})

	server.OnEvent("/", "debug-set-cash", func(s socketio.Conn, jsonStr string) {
		result := parse(jsonStr)
		g, _, ok := seatedGame(s, result)
		if !ok {
			return
		}
		amount, err := strconv.Atoi(result["amount"])
		if err != nil {
			s.Emit("error-message", "Invalid amount")
			return
		}
		if err := g.SetCash(amount); err != nil {
			s.Emit("error-message", err.Error())
			return
		}
		broadcastState(result["game_id"], g)
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		log.Errorf("socket error: %v", e)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		rooms := s.Rooms()
		for _, room := range rooms {
			server.BroadcastToRoom("/", room, "player-left")
		}
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	http.ListenAndServe(":8000", c.Handler(mux))
}
