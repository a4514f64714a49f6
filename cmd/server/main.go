package main

import (
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/adamsulemanji/bananas/config"
	"github.com/adamsulemanji/bananas/game"
	"github.com/adamsulemanji/bananas/session"
	"github.com/adamsulemanji/bananas/words"
)

func CreateServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(ctx *gin.Context) { ctx.String(http.StatusOK, "healthy") })

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")
		if origin == "" || slices.Contains(allowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.String(http.StatusForbidden, "forbidden origin")
		ctx.Abort()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Origin",
			"Upgrade",
			"Connection",
			"Sec-WebSocket-Key",
			"Sec-WebSocket-Version",
			"Sec-WebSocket-Extensions",
			"Sec-WebSocket-Protocol",
		},
	}))

	return r
}

func main() {
	cfg := config.Load()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// Dictionary loading is the one genuinely asynchronous startup step;
	// validation endpoints report not-ready until it completes.
	dict := words.New()
	go func() {
		if err := dict.Load(cfg.WordsFile); err != nil {
			log.Error().Err(err).Msg("dictionary load failed, word validation unavailable")
			return
		}
		log.Info().Int("words", dict.Size()).Msg("dictionary loaded")
	}()

	store, err := session.OpenStore(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not open session store")
	}
	defer store.Close()

	lobby := game.NewLobby(game.Config{
		MinPlayers: cfg.MinPlayers,
		MaxPlayers: cfg.MaxPlayers,
	}, log.Logger)

	lobbyStarted := make(chan struct{})
	go lobby.Run(lobbyStarted)
	<-lobbyStarted

	r := CreateServer(cfg.AllowedOrigins)

	gameHandler := game.NewHandler(lobby, log.Logger)
	{
		ws := r.Group("/ws")
		ws.GET("/create", gameHandler.CreateRoomHandler)
		ws.GET("/join", gameHandler.JoinRoomHandler)
	}

	dictHandler := words.NewHandler(dict)
	{
		dictionary := r.Group("/dictionary")
		dictionary.GET("/check", dictHandler.CheckHandler)
		dictionary.GET("/suggest", dictHandler.SuggestHandler)
	}

	sessionHandler := session.NewHandler(store)
	{
		sessions := r.Group("/sessions")
		sessions.GET("", sessionHandler.RecentHandler)
		sessions.POST("", sessionHandler.SaveHandler)
		sessions.GET("/:id", sessionHandler.GetHandler)
		sessions.DELETE("/:id", sessionHandler.DeleteHandler)
	}

	log.Info().Str("addr", cfg.Addr).Msg("server listening")
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
