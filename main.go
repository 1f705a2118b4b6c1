package main

import (
	"fmt"
	"os"

	"othello/config"
	"othello/engine"
	"othello/game"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	fmt.Printf("Running %d game(s): random (Black) vs alpha-beta depth %d (White)\n",
		cfg.Games, cfg.SearchDepth)
	for i := 0; i < cfg.Games; i++ {
		fmt.Printf("Game %d started...\n", i+1)
		black, white := runGame(cfg)
		fmt.Printf("Game %d over! %s\n", i+1, verdict(black, white))
	}
}

// runGame plays one full game through a session and returns the final score.
func runGame(cfg *config.Config) (black, white int) {
	session := engine.NewSession()
	strengths := map[game.Colour]int{
		game.Black: 0, // random
		game.White: cfg.SearchDepth,
	}

	for !session.GameOver() {
		player := session.NextPlayer()
		if _, _, err := session.RequestAIMove(strengths[player]); err != nil {
			log.Fatal().Err(err).Msg("engine failure")
		}
	}

	render(session, cfg.Colour)
	return session.Scores()
}

func verdict(black, white int) string {
	switch {
	case black > white:
		return fmt.Sprintf("Black wins %d-%d", black, white)
	case white > black:
		return fmt.Sprintf("White wins %d-%d", white, black)
	default:
		return fmt.Sprintf("Draw %d-%d", black, white)
	}
}

func render(session *engine.Session, coloured bool) {
	if !coloured {
		fmt.Print(session)
		return
	}

	p := termenv.ColorProfile()
	snapshot := session.BoardSnapshot()
	for row := 0; row < game.BoardSize; row++ {
		for col := 0; col < game.BoardSize; col++ {
			switch game.Colour(snapshot[row*game.BoardSize+col]) {
			case game.Black:
				fmt.Print(termenv.String("B").Foreground(p.Color("12")))
			case game.White:
				fmt.Print(termenv.String("W").Foreground(p.Color("9")))
			default:
				fmt.Print(termenv.String(".").Faint())
			}
		}
		fmt.Println()
	}
	black, white := session.Scores()
	fmt.Printf("Score: B %d - W %d\n", black, white)
	fmt.Printf("Next Turn: %s\n", session.NextPlayer())
}
