package ui

import (
	"context"
	"fmt"
	"os"

	"dragchess/src/logx"
	"dragchess/src/position"
	clic "dragchess/ui/cli"
	"dragchess/ui/gui"

	"github.com/urfave/cli/v3"
)

const logfile string = "dragchess.log"

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		c.String("level"),
		c.Bool("debug"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func newPosition(c *cli.Command) (position.Position, error) {
	if fen := c.String("fen"); fen != "" {
		return position.NewGameFromFEN(fen)
	}
	return position.NewGame(), nil
}

func RunGUI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()

	pos, err := newPosition(c)
	if err != nil {
		fmt.Printf("error create game: %v", err)
		return nil
	}
	g, err := gui.NewGUI(pos, GetLogger(file, c))
	if err != nil {
		return err
	}
	return g.Run()
}

func RunDragChess() error {
	ff := &cli.StringFlag{
		Name:  "fen",
		Usage: "string FEN format",
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "logger level",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	flags := []cli.Flag{ff, df, lf, cf}

	return (&cli.Command{
		Name:  "dragchess",
		Usage: "drag-and-drop chess board",
		Flags: flags,
		Commands: []*cli.Command{
			{
				Name:  "cli",
				Flags: flags,
				Action: func(ctx context.Context, c *cli.Command) error {
					file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
					if err != nil {
						fmt.Printf("error open logfile: %v", err)
						return nil
					}
					defer file.Close()

					pos, err := newPosition(c)
					if err != nil {
						fmt.Printf("error create game: %v", err)
						return nil
					}

					clic.EnableANSI()
					cl := clic.NewCLI(pos, GetLogger(file, c))
					if err := cl.Run(); err != nil {
						fmt.Printf("error dragchess: %v", err)
					}
					return nil
				},
			},
			{
				Name:  "gui",
				Flags: flags,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunGUI(c); err != nil {
						fmt.Printf("error GUI: %v", err)
					}
					return nil
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := RunGUI(c); err != nil {
				fmt.Printf("error GUI: %v", err)
			}
			return nil
		},
	}).Run(context.Background(), os.Args)
}
