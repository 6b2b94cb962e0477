package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/trentd187/golf-tour/internal/competitions"
	"github.com/trentd187/golf-tour/internal/config"
	"github.com/trentd187/golf-tour/internal/database"
	"github.com/trentd187/golf-tour/internal/export"
	"github.com/trentd187/golf-tour/internal/fixture"
	"github.com/trentd187/golf-tour/internal/leaderboard"
	"github.com/trentd187/golf-tour/internal/logging"
	"github.com/trentd187/golf-tour/internal/middleware"
	"github.com/trentd187/golf-tour/internal/models"
)

var fixtureFlag = &cli.StringFlag{
	Name:     "fixture",
	Aliases:  []string{"f"},
	Usage:    "path to a YAML tour fixture",
	Required: true,
}

var jsonFlag = &cli.BoolFlag{Name: "json", Usage: "print JSON instead of a table"}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:   "tourctl",
		Usage:  "golf tour leaderboards from the command line",
		Writer: out,
		Commands: []*cli.Command{
			competitionsCommand(),
			leaderboardCommand(),
			h2zCommand(),
			exportCommand(),
			tokenCommand(),
			migrateCommand(),
		},
	}
}

// loadService builds a leaderboard service over the fixture named by --fixture.
func loadService(c *cli.Context) (*leaderboard.Service, *leaderboard.TourData, error) {
	data, err := fixture.LoadFile(c.String("fixture"))
	if err != nil {
		return nil, nil, err
	}
	log := logging.New(c.String("log-level"))
	engine := competitions.NewEngine(competitions.DefaultRegistry())
	return leaderboard.NewService(fixture.NewSource(data), engine, nil, log), data, nil
}

func competitionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "competitions",
		Usage: "list the competition catalog",
		Flags: []cli.Flag{jsonFlag},
		Action: func(c *cli.Context) error {
			engine := competitions.NewEngine(competitions.DefaultRegistry())
			svc := leaderboard.NewService(nil, engine, nil, logging.Discard())
			list := svc.Competitions()
			if c.Bool("json") {
				return printJSON(c.App.Writer, list)
			}
			tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tSCOPE\tKIND\tORDER")
			for _, d := range list {
				order := "high"
				if d.LowerIsBetter {
					order = "low"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Scope, d.Kind, order)
			}
			return tw.Flush()
		},
	}
}

func leaderboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "leaderboard",
		Usage: "print one leaderboard, or every tour leaderboard",
		Flags: []cli.Flag{
			fixtureFlag,
			jsonFlag,
			&cli.StringFlag{Name: "competition", Aliases: []string{"c"}, Usage: "competition id (all tour competitions when empty)"},
			&cli.StringFlag{Name: "round", Aliases: []string{"r"}, Usage: "round id for round-scope competitions"},
			&cli.StringFlag{Name: "log-level", Value: "warn"},
		},
		Action: func(c *cli.Context) error {
			svc, data, err := loadService(c)
			if err != nil {
				return err
			}

			var boards []leaderboard.Board
			switch id := c.String("competition"); {
			case id == "":
				boards, err = svc.TourLeaderboards(c.Context, data.TourID)
			case c.String("round") != "":
				var b leaderboard.Board
				b, err = svc.RoundLeaderboard(c.Context, data.TourID, c.String("round"), id)
				boards = []leaderboard.Board{b}
			default:
				var b leaderboard.Board
				b, err = svc.TourLeaderboard(c.Context, data.TourID, id)
				boards = []leaderboard.Board{b}
			}
			if err != nil {
				return err
			}

			if c.Bool("json") {
				return printJSON(c.App.Writer, boards)
			}
			for i, b := range boards {
				if i > 0 {
					fmt.Fprintln(c.App.Writer)
				}
				if err := printBoard(c.App.Writer, b); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func h2zCommand() *cli.Command {
	return &cli.Command{
		Name:  "h2z",
		Usage: "print hero-to-zero standings for every leg",
		Flags: []cli.Flag{fixtureFlag, jsonFlag, &cli.StringFlag{Name: "log-level", Value: "warn"}},
		Action: func(c *cli.Context) error {
			svc, data, err := loadService(c)
			if err != nil {
				return err
			}
			hb, err := svc.H2Z(c.Context, data.TourID)
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return printJSON(c.App.Writer, hb)
			}
			tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LEG\tPLAYER\tFINAL\tBEST\tHOLES\tFROM\tTO")
			for _, s := range hb.Standings {
				from, to := "-", "-"
				if s.BestLen > 0 {
					from = fmt.Sprintf("R%d H%d", s.BestStartRoundNo, s.BestStartHoleNo)
					to = fmt.Sprintf("R%d H%d", s.BestEndRoundNo, s.BestEndHoleNo)
				}
				fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%s\t%s\n", s.LegNo, s.Label, s.FinalScore, s.BestScore, s.BestLen, from, to)
			}
			return tw.Flush()
		},
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write every leaderboard and the H2Z table to an xlsx workbook",
		Flags: []cli.Flag{
			fixtureFlag,
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file", Value: "leaderboards.xlsx"},
			&cli.StringFlag{Name: "log-level", Value: "warn"},
		},
		Action: func(c *cli.Context) error {
			svc, data, err := loadService(c)
			if err != nil {
				return err
			}
			snap, err := svc.Snapshot(c.Context, data.TourID)
			if err != nil {
				return err
			}
			f, err := os.Create(c.String("out"))
			if err != nil {
				return err
			}
			if err := export.Write(f, snap); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "wrote %d leaderboards to %s\n", len(snap.Boards), c.String("out"))
			return nil
		},
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "mint a signed API token for local development",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "secret", EnvVars: []string{"JWT_SECRET"}, Required: true},
			&cli.StringFlag{Name: "subject", Value: "dev"},
			&cli.StringFlag{Name: "role", Value: string(models.UserRoleUser)},
			&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour},
		},
		Action: func(c *cli.Context) error {
			token, err := middleware.IssueToken(c.String("secret"), c.String("subject"), models.UserRole(c.String("role")), c.Duration("ttl"))
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, token)
			return nil
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply pending database migrations (uses DATABASE_URL and MIGRATIONS_PATH)",
		Action: func(c *cli.Context) error {
			cfg := config.Load()
			if cfg.DatabaseURL == "" {
				return cli.Exit("DATABASE_URL is not set", 1)
			}
			return database.RunMigrations(cfg.MigrationsPath, cfg.DatabaseURL, logging.New(cfg.LogLevel))
		},
	}
}

func printBoard(w io.Writer, b leaderboard.Board) error {
	title := b.Name
	if b.RoundID != "" {
		title += " (round " + b.RoundID + ")"
	}
	fmt.Fprintln(w, title)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tENTRY\tTOTAL\tBACK 9\tFRONT 9")
	for _, r := range b.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.Rank, r.Label, num(r.Total), num(r.Back9), num(r.Front9))
	}
	return tw.Flush()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
