package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/takatori/wnsim/internal"
	"github.com/takatori/wnsim/internal/ic"
	"github.com/takatori/wnsim/internal/mcpserver"
	"github.com/takatori/wnsim/internal/server"
	"github.com/takatori/wnsim/internal/similarity"
	"github.com/takatori/wnsim/internal/wordnet"
	"github.com/urfave/cli/v2"
)

var Version = "0.1.0"

func main() {
	app := &cli.App{
		Name:    "wnsim",
		Usage:   "WordNet synset similarity",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "wordnet",
				Aliases: []string{"w"},
				Usage:   "WordNet XML file (overrides WORDNET_FILE)",
			},
			&cli.StringFlag{
				Name:  "ic-source",
				Usage: "Information content source: none, sqlite, remote or intrinsic (overrides IC_SOURCE)",
			},
			&cli.StringFlag{
				Name:  "ic-db",
				Usage: "SQLite information content database (overrides IC_DB_PATH)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the HTTP API",
				Action: serveCommand,
			},
			{
				Name:   "mcp",
				Usage:  "Serve the MCP tools over stdio",
				Action: mcpCommand,
			},
			{
				Name:      "similarity",
				Usage:     "Score two synsets",
				ArgsUsage: "<metric> <synset1> <synset2>",
				Action:    similarityCommand,
			},
			{
				Name:      "path",
				Usage:     "Print the hypernym path of a synset",
				ArgsUsage: "<synset>",
				Action:    pathCommand,
			},
			{
				Name:   "ic-build",
				Usage:  "Compute intrinsic information content and store it in the SQLite database",
				Action: icBuildCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads the environment and applies the global flag overrides.
func loadConfig(c *cli.Context) (*internal.Config, error) {
	config, err := internal.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if v := c.String("wordnet"); v != "" {
		config.WordNetFile = v
	}
	if v := c.String("ic-source"); v != "" {
		config.ICSource = internal.ICSource(v)
	}
	if v := c.String("ic-db"); v != "" {
		config.ICDBPath = v
	}
	return config, nil
}

// setup loads the config, the WordNet and the information content table.
func setup(c *cli.Context, logger func(*internal.Config) *slog.Logger) (*internal.Config, *wordnet.WordNet, similarity.InformationContents, error) {
	config, err := loadConfig(c)
	if err != nil {
		return nil, nil, nil, err
	}
	slog.SetDefault(logger(config))

	wn, err := wordnet.LoadFile(config.WordNetFile)
	if err != nil {
		return nil, nil, nil, err
	}
	table, err := ic.Resolve(c.Context, config, wn)
	if err != nil {
		return nil, nil, nil, err
	}
	return config, wn, table, nil
}

func serveCommand(c *cli.Context) error {
	config, wn, table, err := setup(c, internal.NewLogger)
	if err != nil {
		return err
	}

	e, err := server.InitServer(config, wn, table)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	go func() {
		if err := e.Start(config.EchoAddr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}

func mcpCommand(c *cli.Context) error {
	config, wn, table, err := setup(c, internal.NewStderrLogger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	srv := mcpserver.New(wn, table, config.SuggestLimit, Version)
	slog.Info("serving mcp over stdio", "synsets", wn.Size())
	return srv.Run(ctx, &mcp.StdioTransport{})
}

func similarityCommand(c *cli.Context) error {
	if c.NArg() != 3 {
		return cli.Exit("usage: wnsim similarity <metric> <synset1> <synset2>", 2)
	}
	_, wn, table, err := setup(c, internal.NewStderrLogger)
	if err != nil {
		return err
	}

	sim, err := similarity.New(similarity.Metric(c.Args().Get(0)), wn, table)
	if err != nil {
		return err
	}
	synSets := make([]*wordnet.SynSet, 2)
	for i, id := range []string{c.Args().Get(1), c.Args().Get(2)} {
		s, ok := wn.SynSetWithID(id)
		if !ok {
			return cli.Exit(fmt.Sprintf("synset %s not found", id), 1)
		}
		synSets[i] = s
	}

	score, err := sim.ComputeSimilarity(synSets[0], synSets[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%.4f\n", score)
	return nil
}

func pathCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: wnsim path <synset>", 2)
	}
	_, wn, _, err := setup(c, internal.NewStderrLogger)
	if err != nil {
		return err
	}

	id := c.Args().First()
	s, ok := wn.SynSetWithID(id)
	if !ok {
		return cli.Exit(fmt.Sprintf("synset %s not found", id), 1)
	}
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(wn.FindPathToRoot(s))
}

func icBuildCommand(c *cli.Context) error {
	config, err := loadConfig(c)
	if err != nil {
		return err
	}
	slog.SetDefault(internal.NewStderrLogger(config))

	wn, err := wordnet.LoadFile(config.WordNetFile)
	if err != nil {
		return err
	}
	table := ic.Intrinsic(wn)

	store, err := ic.Open(config.ICDBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.Save(c.Context, table); err != nil {
		return err
	}
	slog.Info("information content stored", "path", config.ICDBPath, "synsets", len(table))
	return nil
}
