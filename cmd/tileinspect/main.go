package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	app := cli.NewApp()

	app.Name = "tileinspect"
	app.Usage = "Inspect Tiled maps the way the game loads them"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log every loaded tile set and layer",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		return nil
	}

	app.Commands = []*cli.Command{
		{
			Name:      "layers",
			Usage:     "List tile layers with their chunk, tile and missing id counts",
			ArgsUsage: "MAP",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "strict",
					Usage: "fail when a layer references unregistered tile ids",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}
				fsys, name := openMap(c.Args().First())
				if err := runLayers(c.App.Writer, fsys, name, c.Bool("strict")); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "tilesets",
			Usage:     "List tile sets with their first gid and slice count",
			ArgsUsage: "MAP",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}
				fsys, name := openMap(c.Args().First())
				if err := runTileSets(c.App.Writer, fsys, name); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "lookup",
			Usage:     "Show the tile set and region owning a global tile id",
			ArgsUsage: "MAP GID",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}
				gid, err := strconv.ParseUint(c.Args().Get(1), 10, 32)
				if err != nil {
					return cli.Exit(err, 1)
				}
				fsys, name := openMap(c.Args().First())
				if err := runLookup(c.App.Writer, fsys, name, uint32(gid)); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "render",
			Usage:     "Render the visible tile layers to a PNG",
			ArgsUsage: "MAP",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   "map.png",
					Usage:   "output file",
				},
				&cli.IntFlag{
					Name:  "scale",
					Value: 1,
					Usage: "integer upscale factor",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}
				fsys, name := openMap(c.Args().First())
				if err := renderFile(c.String("output"), fsys, name, c.Int("scale")); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("tileinspect failed")
	}
}

// openMap roots a file system at the volume holding the map so tile sets
// referenced with ".." still resolve.
func openMap(p string) (fs.FS, string) {
	abs, err := filepath.Abs(p)
	if err != nil {
		abs = p
	}
	vol := filepath.VolumeName(abs)
	name := strings.TrimPrefix(filepath.ToSlash(abs[len(vol):]), "/")
	return os.DirFS(vol + string(filepath.Separator)), name
}
