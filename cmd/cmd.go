// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
	}
}

// extractCommand reads a saved playlist page and prints its tracks
func extractCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Aliases:   []string{"x"},
		Usage:     "Extract \"Title - Artist\" lines from a saved playlist page",
		ArgsUsage: "<page.html|rows.json|->",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "path",
			},
		},
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:  "input",
				Usage: "Snapshot format: html, json or auto",
				Value: "auto",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, text, csv, markdown, json or table",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the report to a file instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "clipboard",
				Usage: "Copy the song list to the system clipboard",
			},
			&cli.BoolFlag{
				Name:  "color",
				Usage: "Colorize console output",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Exit with an error when any artist could not be determined",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log every unresolved track",
			},
			&cli.StringFlag{
				Name:  "track-selector",
				Usage: "CSS selector for playlist rows",
			},
			&cli.StringFlag{
				Name:  "title-selector",
				Usage: "CSS selector for the title within a row",
			},
			&cli.StringFlag{
				Name:  "artist-selector",
				Usage: "CSS selector for artist links within a row",
			},
			&cli.StringFlag{
				Name:  "text-selector",
				Usage: "CSS selector for the artist/album text within a row",
			},
		},
		Action: r.Extract,
	}
}

// selectorsCommand prints the effective CSS selectors
func selectorsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "selectors",
		Usage: "Show the CSS selectors used to read playlist pages",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Selectors,
	}
}

// configCommand handles configuration files
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write an example config.toml",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name:  "path",
						Value: "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
		},
	}
}
