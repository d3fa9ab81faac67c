package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/repr"
	"github.com/plylang/ply-go"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

func main() {
	app := &cli.App{
		Name:  "ply",
		Usage: "ply semantic checker",
		ExitErrHandler: func(c *cli.Context, err error) {
			if err != nil {
				log.Fatalf("ply: %s", err)
			}
		},
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "run the semantic checks from a program file",
				ArgsUsage: "<program.yaml>",
				Action: func(c *cli.Context) error {
					file := c.Args().First()
					if file == "" {
						fmt.Println("no program file provided")
						os.Exit(1)
					}

					prog, err := ply.LoadProgramFile(file)
					if err != nil {
						tracerr.PrintSourceColor(err)
						os.Exit(1)
					}

					diags, err := ply.Analyze(prog)
					if err != nil {
						tracerr.PrintSourceColor(err)
						os.Exit(1)
					}

					if len(diags) > 0 {
						for _, d := range diags {
							fmt.Println(d)
						}
						os.Exit(1)
					}

					fmt.Println("Program is semantically correct.")
					return nil
				},
			},
			{
				Name:      "dump",
				Usage:     "dump the parsed program",
				ArgsUsage: "<program.yaml>",
				Action: func(c *cli.Context) error {
					file := c.Args().First()
					if file == "" {
						fmt.Println("no program file provided")
						os.Exit(1)
					}

					prog, err := ply.LoadProgramFile(file)
					if err != nil {
						tracerr.PrintSourceColor(err)
						os.Exit(1)
					}

					repr.Println(prog)
					return nil
				},
			},
		},
	}
	app.Run(os.Args)
}
