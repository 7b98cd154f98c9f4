package cmd

import (
	"github.com/urfave/cli/v2"
)

const version = "v1.0.0"

func NewApp() *cli.App {
	cli.VersionFlag = &cli.BoolFlag{
		Name: "version", Aliases: []string{"V"},
		Usage: "print version only",
	}
	return &cli.App{
		Name:                 "basicsort",
		Usage:                "elementary in-place integer sorts",
		Version:              version,
		EnableBashCompletion: true,
		Flags:                globalFlags(),
		Commands: []*cli.Command{
			CmdSort(),
			CmdBench(),
			CmdHistory(),
		},
	}
}
