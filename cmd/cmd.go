// Package cmd wires the salahbar CLI: the waybar status evaluation, the
// guard daemon, and the small maintenance commands around them.
package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"

	clicommon "github.com/salahbar/salahbar/cmd/common"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

// build is the running binary's build info, reported by the guard's
// control socket.
var build BuildArgs

func Execute(args []string, bArgs BuildArgs) error {
	build = bArgs
	app := cli.App{
		Name:                  "salahbar",
		HelpName:              "salahbar",
		Usage:                 "Prayer times for your status bar.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "salahbar <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          clicommon.UsageErrorCallback,
		Commands: []cli.Command{
			{
				Name:               "status",
				Aliases:            []string{"s"},
				Usage:              "print the waybar JSON record for the next prayer",
				Action:             status,
				OnUsageError:       clicommon.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        StatusDescription,
			},
			{
				Name:               "guard",
				Usage:              "run the salah guard daemon",
				Action:             guardCmd,
				OnUsageError:       clicommon.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        GuardDescription,
			},
			{
				Name:               "stop",
				Usage:              "stop a running guard daemon",
				Action:             stop,
				OnUsageError:       clicommon.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        StopDescription,
			},
			{
				Name:               "times",
				Aliases:            []string{"t"},
				Usage:              "print today's prayer timetable",
				Action:             times,
				OnUsageError:       clicommon.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        TimesDescription,
			},
			{
				Name:               "qibla",
				Aliases:            []string{"q"},
				Usage:              "print the qibla direction for your location",
				Action:             qiblaCmd,
				OnUsageError:       clicommon.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        QiblaDescription,
			},
			{
				Name:               "log",
				Aliases:            []string{"l"},
				Usage:              "list recent notification and lock events",
				Action:             logCmd,
				OnUsageError:       clicommon.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        LogDescription,
				Flags:              logFlags,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  clicommon.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of salahbar",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             clicommon.GetVersion,
			},
		},
		Action:      status,
		HideHelp:    true,
		HideVersion: true,
	}
	clicommon.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}
