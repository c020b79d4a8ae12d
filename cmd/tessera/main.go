// Package main provides the tessera CLI.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// Injected at build time with -ldflags "-X main.version=...".
var version = "v0.1.0-dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.WithError(err).Error("tessera failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "tessera"
	app.Usage = "Parallel dense tensors: fractal renderer and arithmetic benchmarks"
	app.Version = version
	app.UseShortOptionHandling = true

	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "verbose", Usage: "Enable debug logging"},
	}
	app.Before = func(c *cli.Context) error {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		if c.GlobalBool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	app.Commands = []cli.Command{
		mandelbrotCommand(),
		benchCommand(),
		{
			Name:  "version",
			Usage: "Show version",
			Action: func(c *cli.Context) error {
				_, err := c.App.Writer.Write([]byte("tessera " + version + "\n"))
				return err
			},
		},
	}
	return app
}
